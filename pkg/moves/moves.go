// Package moves estimates the damage of a move against a defensive profile.
package moves

import (
	"math"
	"slices"

	"github.com/matzehuels/pokedex/pkg/effectiveness"
)

// STABBonus is the same-type attack bonus.
const STABBonus = 1.5

// Damage is a rough damage estimate for one move.
type Damage struct {
	Base          int     `json:"base" yaml:"base"`
	STAB          float64 `json:"stab" yaml:"stab"`
	Effectiveness float64 `json:"effectiveness" yaml:"effectiveness"`
	Final         int     `json:"final" yaml:"final"`
}

// HasSTAB reports whether the estimate includes the same-type bonus.
func (d Damage) HasSTAB() bool { return d.STAB > 1 }

// Estimate computes round(power × STAB × effectiveness).
//
// STAB applies when moveType is one of userTypes. The effectiveness factor is
// the multiplier moveType has against target; types absent from it count as
// 1×. A nil power (status moves) yields zero damage.
func Estimate(power *int, moveType string, userTypes []string, target effectiveness.Result) Damage {
	d := Damage{STAB: 1, Effectiveness: target.Multiplier(moveType)}
	if power != nil {
		d.Base = *power
	}
	if slices.Contains(userTypes, moveType) {
		d.STAB = STABBonus
	}
	d.Final = int(math.Round(float64(d.Base) * d.STAB * d.Effectiveness))
	return d
}
