package effectiveness

import (
	"maps"
	"slices"
	"strconv"
)

// Multipliers applied by each relation kind.
const (
	double = 2.0
	half   = 0.5
	immune = 0.0
	normal = 1.0
)

// TypeRef is a named reference to an elemental type (PokeAPI NamedAPIResource).
type TypeRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DamageRelations holds the damage relations of a single elemental type.
// Only the *From lists are used by [Calculate]; the *To lists describe offensive
// matchups and are carried for completeness.
type DamageRelations struct {
	DoubleDamageFrom []TypeRef `json:"double_damage_from"`
	HalfDamageFrom   []TypeRef `json:"half_damage_from"`
	NoDamageFrom     []TypeRef `json:"no_damage_from"`
	DoubleDamageTo   []TypeRef `json:"double_damage_to"`
	HalfDamageTo     []TypeRef `json:"half_damage_to"`
	NoDamageTo       []TypeRef `json:"no_damage_to"`
}

// Result is the combined defensive profile of one or more types.
//
// Weaknesses and Resistances are annotated as "name (xN)"; Immunities hold bare
// names. All three are sorted by type name and never nil. A type name appears
// in at most one list; neutral (1×) attackers appear in none.
//
// Multipliers maps every non-neutral attacker to its final multiplier
// (0 for immunities). Attackers absent from the map deal 1×.
type Result struct {
	Weaknesses  []string           `json:"weaknesses" yaml:"weaknesses"`
	Resistances []string           `json:"resistances" yaml:"resistances"`
	Immunities  []string           `json:"immunities" yaml:"immunities"`
	Multipliers map[string]float64 `json:"effectiveness,omitempty" yaml:"effectiveness,omitempty"`
}

// Multiplier returns the damage multiplier attacker deals against the profile.
// Attackers not present in the profile deal normal (1×) damage.
func (r Result) Multiplier(attacker string) float64 {
	if v, ok := r.Multipliers[attacker]; ok {
		return v
	}
	return normal
}

// Empty reports whether the profile has no weaknesses, resistances or immunities.
func (r Result) Empty() bool {
	return len(r.Weaknesses) == 0 && len(r.Resistances) == 0 && len(r.Immunities) == 0
}

// Calculate folds the damage relations of types into a single [Result].
// A nil or empty slice yields a Result with three empty lists.
func Calculate(types []DamageRelations) Result {
	acc := newAccumulator()
	for _, rel := range types {
		for _, t := range rel.DoubleDamageFrom {
			acc.multiply(t.Name, double)
		}
		for _, t := range rel.HalfDamageFrom {
			acc.multiply(t.Name, half)
		}
		for _, t := range rel.NoDamageFrom {
			acc.immunize(t.Name)
		}
	}
	return acc.result()
}

// accumulator tracks the running multiplier per attacking type.
// An absent key means no relation has touched it yet, or that it netted out to 1×.
type accumulator struct {
	m map[string]float64
}

func newAccumulator() *accumulator {
	return &accumulator{m: make(map[string]float64)}
}

// multiply applies factor to name. Immune entries are left untouched and an
// entry that reaches exactly 1 is deleted on the spot.
func (a *accumulator) multiply(name string, factor float64) {
	cur, ok := a.m[name]
	if !ok {
		a.m[name] = factor
		return
	}
	if cur == immune {
		return
	}
	next := cur * factor
	if next == normal {
		delete(a.m, name)
		return
	}
	a.m[name] = next
}

// immunize pins name at 0×.
func (a *accumulator) immunize(name string) {
	a.m[name] = immune
}

func (a *accumulator) result() Result {
	res := Result{
		Weaknesses:  []string{},
		Resistances: []string{},
		Immunities:  []string{},
		Multipliers: maps.Clone(a.m),
	}
	for _, name := range slices.Sorted(maps.Keys(a.m)) {
		v := a.m[name]
		switch {
		case v == immune:
			res.Immunities = append(res.Immunities, name)
		case v > normal:
			res.Weaknesses = append(res.Weaknesses, annotate(name, v))
		case v < normal:
			res.Resistances = append(res.Resistances, annotate(name, v))
		}
	}
	return res
}

// annotate renders "name (xV)" with V in its shortest decimal form.
func annotate(name string, v float64) string {
	return name + " (x" + FormatMultiplier(v) + ")"
}

// FormatMultiplier formats a multiplier as its shortest decimal literal
// (e.g. "4", "0.5", "0.25").
func FormatMultiplier(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
