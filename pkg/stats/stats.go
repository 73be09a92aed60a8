// Package stats turns base stats into display rows.
package stats

import "math"

// MaxBaseStat is the highest base stat any Pokémon has (Blissey's HP).
const MaxBaseStat = 255

// Band is a coarse rating of a base stat.
type Band string

const (
	BandRed    Band = "red"
	BandOrange Band = "orange"
	BandYellow Band = "yellow"
	BandGreen  Band = "green"
)

// Class returns the CSS class for the band, e.g. "stat-red".
func (b Band) Class() string { return "stat-" + string(b) }

// Percent returns base as a rounded percentage of [MaxBaseStat].
func Percent(base int) int {
	return int(math.Round(float64(base) / MaxBaseStat * 100))
}

// BandOf rates base: below 50 is red, below 90 orange, below 120 yellow,
// anything higher green.
func BandOf(base int) Band {
	switch {
	case base < 50:
		return BandRed
	case base < 90:
		return BandOrange
	case base < 120:
		return BandYellow
	default:
		return BandGreen
	}
}

// Input is one named base stat.
type Input struct {
	Name string
	Base int
}

// Row is a display-ready stat.
type Row struct {
	Name    string `json:"name" yaml:"name"`
	Base    int    `json:"base" yaml:"base"`
	Percent int    `json:"percent" yaml:"percent"`
	Band    Band   `json:"band" yaml:"band"`
}

// Summary is the full stat block of a Pokémon.
type Summary struct {
	Rows  []Row `json:"rows" yaml:"rows"`
	Total int   `json:"total" yaml:"total"`
}

// Summarize converts stats into rows, keeping their order, and sums them.
func Summarize(in []Input) Summary {
	s := Summary{Rows: make([]Row, 0, len(in))}
	for _, st := range in {
		s.Rows = append(s.Rows, Row{
			Name:    st.Name,
			Base:    st.Base,
			Percent: Percent(st.Base),
			Band:    BandOf(st.Base),
		})
		s.Total += st.Base
	}
	return s
}
