package evolution

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// rule is one step of the details composition. Rules run in order against the
// same detail and each may leave, replace, or extend the running string.
type rule struct {
	name  string
	apply func(d *Detail, cur string) string
}

// detailRules is the composition order. Later rules win: an overwrite rule
// discards everything computed before it, an append rule extends it.
var detailRules = []rule{
	{"base", baseRequirement},
	{"location", appendIf(func(d *Detail) string { return refName(d.Location, "at ") })},
	{"time-of-day", appendIf(func(d *Detail) string {
		if strings.TrimSpace(d.TimeOfDay) == "" {
			return ""
		}
		return "during " + d.TimeOfDay
	})},
	{"known-move", overwriteIf(func(d *Detail) string { return refName(d.KnownMove, "Knowing move ") })},
	{"known-move-type", overwriteIf(func(d *Detail) string {
		if d.KnownMoveType == nil {
			return ""
		}
		return "Knowing a " + d.KnownMoveType.Name + "-type move"
	})},
	{"party-species", overwriteIf(func(d *Detail) string {
		if d.PartySpecies == nil {
			return ""
		}
		return "With " + d.PartySpecies.Name + " in party"
	})},
	{"party-type", overwriteIf(func(d *Detail) string {
		if d.PartyType == nil {
			return ""
		}
		return "With a " + d.PartyType.Name + "-type Pokémon in party"
	})},
	{"gender", appendIf(func(d *Detail) string {
		if d.Gender == nil {
			return ""
		}
		return "gender: " + genderName(*d.Gender)
	})},
	{"overworld-rain", appendIf(func(d *Detail) string {
		if !d.NeedsOverworldRain {
			return ""
		}
		return "while raining"
	})},
	{"upside-down", appendIf(func(d *Detail) string {
		if !d.TurnUpsideDown {
			return ""
		}
		return "turn console upside down"
	})},
	{"relative-physical-stats", overwriteIf(func(d *Detail) string {
		if d.RelativePhysicalStats == nil {
			return ""
		}
		return physicalStats(*d.RelativePhysicalStats)
	})},
}

// Describe composes the human-readable condition for a single evolution detail.
// A nil detail yields "".
func Describe(d *Detail) string {
	if d == nil {
		return ""
	}
	var s string
	for _, r := range detailRules {
		s = r.apply(d, s)
	}
	return s
}

// baseRequirement picks the first present of level, item, held item,
// happiness, affection, and beauty. Zero values count as absent.
func baseRequirement(d *Detail, cur string) string {
	switch {
	case positive(d.MinLevel):
		return "Level " + strconv.Itoa(*d.MinLevel)
	case d.Item != nil:
		return "Use " + d.Item.Name
	case d.HeldItem != nil:
		return "Trade holding " + d.HeldItem.Name
	case positive(d.MinHappiness):
		return "High friendship"
	case positive(d.MinAffection):
		return "High affection"
	case positive(d.MinBeauty):
		return "Beauty " + strconv.Itoa(*d.MinBeauty) + "+"
	}
	return cur
}

func appendIf(part func(*Detail) string) func(*Detail, string) string {
	return func(d *Detail, cur string) string {
		p := part(d)
		if p == "" {
			return cur
		}
		if cur == "" {
			return capitalize(p)
		}
		return cur + ", " + p
	}
}

func overwriteIf(value func(*Detail) string) func(*Detail, string) string {
	return func(d *Detail, cur string) string {
		if v := value(d); v != "" {
			return v
		}
		return cur
	}
}

func physicalStats(v int) string {
	switch v {
	case 1:
		return "Attack > Defense"
	case 0:
		return "Attack = Defense"
	case -1:
		return "Defense > Attack"
	}
	return ""
}

func genderName(g int) string {
	if g == 1 {
		return "female"
	}
	return "male"
}

func refName(r *Ref, prefix string) string {
	if r == nil {
		return ""
	}
	return prefix + r.Name
}

func positive(p *int) bool { return p != nil && *p != 0 }

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
