package pokeapi

import (
	"strconv"
	"strings"

	"github.com/matzehuels/pokedex/pkg/effectiveness"
	"github.com/matzehuels/pokedex/pkg/evolution"
)

// Fallback descriptions used when no English entry exists.
const (
	NoAbilityDescription = "No description available."
	NoMoveDescription    = "No description."
)

// NamedResource is PokeAPI's NamedAPIResource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon is the subset of /pokemon/{name} used by the Pokédex.
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	BaseExperience int           `json:"base_experience"`
	Height         int           `json:"height"` // decimetres
	Weight         int           `json:"weight"` // hectograms
	Order          int           `json:"order"`
	Species        NamedResource `json:"species"`
	Types          []TypeSlot    `json:"types"`
	Abilities      []AbilitySlot `json:"abilities"`
	Stats          []Stat        `json:"stats"`
	Moves          []MoveSlot    `json:"moves"`
	Sprites        Sprites       `json:"sprites"`
	Cries          Cries         `json:"cries"`
	GameIndices    []GameIndex   `json:"game_indices"`
}

// TypeNames returns the Pokémon's type names in slot order.
func (p *Pokemon) TypeNames() []string {
	names := make([]string, len(p.Types))
	for i, t := range p.Types {
		names[i] = t.Type.Name
	}
	return names
}

// HasMove reports whether the Pokémon can learn move.
func (p *Pokemon) HasMove(move string) bool {
	for _, m := range p.Moves {
		if m.Move.Name == move {
			return true
		}
	}
	return false
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type Stat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type MoveSlot struct {
	Move                NamedResource        `json:"move"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details"`
}

type VersionGroupDetail struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
	VersionGroup    NamedResource `json:"version_group"`
}

type Sprites struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
			FrontShiny   string `json:"front_shiny"`
		} `json:"official-artwork"`
	} `json:"other"`
}

type Cries struct {
	Latest string `json:"latest"`
	Legacy string `json:"legacy"`
}

type GameIndex struct {
	GameIndex int           `json:"game_index"`
	Version   NamedResource `json:"version"`
}

// Type is the subset of /type/{name} used by the effectiveness calculator.
type Type struct {
	ID              int                           `json:"id"`
	Name            string                        `json:"name"`
	DamageRelations effectiveness.DamageRelations `json:"damage_relations"`
}

// Species is the subset of /pokemon-species/{name} used by the Pokédex.
type Species struct {
	ID                 int            `json:"id"`
	Name               string         `json:"name"`
	IsBaby             bool           `json:"is_baby"`
	IsLegendary        bool           `json:"is_legendary"`
	IsMythical         bool           `json:"is_mythical"`
	CaptureRate        int            `json:"capture_rate"`
	BaseHappiness      int            `json:"base_happiness"`
	GenderRate         int            `json:"gender_rate"`
	Color              NamedResource  `json:"color"`
	Habitat            *NamedResource `json:"habitat"`
	Generation         NamedResource  `json:"generation"`
	EvolvesFromSpecies *NamedResource `json:"evolves_from_species"`
	EvolutionChain     struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
	Genera            []Genus      `json:"genera"`
}

type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

type Genus struct {
	Genus    string        `json:"genus"`
	Language NamedResource `json:"language"`
}

// FlavorText returns the first English flavor text with PokeAPI's embedded
// line and page breaks collapsed to spaces.
func (s *Species) FlavorText() string {
	for _, e := range s.FlavorTextEntries {
		if e.Language.Name == english {
			return strings.Join(strings.Fields(e.FlavorText), " ")
		}
	}
	return ""
}

// Genus returns the first English genus, e.g. "Mouse Pokémon".
func (s *Species) Genus() string {
	for _, g := range s.Genera {
		if g.Language.Name == english {
			return g.Genus
		}
	}
	return ""
}

// EvolutionChain is the /evolution-chain/{id} payload.
type EvolutionChain = evolution.Chain

// EffectEntry is a localized effect text.
type EffectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

// Ability is the subset of /ability/{name} used by the Pokédex.
type Ability struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// Description returns the first English effect text, or
// [NoAbilityDescription].
func (a *Ability) Description() string {
	for _, e := range a.EffectEntries {
		if e.Language.Name == english {
			return e.Effect
		}
	}
	return NoAbilityDescription
}

// Move is the subset of /move/{name} used by the Pokédex. Power, Accuracy
// and PP are nil for moves without them (status moves, Struggle).
type Move struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Power         *int          `json:"power"`
	Accuracy      *int          `json:"accuracy"`
	PP            *int          `json:"pp"`
	Priority      int           `json:"priority"`
	EffectChance  *int          `json:"effect_chance"`
	Type          NamedResource `json:"type"`
	DamageClass   NamedResource `json:"damage_class"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// Description returns the first English short effect with the effect chance
// substituted, or [NoMoveDescription].
func (m *Move) Description() string {
	for _, e := range m.EffectEntries {
		if e.Language.Name == english {
			if m.EffectChance != nil {
				return strings.ReplaceAll(e.ShortEffect, "$effect_chance", strconv.Itoa(*m.EffectChance))
			}
			return e.ShortEffect
		}
	}
	return NoMoveDescription
}

// List is a page of /pokemon?limit&offset.
type List struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

const english = "en"
