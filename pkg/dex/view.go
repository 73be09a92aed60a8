package dex

import (
	"slices"

	"github.com/matzehuels/pokedex/pkg/effectiveness"
	"github.com/matzehuels/pokedex/pkg/evolution"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
	"github.com/matzehuels/pokedex/pkg/moves"
	"github.com/matzehuels/pokedex/pkg/stats"
)

// viewVersion is bumped whenever View changes shape so cached views from an
// older build are ignored.
const viewVersion = 1

// View is everything the Pokédex shows for one Pokémon.
//
// Species, Evolution and EvolutionTree are empty when the species or its
// evolution chain could not be loaded; the rest of the view is still valid.
type View struct {
	Pokemon       Summary              `json:"pokemon" yaml:"pokemon"`
	Effectiveness effectiveness.Result `json:"typeData" yaml:"typeData"`
	Stats         stats.Summary        `json:"stats" yaml:"stats"`
	Abilities     []Ability            `json:"abilities" yaml:"abilities"`
	Species       *Species             `json:"species,omitempty" yaml:"species,omitempty"`
	Evolution     []evolution.Entry    `json:"evolution" yaml:"evolution"`
	EvolutionTree *evolution.Node      `json:"evolutionTree,omitempty" yaml:"evolutionTree,omitempty"`
	Moves         []string             `json:"moves" yaml:"moves"`
}

// HasMove reports whether move is in the Pokémon's learnset.
func (v *View) HasMove(move string) bool {
	return slices.Contains(v.Moves, move)
}

// Summary is the header block of a view.
type Summary struct {
	ID             int      `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Types          []string `json:"types" yaml:"types"`
	Height         int      `json:"height" yaml:"height"`
	Weight         int      `json:"weight" yaml:"weight"`
	BaseExperience int      `json:"baseExperience" yaml:"baseExperience"`
	Image          string   `json:"image" yaml:"image"`
	Sprite         string   `json:"sprite,omitempty" yaml:"sprite,omitempty"`
	Cry            string   `json:"cry,omitempty" yaml:"cry,omitempty"`
}

// Ability is one ability with its English description.
type Ability struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	IsHidden    bool   `json:"isHidden" yaml:"isHidden"`
	Slot        int    `json:"slot" yaml:"slot"`
}

// Species is the flavor block of a view.
type Species struct {
	Genus       string `json:"genus,omitempty" yaml:"genus,omitempty"`
	FlavorText  string `json:"flavorText,omitempty" yaml:"flavorText,omitempty"`
	Generation  string `json:"generation,omitempty" yaml:"generation,omitempty"`
	Habitat     string `json:"habitat,omitempty" yaml:"habitat,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
	EvolvesFrom string `json:"evolvesFrom,omitempty" yaml:"evolvesFrom,omitempty"`
	CaptureRate int    `json:"captureRate" yaml:"captureRate"`
	IsBaby      bool   `json:"isBaby" yaml:"isBaby"`
	IsLegendary bool   `json:"isLegendary" yaml:"isLegendary"`
	IsMythical  bool   `json:"isMythical" yaml:"isMythical"`
}

// MoveDetail describes a move in the context of a viewed Pokémon.
type MoveDetail struct {
	Name        string       `json:"name" yaml:"name"`
	Type        string       `json:"type" yaml:"type"`
	DamageClass string       `json:"damageClass" yaml:"damageClass"`
	Power       *int         `json:"power" yaml:"power"`
	Accuracy    *int         `json:"accuracy" yaml:"accuracy"`
	PP          *int         `json:"pp" yaml:"pp"`
	Priority    int          `json:"priority" yaml:"priority"`
	Description string       `json:"description" yaml:"description"`
	Damage      moves.Damage `json:"damage" yaml:"damage"`
}

func summarize(p *pokeapi.Pokemon) Summary {
	image := p.Sprites.Other.OfficialArtwork.FrontDefault
	if image == "" {
		image = evolution.ArtworkURL(p.ID)
	}
	return Summary{
		ID:             p.ID,
		Name:           p.Name,
		Types:          p.TypeNames(),
		Height:         p.Height,
		Weight:         p.Weight,
		BaseExperience: p.BaseExperience,
		Image:          image,
		Sprite:         p.Sprites.FrontDefault,
		Cry:            p.Cries.Latest,
	}
}

func statInputs(p *pokeapi.Pokemon) []stats.Input {
	in := make([]stats.Input, len(p.Stats))
	for i, s := range p.Stats {
		in[i] = stats.Input{Name: s.Stat.Name, Base: s.BaseStat}
	}
	return in
}

func moveNames(p *pokeapi.Pokemon) []string {
	names := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		names[i] = m.Move.Name
	}
	return names
}

func speciesOf(s *pokeapi.Species) *Species {
	out := &Species{
		Genus:       s.Genus(),
		FlavorText:  s.FlavorText(),
		Generation:  s.Generation.Name,
		Color:       s.Color.Name,
		CaptureRate: s.CaptureRate,
		IsBaby:      s.IsBaby,
		IsLegendary: s.IsLegendary,
		IsMythical:  s.IsMythical,
	}
	if s.Habitat != nil {
		out.Habitat = s.Habitat.Name
	}
	if s.EvolvesFromSpecies != nil {
		out.EvolvesFrom = s.EvolvesFromSpecies.Name
	}
	return out
}
