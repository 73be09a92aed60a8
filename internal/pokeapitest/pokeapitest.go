// Package pokeapitest serves canned PokeAPI responses for tests.
//
// The fixtures cover Pikachu end to end: the Pokémon, its type, species,
// evolution chain (Pichu, Pikachu, Raichu), ability, the move Thunderbolt,
// and a two-entry page of the Pokémon index.
package pokeapitest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// BrokenPath always answers 400, which clients report as a network error.
const BrokenPath = "/pokemon/broken/"

// Fixtures maps request paths to response bodies.
var Fixtures = map[string]string{
	"/pokemon/pikachu/": `{
		"id": 25, "name": "pikachu", "height": 4, "weight": 60,
		"species": {"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon-species/25/"},
		"types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}],
		"abilities": [{"ability": {"name": "static"}, "is_hidden": false, "slot": 1}],
		"stats": [{"base_stat": 35, "stat": {"name": "hp"}}, {"base_stat": 90, "stat": {"name": "speed"}}],
		"moves": [{"move": {"name": "thunderbolt"}}]
	}`,
	"/type/electric/": `{
		"id": 13, "name": "electric",
		"damage_relations": {
			"double_damage_from": [{"name": "ground"}],
			"half_damage_from": [{"name": "flying"}, {"name": "steel"}, {"name": "electric"}],
			"no_damage_from": []
		}
	}`,
	"/pokemon-species/pikachu/": `{
		"id": 25, "name": "pikachu",
		"evolution_chain": {"url": "https://pokeapi.co/api/v2/evolution-chain/10/"},
		"genera": [{"genus": "Mouse Pokémon", "language": {"name": "en"}}]
	}`,
	"/evolution-chain/10/": `{
		"id": 10,
		"chain": {
			"species": {"name": "pichu", "url": "https://pokeapi.co/api/v2/pokemon-species/172/"},
			"evolution_details": [],
			"evolves_to": [{
				"species": {"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon-species/25/"},
				"evolution_details": [{"min_happiness": 220, "trigger": {"name": "level-up"}}],
				"evolves_to": [{
					"species": {"name": "raichu", "url": "https://pokeapi.co/api/v2/pokemon-species/26/"},
					"evolution_details": [{"item": {"name": "thunder-stone"}, "trigger": {"name": "use-item"}}],
					"evolves_to": []
				}]
			}]
		}
	}`,
	"/ability/static/": `{
		"id": 9, "name": "static",
		"effect_entries": [{"effect": "May paralyze on contact.", "short_effect": "May paralyze.", "language": {"name": "en"}}]
	}`,
	"/move/thunderbolt/": `{
		"id": 85, "name": "thunderbolt", "power": 90, "accuracy": 100, "pp": 15, "priority": 0,
		"effect_chance": 10,
		"type": {"name": "electric"}, "damage_class": {"name": "special"},
		"effect_entries": [{"effect": "...", "short_effect": "Has a $effect_chance% chance to paralyze the target.", "language": {"name": "en"}}]
	}`,
	"/pokemon/": `{
		"count": 1302, "next": "https://pokeapi.co/api/v2/pokemon/?offset=2&limit=2", "previous": null,
		"results": [{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"}, {"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"}]
	}`,
}

// Server is a fake PokeAPI.
type Server struct {
	*httptest.Server
	hits atomic.Int64
}

// Hits returns the number of requests served so far.
func (s *Server) Hits() int { return int(s.hits.Load()) }

// NewServer starts a fake PokeAPI serving [Fixtures]. Unknown paths get 404.
// The server is closed when the test ends.
func NewServer(tb testing.TB) *Server {
	tb.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		if r.URL.Path == BrokenPath {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		body, ok := Fixtures[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	tb.Cleanup(s.Close)
	return s
}
