// Package pkg provides the core libraries of the Pokédex.
//
// # Overview
//
// The Pokédex looks up Pokémon on PokeAPI and derives what a trainer wants to
// know from the raw resources: the combined type matchups, a banded stat
// block, ability descriptions and the evolution tree. The pkg directory is
// organized into four areas:
//
//  1. Domain logic ([effectiveness], [evolution], [stats], [moves])
//  2. Data access ([integrations], [integrations/pokeapi], [cache])
//  3. Assembly ([dex])
//  4. Surfaces ([server], [io])
//
// # Architecture
//
// The data flow of a lookup:
//
//	PokeAPI (pokemon, type, species, evolution-chain, ability)
//	         ↓
//	    [integrations/pokeapi] (typed client, cached through [cache])
//	         ↓
//	    [dex] (concurrent fetch, best-effort sections)
//	         ↓
//	    [effectiveness] + [evolution] + [stats]
//	         ↓
//	    [dex.View] → CLI text, JSON/YAML ([io]), HTTP ([server])
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/charmbracelet/log"
//	    "github.com/matzehuels/pokedex/pkg/cache"
//	    "github.com/matzehuels/pokedex/pkg/dex"
//	    "github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
//	)
//
//	client := pokeapi.NewClient(cache.NewNullCache(), "", 0)
//	d := dex.New(client, log.Default())
//
//	view, err := d.Lookup(context.Background(), "charizard", false)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(view.Effectiveness.Weaknesses) // [water electric rock]
//
// # Main Packages
//
// ## Domain Logic
//
// [effectiveness] - Combines the damage relations of one or two types into a
// multiplier per attacking type and the weakness, resistance and immunity
// lists.
//
// [evolution] - Flattens an evolution chain into a list, builds the branching
// tree with human-readable conditions, and emits Graphviz DOT or SVG.
//
// [stats] - Base stat rows with percentage and color band.
//
// [moves] - Same-type attack bonus and damage estimates.
//
// ## Data Access
//
// [integrations] - Shared HTTP client with retry, status mapping and response
// caching.
//
// [integrations/pokeapi] - Typed PokeAPI v2 client.
//
// [cache] - Cache backends (file, Redis, MongoDB, null) and key generation.
//
// ## Surfaces
//
// [dex] - Assembles a [dex.View] from the client. Used by the CLI and the
// server alike.
//
// [server] - JSON HTTP API and websocket lookup stream.
//
// [io] - View import and export in JSON and YAML.
//
// [errors] - Coded errors, input validation and HTTP status mapping.
//
// [observability] - Hooks for lookup and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/dex/...      # Specific package
//	go test -run Example ./... # Examples only
//
// [effectiveness]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/effectiveness
// [evolution]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/evolution
// [stats]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/stats
// [moves]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/moves
// [integrations]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/integrations
// [integrations/pokeapi]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/integrations/pokeapi
// [cache]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/cache
// [dex]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/dex
// [dex.View]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/dex#View
// [server]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/server
// [io]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/observability
package pkg
