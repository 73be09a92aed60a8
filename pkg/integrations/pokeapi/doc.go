// Package pokeapi provides an HTTP client for PokeAPI (https://pokeapi.co).
//
// # Usage
//
//	client := pokeapi.NewClient(backend, "", cache.TTLHTTP)
//
//	p, err := client.FetchPokemon(ctx, "pikachu", false) // false = use cache
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // no such Pokémon
//	}
//
// Every Fetch method takes a refresh flag that bypasses the cache read.
// Responses are decoded into the structs in this package, which keep only
// the fields the Pokédex displays.
package pokeapi
