// Package integrations provides the shared HTTP client used by API clients.
//
// # Client Pattern
//
// API clients embed [Client] and add typed fetch methods:
//
//	type Client struct {
//	    *integrations.Client
//	    baseURL string
//	}
//
//	func (c *Client) FetchPokemon(ctx context.Context, name string, refresh bool) (*Pokemon, error) {
//	    var p Pokemon
//	    err := c.Cached(ctx, "pokemon/"+name, refresh, &p, func() error {
//	        return c.Get(ctx, c.baseURL+"/pokemon/"+name, &p)
//	    })
//	    ...
//	}
//
// [Client] handles:
//   - response caching through any [cache.Cache] backend
//   - retry with exponential backoff on transport errors and 5xx responses
//   - status mapping: 404 is [ErrNotFound], everything else non-200 wraps [ErrNetwork]
//   - HTTP events reported to [observability.HTTP]
//
// The only client today is [pokeapi].
//
// [pokeapi]: github.com/matzehuels/pokedex/pkg/integrations/pokeapi
// [cache.Cache]: github.com/matzehuels/pokedex/pkg/cache.Cache
// [observability.HTTP]: github.com/matzehuels/pokedex/pkg/observability.HTTP
package integrations
