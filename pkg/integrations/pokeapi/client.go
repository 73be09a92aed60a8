package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/matzehuels/pokedex/pkg/cache"
	"github.com/matzehuels/pokedex/pkg/integrations"
)

// DefaultBaseURL is the public PokeAPI v2 endpoint.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client fetches PokeAPI resources with caching and retries.
// It is safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a client that caches responses in backend for ttl.
// An empty baseURL selects [DefaultBaseURL].
func NewClient(backend cache.Cache, baseURL string, ttl time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(backend, "pokeapi:", ttl, map[string]string{"Accept": "application/json"}),
		baseURL: baseURL,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchPokemon retrieves /pokemon/{name}. name may also be a numeric ID.
func (c *Client) FetchPokemon(ctx context.Context, name string, refresh bool) (*Pokemon, error) {
	var p Pokemon
	if err := c.fetch(ctx, "pokemon", name, refresh, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FetchType retrieves /type/{name}.
func (c *Client) FetchType(ctx context.Context, name string, refresh bool) (*Type, error) {
	var t Type
	if err := c.fetch(ctx, "type", name, refresh, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// FetchSpecies retrieves /pokemon-species/{name}.
func (c *Client) FetchSpecies(ctx context.Context, name string, refresh bool) (*Species, error) {
	var s Species
	if err := c.fetch(ctx, "pokemon-species", name, refresh, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// FetchEvolutionChain retrieves /evolution-chain/{id}.
func (c *Client) FetchEvolutionChain(ctx context.Context, id int, refresh bool) (*EvolutionChain, error) {
	var ch EvolutionChain
	if err := c.fetch(ctx, "evolution-chain", strconv.Itoa(id), refresh, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// FetchAbility retrieves /ability/{name}.
func (c *Client) FetchAbility(ctx context.Context, name string, refresh bool) (*Ability, error) {
	var a Ability
	if err := c.fetch(ctx, "ability", name, refresh, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// FetchMove retrieves /move/{name}.
func (c *Client) FetchMove(ctx context.Context, name string, refresh bool) (*Move, error) {
	var m Move
	if err := c.fetch(ctx, "move", name, refresh, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListPokemon retrieves one page of /pokemon.
func (c *Client) ListPokemon(ctx context.Context, limit, offset int, refresh bool) (*List, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("pokeapi: limit must be positive, got %d", limit)
	}
	if offset < 0 {
		return nil, fmt.Errorf("pokeapi: offset must not be negative, got %d", offset)
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	key := "pokemon?" + q.Encode()

	var l List
	err := c.Cached(ctx, key, refresh, &l, func() error {
		return c.Get(ctx, c.baseURL+"/pokemon/?"+q.Encode(), &l)
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) fetch(ctx context.Context, resource, name string, refresh bool, v any) error {
	name = integrations.NormalizeName(name)
	if name == "" {
		return fmt.Errorf("pokeapi: empty %s name", resource)
	}
	key := resource + "/" + name

	return c.Cached(ctx, key, refresh, v, func() error {
		err := c.Get(ctx, c.baseURL+"/"+key+"/", v)
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: %s %s", err, resource, name)
		}
		return err
	})
}
