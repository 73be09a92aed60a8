// Package dex assembles Pokédex views from PokeAPI data.
//
// A [Dex] fetches a Pokémon and, concurrently, its types, species, evolution
// chain and abilities, then runs the pure transforms in
// [github.com/matzehuels/pokedex/pkg/effectiveness] and
// [github.com/matzehuels/pokedex/pkg/evolution] over the results.
//
// Lookup either returns a complete [View] or an error with a nil view; no
// partially filled view from a failed lookup is ever returned. Within a
// successful lookup, the species, evolution and ability sections are
// best-effort: their failures are logged and leave the section empty.
package dex

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/pokedex/pkg/cache"
	"github.com/matzehuels/pokedex/pkg/effectiveness"
	"github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/evolution"
	"github.com/matzehuels/pokedex/pkg/integrations"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
	"github.com/matzehuels/pokedex/pkg/moves"
	"github.com/matzehuels/pokedex/pkg/observability"
	"github.com/matzehuels/pokedex/pkg/stats"
)

const fetchFailed = "Failed to fetch data from PokeAPI."

// Source is the PokeAPI surface used by [Dex]. [pokeapi.Client] implements it.
type Source interface {
	FetchPokemon(ctx context.Context, name string, refresh bool) (*pokeapi.Pokemon, error)
	FetchType(ctx context.Context, name string, refresh bool) (*pokeapi.Type, error)
	FetchSpecies(ctx context.Context, name string, refresh bool) (*pokeapi.Species, error)
	FetchEvolutionChain(ctx context.Context, id int, refresh bool) (*pokeapi.EvolutionChain, error)
	FetchAbility(ctx context.Context, name string, refresh bool) (*pokeapi.Ability, error)
	FetchMove(ctx context.Context, name string, refresh bool) (*pokeapi.Move, error)
}

// Dex builds views. It is safe for concurrent use.
type Dex struct {
	src    Source
	logger *log.Logger

	views   cache.Cache
	keyer   cache.Keyer
	viewTTL time.Duration
}

// New returns a Dex reading from src. A nil logger uses log.Default().
func New(src Source, logger *log.Logger) *Dex {
	if logger == nil {
		logger = log.Default()
	}
	return &Dex{src: src, logger: logger, keyer: cache.NewDefaultKeyer()}
}

// SetViewCache stores assembled views in c for ttl. A nil keyer keeps the
// default.
func (d *Dex) SetViewCache(c cache.Cache, keyer cache.Keyer, ttl time.Duration) {
	d.views = c
	d.viewTTL = ttl
	if keyer != nil {
		d.keyer = keyer
	}
}

// Lookup builds the view for the Pokémon called name (or with that Dex
// number). With refresh set, every cache is bypassed.
//
// Errors carry a code from package errors: INVALID_NAME for bad input,
// POKEMON_NOT_FOUND when PokeAPI has no such Pokémon, NETWORK_ERROR for
// any other upstream failure, including failed type lookups.
func (d *Dex) Lookup(ctx context.Context, name string, refresh bool) (view *View, err error) {
	start := time.Now()
	observability.Lookup().OnLookupStart(ctx, name)
	defer func() {
		observability.Lookup().OnLookupComplete(ctx, name, time.Since(start), err)
	}()

	if err := errors.ValidatePokemonName(name); err != nil {
		return nil, err
	}
	query := strings.TrimSpace(name)
	name = integrations.NormalizeName(name)

	key := d.keyer.ViewKey(name, cache.ViewKeyOpts{Version: viewVersion})
	if !refresh {
		if v, ok := d.cachedView(ctx, key); ok {
			d.logger.Debug("view cache hit", "pokemon", name)
			return v, nil
		}
	}

	p, err := d.src.FetchPokemon(ctx, name, refresh)
	if err != nil {
		return nil, fetchError(err, errors.ErrCodePokemonNotFound,
			fmt.Sprintf("The Pokémon '%s' does not exist.", query), fetchFailed)
	}

	v := &View{
		Pokemon: summarize(p),
		Stats:   stats.Summarize(statInputs(p)),
		Moves:   moveNames(p),
	}

	relations := make([]effectiveness.DamageRelations, len(p.Types))
	abilities := make([]*Ability, len(p.Abilities))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range p.Types {
		g.Go(func() error {
			typ, err := d.src.FetchType(gctx, t.Type.Name, refresh)
			if err != nil {
				return fmt.Errorf("type %s: %w", t.Type.Name, err)
			}
			relations[i] = typ.DamageRelations
			return nil
		})
	}
	g.Go(func() error {
		d.loadSpecies(gctx, p, v, refresh)
		return nil
	})
	for i, a := range p.Abilities {
		g.Go(func() error {
			ab, err := d.src.FetchAbility(gctx, a.Ability.Name, refresh)
			if err != nil {
				d.sectionError(gctx, p.Name, "ability", err)
				return nil
			}
			abilities[i] = &Ability{
				Name:        a.Ability.Name,
				Description: ab.Description(),
				IsHidden:    a.IsHidden,
				Slot:        a.Slot,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		msg := fmt.Sprintf("Failed to load the types of '%s'.", query)
		return nil, fetchError(err, errors.ErrCodeNetwork, msg, msg)
	}

	v.Effectiveness = effectiveness.Calculate(relations)
	v.Abilities = make([]Ability, 0, len(abilities))
	for _, a := range abilities {
		if a != nil {
			v.Abilities = append(v.Abilities, *a)
		}
	}
	if v.Evolution == nil {
		v.Evolution = []evolution.Entry{}
	}

	d.storeView(ctx, key, v)
	d.logger.Debug("assembled view", "pokemon", name, "types", v.Pokemon.Types, "evolutions", len(v.Evolution))
	return v, nil
}

// loadSpecies fills the species and evolution sections of v. Failures are
// logged and leave the sections empty.
func (d *Dex) loadSpecies(ctx context.Context, p *pokeapi.Pokemon, v *View, refresh bool) {
	speciesName := p.Species.Name
	if speciesName == "" {
		speciesName = p.Name
	}
	sp, err := d.src.FetchSpecies(ctx, speciesName, refresh)
	if err != nil {
		d.sectionError(ctx, p.Name, "species", err)
		return
	}
	v.Species = speciesOf(sp)

	id, ok := integrations.IDFromURL(sp.EvolutionChain.URL)
	if !ok {
		d.logger.Debug("species has no evolution chain", "species", speciesName)
		return
	}
	chain, err := d.src.FetchEvolutionChain(ctx, id, refresh)
	if err != nil {
		d.sectionError(ctx, p.Name, "evolution", err)
		return
	}
	v.Evolution = evolution.BuildList(chain.Chain)
	v.EvolutionTree = evolution.BuildTree(chain.Chain)
}

func (d *Dex) sectionError(ctx context.Context, name, section string, err error) {
	if ctx.Err() != nil {
		return
	}
	d.logger.Warn("could not load section", "pokemon", name, "section", section, "err", err)
	observability.Lookup().OnSectionError(ctx, name, section, err)
}

// Move describes move as used by the Pokémon in view, including a damage
// estimate against the Pokémon's own defensive profile.
func (d *Dex) Move(ctx context.Context, view *View, move string, refresh bool) (*MoveDetail, error) {
	if view == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no Pokémon selected")
	}
	if err := errors.ValidateMoveName(move); err != nil {
		return nil, err
	}
	move = integrations.NormalizeName(move)

	m, err := d.src.FetchMove(ctx, move, refresh)
	if err != nil {
		return nil, fetchError(err, errors.ErrCodeMoveNotFound,
			fmt.Sprintf("The move '%s' does not exist.", move), fetchFailed)
	}
	return &MoveDetail{
		Name:        m.Name,
		Type:        m.Type.Name,
		DamageClass: m.DamageClass.Name,
		Power:       m.Power,
		Accuracy:    m.Accuracy,
		PP:          m.PP,
		Priority:    m.Priority,
		Description: m.Description(),
		Damage:      moves.Estimate(m.Power, m.Type.Name, view.Pokemon.Types, view.Effectiveness),
	}, nil
}

// Types computes the combined defensive profile of the named types.
func (d *Dex) Types(ctx context.Context, names []string, refresh bool) (effectiveness.Result, error) {
	if len(names) == 0 {
		return effectiveness.Result{}, errors.New(errors.ErrCodeInvalidType, "at least one type is required")
	}
	for _, n := range names {
		if err := errors.ValidateTypeName(n); err != nil {
			return effectiveness.Result{}, err
		}
	}

	relations := make([]effectiveness.DamageRelations, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, n := range names {
		g.Go(func() error {
			typ, err := d.src.FetchType(gctx, n, refresh)
			if err != nil {
				return fmt.Errorf("type %s: %w", n, err)
			}
			relations[i] = typ.DamageRelations
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return effectiveness.Result{}, fetchError(err, errors.ErrCodeNetwork, "Failed to load types.", "Failed to load types.")
	}
	return effectiveness.Calculate(relations), nil
}

func (d *Dex) cachedView(ctx context.Context, key string) (*View, bool) {
	if d.views == nil {
		return nil, false
	}
	data, ok, err := d.views.Get(ctx, key)
	if err != nil || !ok {
		observability.Cache().OnCacheMiss(ctx, "view")
		return nil, false
	}
	var v View
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "view")
	return &v, true
}

func (d *Dex) storeView(ctx context.Context, key string, v *View) {
	if d.views == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := d.views.Set(ctx, key, data, d.viewTTL); err != nil {
		d.logger.Debug("view cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "view", len(data))
}

// fetchError maps a transport error to a coded error: not-found errors get
// notFound and notFoundMsg, cancellations TIMEOUT, anything else
// NETWORK_ERROR with failMsg.
func fetchError(err error, notFound errors.Code, notFoundMsg, failMsg string) error {
	switch {
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, err, "Request cancelled.")
	case stderrors.Is(err, cache.ErrNotFound):
		return errors.Wrap(notFound, err, "%s", notFoundMsg)
	default:
		return errors.Wrap(errors.ErrCodeNetwork, err, "%s", failMsg)
	}
}
