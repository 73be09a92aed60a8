package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/buildinfo"
	"github.com/matzehuels/pokedex/pkg/cache"
	"github.com/matzehuels/pokedex/pkg/dex"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pokedex"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer

	configPath string
	apiURL     string
	backend    string
	refresh    bool
	noCache    bool

	cfg Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "A Pokédex in your terminal",
		Long:              `Pokédex looks up Pokémon on PokeAPI and shows their type matchups, stats, abilities and evolution trees.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pokedex/config.toml)")
	flags.StringVar(&c.apiURL, "api-url", "", "PokeAPI base URL")
	flags.StringVar(&c.backend, "cache", "", "cache backend: file, redis, mongo, none")
	flags.BoolVar(&c.refresh, "refresh", false, "bypass caches and refetch")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable caching")

	// Register all subcommands
	root.AddCommand(c.showCommand())
	root.AddCommand(c.typesCommand())
	root.AddCommand(c.evolutionCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Dex Factory
// =============================================================================

// session bundles what a command needs to talk to PokeAPI.
type session struct {
	dex    *dex.Dex
	client *pokeapi.Client
	cache  cache.Cache
}

func (s *session) Close() error { return s.cache.Close() }

// newSession builds the cache, the PokeAPI client and the Dex from the
// loaded config.
func (c *CLI) newSession(ctx context.Context) (*session, error) {
	backend, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}

	client := pokeapi.NewClient(backend, c.cfg.API.BaseURL, c.cfg.Cache.TTL.Duration)
	keyer := keyerFor(c.cfg.API.BaseURL)
	client.SetKeyer(keyer)

	d := dex.New(client, c.Logger)
	d.SetViewCache(backend, keyer, c.cfg.Cache.ViewTTL.Duration)
	return &session{dex: d, client: client, cache: backend}, nil
}

// keyerFor scopes cache keys by API host so a mirror never serves entries
// cached from the public endpoint.
func keyerFor(baseURL string) cache.Keyer {
	if baseURL == pokeapi.DefaultBaseURL {
		return cache.NewDefaultKeyer()
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return cache.NewScopedKeyer(nil, cache.Hash([]byte(baseURL))[:12]+":")
	}
	return cache.NewScopedKeyer(nil, u.Host+":")
}

// newCache opens the configured backend. --no-cache wins over everything.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	cfg := c.cfg.Cache
	switch cfg.Backend {
	case backendNone:
		return cache.NewNullCache(), nil
	case backendRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("open redis cache: %w", err)
		}
		return rc, nil
	case backendMongo:
		mc, err := cache.NewMongoCache(ctx, cfg.MongoURI, cfg.MongoDatabase, "")
		if err != nil {
			return nil, fmt.Errorf("open mongo cache: %w", err)
		}
		return mc, nil
	default:
		dir, err := c.cacheDir()
		if err != nil {
			c.Logger.Debug("no cache directory, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/pokedex/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/pokedex/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
