// Package cli implements the pokedex command-line interface.
//
// This package provides commands for looking up Pokémon, computing type
// matchups, rendering evolution trees, browsing them interactively, and
// serving the same data over HTTP. The CLI is built using cobra and logs
// through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - show: Full Pokédex entry (text, JSON or YAML)
//   - types: Defensive profile of one or two types
//   - evolution: Evolution chain as a list, tree, DOT graph or SVG
//   - move: Move detail with a damage estimate
//   - list: Page through the national Pokédex
//   - browse: Interactive evolution tree browser
//   - serve: JSON HTTP API
//   - cache: Manage the response cache
//
// # Configuration
//
// Settings are read from $XDG_CONFIG_HOME/pokedex/config.toml, or from the
// file named by --config or $POKEDEX_CONFIG. Flags override file values.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/errors"
)

// setup loads the config, applies flag overrides and attaches the logger to
// the command context. It runs before every subcommand.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	if c.apiURL != "" {
		if err := errors.ValidateURL(c.apiURL); err != nil {
			return err
		}
		cfg.API.BaseURL = c.apiURL
	}
	if c.backend != "" {
		cfg.Cache.Backend = c.backend
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	c.cfg = cfg

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "api", cfg.API.BaseURL, "cache", cfg.Cache.Backend)
	return nil
}
