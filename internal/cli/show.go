package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/dex"
	"github.com/matzehuels/pokedex/pkg/errors"
	pkgio "github.com/matzehuels/pokedex/pkg/io"
)

const formatText = "text"

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var (
		format string
		output string
		from   string
	)

	cmd := &cobra.Command{
		Use:   "show <name-or-number>",
		Short: "Show the Pokédex entry of a Pokémon",
		Long: `Show the Pokédex entry of a Pokémon: types, type matchups, base stats,
abilities and evolution line.

Examples:
  pokedex show pikachu
  pokedex show 6 --format json
  pokedex show mr-mime -o mr-mime.yaml
  pokedex show --from mr-mime.yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if from != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format, formatText, pkgio.FormatJSON, pkgio.FormatYAML); err != nil {
				return err
			}
			var (
				v   *dex.View
				err error
			)
			if from != "" {
				v, err = pkgio.ImportView(from)
			} else {
				v, err = c.lookup(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return c.writeView(v, format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the entry to a .json or .yaml file")
	cmd.Flags().StringVar(&from, "from", "", "render a previously exported entry instead of fetching")

	return cmd
}

// lookup fetches the view for name behind a spinner.
func (c *CLI) lookup(ctx context.Context, name string) (*dex.View, error) {
	s, err := c.newSession(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	query := strings.TrimSpace(name)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Looking up %s...", query))
	spinner.Start()
	v, err := s.dex.Lookup(ctx, name, c.refresh)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Lookup of %s failed", query))
		return nil, err
	}
	spinner.Stop()
	return v, nil
}

func (c *CLI) writeView(v *dex.View, format, output string) error {
	if output != "" {
		if err := pkgio.ExportView(v, output); err != nil {
			return err
		}
		printSuccess("Saved %s", displayName(v.Pokemon.Name))
		printFile(output)
		return nil
	}
	if format == formatText {
		_, err := fmt.Fprint(c.Out, renderView(v))
		return err
	}
	return pkgio.WriteView(c.Out, v, format)
}
