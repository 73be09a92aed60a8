package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/errors"
)

// typesCommand creates the types command.
func (c *CLI) typesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types <type> [type]",
		Short: "Show the defensive matchups of a type combination",
		Long: `Show which attacking types deal extra, reduced or no damage to a
Pokémon of the given types.

Examples:
  pokedex types fire flying
  pokedex types ghost`,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: completeTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.newSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			names := make([]string, len(args))
			for i, a := range args {
				names[i] = strings.ToLower(strings.TrimSpace(a))
			}
			res, err := s.dex.Types(ctx, names, c.refresh)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.Out, typeBadges(names))
			fmt.Fprint(c.Out, renderMatchupTable(res))
			return nil
		},
	}
	return cmd
}

// completeTypes completes type names that have not been given yet.
func completeTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) >= 2 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, t := range errors.TypeNames {
		if strings.HasPrefix(t, toComplete) && !containsFold(args, t) {
			out = append(out, t)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
