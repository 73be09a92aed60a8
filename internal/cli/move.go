package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// moveCommand creates the move command.
func (c *CLI) moveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <pokemon> <move>",
		Short: "Show a move as used by a Pokémon",
		Long: `Show a move's power, accuracy and effect together with a damage estimate
for the given Pokémon: same-type attack bonus times the move's effectiveness
against the Pokémon's own types.

Examples:
  pokedex move charizard flamethrower
  pokedex move pikachu "thunder punch"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.newSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			v, err := s.dex.Lookup(ctx, args[0], c.refresh)
			if err != nil {
				return err
			}
			m, err := s.dex.Move(ctx, v, args[1], c.refresh)
			if err != nil {
				return err
			}
			if !v.HasMove(m.Name) {
				printWarning("%s cannot learn %s", displayName(v.Pokemon.Name), displayName(m.Name))
			}
			_, err = fmt.Fprint(c.Out, renderMove(v.Pokemon.Name, m))
			return err
		},
	}
	return cmd
}
