package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/integrations"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Pokémon in national Pokédex order",
		Long: `List Pokémon in national Pokédex order, one page at a time.

Examples:
  pokedex list
  pokedex list --limit 50 --offset 150`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--limit must be positive")
			}
			if offset < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--offset must not be negative")
			}

			ctx := cmd.Context()
			s, err := c.newSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			page, err := s.client.ListPokemon(ctx, limit, offset, c.refresh)
			if err != nil {
				return errors.Wrap(errors.ErrCodeNetwork, err, "Failed to fetch data from PokeAPI.")
			}

			for _, r := range page.Results {
				id := StyleDim.Render("#???")
				if n, ok := integrations.IDFromURL(r.URL); ok {
					id = StyleDim.Render(fmt.Sprintf("#%03d", n))
				}
				fmt.Fprintf(c.Out, "%s %s\n", id, StyleValue.Render(displayName(r.Name)))
			}

			if len(page.Results) > 0 {
				printDetail("%d–%d of %d", offset+1, offset+len(page.Results), page.Count)
			}
			if page.Next != nil {
				printNextStep("Next page", fmt.Sprintf("pokedex list --limit %d --offset %d", limit, offset+limit))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "entries per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "entries to skip")

	return cmd
}
