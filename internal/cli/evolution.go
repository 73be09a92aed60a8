package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/evolution"
)

// evolutionOpts holds the command-line flags for the evolution command.
type evolutionOpts struct {
	tree     bool   // print the branching tree instead of the primary line
	dot      bool   // print Graphviz DOT
	detailed bool   // include trigger and ID in DOT labels
	svg      string // write an SVG rendering to this path
}

// evolutionCommand creates the evolution command.
func (c *CLI) evolutionCommand() *cobra.Command {
	var opts evolutionOpts

	cmd := &cobra.Command{
		Use:   "evolution <name-or-number>",
		Short: "Show the evolution chain of a Pokémon",
		Long: `Show the evolution chain of a Pokémon.

By default the primary evolution line is printed. Use --tree to see every
branch with its evolution condition, --dot for Graphviz input, or --svg to
render the tree to a file.

Examples:
  pokedex evolution eevee --tree
  pokedex evolution tyrogue --dot | dot -Tpng > tyrogue.png
  pokedex evolution charmander --svg charmander.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := c.lookup(ctx, args[0])
			if err != nil {
				return err
			}
			if v.EvolutionTree == nil {
				printWarning("No evolution data for %s", displayName(v.Pokemon.Name))
				return nil
			}

			switch {
			case opts.svg != "":
				dot := evolution.ToDOT(v.EvolutionTree, evolution.DOTOptions{Detailed: opts.detailed})
				prog := newProgress(loggerFromContext(ctx))
				svg, err := evolution.RenderSVG(ctx, dot)
				if err != nil {
					return fmt.Errorf("render svg: %w", err)
				}
				if err := os.WriteFile(opts.svg, svg, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", opts.svg, err)
				}
				prog.done(fmt.Sprintf("Rendered %d stages", v.EvolutionTree.Count()))
				printFile(opts.svg)
			case opts.dot:
				fmt.Fprint(c.Out, evolution.ToDOT(v.EvolutionTree, evolution.DOTOptions{Detailed: opts.detailed}))
			case opts.tree:
				fmt.Fprint(c.Out, renderTree(v.EvolutionTree, v.Pokemon.Name))
			default:
				fmt.Fprintln(c.Out, renderEvolutionLine(v.Evolution, v.Pokemon.Name))
				if v.EvolutionTree.Count() > len(v.Evolution) {
					printNextStep("Branches omitted, see them all with", "pokedex evolution "+v.Pokemon.Name+" --tree")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.tree, "tree", "t", false, "show every branch with its condition")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "print Graphviz DOT")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include trigger and ID in DOT labels")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "render the tree to an SVG file")

	return cmd
}
