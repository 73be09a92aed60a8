package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/evolution"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <name-or-number>",
		Short: "Browse an evolution tree interactively",
		Long: `Browse the evolution tree of a Pokémon. Move through the stages with the
arrow keys and press enter to open the full entry of the selected stage.`,
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

			final, err := tea.NewProgram(NewTreeModel(v.EvolutionTree, v.Pokemon.Name), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}
			m := final.(TreeModel)
			if m.Selected == nil {
				return nil
			}

			if m.Selected.Name != v.Pokemon.Name {
				if v, err = c.lookup(ctx, m.Selected.Name); err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(c.Out, renderView(v))
			return err
		},
	}
	return cmd
}

// =============================================================================
// TreeModel - Interactive evolution tree
// =============================================================================

// treeLine is one row of a flattened tree.
type treeLine struct {
	node   *evolution.Node
	prefix string
}

// TreeModel is the bubbletea model for browsing an evolution tree.
type TreeModel struct {
	Lines    []treeLine
	Cursor   int
	Selected *evolution.Node
}

// NewTreeModel creates a tree model with the cursor on current, or on the
// root when current is not in the tree.
func NewTreeModel(root *evolution.Node, current string) TreeModel {
	m := TreeModel{Lines: flattenTree(root)}
	for i, l := range m.Lines {
		if l.node.Name == current {
			m.Cursor = i
			break
		}
	}
	return m
}

// flattenTree lists nodes depth-first with their box-drawing prefixes.
func flattenTree(root *evolution.Node) []treeLine {
	var lines []treeLine
	var walk func(n *evolution.Node, prefix, pad string)
	walk = func(n *evolution.Node, prefix, pad string) {
		lines = append(lines, treeLine{node: n, prefix: prefix})
		for i, c := range n.Children {
			if i == len(n.Children)-1 {
				walk(c, pad+"└─ ", pad+"   ")
			} else {
				walk(c, pad+"├─ ", pad+"│  ")
			}
		}
	}
	if root != nil {
		walk(root, "", "")
	}
	return lines
}

func (m TreeModel) Init() tea.Cmd {
	return nil
}

func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Lines)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Lines) - 1
		case "enter":
			if len(m.Lines) > 0 {
				m.Selected = m.Lines[m.Cursor].node
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m TreeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Evolution Tree"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  q quit"))
	b.WriteString("\n\n")

	for i, l := range m.Lines {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + listDimStyle.Render(l.prefix) + style.Render(displayName(l.node.Name)))
		if l.node.Details != "" {
			b.WriteString(" " + listDimStyle.Render("("+l.node.Details+")"))
		}
		b.WriteString("\n")
	}

	if len(m.Lines) > 0 {
		b.WriteString("\n")
		b.WriteString(detailBoxStyle.Render(nodeDetail(m.Lines[m.Cursor].node)))
		b.WriteString("\n")
	}
	return b.String()
}

// nodeDetail describes the highlighted stage.
func nodeDetail(n *evolution.Node) string {
	lines := []string{
		StyleTitle.Render(fmt.Sprintf("#%03d %s", n.ID, displayName(n.Name))),
	}
	if n.Trigger != "" {
		lines = append(lines, keyValue("Trigger", n.Trigger))
	}
	if n.Details != "" {
		lines = append(lines, keyValue("Condition", n.Details))
	}
	if len(n.Children) > 0 {
		next := make([]string, len(n.Children))
		for i, c := range n.Children {
			next[i] = displayName(c.Name)
		}
		lines = append(lines, keyValue("Evolves into", strings.Join(next, ", ")))
	}
	lines = append(lines, StyleLink.Render(n.ImageURL))
	return strings.Join(lines, "\n")
}
