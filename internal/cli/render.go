package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/pokedex/pkg/dex"
	"github.com/matzehuels/pokedex/pkg/effectiveness"
	"github.com/matzehuels/pokedex/pkg/evolution"
)

const statBarWidth = 30

// renderView renders the text form of `pokedex show`.
func renderView(v *dex.View) string {
	var b strings.Builder
	p := v.Pokemon

	fmt.Fprintf(&b, "%s %s  %s\n",
		StyleDim.Render(fmt.Sprintf("#%03d", p.ID)),
		StyleTitle.Render(displayName(p.Name)),
		typeBadges(p.Types))
	if s := v.Species; s != nil {
		if s.Genus != "" {
			b.WriteString(StyleHighlight.Render(s.Genus) + "\n")
		}
		if s.FlavorText != "" {
			b.WriteString(StyleDim.Render(s.FlavorText) + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(keyValue("Height", decimal(p.Height)+" m") + "\n")
	b.WriteString(keyValue("Weight", decimal(p.Weight)+" kg") + "\n")
	if s := v.Species; s != nil && s.EvolvesFrom != "" {
		b.WriteString(keyValue("Evolves from", displayName(s.EvolvesFrom)) + "\n")
	}

	b.WriteString("\n" + section("Base stats") + "\n")
	for _, row := range v.Stats.Rows {
		fmt.Fprintf(&b, "%s %s %s\n",
			styleKey.Render(statLabel(row.Name)),
			StyleNumber.Render(fmt.Sprintf("%3d", row.Base)),
			statBar(row, statBarWidth))
	}
	b.WriteString(styleKey.Render("Total") + " " + StyleNumber.Render(fmt.Sprintf("%3d", v.Stats.Total)) + "\n")

	b.WriteString("\n" + section("Type matchups") + "\n")
	b.WriteString(renderMatchupLines(v.Effectiveness))

	if len(v.Abilities) > 0 {
		b.WriteString("\n" + section("Abilities") + "\n")
		for _, a := range v.Abilities {
			name := displayName(a.Name)
			if a.IsHidden {
				name += StyleDim.Render(" (hidden)")
			}
			b.WriteString(StyleValue.Render(name) + "\n")
			b.WriteString("  " + StyleDim.Render(a.Description) + "\n")
		}
	}

	if len(v.Evolution) > 1 {
		b.WriteString("\n" + section("Evolution") + "\n")
		b.WriteString(renderEvolutionLine(v.Evolution, p.Name) + "\n")
	}
	return b.String()
}

// renderMatchupLines renders the three lists of a profile, one per line.
func renderMatchupLines(res effectiveness.Result) string {
	none := StyleDim.Render("none")
	line := func(label string, items []string) string {
		value := none
		if len(items) > 0 {
			value = strings.Join(items, ", ")
		}
		return styleKey.Render(label) + " " + value + "\n"
	}
	return line("Weak to", res.Weaknesses) +
		line("Resists", res.Resistances) +
		line("Immune to", res.Immunities)
}

// matchupTiers orders the multipliers shown by `pokedex types`.
var matchupTiers = []float64{4, 2, 0.5, 0.25, 0}

// renderMatchupTable groups attackers by multiplier in a table.
func renderMatchupTable(res effectiveness.Result) string {
	byTier := map[float64][]string{}
	for name, m := range res.Multipliers {
		byTier[m] = append(byTier[m], name)
	}

	var rows [][]string
	for _, tier := range matchupTiers {
		names := byTier[tier]
		if len(names) == 0 {
			continue
		}
		slices.Sort(names)
		rows = append(rows, []string{"x" + effectiveness.FormatMultiplier(tier), strings.Join(names, ", ")})
	}
	if len(rows) == 0 {
		return StyleDim.Render("No weaknesses, resistances or immunities.") + "\n"
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Damage", "Attacking types").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col != 0 {
				return base
			}
			switch m := matchupTierOf(rows[row][0]); {
			case m > 1:
				return base.Foreground(colorRed).Bold(true)
			case m == 0:
				return base.Foreground(colorDim).Bold(true)
			default:
				return base.Foreground(colorGreen).Bold(true)
			}
		})
	return t.Render() + "\n"
}

func matchupTierOf(label string) float64 {
	for _, tier := range matchupTiers {
		if label == "x"+effectiveness.FormatMultiplier(tier) {
			return tier
		}
	}
	return 1
}

// renderEvolutionLine renders "Charmander → Charmeleon → Charizard" with
// current highlighted.
func renderEvolutionLine(entries []evolution.Entry, current string) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		name := displayName(e.Name)
		if e.Name == current {
			parts[i] = StyleTitle.Render(name)
		} else {
			parts[i] = StyleValue.Render(name)
		}
	}
	return strings.Join(parts, StyleDim.Render(" "+iconArrow+" "))
}

// renderTree renders an evolution tree with box-drawing branches. Each
// non-root node shows its evolution condition.
func renderTree(root *evolution.Node, current string) string {
	if root == nil {
		return ""
	}
	var b strings.Builder
	var walk func(n *evolution.Node, prefix string, last, isRoot bool)
	walk = func(n *evolution.Node, prefix string, last, isRoot bool) {
		name := displayName(n.Name)
		if n.Name == current {
			name = StyleTitle.Render(name)
		} else {
			name = StyleValue.Render(name)
		}

		childPrefix := prefix
		if isRoot {
			b.WriteString(name)
		} else {
			branch, pad := "├─ ", "│  "
			if last {
				branch, pad = "└─ ", "   "
			}
			b.WriteString(prefix + StyleDim.Render(branch) + name)
			childPrefix = prefix + pad
		}
		if n.Details != "" {
			b.WriteString(" " + StyleDim.Render("("+n.Details+")"))
		}
		b.WriteString("\n")

		for i, c := range n.Children {
			walk(c, childPrefix, i == len(n.Children)-1, false)
		}
	}
	walk(root, "", true, true)
	return b.String()
}

// renderMove renders the text form of `pokedex move`.
func renderMove(pokemon string, m *dex.MoveDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n", StyleTitle.Render(displayName(m.Name)), typeBadge(m.Type), StyleDim.Render(m.DamageClass))
	b.WriteString(StyleDim.Render(m.Description) + "\n\n")
	b.WriteString(keyValue("Power", optional(m.Power)) + "\n")
	b.WriteString(keyValue("Accuracy", optional(m.Accuracy)) + "\n")
	b.WriteString(keyValue("PP", optional(m.PP)) + "\n")
	if m.Priority != 0 {
		b.WriteString(keyValue("Priority", fmt.Sprintf("%+d", m.Priority)) + "\n")
	}

	d := m.Damage
	b.WriteString("\n" + section("Used by "+displayName(pokemon)) + "\n")
	stab := "no"
	if d.HasSTAB() {
		stab = "yes (x" + effectiveness.FormatMultiplier(d.STAB) + ")"
	}
	b.WriteString(keyValue("STAB", stab) + "\n")
	b.WriteString(keyValue("Vs. itself", "x"+effectiveness.FormatMultiplier(d.Effectiveness)) + "\n")
	b.WriteString(keyValue("Estimate", fmt.Sprintf("%d", d.Final)) + "\n")
	return b.String()
}

func optional(v *int) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *v)
}
