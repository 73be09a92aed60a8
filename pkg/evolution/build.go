package evolution

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildList flattens chain into its primary line of evolution, following the
// first branch at every stage. It returns one entry per stage starting at the
// root; a nil chain yields an empty list.
func BuildList(chain *ChainLink) []Entry {
	entries := []Entry{}
	for cur := chain; cur != nil; {
		id := SpeciesID(cur.Species.URL)
		entries = append(entries, Entry{
			Name:     cur.Species.Name,
			ID:       id,
			ImageURL: ArtworkURL(id),
		})
		if len(cur.EvolvesTo) == 0 {
			break
		}
		cur = cur.EvolvesTo[0]
	}
	return entries
}

// BuildTree converts chain into a display tree, preserving branch order.
// Only the first evolution detail of each link is described. A nil chain
// yields nil.
func BuildTree(chain *ChainLink) *Node {
	if chain == nil {
		return nil
	}

	id := SpeciesID(chain.Species.URL)
	n := &Node{
		Name:     chain.Species.Name,
		ID:       id,
		ImageURL: ArtworkURL(id),
		Children: make([]*Node, 0, len(chain.EvolvesTo)),
	}

	if len(chain.EvolutionDetails) > 0 {
		d := &chain.EvolutionDetails[0]
		if d.Trigger != nil {
			n.Trigger = d.Trigger.Name
		}
		n.Details = Describe(d)
	}

	for _, child := range chain.EvolvesTo {
		if c := BuildTree(child); c != nil {
			n.Children = append(n.Children, c)
		}
	}

	n.IsParallel = len(n.Children) > 1
	n.LayoutClass = layoutClass(len(n.Children))
	n.IsParallelWithFinals = n.IsParallel && allSingleChild(n.Children)
	return n
}

func layoutClass(children int) string {
	if children <= 1 {
		return ""
	}
	if children%2 == 0 {
		return LayoutGrid2
	}
	return LayoutGrid3
}

func allSingleChild(nodes []*Node) bool {
	for _, n := range nodes {
		if len(n.Children) != 1 {
			return false
		}
	}
	return true
}

// SpeciesID extracts the numeric ID from a PokeAPI resource URL such as
// "https://pokeapi.co/api/v2/pokemon-species/133/". It returns 0 if the last
// non-empty path segment is not a number.
func SpeciesID(url string) int {
	parts := strings.FieldsFunc(url, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return 0
	}
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return id
}

// ArtworkURL returns the official-artwork image URL for a species ID.
func ArtworkURL(id int) string {
	return fmt.Sprintf(ArtworkURLTemplate, id)
}
