package evolution

// ArtworkURLTemplate is the official-artwork sprite URL; %d is the species ID.
const ArtworkURLTemplate = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png"

// Layout class hints for parallel branches.
const (
	LayoutGrid2 = "grid-2"
	LayoutGrid3 = "grid-3"
)

// Ref is a PokeAPI named resource reference.
type Ref struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Chain is an evolution-chain resource as returned by /evolution-chain/{id}.
type Chain struct {
	ID    int        `json:"id"`
	Chain *ChainLink `json:"chain"`
}

// ChainLink is one species in an evolution chain together with the
// conditions under which it is reached from its parent.
type ChainLink struct {
	IsBaby           bool         `json:"is_baby"`
	Species          Ref          `json:"species"`
	EvolutionDetails []Detail     `json:"evolution_details"`
	EvolvesTo        []*ChainLink `json:"evolves_to"`
}

// Detail holds the trigger conditions for one way of evolving.
// Pointer fields are nil when PokeAPI reports null.
type Detail struct {
	Trigger               *Ref   `json:"trigger"`
	MinLevel              *int   `json:"min_level"`
	Item                  *Ref   `json:"item"`
	HeldItem              *Ref   `json:"held_item"`
	MinHappiness          *int   `json:"min_happiness"`
	MinAffection          *int   `json:"min_affection"`
	MinBeauty             *int   `json:"min_beauty"`
	Location              *Ref   `json:"location"`
	TimeOfDay             string `json:"time_of_day"`
	KnownMove             *Ref   `json:"known_move"`
	KnownMoveType         *Ref   `json:"known_move_type"`
	PartySpecies          *Ref   `json:"party_species"`
	PartyType             *Ref   `json:"party_type"`
	TradeSpecies          *Ref   `json:"trade_species"`
	Gender                *int   `json:"gender"`
	NeedsOverworldRain    bool   `json:"needs_overworld_rain"`
	TurnUpsideDown        bool   `json:"turn_upside_down"`
	RelativePhysicalStats *int   `json:"relative_physical_stats"`
}

// Entry is one stage of the linear evolution summary.
type Entry struct {
	Name     string `json:"name" yaml:"name"`
	ID       int    `json:"id" yaml:"id"`
	ImageURL string `json:"image" yaml:"image"`
}

// Node is a display-ready evolution tree node.
type Node struct {
	Name     string `json:"name" yaml:"name"`
	ID       int    `json:"id" yaml:"id"`
	ImageURL string `json:"image" yaml:"image"`

	// Trigger is the raw trigger kind (e.g. "level-up", "use-item", "trade").
	Trigger string `json:"trigger,omitempty" yaml:"trigger,omitempty"`

	// Details is the human-readable evolution condition.
	Details string `json:"details,omitempty" yaml:"details,omitempty"`

	IsParallel           bool   `json:"isParallel" yaml:"isParallel"`
	IsParallelWithFinals bool   `json:"isParallelWithFinals" yaml:"isParallelWithFinals"`
	LayoutClass          string `json:"layoutClass,omitempty" yaml:"layoutClass,omitempty"`

	Children []*Node `json:"children" yaml:"children"`
}

// Walk visits n and its descendants depth-first in source order.
// depth is 0 for n itself. Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}
