// Package evolution turns PokeAPI evolution chains into display models.
//
// # Overview
//
// An evolution chain is a tree of [ChainLink] values: each link names a species
// and lists the links it evolves into. This package derives two views of it:
//
//   - [BuildList]: the primary line of evolution (always following the first
//     branch), e.g. Bulbasaur → Ivysaur → Venusaur.
//   - [BuildTree]: the full branching structure (Eevee's eight evolutions,
//     Tyrogue's three) as a tree of [Node] values.
//
// Both are pure functions of their input.
//
// # Trigger Descriptions
//
// Each tree node carries a human-readable Details string composed by
// [Describe] from the first evolution detail of its link. Conditions are
// applied in a fixed order, and some of them replace what came before rather
// than extend it:
//
//	base requirement    Level 16 | Use fire-stone | Trade holding metal-coat | ...
//	location, time      append   ("Level 20, during night")
//	known move (type)   replace
//	party species/type  replace
//	gender, rain, flip  append
//	physical stats      replace  ("Attack > Defense")
//
// # Layout Hints
//
// Nodes with more than one child are marked IsParallel and carry a LayoutClass
// of [LayoutGrid2] (even child count) or [LayoutGrid3] (odd), meant to map
// directly onto a CSS grid class.
//
// # Rendering
//
// [ToDOT] converts a tree to Graphviz DOT and [RenderSVG] renders it.
package evolution
