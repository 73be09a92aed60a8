// Package effectiveness combines the damage relations of a Pokémon's types into
// a single defensive profile.
//
// # Overview
//
// PokeAPI describes each elemental type by the types it takes double, half, or
// no damage from. A dual-typed Pokémon takes the product of both types'
// multipliers, so a Fire/Flying Pokémon takes 4× from Rock (2 × 2), 1× from
// Ice (2 × 0.5), and 0× from Ground (Flying's immunity).
//
// [Calculate] folds any number of [DamageRelations] into a [Result]:
//
//	res := effectiveness.Calculate([]effectiveness.DamageRelations{fire, flying})
//	res.Weaknesses  // ["electric (x2)", "rock (x4)", "water (x2)"]
//	res.Resistances // ["bug (x0.25)", "fairy (x0.5)", ...]
//	res.Immunities  // ["ground"]
//
// # Accumulation Policy
//
// Types are applied in input (slot) order. Within a type, double-damage
// entries are applied first, then half-damage entries, then immunities.
//
// Immunity is absorbing: once an attacker reaches 0× it is never multiplied
// again, no matter what later types say about it.
//
// An attacker whose multiplier lands on exactly 1× is removed from the
// accumulator at that moment and appears in none of the output lists.
//
// # Numeric Precision
//
// Every factor is a power of two (2, 0.5, 0), so every product is exactly
// representable as a float64. Comparisons against 0 and 1 are exact and no
// epsilon is used.
package effectiveness
