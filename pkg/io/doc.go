// Package io reads and writes Pokédex views as JSON or YAML.
//
// # Formats
//
// [FormatJSON] is the same document the HTTP API serves for
// GET /api/pokemon/{name}: camelCase keys, with the defensive profile under
// "typeData". [FormatYAML] uses the same keys.
//
//	{
//	  "pokemon": {"id": 6, "name": "charizard", "types": ["fire", "flying"], ...},
//	  "typeData": {
//	    "weaknesses": ["electric (x2)", "rock (x4)", "water (x2)"],
//	    "resistances": ["bug (x0.25)", ...],
//	    "immunities": ["ground"]
//	  },
//	  "evolution": [{"name": "charmander", "id": 4, "image": "..."}, ...],
//	  ...
//	}
//
// # Export
//
// Use [WriteView] to write to any io.Writer, or [ExportView] to write a file
// whose format is picked from its extension:
//
//	err := io.ExportView(view, "charizard.yaml")
//
// # Import
//
// [ReadView] and [ImportView] decode a previously exported view, so that
// `pokedex show --from charizard.json` can render it without touching the
// network.
package io
