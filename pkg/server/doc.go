// Package server exposes the Pokédex as a JSON HTTP API.
//
// # Routes
//
//	GET /healthz                          liveness and build info
//	GET /api/pokemon?limit=20&offset=0    one page of Pokémon names
//	GET /api/pokemon/{name}               the full view
//	GET /api/pokemon/{name}/evolution     evolution list and tree
//	GET /api/pokemon/{name}/moves/{move}  move detail with damage estimate
//	GET /api/types?t=fire&t=flying        defensive profile of ad-hoc types
//	GET /ws                               lookups over a websocket
//
// Every lookup route accepts ?refresh=true to bypass caches.
//
// # Errors
//
// Failures are returned as {"error": message, "code": code}. The status code
// follows [errors.HTTPStatus]: 400 for invalid input, 404 for unknown Pokémon
// or moves, 502 for PokeAPI failures.
//
// # Request IDs
//
// Every response carries an X-Request-ID header. A well-formed UUID sent by
// the client is echoed back; otherwise a new one is generated.
//
// # Websocket
//
// Each text message on /ws is a Pokémon name. The server answers every
// message with the view as JSON, or with an error object, in order.
//
// [errors.HTTPStatus]: github.com/matzehuels/pokedex/pkg/errors.HTTPStatus
package server
