package integrations

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/pokedex/pkg/cache"
)

const httpTimeout = 10 * time.Second

// Transport errors, re-exported from [cache] so callers of this package need
// not import it.
var (
	ErrNotFound = cache.ErrNotFound
	ErrNetwork  = cache.ErrNetwork
)

// NewHTTPClient returns an HTTP client with the standard request timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

var nameReplacer = strings.NewReplacer(" ", "-", "_", "-", ".", "", "'", "", "♀", "-f", "♂", "-m")

// NormalizeName converts user input to a PokeAPI resource name:
// "Mr. Mime" becomes "mr-mime" and "Nidoran♀" becomes "nidoran-f".
func NormalizeName(name string) string {
	return nameReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}

// IDFromURL extracts the numeric ID from a PokeAPI resource URL such as
// "https://pokeapi.co/api/v2/evolution-chain/10/". It reports false when the
// last path segment is not a positive integer.
func IDFromURL(u string) (int, bool) {
	u = strings.TrimRight(u, "/")
	i := strings.LastIndexByte(u, '/')
	id, err := strconv.Atoi(u[i+1:])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
