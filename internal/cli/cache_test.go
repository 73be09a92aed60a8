package cli

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/pokedex/internal/pokeapitest"
	"github.com/matzehuels/pokedex/pkg/cache"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
)

func TestKeyerFor(t *testing.T) {
	if _, ok := keyerFor(pokeapi.DefaultBaseURL).(cache.DefaultKeyer); !ok {
		t.Error("the public endpoint should use unscoped keys")
	}

	mirror := keyerFor("http://mirror.local:8000/api/v2")
	if got := mirror.HTTPKey("pokeapi", "pokemon/pikachu"); !strings.HasPrefix(got, "mirror.local:8000:") {
		t.Errorf("mirror key = %q", got)
	}
	other := keyerFor("http://other.local/api/v2")
	if mirror.HTTPKey("pokeapi", "x") == other.HTTPKey("pokeapi", "x") {
		t.Error("different hosts share a key")
	}
}

func TestCacheLocation(t *testing.T) {
	tests := []struct {
		name string
		cli  CLI
		want string
	}{
		{"file", CLI{cfg: Config{Cache: CacheConfig{Backend: backendFile, Dir: "/var/cache/pokedex"}}}, "/var/cache/pokedex"},
		{"redis", CLI{cfg: Config{Cache: CacheConfig{Backend: backendRedis, RedisAddr: "cache:6379"}}}, "redis://cache:6379"},
		{"mongo", CLI{cfg: Config{Cache: CacheConfig{Backend: backendMongo, MongoURI: "mongodb://ash:pikachu@db:27017"}}}, "mongodb://ash:xxxxx@db:27017"},
		{"none", CLI{cfg: Config{Cache: CacheConfig{Backend: backendNone}}}, backendNone},
		{"no-cache", CLI{noCache: true, cfg: Config{Cache: CacheConfig{Backend: backendRedis}}}, backendNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cli.cacheLocation(); got != tt.want {
				t.Errorf("cacheLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCachePathCommand(t *testing.T) {
	dir := isolate(t)
	api := pokeapitest.NewServer(t)

	out, err := run(t, api, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("cache path = %q, want %q", out, dir)
	}

	out, _ = run(t, api, "--cache", "redis", "cache", "path")
	if strings.TrimSpace(out) != "redis://localhost:6379" {
		t.Errorf("redis cache path = %q", out)
	}
}

func countEntries(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && filepath.Ext(path) == ".json" {
			n++
		}
		return nil
	})
	return n
}

func TestCacheClearCommand(t *testing.T) {
	dir := isolate(t)
	api := pokeapitest.NewServer(t)

	if _, err := run(t, api, "cache", "clear"); err != nil {
		t.Fatalf("clearing a missing cache: %v", err)
	}

	if _, err := run(t, api, "show", "pikachu"); err != nil {
		t.Fatalf("show: %v", err)
	}
	if countEntries(t, dir) == 0 {
		t.Fatal("show cached nothing")
	}

	if _, err := run(t, api, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if n := countEntries(t, dir); n != 0 {
		t.Errorf("%d entries left after clear", n)
	}
}
