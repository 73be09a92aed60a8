package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pokedex/internal/pokeapitest"
	"github.com/matzehuels/pokedex/pkg/dex"
	"github.com/matzehuels/pokedex/pkg/errors"
)

// run executes the root command against api with isolated config and cache
// directories and returns what the command wrote to Out.
func run(t *testing.T, api *pokeapitest.Server, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.Out = &out

	root := c.RootCommand()
	root.SetArgs(append([]string{"--api-url", api.URL}, args...))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	isolateConfig(t)
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	return filepath.Join(cacheHome, appName)
}

func TestShowText(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)

	out, err := run(t, api, "show", "Pikachu")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"#025", "Pikachu", "ELECTRIC", "Mouse Pokémon", "Weak to", "ground (x2)", "Static", "Pichu", "Raichu"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowJSON(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)

	out, err := run(t, api, "--cache", "none", "show", "pikachu", "--format", "json")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var v dex.View
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if v.Pokemon.ID != 25 || len(v.Evolution) != 3 {
		t.Errorf("view = %+v", v.Pokemon)
	}
	if got := v.Effectiveness.Weaknesses; len(got) != 1 || got[0] != "ground (x2)" {
		t.Errorf("Weaknesses = %v", got)
	}
}

func TestShowYAML(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)

	out, err := run(t, api, "--cache", "none", "show", "pikachu", "-f", "yaml")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var v dex.View
	if err := yaml.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Pokemon.Name != "pikachu" {
		t.Errorf("Name = %q", v.Pokemon.Name)
	}
}

func TestShowExportAndImport(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)
	path := filepath.Join(t.TempDir(), "pikachu.json")

	if _, err := run(t, api, "--cache", "none", "show", "pikachu", "-o", path); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export did not write %s: %v", path, err)
	}

	hits := api.Hits()
	out, err := run(t, api, "show", "--from", path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "Pikachu") {
		t.Errorf("import output:\n%s", out)
	}
	if api.Hits() != hits {
		t.Error("--from should not contact the API")
	}
}

func TestShowErrors(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"not found", []string{"show", "missingno"}, errors.ErrCodePokemonNotFound},
		{"invalid name", []string{"show", "pika chu!"}, errors.ErrCodeInvalidName},
		{"invalid format", []string{"show", "pikachu", "-f", "xml"}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, api, append([]string{"--cache", "none"}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}

	if _, err := run(t, api, "show"); err == nil {
		t.Error("show without a name should fail")
	}
	if _, err := run(t, api, "show", "pikachu", "--from", "x.json"); err == nil {
		t.Error("show with both a name and --from should fail")
	}
}

func TestShowUsesFileCache(t *testing.T) {
	dir := isolate(t)
	api := pokeapitest.NewServer(t)

	if _, err := run(t, api, "show", "pikachu"); err != nil {
		t.Fatalf("first show: %v", err)
	}
	hits := api.Hits()
	if hits == 0 {
		t.Fatal("first show made no requests")
	}
	if _, err := run(t, api, "show", "pikachu"); err != nil {
		t.Fatalf("second show: %v", err)
	}
	if api.Hits() != hits {
		t.Errorf("second show made %d requests, want 0", api.Hits()-hits)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir not created: %v", err)
	}

	if _, err := run(t, api, "--refresh", "show", "pikachu"); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if api.Hits() == hits {
		t.Error("--refresh should refetch")
	}
}

func TestTypes(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)

	out, err := run(t, api, "--cache", "none", "types", "Electric")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	for _, want := range []string{"ELECTRIC", "x2", "ground", "x0.5", "flying"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, api, "types", "shadow"); !errors.Is(err, errors.ErrCodeInvalidType) {
		t.Errorf("unknown type error = %v", err)
	}
	if _, err := run(t, api, "types", "fire", "water", "grass"); err == nil {
		t.Error("three types should fail")
	}
}

func TestEvolution(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)

	out, err := run(t, api, "--cache", "none", "evolution", "pikachu")
	if err != nil {
		t.Fatalf("evolution: %v", err)
	}
	if !strings.Contains(out, "Pichu") || !strings.Contains(out, "Raichu") {
		t.Errorf("line output:\n%s", out)
	}

	out, err = run(t, api, "--cache", "none", "evolution", "pikachu", "--tree")
	if err != nil {
		t.Fatalf("evolution --tree: %v", err)
	}
	if !strings.Contains(out, "└─") || !strings.Contains(out, "High friendship") {
		t.Errorf("tree output:\n%s", out)
	}

	out, err = run(t, api, "--cache", "none", "evolution", "pikachu", "--dot")
	if err != nil {
		t.Fatalf("evolution --dot: %v", err)
	}
	if !strings.HasPrefix(out, "digraph evolution {") || !strings.Contains(out, `"pikachu" -> "raichu"`) {
		t.Errorf("dot output:\n%s", out)
	}
}

func TestMove(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)

	out, err := run(t, api, "--cache", "none", "move", "pikachu", "thunderbolt")
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	for _, want := range []string{"Thunderbolt", "ELECTRIC", "special", "90", "STAB", "yes (x1.5)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, api, "--cache", "none", "move", "pikachu", "splash"); !errors.Is(err, errors.ErrCodeMoveNotFound) {
		t.Errorf("unknown move error = %v", err)
	}
}

func TestList(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)

	out, err := run(t, api, "--cache", "none", "list", "--limit", "2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "#001") || !strings.Contains(out, "Bulbasaur") || !strings.Contains(out, "Ivysaur") {
		t.Errorf("output:\n%s", out)
	}

	if _, err := run(t, api, "list", "--limit", "0"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("--limit 0 error = %v", err)
	}
	if _, err := run(t, api, "list", "--offset", "-1"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("--offset -1 error = %v", err)
	}
}

func TestInvalidFlags(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)

	if _, err := run(t, api, "--cache", "memcached", "show", "pikachu"); err == nil || !strings.Contains(err.Error(), "unknown cache backend") {
		t.Errorf("bad backend error = %v", err)
	}

	c := New(io.Discard, LogInfo)
	c.Out = io.Discard
	root := c.RootCommand()
	root.SetArgs([]string{"--api-url", "not a url", "show", "pikachu"})
	if err := root.Execute(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad --api-url error = %v", err)
	}
}

func TestLookupFailureReturnsCodedError(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)

	for _, cmd := range []string{"evolution", "browse"} {
		_, err := run(t, api, "--cache", "none", cmd, "missingno")
		if !errors.Is(err, errors.ErrCodePokemonNotFound) {
			t.Errorf("%s missingno error = %v", cmd, err)
		}
	}
}
