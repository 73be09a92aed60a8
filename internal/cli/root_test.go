package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/pokedex/internal/pokeapitest"
	"github.com/matzehuels/pokedex/pkg/buildinfo"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := []string{"show", "types", "evolution", "move", "list", "browse", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommandVersion(t *testing.T) {
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("--version: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "pokedex version "+buildinfo.Version) {
		t.Errorf("--version output = %q", got)
	}
}

func TestCompletionCommand(t *testing.T) {
	isolate(t)
	api := pokeapitest.NewServer(t)

	for _, shell := range []string{"bash", "zsh", "fish"} {
		t.Run(shell, func(t *testing.T) {
			out, err := run(t, api, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out, "pokedex") {
				t.Errorf("completion %s output does not mention pokedex", shell)
			}
		})
	}

	if _, err := run(t, api, "completion", "powershell"); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestCompleteTypes(t *testing.T) {
	got, _ := completeTypes(nil, []string{"fire"}, "f")
	want := []string{"fighting", "flying", "fairy"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("completeTypes(fire, f) = %v, want %v", got, want)
	}
	if got, _ := completeTypes(nil, []string{"fire", "water"}, ""); len(got) != 0 {
		t.Errorf("completeTypes with two types = %v, want none", got)
	}
}
