package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/pokedex/pkg/cache"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv(configEnv, "")
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.API.BaseURL != pokeapi.DefaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Cache.Backend != backendFile {
		t.Errorf("Backend = %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL.Duration != cache.TTLHTTP || cfg.Cache.ViewTTL.Duration != cache.TTLView {
		t.Errorf("TTLs = %v, %v", cfg.Cache.TTL, cfg.Cache.ViewTTL)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	home := isolateConfig(t)
	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, dir, `
[api]
base_url = "http://mirror.local/api/v2"

[cache]
backend = "redis"
ttl = "12h"
redis_addr = "cache:6379"

[server]
addr = "127.0.0.1:9000"
`)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.API.BaseURL != "http://mirror.local/api/v2" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Cache.Backend != backendRedis || cfg.Cache.RedisAddr != "cache:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 12*time.Hour {
		t.Errorf("TTL = %v", cfg.Cache.TTL)
	}
	if cfg.Cache.ViewTTL.Duration != cache.TTLView {
		t.Errorf("ViewTTL should default, got %v", cfg.Cache.ViewTTL)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	isolateConfig(t)
	path := writeConfig(t, t.TempDir(), "[cache]\nbackend = \"none\"\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Cache.Backend != backendNone {
		t.Errorf("Backend = %q", cfg.Cache.Backend)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	isolateConfig(t)
	path := writeConfig(t, t.TempDir(), "[cache]\nbackend = \"none\"\n")
	t.Setenv(configEnv, path)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Cache.Backend != backendNone {
		t.Errorf("Backend = %q", cfg.Cache.Backend)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown backend", "[cache]\nbackend = \"memcached\"\n", "unknown cache backend"},
		{"mongo without uri", "[cache]\nbackend = \"mongo\"\n", "mongo_uri"},
		{"bad duration", "[cache]\nttl = \"soon\"\n", "load config"},
		{"negative ttl", "[cache]\nttl = \"-1h\"\n", "must not be negative"},
		{"bad toml", "[cache\n", "load config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, dir, tt.body)
			_, err := loadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("loadConfig() error = %v, want %q", err, tt.want)
			}
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := loadConfig(filepath.Join(dir, "missing.toml")); err == nil {
			t.Error("expected error for a missing explicit config")
		}
	})
}
