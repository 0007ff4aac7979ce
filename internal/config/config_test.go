package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"anilens/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ANILIST_TOKEN", "")
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("missing file reported as existing")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	defaults := config.Default()
	if cfg.AniList.BaseURL != defaults.AniList.BaseURL {
		t.Errorf("base URL = %q, want default %q", cfg.AniList.BaseURL, defaults.AniList.BaseURL)
	}
	if cfg.Output.Top != defaults.Output.Top {
		t.Errorf("top = %d, want default %d", cfg.Output.Top, defaults.Output.Top)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	t.Setenv("ANILIST_TOKEN", "")
	path := writeConfig(t, `
[anilist]
token = "abc123"
page_cap = 12

[output]
language = "english"
top = 10

[logging]
format = "JSON"
level = "Debug"
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("existing file reported as missing")
	}
	if cfg.AniList.Token != "abc123" {
		t.Errorf("token = %q", cfg.AniList.Token)
	}
	if cfg.AniList.PageCap != 12 {
		t.Errorf("page cap = %d", cfg.AniList.PageCap)
	}
	if cfg.Output.Language != "english" || cfg.Output.Top != 10 {
		t.Errorf("unexpected output config: %+v", cfg.Output)
	}
	// Format and level are case-normalized.
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.AniList.BaseURL != config.Default().AniList.BaseURL {
		t.Errorf("unset base URL should keep default, got %q", cfg.AniList.BaseURL)
	}
}

func TestLoadTokenFromEnvironment(t *testing.T) {
	t.Setenv("ANILIST_TOKEN", "  env-token  ")
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AniList.Token != "env-token" {
		t.Errorf("token = %q, want trimmed environment value", cfg.AniList.Token)
	}
}

func TestLoadFileTokenWinsOverEnvironment(t *testing.T) {
	t.Setenv("ANILIST_TOKEN", "env-token")
	path := writeConfig(t, `
[anilist]
token = "file-token"
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AniList.Token != "file-token" {
		t.Errorf("token = %q, want file value", cfg.AniList.Token)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("ANILIST_TOKEN", "")
	tests := []struct {
		name     string
		contents string
	}{
		{"bad base url", "[anilist]\nbase_url = \"not a url\"\n"},
		{"negative page cap", "[anilist]\npage_cap = -1\n"},
		{"negative warn threshold", "[anilist]\nstaff_warn_threshold = -5\n"},
		{"negative top", "[output]\ntop = -3\n"},
		{"bad log format", "[logging]\nformat = \"yaml\"\n"},
		{"bad log level", "[logging]\nlevel = \"trace\"\n"},
		{"malformed toml", "[anilist\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			if _, _, _, err := config.Load(path); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("ANILIST_TOKEN", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("sample file reported as missing")
	}
	if *cfg != config.Default() {
		t.Errorf("sample config should match defaults, got %+v", cfg)
	}
}
