package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Layout.Tick != 48*time.Millisecond {
		t.Errorf("Layout.Tick = %v, want 48ms", cfg.Layout.Tick)
	}
	if cfg.Layout.OverlapTolerance != 0.1 {
		t.Errorf("Layout.OverlapTolerance = %v, want 0.1", cfg.Layout.OverlapTolerance)
	}
	if cfg.Layout.Damping != 0.3 || cfg.Layout.DragDamping != 0.1 {
		t.Errorf("damping = %v/%v, want 0.3/0.1", cfg.Layout.Damping, cfg.Layout.DragDamping)
	}
	if cfg.API.BaseURL != "https://api.turbos.finance" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.PageSize != 100 || cfg.API.Sort != "market_cap_sui" || cfg.API.Direction != "desc" {
		t.Errorf("unexpected API query defaults: %+v", cfg.API)
	}
	if cfg.Bubbles.Count != 20 || cfg.Bubbles.MinSizeRatio != 0.6 {
		t.Errorf("unexpected bubble defaults: %+v", cfg.Bubbles)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "durations_and_overrides",
			yaml: `
api:
  page_size: 50
  refresh_interval: 30s
layout:
  tick: 32ms
  damping: 0.5
bubbles:
  count: 12
search_debounce: 1s
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.API.PageSize != 50 {
					t.Errorf("PageSize = %d, want 50", cfg.API.PageSize)
				}
				if cfg.API.RefreshInterval != 30*time.Second {
					t.Errorf("RefreshInterval = %v, want 30s", cfg.API.RefreshInterval)
				}
				if cfg.Layout.Tick != 32*time.Millisecond {
					t.Errorf("Tick = %v, want 32ms", cfg.Layout.Tick)
				}
				if cfg.Layout.Damping != 0.5 {
					t.Errorf("Damping = %v, want 0.5", cfg.Layout.Damping)
				}
				if cfg.Layout.DragDamping != 0.1 {
					t.Errorf("DragDamping default lost: %v", cfg.Layout.DragDamping)
				}
				if cfg.Bubbles.Count != 12 {
					t.Errorf("Count = %d, want 12", cfg.Bubbles.Count)
				}
				if cfg.SearchDebounce != time.Second {
					t.Errorf("SearchDebounce = %v, want 1s", cfg.SearchDebounce)
				}
			},
		},
		{
			name:    "tolerance_out_of_range",
			yaml:    "layout:\n  overlap_tolerance: 1.5\n",
			wantErr: true,
		},
		{
			name:    "negative_damping",
			yaml:    "layout:\n  damping: -0.2\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			yaml:    "layout: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestValidateWrapsErrInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bubbles.MinSizeRatio = 2
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Bubbles.Count = 33
	cfg.Layout.ClickSlop = 2
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if loaded.Bubbles.Count != 33 || loaded.Layout.ClickSlop != 2 {
		t.Errorf("values lost on round trip: %+v", loaded)
	}
	if loaded.Layout.Tick != 48*time.Millisecond {
		t.Errorf("Tick = %v after round trip", loaded.Layout.Tick)
	}
}

func TestFindConfigPathFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("bubbles:\n  count: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	if got := FindConfigPath(); got != path {
		t.Fatalf("FindConfigPath() = %q, want %q", got, path)
	}

	cfg, _, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Bubbles.Count != 5 {
		t.Fatalf("Count = %d, want 5", cfg.Bubbles.Count)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit path")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suibubbles.yaml")
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(path, []byte("bubbles:\n  count: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, "")
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("bubbles:\n  count: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	want, _ := filepath.Abs(path)
	select {
	case got := <-w.Events:
		if got != want {
			t.Fatalf("event for %q, want %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestSizeScriptPath(t *testing.T) {
	abs, _ := filepath.Abs("size.tengo")
	tests := []struct {
		name, script, cfgPath, want string
	}{
		{"empty", "", "/etc/suibubbles/config.yaml", ""},
		{"relative", "size.tengo", "/etc/suibubbles/config.yaml", filepath.Join("/etc/suibubbles", "size.tengo")},
		{"absolute", abs, "/etc/suibubbles/config.yaml", abs},
		{"no_config", "size.tengo", "", "size.tengo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			c.Bubbles.SizeScript = tt.script
			if got := c.SizeScriptPath(tt.cfgPath); got != tt.want {
				t.Fatalf("SizeScriptPath = %q, want %q", got, tt.want)
			}
		})
	}
}
