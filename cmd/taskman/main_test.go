package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nhaseem/taskman/internal/config"
	"github.com/nhaseem/taskman/internal/paths"
)

func TestOpenStoreWithConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(paths.DataDirEnv, t.TempDir())

	dir := filepath.Join(home, ".config", "taskman")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "[org]\nname = \"Acme Corp\"\n"
	if err := os.WriteFile(filepath.Join(dir, "taskman.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	store, cfg, err := openStoreWithConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store == nil {
		t.Fatal("expected non-nil store")
	}
	if cfg == nil || cfg.Org.Name != "Acme Corp" {
		t.Fatalf("expected loaded config alongside the store, got %+v", cfg)
	}
}

func TestDataDirPrecedence(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	tests := []struct {
		name   string
		env    string
		cfgDir string
		want   string
	}{
		{"env wins", "/srv/from-env", "/srv/from-config", "/srv/from-env"},
		{"config next", "", "/srv/from-config", "/srv/from-config"},
		{"default last", "", "", filepath.Join("/tmp", "test-home", ".local", "share", "taskman")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(paths.DataDirEnv, tt.env)
			cfg := &config.Config{}
			cfg.Data.Dir = tt.cfgDir

			got, err := dataDir(cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
