// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stratecide/tactics-core/internal/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.json"), false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Width != config.Default().Grid.Width {
		t.Fatalf("expected default grid width, got %d", cfg.Grid.Width)
	}
}

func TestLoadOverlaysNonZeroFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"Grid":{"Width":40}}`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := config.Load(path, false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Width != 40 {
		t.Fatalf("expected overlaid width 40, got %d", cfg.Grid.Width)
	}
	if cfg.Grid.Height != config.Default().Grid.Height {
		t.Fatalf("expected untouched field to keep default height, got %d", cfg.Grid.Height)
	}
}
