package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDisplayConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
canvas_width = 120
canvas_height = 40
precision = 2
theme = "light"
pretty = true
`)

	cfg, err := loadDisplayConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CanvasWidth != 120 {
		t.Fatalf("unexpected canvas width: %d", cfg.CanvasWidth)
	}
	if cfg.CanvasHeight != 40 {
		t.Fatalf("unexpected canvas height: %d", cfg.CanvasHeight)
	}
	if cfg.Precision != 2 {
		t.Fatalf("unexpected precision: %d", cfg.Precision)
	}
	if cfg.Theme != "light" {
		t.Fatalf("unexpected theme: %q", cfg.Theme)
	}
	if !cfg.Pretty {
		t.Fatalf("expected pretty enabled")
	}
}

func TestLoadDisplayConfigPartial(t *testing.T) {
	path := writeConfig(t, `
precision = 3
`)

	cfg, err := loadDisplayConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Precision != 3 {
		t.Fatalf("unexpected precision: %d", cfg.Precision)
	}
	if cfg.CanvasWidth < 8 {
		t.Fatalf("default canvas width missing: %d", cfg.CanvasWidth)
	}
	if cfg.Theme != "dark" {
		t.Fatalf("unexpected default theme: %q", cfg.Theme)
	}
}

func TestLoadDisplayConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"tiny canvas", "canvas_width = 2"},
		{"negative precision", "precision = -1"},
		{"unknown theme", `theme = "sepia"`},
		{"not toml", "canvas_width = ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadDisplayConfig(writeConfig(t, tt.content)); err == nil {
				t.Fatalf("expected parse error")
			}
		})
	}
}
