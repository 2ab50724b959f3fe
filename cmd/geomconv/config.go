package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/term"
)

// displayConfig controls how geometries are rendered, both for the plain
// text output and the interactive viewer.
type displayConfig struct {
	CanvasWidth  int
	CanvasHeight int
	Precision    int
	Theme        string
	Pretty       bool
}

type fileConfig struct {
	CanvasWidth  int    `toml:"canvas_width"`
	CanvasHeight int    `toml:"canvas_height"`
	Precision    int    `toml:"precision"`
	Theme        string `toml:"theme"`
	Pretty       bool   `toml:"pretty"`
}

// defaultDisplayConfig sizes the canvas to the terminal when stdout is one.
func defaultDisplayConfig() displayConfig {
	cfg := displayConfig{
		CanvasWidth:  72,
		CanvasHeight: 24,
		Precision:    6,
		Theme:        "dark",
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 8 && h > 6 {
		cfg.CanvasWidth = w - 4
		cfg.CanvasHeight = h - 6
	}
	return cfg
}

func loadDisplayConfig(path string) (displayConfig, error) {
	cfg := defaultDisplayConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return displayConfig{}, fmt.Errorf("load display config: %w", err)
	}

	if meta.IsDefined("canvas_width") {
		if raw.CanvasWidth < 8 {
			return displayConfig{}, fmt.Errorf("canvas_width %d too small", raw.CanvasWidth)
		}
		cfg.CanvasWidth = raw.CanvasWidth
	}

	if meta.IsDefined("canvas_height") {
		if raw.CanvasHeight < 4 {
			return displayConfig{}, fmt.Errorf("canvas_height %d too small", raw.CanvasHeight)
		}
		cfg.CanvasHeight = raw.CanvasHeight
	}

	if meta.IsDefined("precision") {
		if raw.Precision < 0 || raw.Precision > 17 {
			return displayConfig{}, fmt.Errorf("precision %d out of range", raw.Precision)
		}
		cfg.Precision = raw.Precision
	}

	if meta.IsDefined("theme") {
		theme := strings.TrimSpace(strings.ToLower(raw.Theme))
		switch theme {
		case "dark", "light":
			cfg.Theme = theme
		default:
			return displayConfig{}, fmt.Errorf("unknown theme %q", raw.Theme)
		}
	}

	if meta.IsDefined("pretty") {
		cfg.Pretty = raw.Pretty
	}

	return cfg, nil
}
