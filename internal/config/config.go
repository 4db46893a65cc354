// Package config provides YAML-based configuration for the chess table.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Config is the full application configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Palette PaletteConfig `yaml:"palette"`
	Board   BoardConfig   `yaml:"board"`
	Assets  AssetsConfig  `yaml:"assets"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title    string `yaml:"title"`
	TileSize int    `yaml:"tile_size"`
}

// PaletteConfig holds colours as "#rrggbb" or "#rrggbbaa".
type PaletteConfig struct {
	Light      string `yaml:"light"`
	Dark       string `yaml:"dark"`
	Selected   string `yaml:"selected"`
	Marker     string `yaml:"marker"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

// BoardConfig holds the initial table state.
type BoardConfig struct {
	Orientation         string `yaml:"orientation"`
	HighlightLegalMoves bool   `yaml:"highlight_legal_moves"`
	Sound               bool   `yaml:"sound"`
}

// AssetsConfig points at an optional icon directory overriding the built-in set.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// StorageConfig controls persistence. An empty Dir means the platform data directory.
type StorageConfig struct {
	Dir      string `yaml:"dir"`
	Disabled bool   `yaml:"disabled"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	if c.Window.TileSize < 16 || c.Window.TileSize > 256 {
		return fmt.Errorf("window.tile_size %d out of range [16,256]", c.Window.TileSize)
	}
	for name, v := range map[string]string{
		"light":      c.Palette.Light,
		"dark":       c.Palette.Dark,
		"selected":   c.Palette.Selected,
		"marker":     c.Palette.Marker,
		"background": c.Palette.Background,
		"text":       c.Palette.Text,
	} {
		if _, err := ParseColor(v); err != nil {
			return fmt.Errorf("palette.%s: %w", name, err)
		}
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor is ParseColor for values already checked by Validate.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
