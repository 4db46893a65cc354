package config

import (
	_ "embed"
)

//go:embed defaults/chesstable.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:    "Chess Table",
			TileSize: 80,
		},
		Palette: PaletteConfig{
			Light:      "#f0d9b5",
			Dark:       "#b58863",
			Selected:   "#f7f769",
			Marker:     "#829769",
			Background: "#282c34",
			Text:       "#dcdcdc",
		},
		Board: BoardConfig{
			Orientation: "normal",
			Sound:       true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
