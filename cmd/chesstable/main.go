// chesstable is an interactive chess board for two players sharing one screen.
//
// Usage:
//
//	chesstable play       - Open the board in a desktop window
//	chesstable term       - Play in the terminal
//	chesstable history    - List stored games
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.chesstable/config.yaml)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hailam/chesstable/internal/app"
	"github.com/hailam/chesstable/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// Table flags shared by play and term
	flagFlip      bool
	flagHighlight bool
	flagResume    bool
	flagGame      string
	flagNoStore   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chesstable",
	Short: "Chess Table - a chess board for two players",
	Long: `Chess Table puts a chess board on the screen for two people to play on.
Click a piece, then click where it should go. Illegal moves are ignored.

Examples:
  chesstable play
  chesstable play --flip --highlight
  chesstable term --resume
  chesstable history`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	for _, cmd := range []*cobra.Command{playCmd, termCmd} {
		cmd.Flags().BoolVar(&flagFlip, "flip", false, "Show the board from Black's side")
		cmd.Flags().BoolVar(&flagHighlight, "highlight", false, "Mark legal destinations of the selected piece")
		cmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the last game")
		cmd.Flags().StringVar(&flagGame, "game", "", "Continue the stored game with this id")
		cmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not read or write stored games")
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig reads the config and applies the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoStore {
		cfg.Storage.Disabled = true
	}
	return cfg, nil
}

// tableOptions turns the table flags into app options. Flags only override
// stored preferences when given explicitly.
func tableOptions(cmd *cobra.Command) app.Options {
	var opts app.Options
	if cmd.Flags().Changed("flip") {
		opts.Flip = &flagFlip
	}
	if cmd.Flags().Changed("highlight") {
		opts.Highlight = &flagHighlight
	}
	opts.Resume = flagResume
	opts.GameID = flagGame
	return opts
}
