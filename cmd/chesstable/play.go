package main

import (
	"github.com/spf13/cobra"

	"github.com/hailam/chesstable/internal/logging"
	"github.com/hailam/chesstable/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the board in a desktop window",
	Long: `Open the board in a desktop window.

Controls:
  Left click   - Select a piece, then its destination
  Right click  - Cancel the selection
  Esc          - Cancel the selection
  F            - Flip the board
  H            - Toggle legal move markers
  N            - New game`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level, "chesstable")
	if err != nil {
		return err
	}
	defer closer.Close()

	return ui.Run(cfg, logger, tableOptions(cmd))
}
