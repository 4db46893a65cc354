package main

import (
	"github.com/spf13/cobra"

	"github.com/hailam/chesstable/internal/logging"
	"github.com/hailam/chesstable/internal/storage"
	"github.com/hailam/chesstable/internal/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play on a board drawn in the terminal.

Controls:
  Arrows       - Move the cursor
  Enter/Space  - Select a piece, then its destination
  Click        - Select the clicked tile
  Right click  - Cancel the selection
  Esc/Bksp     - Cancel the selection
  f            - Flip the board
  h            - Toggle legal move markers
  n            - New game
  q            - Quit

Logs go to log.file, or chesstable.log in the data directory.`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the board, so logs always go to a file
	file := cfg.Log.File
	if file == "" {
		if file, err = storage.DefaultLogFile(); err != nil {
			return err
		}
	}
	logger, closer, err := logging.Open(file, cfg.Log.Level, "chesstable")
	if err != nil {
		return err
	}
	defer closer.Close()

	return term.Run(cfg, logger, tableOptions(cmd))
}
