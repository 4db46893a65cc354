package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hailam/chesstable/internal/storage"
)

var flagDelete string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored games",
	Long: `List stored games, most recent first.

Continue one with "chesstable play --game <id>".

Examples:
  chesstable history
  chesstable history --delete 3f2a9c1e-...`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagDelete, "delete", "", "Delete the game with this id")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Storage.Disabled {
		return fmt.Errorf("storage is disabled")
	}

	store, err := storage.Open(cfg.Storage.Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagDelete != "" {
		if _, err := store.LoadGame(flagDelete); err != nil {
			return fmt.Errorf("game %s: %w", flagDelete, err)
		}
		if err := store.DeleteGame(flagDelete); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", flagDelete)
		return nil
	}

	games, err := store.ListGames()
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Println("No stored games.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMOVES\tRESULT\tUPDATED")
	for _, g := range games {
		result := g.Result
		if result == "" {
			result = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", g.ID, len(g.Moves), result, g.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
