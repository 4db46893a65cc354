// Package app wires configuration, persistence and the table controller
// together for the desktop and terminal front-ends.
package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/hailam/chesstable/internal/config"
	"github.com/hailam/chesstable/internal/rules"
	"github.com/hailam/chesstable/internal/storage"
	"github.com/hailam/chesstable/internal/table"
)

// Options are the per-run choices made on the command line.
type Options struct {
	// Flip and Highlight override config and stored preferences when set.
	Flip      *bool
	Highlight *bool

	// Resume continues the last game, GameID a specific one.
	Resume bool
	GameID string

	// Store replaces the database named by the config.
	Store *storage.Storage
}

// App is one running table.
type App struct {
	Config     config.Config
	Logger     *log.Logger
	Controller *table.Controller

	store     *storage.Storage
	prefs     *storage.Preferences
	record    *storage.GameRecord
	replaying bool
}

// New builds the table. Extra table options (view, scheduler, listeners) are
// passed through to the controller.
func New(cfg config.Config, logger *log.Logger, opts Options, extra ...table.Option) (*App, error) {
	a := &App{Config: cfg, Logger: logger, store: opts.Store}

	if a.store == nil && !cfg.Storage.Disabled {
		s, err := storage.Open(cfg.Storage.Dir)
		if err != nil {
			logger.Warn("could not open storage, continuing without persistence", "error", err)
		} else {
			a.store = s
		}
	}

	a.prefs = storage.DefaultPreferences()
	a.prefs.Orientation = cfg.Board.Orientation
	a.prefs.HighlightLegalMoves = cfg.Board.HighlightLegalMoves
	a.prefs.SoundEnabled = cfg.Board.Sound
	if a.store != nil {
		first, err := a.store.IsFirstLaunch()
		if err != nil {
			logger.Warn("could not read preferences", "error", err)
		} else if !first {
			if stored, err := a.store.LoadPreferences(); err != nil {
				logger.Warn("could not load preferences", "error", err)
			} else {
				a.prefs = stored
			}
		}
	}

	orientation, err := table.ParseOrientation(a.prefs.Orientation)
	if err != nil {
		logger.Warn("ignoring stored orientation", "error", err)
	}
	if opts.Flip != nil {
		orientation = table.Normal
		if *opts.Flip {
			orientation = table.Flipped
		}
	}
	highlight := a.prefs.HighlightLegalMoves
	if opts.Highlight != nil {
		highlight = *opts.Highlight
	}

	tableOpts := []table.Option{
		table.WithLogger(logger),
		table.WithOrientation(orientation),
		table.WithHighlight(highlight),
		table.WithMoveListener(a.recordMove),
	}
	a.Controller = table.NewController(append(tableOpts, extra...)...)

	gameID := opts.GameID
	if gameID == "" && opts.Resume {
		gameID = a.prefs.CurrentGame
	}
	if gameID != "" {
		if err := a.resume(gameID); err != nil {
			a.Close()
			return nil, err
		}
	} else {
		a.record = storage.NewGameRecord(a.Controller.StartFEN())
	}

	return a, nil
}

// Persistent reports whether games and preferences are being stored.
func (a *App) Persistent() bool {
	return a.store != nil
}

// SoundEnabled reports whether accepted moves should make a sound.
func (a *App) SoundEnabled() bool {
	return a.prefs.SoundEnabled
}

// SetSoundEnabled records the sound preference.
func (a *App) SetSoundEnabled(enabled bool) {
	a.prefs.SoundEnabled = enabled
}

// GameID returns the id of the game on the table.
func (a *App) GameID() string {
	return a.record.ID
}

// NewGame clears the table and starts a new stored game.
func (a *App) NewGame() {
	a.Controller.NewGame()
	a.record = storage.NewGameRecord(a.Controller.StartFEN())
	a.prefs.CurrentGame = ""
}

// Close stores preferences and closes the database.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	a.prefs.Orientation = a.Controller.Orientation().String()
	a.prefs.HighlightLegalMoves = a.Controller.HighlightLegalMoves()
	if a.record != nil && len(a.record.Moves) > 0 {
		a.prefs.CurrentGame = a.record.ID
	}
	err := a.store.SavePreferences(a.prefs)
	if cerr := a.store.Close(); err == nil {
		err = cerr
	}
	a.store = nil
	return err
}

func (a *App) resume(id string) error {
	if a.store == nil {
		return fmt.Errorf("resume game %s: storage unavailable", id)
	}
	rec, err := a.store.LoadGame(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) && a.prefs.CurrentGame == id {
			a.Logger.Warn("last game is gone, starting a new one", "game", id)
			a.record = storage.NewGameRecord(a.Controller.StartFEN())
			return nil
		}
		return err
	}

	board, err := rules.BoardFromFEN(rec.StartFEN)
	if err != nil {
		return fmt.Errorf("resume game %s: %w", id, err)
	}

	a.replaying = true
	defer func() { a.replaying = false }()

	a.Controller.Reset(board)
	played := 0
	for _, s := range rec.Moves {
		m, err := rules.ParseMove(s)
		if err != nil {
			a.Logger.Warn("stopping replay at unreadable move", "move", s, "error", err)
			break
		}
		if tr := a.Controller.ApplyExternalMove(m); !tr.Status.IsDone() {
			a.Logger.Warn("stopping replay at rejected move", "move", s, "status", tr.Status)
			break
		}
		played++
	}
	rec.Moves = rec.Moves[:played]
	a.record = rec
	a.Logger.Info("resumed game", "game", id, "moves", played)
	return nil
}

func (a *App) recordMove(tr rules.MoveTransition) {
	if a.replaying || a.record == nil {
		return
	}
	a.record.Moves = a.Controller.Ledger().UCI()
	a.record.Result = result(tr.Board)
	if a.store == nil {
		return
	}
	if err := a.store.SaveGame(a.record); err != nil {
		a.Logger.Warn("could not store move", "game", a.record.ID, "error", err)
	}
}

func result(b *rules.Board) string {
	switch b.Status() {
	case rules.Checkmate:
		if b.SideToMove() == rules.Black {
			return "1-0"
		}
		return "0-1"
	case rules.Stalemate:
		return "1/2-1/2"
	}
	return ""
}
