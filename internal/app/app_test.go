package app

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/hailam/chesstable/internal/config"
	"github.com/hailam/chesstable/internal/rules"
	"github.com/hailam/chesstable/internal/storage"
	"github.com/hailam/chesstable/internal/table"
)

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Storage.Dir = t.TempDir()
	return cfg
}

func play(c *table.Controller, moves ...string) {
	for _, s := range moves {
		m, err := rules.ParseMove(s)
		if err != nil {
			panic(err)
		}
		c.Primary(m.Source)
		c.Primary(m.Dest)
	}
}

func TestResumeRestoresLedgerAndPreferences(t *testing.T) {
	cfg := testConfig(t)
	logger := log.New(io.Discard)

	first, err := New(cfg, logger, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !first.Persistent() {
		t.Fatal("storage not opened")
	}
	play(first.Controller, "e2e4", "e7e5")
	first.Controller.FlipOrientation()
	first.Controller.ToggleLegalMoveHighlighting(true)
	id := first.GameID()
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := New(cfg, logger, Options{Resume: true})
	if err != nil {
		t.Fatal(err)
	}
	c := second.Controller
	if second.GameID() != id {
		t.Errorf("resumed game %s, want %s", second.GameID(), id)
	}
	if c.Ledger().Size() != 2 {
		t.Fatalf("ledger size = %d, want 2", c.Ledger().Size())
	}
	if c.Board().Tile(28).Occupant != (rules.Piece{Side: rules.Black, Kind: rules.Pawn}) {
		t.Error("e5 pawn missing after resume")
	}
	if c.Orientation() != table.Flipped {
		t.Error("orientation preference not restored")
	}
	if !c.HighlightLegalMoves() {
		t.Error("highlight preference not restored")
	}

	play(c, "g1f3")
	if err := second.Close(); err != nil {
		t.Fatal(err)
	}

	s, err := storage.Open(cfg.Storage.Dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	games, err := s.ListGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 {
		t.Fatalf("stored games = %d, want 1", len(games))
	}
	if got := games[0].Moves; len(got) != 3 || got[2] != "g1f3" {
		t.Errorf("stored moves = %v", got)
	}
}

func TestRejectedMovesAreNotStored(t *testing.T) {
	cfg := testConfig(t)
	a, err := New(cfg, log.New(io.Discard), Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	play(a.Controller, "e2e5", "e2e4", "e2e4")

	if a.Controller.Ledger().Size() != 1 {
		t.Errorf("ledger size = %d, want 1", a.Controller.Ledger().Size())
	}
	if len(a.record.Moves) != 1 || a.record.Moves[0] != "e2e4" {
		t.Errorf("record moves = %v", a.record.Moves)
	}
}

func TestFlagOverrides(t *testing.T) {
	cfg := testConfig(t)
	cfg.Board.HighlightLegalMoves = true
	flip, highlight := true, false

	a, err := New(cfg, log.New(io.Discard), Options{Flip: &flip, Highlight: &highlight})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	if a.Controller.Orientation() != table.Flipped {
		t.Error("--flip ignored")
	}
	if a.Controller.HighlightLegalMoves() {
		t.Error("--highlight=false ignored")
	}
}

func TestExplicitNoFlipOverridesStoredOrientation(t *testing.T) {
	cfg := testConfig(t)
	logger := log.New(io.Discard)

	first, err := New(cfg, logger, Options{})
	if err != nil {
		t.Fatal(err)
	}
	first.Controller.FlipOrientation()
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := New(cfg, logger, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if second.Controller.Orientation() != table.Flipped {
		t.Fatal("stored orientation not restored")
	}
	if err := second.Close(); err != nil {
		t.Fatal(err)
	}

	noFlip := false
	third, err := New(cfg, logger, Options{Flip: &noFlip})
	if err != nil {
		t.Fatal(err)
	}
	defer third.Close()
	if third.Controller.Orientation() != table.Normal {
		t.Error("--flip=false did not override the stored orientation")
	}
}

func TestNewGameClearsResumeTarget(t *testing.T) {
	cfg := testConfig(t)
	logger := log.New(io.Discard)

	first, err := New(cfg, logger, Options{})
	if err != nil {
		t.Fatal(err)
	}
	play(first.Controller, "e2e4")
	old := first.GameID()
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := New(cfg, logger, Options{Resume: true})
	if err != nil {
		t.Fatal(err)
	}
	if second.GameID() != old {
		t.Fatalf("resumed %s, want %s", second.GameID(), old)
	}
	second.NewGame()
	if err := second.Close(); err != nil {
		t.Fatal(err)
	}

	third, err := New(cfg, logger, Options{Resume: true})
	if err != nil {
		t.Fatal(err)
	}
	defer third.Close()
	if third.GameID() == old {
		t.Error("--resume returned to the abandoned game")
	}
	if third.Controller.Ledger().Size() != 0 {
		t.Errorf("ledger size = %d, want a fresh game", third.Controller.Ledger().Size())
	}
}

func TestStorageDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Disabled = true

	a, err := New(cfg, log.New(io.Discard), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if a.Persistent() {
		t.Error("storage opened while disabled")
	}
	play(a.Controller, "e2e4")
	if a.Controller.Ledger().Size() != 1 {
		t.Error("move not played without storage")
	}
	if err := a.Close(); err != nil {
		t.Error(err)
	}

	if _, err := New(cfg, log.New(io.Discard), Options{GameID: "abc"}); err == nil {
		t.Error("resuming without storage succeeded")
	}
}

func TestResumeUnknownGame(t *testing.T) {
	s, err := storage.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(testConfig(t), log.New(io.Discard), Options{Store: s, GameID: "missing"}); err == nil {
		t.Error("resuming an unknown game succeeded")
	}
}

func TestNewGameStartsNewRecord(t *testing.T) {
	a, err := New(testConfig(t), log.New(io.Discard), Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	play(a.Controller, "e2e4")
	before := a.GameID()
	a.NewGame()
	if a.GameID() == before {
		t.Error("new game kept the old id")
	}
	if a.Controller.Ledger().Size() != 0 {
		t.Error("ledger not cleared")
	}
}

func TestResult(t *testing.T) {
	mated, err := rules.BoardFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatal(err)
	}
	if got := result(mated); got != "0-1" {
		t.Errorf("result = %q, want 0-1", got)
	}
	if got := result(rules.StandardBoard()); got != "" {
		t.Errorf("result of a running game = %q", got)
	}
}

func TestSoundPreferencePersists(t *testing.T) {
	cfg := testConfig(t)
	logger := log.New(io.Discard)

	first, err := New(cfg, logger, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !first.SoundEnabled() {
		t.Fatal("sound off by default")
	}
	first.SetSoundEnabled(false)
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := New(cfg, logger, Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	if second.SoundEnabled() {
		t.Error("sound preference not restored")
	}
}
