package table

import (
	"testing"

	"github.com/hailam/chesstable/internal/rules"
)

type recordingView struct {
	frames []Frame
}

func (v *recordingView) Present(f Frame) {
	v.frames = append(v.frames, f)
}

func (v *recordingView) last() Frame {
	return v.frames[len(v.frames)-1]
}

func newTestController(opts ...Option) (*Controller, *Queue, *recordingView) {
	q := NewQueue()
	v := &recordingView{}
	opts = append([]Option{WithScheduler(q), WithView(v)}, opts...)
	return NewController(opts...), q, v
}

func TestPrimaryOnEmptyTileWhileIdle(t *testing.T) {
	c, q, _ := newTestController()
	before := c.Board()

	c.Primary(36) // e4, empty
	q.Drain()

	if c.Session().State() != Idle {
		t.Errorf("state = %s, want idle", c.Session().State())
	}
	if c.Board() != before {
		t.Error("board replaced by a click on an empty tile")
	}
	if c.Ledger().Size() != 0 {
		t.Error("ledger changed")
	}
}

func TestPrimaryArmsOccupiedTile(t *testing.T) {
	c, _, _ := newTestController()

	c.Primary(52)

	if c.Session().State() != SourceArmed {
		t.Fatalf("state = %s, want source armed", c.Session().State())
	}
	src, _ := c.Session().Source()
	if src != 52 {
		t.Errorf("source = %d, want 52", src)
	}
	p, ok := c.Session().Piece()
	if !ok || p != (rules.Piece{Side: rules.White, Kind: rules.Pawn}) {
		t.Errorf("piece = %v (%v), want white pawn", p, ok)
	}
}

func TestAcceptedMove(t *testing.T) {
	var heard []rules.MoveTransition
	c, q, v := newTestController(WithMoveListener(func(tr rules.MoveTransition) {
		heard = append(heard, tr)
	}))
	before := c.Board()

	c.Primary(52)
	c.Primary(36)
	q.Drain()

	if c.Board() == before {
		t.Fatal("board not replaced after e2e4")
	}
	if !c.Board().Tile(36).Occupied || c.Board().Tile(52).Occupied {
		t.Error("pawn did not move from e2 to e4")
	}
	if c.Ledger().Size() != 1 {
		t.Fatalf("ledger size = %d, want 1", c.Ledger().Size())
	}
	if got := c.Ledger().Moves()[0]; got != (rules.Move{Source: 52, Dest: 36}) {
		t.Errorf("ledger[0] = %s", got)
	}
	if c.Session().State() != Idle {
		t.Error("session not reset")
	}
	if len(heard) != 1 {
		t.Errorf("listener called %d times", len(heard))
	}
	f := v.last()
	if len(f.History) != 1 || f.History[0] != "e4" {
		t.Errorf("history = %v, want [e4]", f.History)
	}
	if f.SideToMove != rules.Black {
		t.Errorf("frame side to move = %s", f.SideToMove)
	}
}

func TestRejectedMoveIsDiscarded(t *testing.T) {
	tests := []struct {
		name     string
		src, dst int
	}{
		{"Illegal", 52, 28},      // e2e5
		{"SameTile", 52, 52},     // self cancel
		{"WrongSide", 12, 28},    // e7e5 with white to move
		{"OntoOwnPiece", 62, 52}, // Ng1 onto e2
		{"BlockedKing", 60, 44},  // Ke1-e3
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var heard int
			c, q, _ := newTestController(WithMoveListener(func(rules.MoveTransition) { heard++ }))
			before := c.Board()

			c.Primary(tc.src)
			c.Primary(tc.dst)
			q.Drain()

			if c.Board() != before {
				t.Error("board replaced")
			}
			if c.Ledger().Size() != 0 {
				t.Errorf("ledger size = %d", c.Ledger().Size())
			}
			if c.Session().State() != Idle {
				t.Error("session not reset after rejection")
			}
			if heard != 0 {
				t.Error("listener told about a rejected move")
			}
		})
	}
}

func TestCancel(t *testing.T) {
	c, q, v := newTestController()
	before := c.Board()

	c.Primary(52)
	q.Drain()
	if !v.last().Tiles[52].Selected {
		t.Fatal("armed tile not marked selected")
	}

	c.Cancel()
	q.Drain()

	if c.Session().State() != Idle {
		t.Error("cancel did not reset")
	}
	if c.Board() != before || c.Ledger().Size() != 0 {
		t.Error("cancel changed the game")
	}
	for _, tile := range v.last().Tiles {
		if tile.Selected {
			t.Errorf("tile %d still selected after cancel", tile.Index)
		}
	}

	c.Cancel()
	if c.Session().State() != Idle {
		t.Error("cancel while idle left idle")
	}
}

func TestLegalMovesQuery(t *testing.T) {
	t.Run("Idle", func(t *testing.T) {
		c, _, _ := newTestController()
		if got := c.LegalMoves(); len(got) != 0 {
			t.Errorf("idle legal moves = %v", got)
		}
	})

	t.Run("SideToMove", func(t *testing.T) {
		c, _, _ := newTestController()
		c.Primary(52)
		got := c.LegalMoves()
		if len(got) != 2 {
			t.Fatalf("legal moves = %v, want 2", got)
		}
		for _, m := range got {
			if m.Source != 52 {
				t.Errorf("move %s does not start at the armed tile", m)
			}
		}
	})

	t.Run("OpponentPiece", func(t *testing.T) {
		c, _, _ := newTestController()
		c.Primary(12)
		if c.Session().State() != SourceArmed {
			t.Fatal("opponent piece not armed")
		}
		if got := c.LegalMoves(); len(got) != 0 {
			t.Errorf("opponent piece legal moves = %v", got)
		}
	})

	t.Run("DoesNotMutate", func(t *testing.T) {
		c, q, _ := newTestController()
		c.Primary(52)
		q.Drain()
		before := c.Board()
		c.LegalMoves()
		if c.Board() != before || c.Session().State() != SourceArmed || q.Len() != 0 {
			t.Error("LegalMoves changed state")
		}
	})
}

func TestRedrawIsDeferred(t *testing.T) {
	c, q, v := newTestController()

	c.Primary(52)
	if len(v.frames) != 0 {
		t.Fatal("view painted inside the click handler")
	}
	if q.Len() != 1 {
		t.Fatalf("queued tasks = %d, want 1", q.Len())
	}

	c.Primary(36)
	if q.Len() != 1 {
		t.Errorf("redraws not coalesced: %d queued", q.Len())
	}

	q.Drain()
	if len(v.frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(v.frames))
	}
	if len(v.last().Tiles) != rules.NumTiles {
		t.Errorf("frame has %d tiles", len(v.last().Tiles))
	}

	c.Primary(36) // empty tile while idle still redraws
	if q.Len() != 1 {
		t.Error("no redraw scheduled for a no-op click")
	}
}

func TestRedrawIdempotent(t *testing.T) {
	c, _, v := newTestController(WithHighlight(true))
	c.Primary(57) // Nb1

	c.Redraw()
	c.Redraw()

	a, b := v.frames[0], v.frames[1]
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("tile %d differs between redraws: %+v vs %+v", i, a.Tiles[i], b.Tiles[i])
		}
	}
}

func TestFrameOrientation(t *testing.T) {
	c, q, v := newTestController()

	c.Redraw()
	normal := v.last()
	if normal.Tiles[0].Index != 0 || normal.Tiles[63].Index != 63 {
		t.Error("normal frame not in index order")
	}

	c.FlipOrientation()
	if c.Orientation() != Flipped {
		t.Fatal("orientation not flipped")
	}
	q.Drain()
	flipped := v.last()

	for slot, tile := range flipped.Tiles {
		if tile.Index != 63-slot {
			t.Fatalf("flipped slot %d shows tile %d", slot, tile.Index)
		}
		if tile.Slot != slot {
			t.Errorf("tile %d reports slot %d", tile.Index, tile.Slot)
		}
		if tile.Shade != normal.Tiles[tile.Index].Shade {
			t.Errorf("tile %d changed shade on flip", tile.Index)
		}
		if tile.Icon != normal.Tiles[tile.Index].Icon {
			t.Errorf("tile %d changed icon on flip", tile.Index)
		}
	}
	if flipped.Tiles[0].Icon != "wR" {
		t.Errorf("top-left when flipped = %q, want wR", flipped.Tiles[0].Icon)
	}

	c.FlipOrientation()
	q.Drain()
	if c.Orientation() != Normal || v.last().Tiles[0].Index != 0 {
		t.Error("double flip did not restore normal orientation")
	}
}

func TestHighlightMarkers(t *testing.T) {
	c, q, v := newTestController()

	c.Primary(52)
	q.Drain()
	for _, tile := range v.last().Tiles {
		if tile.Marker {
			t.Fatalf("marker on tile %d with highlighting off", tile.Index)
		}
	}

	c.ToggleLegalMoveHighlighting(true)
	if !c.HighlightLegalMoves() {
		t.Fatal("highlighting not enabled")
	}
	q.Drain()
	var marked []int
	for _, tile := range v.last().Tiles {
		if tile.Marker {
			marked = append(marked, tile.Index)
		}
	}
	if len(marked) != 2 || marked[0] != 36 || marked[1] != 44 {
		t.Errorf("marked tiles = %v, want [36 44]", marked)
	}
	if c.Session().State() != SourceArmed {
		t.Error("toggle reset the selection")
	}

	c.ToggleLegalMoveHighlighting(false)
	q.Drain()
	for _, tile := range v.last().Tiles {
		if tile.Marker {
			t.Fatalf("marker on tile %d after disabling", tile.Index)
		}
	}
}

func TestApplyExternalMove(t *testing.T) {
	c, q, v := newTestController()
	c.Primary(57)

	tr := c.ApplyExternalMove(rules.Move{Source: 52, Dest: 36})
	if !tr.Status.IsDone() {
		t.Fatalf("external e2e4 rejected: %s", tr.Status)
	}
	if c.Session().State() != Idle {
		t.Error("pending selection survived an external move")
	}
	if c.Ledger().Size() != 1 {
		t.Errorf("ledger size = %d", c.Ledger().Size())
	}

	before := c.Board()
	tr = c.ApplyExternalMove(rules.Move{Source: 52, Dest: 36})
	if tr.Status.IsDone() {
		t.Error("replaying e2e4 accepted")
	}
	if c.Board() != before || c.Ledger().Size() != 1 {
		t.Error("rejected external move changed the game")
	}

	q.Drain()
	if len(v.frames) != 1 {
		t.Errorf("frames = %d, want 1", len(v.frames))
	}
}

func TestNewGame(t *testing.T) {
	c, q, v := newTestController()
	c.Primary(52)
	c.Primary(36)
	c.Primary(12)

	c.NewGame()
	q.Drain()

	if c.Ledger().Size() != 0 {
		t.Error("ledger not cleared")
	}
	if c.Session().State() != Idle {
		t.Error("selection survived a new game")
	}
	if !c.Board().Tile(52).Occupied {
		t.Error("board not reset")
	}
	if len(v.last().History) != 0 {
		t.Errorf("history = %v", v.last().History)
	}
	if c.StartFEN() != rules.StandardBoard().FEN() {
		t.Errorf("start fen = %s", c.StartFEN())
	}
}

func TestPrimaryOutOfRangePanics(t *testing.T) {
	c, _, _ := newTestController()
	defer func() {
		if recover() == nil {
			t.Error("Primary(64) did not panic")
		}
	}()
	c.Primary(64)
}

func TestQueueDrainRunsNestedTasks(t *testing.T) {
	q := NewQueue()
	var order []int
	q.Post(func() {
		order = append(order, 1)
		q.Post(func() { order = append(order, 3) })
	})
	q.Post(func() { order = append(order, 2) })

	if n := q.Drain(); n != 3 {
		t.Errorf("Drain ran %d tasks, want 3", n)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v", order)
	}
	if q.Len() != 0 {
		t.Error("queue not empty after drain")
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		status rules.Status
		side   rules.Side
		want   string
	}{
		{rules.InProgress, rules.White, "White to move"},
		{rules.InProgress, rules.Black, "Black to move"},
		{rules.Checkmate, rules.White, "Checkmate, Black wins"},
		{rules.Stalemate, rules.Black, "Stalemate"},
	}
	for _, tc := range tests {
		if got := StatusLine(tc.status, tc.side); got != tc.want {
			t.Errorf("StatusLine(%s, %s) = %q, want %q", tc.status, tc.side, got, tc.want)
		}
	}
}

func TestHistoryFollowsLedger(t *testing.T) {
	c, _, _ := newTestController()
	for _, m := range []rules.Move{{Source: 52, Dest: 36}, {Source: 12, Dest: 28}, {Source: 62, Dest: 45}} {
		c.Primary(m.Source)
		c.Primary(m.Dest)
	}
	if got := c.Frame().History; len(got) != 3 || got[2] != "Nf3" {
		t.Fatalf("history = %v, want [e4 e5 Nf3]", got)
	}

	c.Ledger().RemoveAt(2)
	if got := c.Frame().History; len(got) != 2 || got[0] != "e4" || got[1] != "e5" {
		t.Errorf("after removing the last move history = %v, want [e4 e5]", got)
	}

	// With e4 gone, e7e5 no longer applies from the start position.
	c.Ledger().RemoveAt(0)
	if got := c.Frame().History; len(got) != 1 || got[0] != "e7e5" {
		t.Errorf("after removing the first move history = %v, want [e7e5]", got)
	}

	c.Ledger().Clear()
	if got := c.Frame().History; len(got) != 0 {
		t.Errorf("after clearing history = %v, want empty", got)
	}
}
