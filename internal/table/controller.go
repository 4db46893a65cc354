package table

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/hailam/chesstable/internal/rules"
)

// MoveListener is told about every accepted move.
type MoveListener func(tr rules.MoveTransition)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithView sets the view frames are presented to.
func WithView(v View) Option {
	return func(c *Controller) { c.view = v }
}

// WithScheduler sets the scheduler redraws are posted to.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithOrientation sets the initial orientation.
func WithOrientation(o Orientation) Option {
	return func(c *Controller) { c.orientation = o }
}

// WithHighlight sets whether legal destinations are marked.
func WithHighlight(enabled bool) Option {
	return func(c *Controller) { c.highlight = enabled }
}

// WithBoard sets the starting board.
func WithBoard(b *rules.Board) Option {
	return func(c *Controller) { c.board = b }
}

// WithMoveListener registers fn for accepted moves.
func WithMoveListener(fn MoveListener) Option {
	return func(c *Controller) { c.listeners = append(c.listeners, fn) }
}

// Controller owns the board shown on the table and everything needed to
// interact with it. It must be used from a single UI thread.
type Controller struct {
	board       *rules.Board
	start       *rules.Board
	startFEN    string
	orientation Orientation
	highlight   bool
	ledger      *Ledger
	session     Session

	view      View
	sched     Scheduler
	logger    *log.Logger
	listeners []MoveListener

	redrawPending bool
}

// NewController creates a controller on the standard starting board unless
// WithBoard says otherwise. Without WithScheduler redraws are held on a private
// Queue, which suits a controller with no view.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		ledger: NewLedger(),
		view:   nopView{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.board == nil {
		c.board = rules.StandardBoard()
	}
	if c.sched == nil {
		c.sched = NewQueue()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.start = c.board
	c.startFEN = c.board.FEN()
	return c
}

// Board returns the current board.
func (c *Controller) Board() *rules.Board { return c.board }

// StartFEN returns the position the current ledger starts from.
func (c *Controller) StartFEN() string { return c.startFEN }

// Orientation returns the current orientation.
func (c *Controller) Orientation() Orientation { return c.orientation }

// HighlightLegalMoves reports whether legal destinations are marked.
func (c *Controller) HighlightLegalMoves() bool { return c.highlight }

// Ledger returns the move ledger.
func (c *Controller) Ledger() *Ledger { return c.ledger }

// Session returns the selection state.
func (c *Controller) Session() *Session { return &c.session }

// Primary handles a primary click on tile index t.
func (c *Controller) Primary(t int) {
	checkIndex(t)
	if m, submit := c.session.Select(c.board, t); submit {
		c.submit(m)
	} else if src, armed := c.session.Source(); armed {
		c.logger.Debug("source armed", "tile", rules.IndexName(src))
	}
	c.scheduleRedraw()
}

// Cancel handles a secondary click: any pending selection is dropped.
func (c *Controller) Cancel() {
	c.session.Reset()
	c.scheduleRedraw()
}

// LegalMoves returns the legal moves of the armed piece, or none when nothing
// is armed or the armed piece does not belong to the side to move.
func (c *Controller) LegalMoves() []rules.Move {
	p, ok := c.session.Piece()
	if !ok || p.Side != c.board.SideToMove() {
		return nil
	}
	src, _ := c.session.Source()
	return c.board.LegalMoves(src)
}

// FlipOrientation swaps the orientation.
func (c *Controller) FlipOrientation() {
	c.SetOrientation(c.orientation.Opposite())
}

// SetOrientation sets the orientation.
func (c *Controller) SetOrientation(o Orientation) {
	c.orientation = o
	c.scheduleRedraw()
}

// ToggleLegalMoveHighlighting turns the legal-destination markers on or off.
func (c *Controller) ToggleLegalMoveHighlighting(enabled bool) {
	c.highlight = enabled
	c.scheduleRedraw()
}

// ApplyExternalMove submits m as if it had been clicked, dropping any pending
// selection.
func (c *Controller) ApplyExternalMove(m rules.Move) rules.MoveTransition {
	c.session.Reset()
	tr := c.submit(m)
	c.scheduleRedraw()
	return tr
}

// NewGame resets to the standard starting board.
func (c *Controller) NewGame() {
	c.Reset(rules.StandardBoard())
}

// Reset puts b on the table with an empty ledger.
func (c *Controller) Reset(b *rules.Board) {
	c.board = b
	c.start = b
	c.startFEN = b.FEN()
	c.ledger.Clear()
	c.session.Reset()
	c.logger.Info("new game", "fen", c.startFEN)
	c.scheduleRedraw()
}

// Redraw presents the current frame to the view.
func (c *Controller) Redraw() {
	c.view.Present(c.Frame())
}

// Frame builds the render pass for the current state.
func (c *Controller) Frame() Frame {
	marked := map[int]bool{}
	if c.highlight {
		for _, m := range c.LegalMoves() {
			marked[m.Dest] = true
		}
	}
	src, armed := c.session.Source()

	tiles := Traverse(c.orientation, c.board.Tiles())
	out := make([]TileRender, len(tiles))
	for slot, tile := range tiles {
		r := TileRender{
			Index:    tile.Index,
			Slot:     slot,
			Shade:    ShadeOf(tile.Index),
			Occupied: tile.Occupied,
			Selected: armed && tile.Index == src,
			Marker:   marked[tile.Index],
		}
		if tile.Occupied {
			r.Piece = tile.Occupant
			r.Icon = IconID(tile.Occupant)
		}
		out[slot] = r
	}

	return Frame{
		Tiles:       out,
		Orientation: c.orientation,
		SideToMove:  c.board.SideToMove(),
		Status:      c.board.Status(),
		History:     c.History(),
		Highlight:   c.highlight,
	}
}

// History returns the ledger in algebraic notation, replayed from the start
// position. Once a ledger entry no longer applies, it and every later entry
// are given in UCI form.
func (c *Controller) History() []string {
	moves := c.ledger.Moves()
	out := make([]string, 0, len(moves))
	b := c.start
	for _, m := range moves {
		if b == nil {
			out = append(out, m.String())
			continue
		}
		out = append(out, b.Notation(m))
		b = b.CurrentPlayer().MakeMove(m).Board
	}
	return out
}

func (c *Controller) submit(m rules.Move) rules.MoveTransition {
	tr := c.board.CurrentPlayer().MakeMove(m)
	if !tr.Status.IsDone() {
		c.logger.Debug("move rejected", "move", m, "status", tr.Status)
		return tr
	}

	notation := c.board.Notation(m)
	c.board = tr.Board
	c.ledger.Append(m)
	c.logger.Info("move", "san", notation, "uci", m, "ply", c.ledger.Size())

	for _, fn := range c.listeners {
		fn(tr)
	}
	return tr
}

func (c *Controller) scheduleRedraw() {
	if c.redrawPending {
		return
	}
	c.redrawPending = true
	c.sched.Post(func() {
		c.redrawPending = false
		c.Redraw()
	})
}
