package table

import "github.com/hailam/chesstable/internal/rules"

// SessionState is the phase of the two-click move selection.
type SessionState uint8

const (
	Idle SessionState = iota
	SourceArmed
)

// String returns the state name.
func (s SessionState) String() string {
	if s == SourceArmed {
		return "source armed"
	}
	return "idle"
}

// Session tracks the tile and piece picked by the first click of a move.
// The zero value is Idle.
type Session struct {
	source   int
	piece    rules.Piece
	armed    bool
	hasPiece bool
}

// State returns Idle or SourceArmed.
func (s *Session) State() SessionState {
	if s.armed {
		return SourceArmed
	}
	return Idle
}

// Source returns the armed source tile.
func (s *Session) Source() (int, bool) {
	return s.source, s.armed
}

// Piece returns the piece picked up with the source tile.
func (s *Session) Piece() (rules.Piece, bool) {
	return s.piece, s.hasPiece
}

// Reset returns the session to Idle.
func (s *Session) Reset() {
	*s = Session{}
}

// Select handles a primary click on tile t of b. The first click on an
// occupied tile arms it; a click on an empty tile while Idle does nothing.
// The second click yields the move to submit and resets the session,
// whatever the engine later makes of the move.
func (s *Session) Select(b *rules.Board, t int) (rules.Move, bool) {
	if !s.armed {
		tile := b.Tile(t)
		if !tile.Occupied {
			return rules.Move{}, false
		}
		s.source = t
		s.piece = tile.Occupant
		s.armed = true
		s.hasPiece = true
		return rules.Move{}, false
	}

	m := rules.CreateMove(b, s.source, t)
	s.Reset()
	return m, true
}
