package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// ErrBadMove is returned when a move string cannot be decoded.
var ErrBadMove = errors.New("rules: malformed move")

// Move is a source tile, a destination tile and an optional promotion kind.
// Moves are plain values and compare with ==.
type Move struct {
	Source    int
	Dest      int
	Promotion PieceKind
}

// CreateMove builds the move a user means by picking src then dst on b.
// A pawn reaching the last rank is promoted to a queen.
func CreateMove(b *Board, src, dst int) Move {
	m := Move{Source: src, Dest: dst}
	t := b.Tile(src)
	if !ValidIndex(dst) {
		panic(fmt.Sprintf("rules: tile index %d out of range", dst))
	}
	if t.Occupied && t.Occupant.Kind == Pawn {
		row := dst / 8
		if (t.Occupant.Side == White && row == 0) || (t.Occupant.Side == Black && row == 7) {
			m.Promotion = Queen
		}
	}
	return m
}

// String returns the move in UCI form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := IndexName(m.Source) + IndexName(m.Dest)
	if m.Promotion != NoKind {
		s += strings.ToLower(m.Promotion.Letter())
	}
	return s
}

// ParseMove decodes a UCI move string.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
	src, err := IndexOf(s[0:2])
	if err != nil {
		return Move{}, err
	}
	dst, err := IndexOf(s[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{Source: src, Dest: dst}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			m.Promotion = Queen
		case 'r':
			m.Promotion = Rook
		case 'b':
			m.Promotion = Bishop
		case 'n':
			m.Promotion = Knight
		default:
			return Move{}, fmt.Errorf("%w: promotion in %q", ErrBadMove, s)
		}
	}
	return m, nil
}

func fromChessMove(cm *chess.Move) Move {
	return Move{
		Source:    fromSquare(cm.S1()),
		Dest:      fromSquare(cm.S2()),
		Promotion: kindFromChess(cm.Promo()),
	}
}
