// Package rules adapts the notnil/chess engine to the tile-indexed board the table works with.
//
// Tiles are numbered 0-63 starting at a8 (top-left from White's side) and running
// left to right, top to bottom, so tile 63 is h1.
package rules

import "github.com/notnil/chess"

// Side identifies the owner of a piece or the player to move.
type Side uint8

const (
	White Side = iota
	Black
)

// Other returns the opposite side.
func (s Side) Other() Side {
	return s ^ 1
}

// String returns the side name.
func (s Side) String() string {
	if s == Black {
		return "Black"
	}
	return "White"
}

// Code returns the single letter used in icon ids ("w" or "b").
func (s Side) Code() string {
	if s == Black {
		return "b"
	}
	return "w"
}

// PieceKind is the type of a chess piece.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Letter returns the upper-case letter for the kind (P, N, B, R, Q, K).
func (k PieceKind) Letter() string {
	letters := [...]string{"", "P", "N", "B", "R", "Q", "K"}
	if int(k) >= len(letters) {
		return ""
	}
	return letters[k]
}

// Piece is a side and a kind.
type Piece struct {
	Side Side
	Kind PieceKind
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Side.String() + " " + p.Kind.String()
}

func sideFromChess(c chess.Color) Side {
	if c == chess.Black {
		return Black
	}
	return White
}

func kindFromChess(pt chess.PieceType) PieceKind {
	switch pt {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	}
	return NoKind
}
