package rules

import (
	"fmt"

	"github.com/notnil/chess"
)

// NumTiles is the number of tiles on the board.
const NumTiles = 64

// Tile is a single board location and whatever stands on it.
type Tile struct {
	Index    int
	Occupied bool
	Occupant Piece
}

// Status describes whether the game on a board can continue.
type Status uint8

const (
	InProgress Status = iota
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "In progress"
	}
}

// Board is an immutable position. Applying a move yields a new Board.
type Board struct {
	pos *chess.Position
}

// StandardBoard returns the initial chess position.
func StandardBoard() *Board {
	return &Board{pos: chess.NewGame().Position()}
}

// BoardFromFEN builds a board from a FEN string.
func BoardFromFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	return &Board{pos: chess.NewGame(opt).Position()}, nil
}

// ValidIndex reports whether i names a tile.
func ValidIndex(i int) bool {
	return i >= 0 && i < NumTiles
}

// IndexName returns the algebraic name of a tile, e.g. 52 -> "e2".
func IndexName(i int) string {
	return toSquare(i).String()
}

// IndexOf returns the tile index for an algebraic square name.
func IndexOf(name string) (int, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return 0, fmt.Errorf("%w: square %q", ErrBadMove, name)
	}
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	return (7-rank)*8 + file, nil
}

func toSquare(i int) chess.Square {
	if !ValidIndex(i) {
		panic(fmt.Sprintf("rules: tile index %d out of range", i))
	}
	row, file := i/8, i%8
	return chess.Square((7-row)*8 + file)
}

func fromSquare(sq chess.Square) int {
	return (7-int(sq.Rank()))*8 + int(sq.File())
}

// Tile returns the tile at index i. It panics if i is outside 0-63.
func (b *Board) Tile(i int) Tile {
	p := b.pos.Board().Piece(toSquare(i))
	if p == chess.NoPiece {
		return Tile{Index: i}
	}
	return Tile{
		Index:    i,
		Occupied: true,
		Occupant: Piece{Side: sideFromChess(p.Color()), Kind: kindFromChess(p.Type())},
	}
}

// Tiles returns all 64 tiles in index order.
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, NumTiles)
	for i := range tiles {
		tiles[i] = b.Tile(i)
	}
	return tiles
}

// SideToMove returns the side whose turn it is.
func (b *Board) SideToMove() Side {
	return sideFromChess(b.pos.Turn())
}

// Status reports checkmate or stalemate for the side to move.
func (b *Board) Status() Status {
	switch b.pos.Status() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	}
	return InProgress
}

// FEN returns the position in Forsyth-Edwards notation.
func (b *Board) FEN() string {
	return b.pos.String()
}

// LegalMoves returns the legal moves starting from tile i for the side to move.
// An empty or opponent-occupied tile has none.
func (b *Board) LegalMoves(i int) []Move {
	from := toSquare(i)
	var moves []Move
	for _, m := range b.pos.ValidMoves() {
		if m.S1() != from {
			continue
		}
		moves = append(moves, fromChessMove(m))
	}
	return moves
}

// CurrentPlayer returns the player whose turn it is on this board.
func (b *Board) CurrentPlayer() Player {
	return Player{board: b, side: b.SideToMove()}
}

// Notation returns the algebraic notation of m played from this board,
// falling back to UCI when m is not legal here.
func (b *Board) Notation(m Move) string {
	if cm := b.find(m); cm != nil {
		return chess.AlgebraicNotation{}.Encode(b.pos, cm)
	}
	return m.String()
}

func (b *Board) find(m Move) *chess.Move {
	for _, cm := range b.pos.ValidMoves() {
		if fromChessMove(cm) == m {
			return cm
		}
	}
	return nil
}
