package table

import (
	"fmt"

	"github.com/hailam/chesstable/internal/rules"
)

// Shade is the colour class of a tile.
type Shade uint8

const (
	Light Shade = iota
	Dark
)

// ShadeOf returns the shade of tile index. It depends only on the index, so a
// tile keeps its colour when the board is flipped.
func ShadeOf(index int) Shade {
	row := index / 8
	if (row%2 == 0) == (index%2 == 0) {
		return Light
	}
	return Dark
}

// MarkerIcon is the icon id of the legal-destination marker.
const MarkerIcon = "marker"

// IconID returns the asset id for p, e.g. "wP" or "bK".
func IconID(p rules.Piece) string {
	return p.Side.Code() + p.Kind.Letter()
}

// TileRender is everything a View needs to draw one tile.
type TileRender struct {
	Index    int // absolute tile index
	Slot     int // display position, 0 = top-left
	Shade    Shade
	Occupied bool
	Piece    rules.Piece
	Icon     string // empty when unoccupied
	Selected bool   // armed source tile
	Marker   bool   // legal destination of the armed piece
}

// Frame is one complete render pass.
type Frame struct {
	Tiles       []TileRender // always 64, in slot order
	Orientation Orientation
	SideToMove  rules.Side
	Status      rules.Status
	History     []string // algebraic notation of the ledger
	Highlight   bool
}

// StatusLine describes the game state, e.g. "White to move".
func (f Frame) StatusLine() string {
	return StatusLine(f.Status, f.SideToMove)
}

// StatusLine describes a game in status with side to move.
func StatusLine(status rules.Status, side rules.Side) string {
	switch status {
	case rules.Checkmate:
		return fmt.Sprintf("Checkmate, %s wins", side.Other())
	case rules.Stalemate:
		return "Stalemate"
	}
	return fmt.Sprintf("%s to move", side)
}

// View presents frames. Implementations draw, they never call back into the
// controller from Present.
type View interface {
	Present(f Frame)
}

// ViewFunc adapts a function to View.
type ViewFunc func(f Frame)

// Present calls f(frame).
func (f ViewFunc) Present(frame Frame) {
	f(frame)
}

type nopView struct{}

func (nopView) Present(Frame) {}
