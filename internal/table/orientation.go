// Package table implements the interactive chess board: orientation, the
// two-click move selection, the move ledger and the render pass that feeds a View.
package table

import (
	"fmt"
	"strings"

	"github.com/hailam/chesstable/internal/rules"
)

// Orientation decides which side of the board is drawn at the bottom.
type Orientation uint8

const (
	// Normal draws White at the bottom.
	Normal Orientation = iota
	// Flipped draws Black at the bottom.
	Flipped
)

// Opposite returns the other orientation.
func (o Orientation) Opposite() Orientation {
	if o == Flipped {
		return Normal
	}
	return Flipped
}

// String returns "normal" or "flipped".
func (o Orientation) String() string {
	if o == Flipped {
		return "flipped"
	}
	return "normal"
}

// ParseOrientation parses the String form.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "white":
		return Normal, nil
	case "flipped", "black":
		return Flipped, nil
	}
	return Normal, fmt.Errorf("unknown orientation %q", s)
}

// Traverse returns tiles in display order: unchanged for Normal, reversed
// into a new slice for Flipped.
func Traverse[T any](o Orientation, tiles []T) []T {
	if o != Flipped {
		return tiles
	}
	out := make([]T, len(tiles))
	for i, t := range tiles {
		out[len(tiles)-1-i] = t
	}
	return out
}

// Slot returns the display slot (0 = top-left) that shows tile index.
func (o Orientation) Slot(index int) int {
	checkIndex(index)
	if o == Flipped {
		return rules.NumTiles - 1 - index
	}
	return index
}

// Index returns the tile index shown at display slot.
func (o Orientation) Index(slot int) int {
	return o.Slot(slot)
}

func checkIndex(i int) {
	if !rules.ValidIndex(i) {
		panic(fmt.Sprintf("table: tile index %d out of range", i))
	}
}
