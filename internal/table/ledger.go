package table

import (
	"fmt"

	"github.com/hailam/chesstable/internal/rules"
)

// Ledger records accepted moves in the order they were played.
type Ledger struct {
	moves []rules.Move
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds m at the end.
func (l *Ledger) Append(m rules.Move) {
	l.moves = append(l.moves, m)
}

// RemoveAt deletes and returns the move at i. It panics if i is out of range.
func (l *Ledger) RemoveAt(i int) rules.Move {
	if i < 0 || i >= len(l.moves) {
		panic(fmt.Sprintf("table: ledger index %d out of range [0,%d)", i, len(l.moves)))
	}
	m := l.moves[i]
	l.moves = append(l.moves[:i], l.moves[i+1:]...)
	return m
}

// RemoveValue deletes the first move equal to m and reports whether one was found.
func (l *Ledger) RemoveValue(m rules.Move) bool {
	for i, x := range l.moves {
		if x == m {
			l.RemoveAt(i)
			return true
		}
	}
	return false
}

// Size returns the number of recorded moves.
func (l *Ledger) Size() int {
	return len(l.moves)
}

// Clear removes every move.
func (l *Ledger) Clear() {
	l.moves = nil
}

// Moves returns a copy of the recorded moves.
func (l *Ledger) Moves() []rules.Move {
	out := make([]rules.Move, len(l.moves))
	copy(out, l.moves)
	return out
}

// UCI returns the moves as UCI strings.
func (l *Ledger) UCI() []string {
	out := make([]string, len(l.moves))
	for i, m := range l.moves {
		out[i] = m.String()
	}
	return out
}
