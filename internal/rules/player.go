package rules

// MoveStatus is the outcome of an attempted move.
type MoveStatus uint8

const (
	Done MoveStatus = iota
	IllegalMove
	NotSideToMove
	GameFinished
)

// IsDone reports whether the move was accepted.
func (s MoveStatus) IsDone() bool {
	return s == Done
}

// String returns the status name.
func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "done"
	case IllegalMove:
		return "illegal move"
	case NotSideToMove:
		return "not side to move"
	case GameFinished:
		return "game finished"
	default:
		return "unknown"
	}
}

// MoveTransition is the result of Player.MakeMove. Board is set only when
// Status is Done.
type MoveTransition struct {
	Move   Move
	Status MoveStatus
	Board  *Board
}

// Player makes moves on behalf of one side of a board.
type Player struct {
	board *Board
	side  Side
}

// MakeMove attempts m and reports the resulting board.
func (p Player) MakeMove(m Move) MoveTransition {
	t := MoveTransition{Move: m}
	b := p.board

	switch {
	case b.Status() != InProgress:
		t.Status = GameFinished
		return t
	case !ValidIndex(m.Source) || !ValidIndex(m.Dest):
		t.Status = IllegalMove
		return t
	}

	src := b.Tile(m.Source)
	if src.Occupied && src.Occupant.Side != p.side {
		t.Status = NotSideToMove
		return t
	}

	cm := b.find(m)
	if cm == nil {
		t.Status = IllegalMove
		return t
	}

	t.Status = Done
	t.Board = &Board{pos: b.pos.Update(cm)}
	return t
}
