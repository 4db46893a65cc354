package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a keyboard action on the table.
type Command uint8

const (
	CmdNone Command = iota
	CmdCancel
	CmdFlip
	CmdToggleHighlight
	CmdNewGame
)

// Gesture is a pointer action on a board tile.
type Gesture uint8

const (
	GestureNone Gesture = iota
	GesturePrimary
	GestureCancel
)

var keyBindings = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyEscape, CmdCancel},
	{ebiten.KeyBackspace, CmdCancel},
	{ebiten.KeyF, CmdFlip},
	{ebiten.KeyH, CmdToggleHighlight},
	{ebiten.KeyN, CmdNewGame},
}

// InputHandler samples mouse and keyboard once per tick and turns them into
// gestures and commands.
type InputHandler struct {
	x, y      int
	left      bool
	leftJust  bool
	rightJust bool
	cmd       Command
}

// NewInputHandler creates an input handler reading Ebitengine's input state.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update samples the input state. Call once per tick.
func (ih *InputHandler) Update() {
	ih.x, ih.y = ebiten.CursorPosition()
	ih.left = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	ih.leftJust = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.rightJust = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	ih.cmd = commandFor(inpututil.IsKeyJustPressed)
}

func commandFor(justPressed func(ebiten.Key) bool) Command {
	for _, b := range keyBindings {
		if justPressed(b.key) {
			return b.cmd
		}
	}
	return CmdNone
}

// Command returns the first bound key pressed this tick.
func (ih *InputHandler) Command() Command {
	return ih.cmd
}

// Gesture returns the board gesture of this tick. A right click wins over a
// left click in the same tick.
func (ih *InputHandler) Gesture() Gesture {
	switch {
	case ih.rightJust:
		return GestureCancel
	case ih.leftJust:
		return GesturePrimary
	}
	return GestureNone
}

// MousePosition returns the cursor position.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.x, ih.y
}

// IsLeftJustPressed reports a left click this tick.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJust
}

// IsLeftPressed reports whether the left button is held.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.left
}

// IsInBounds reports whether the cursor is inside the rectangle.
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return ih.x >= x && ih.x < x+w && ih.y >= y && ih.y < y+h
}
