package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}
	buttonBg        = color.RGBA{50, 54, 60, 255}
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}
	buttonPressedBg = color.RGBA{40, 44, 50, 255}
	buttonBorder    = color.RGBA{70, 75, 82, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	accentHover     = color.RGBA{96, 195, 140, 255}
	accentPressed   = color.RGBA{56, 155, 100, 255}
	widgetBg        = color.RGBA{48, 52, 58, 255}
	widgetBorder    = color.RGBA{68, 72, 78, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{160, 165, 175, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	dividerColor    = color.RGBA{60, 65, 72, 255}
	moveRowAlt      = color.RGBA{44, 48, 54, 255}
	statusGameOver  = color.RGBA{255, 200, 80, 255}
)

// Button is a clickable panel button.
type Button struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// Update tracks hover and press state and fires OnClick. It reports whether
// the click was consumed.
func (b *Button) Update(input *InputHandler) bool {
	b.hovered = input.IsInBounds(b.X, b.Y, b.W, b.H)
	b.pressed = input.IsLeftPressed() && b.hovered

	if input.IsLeftJustPressed() && b.hovered && b.OnClick != nil {
		b.OnClick()
		return true
	}
	return false
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	bgColor, borderC, textC := buttonBg, buttonBorder, textSecondary
	if b.Primary {
		bgColor, borderC, textC = accentColor, accentPressed, textPrimary
	}
	switch {
	case b.pressed && b.Primary:
		bgColor = accentPressed
	case b.pressed:
		bgColor = buttonPressedBg
	case b.hovered && b.Primary:
		bgColor = accentHover
		borderC = color.RGBA{116, 215, 160, 255}
	case b.hovered:
		bgColor = buttonHoverBg
		borderC = accentColor
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bgColor, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, borderC, false)
	drawTextCentered(screen, panelFace(), b.Label, b.X+b.W/2, b.Y+b.H/2, textC)
}

// Checkbox is a toggleable checkbox widget.
type Checkbox struct {
	X, Y, W  int
	Label    string
	Checked  bool
	OnChange func(checked bool)
	hovered  bool
}

// NewCheckbox creates a new checkbox.
func NewCheckbox(x, y, w int, label string, checked bool, onChange func(bool)) *Checkbox {
	return &Checkbox{
		X:        x,
		Y:        y,
		W:        w,
		Label:    label,
		Checked:  checked,
		OnChange: onChange,
	}
}

// Update handles checkbox input.
func (cb *Checkbox) Update(input *InputHandler) bool {
	cb.hovered = input.IsInBounds(cb.X, cb.Y, cb.W, 24)

	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		if cb.OnChange != nil {
			cb.OnChange(cb.Checked)
		}
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	face := panelFace()
	if face == nil {
		return
	}

	boxX := float32(cb.X)
	boxY := float32(cb.Y)
	boxSize := float32(20)

	bgColor := widgetBg
	if cb.hovered {
		bgColor = buttonHoverBg
	}
	vector.DrawFilledRect(screen, boxX, boxY, boxSize, boxSize, bgColor, false)

	borderC := widgetBorder
	if cb.hovered || cb.Checked {
		borderC = accentColor
	}
	vector.StrokeRect(screen, boxX, boxY, boxSize, boxSize, 2, borderC, false)

	if cb.Checked {
		vector.StrokeLine(screen, boxX+4, boxY+10, boxX+8, boxY+14, 2, accentColor, false)
		vector.StrokeLine(screen, boxX+8, boxY+14, boxX+16, boxY+6, 2, accentColor, false)
	}

	textColor := textSecondary
	if cb.Checked {
		textColor = textPrimary
	}
	_, h := MeasureText(cb.Label, face)
	drawText(screen, face, cb.Label, cb.X+30, cb.Y+10-int(h/2), textColor)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, dividerColor, false)
}
