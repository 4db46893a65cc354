package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chesstable/internal/rules"
)

// Panel dimensions
const (
	PanelWidth     = 260
	PanelPadding   = 20
	SectionSpacing = 28
	ButtonHeight   = 40
	SectionLabelH  = 20
	StatusBarH     = 70
	MinHeight      = 520
)

// Panel is the side panel with table controls and the move list.
type Panel struct {
	game   *Game
	x      int
	height int

	newGameBtn *Button
	flipBtn    *Button
	exitBtn    *Button
	highlight  *Checkbox
	sound      *Checkbox

	// Move history scroll
	scrollY    int
	maxScrollY int
}

// NewPanel creates the panel to the right of the board.
func NewPanel(g *Game, x, height int, highlight, sound bool) *Panel {
	p := &Panel{game: g, x: x, height: height}

	contentX := x + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	y := PanelPadding + 28
	p.newGameBtn = &Button{
		X: contentX, Y: y, W: contentW, H: ButtonHeight,
		Label: "New Game", Primary: true,
		OnClick: g.NewGameAction,
	}
	y += ButtonHeight + 8
	half := (contentW - 8) / 2
	p.flipBtn = &Button{
		X: contentX, Y: y, W: half, H: ButtonHeight - 6,
		Label:   "Flip Board",
		OnClick: g.FlipAction,
	}
	p.exitBtn = &Button{
		X: contentX + half + 8, Y: y, W: half, H: ButtonHeight - 6,
		Label:   "Exit",
		OnClick: g.ExitAction,
	}
	y += ButtonHeight + 6
	p.highlight = NewCheckbox(contentX, y, contentW, "Highlight Legal Moves", highlight, g.ToggleHighlightAction)
	y += 30
	p.sound = NewCheckbox(contentX, y, contentW, "Sound", sound, g.ToggleSoundAction)

	return p
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 && mx >= p.x && my >= p.historyStartY() && my < p.height-StatusBarH {
		p.scrollY -= int(wheelY * 30) // 30px per scroll tick
		p.scrollY = max(0, min(p.scrollY, p.maxScrollY))
	}

	handled := false
	for _, btn := range []*Button{p.newGameBtn, p.flipBtn, p.exitBtn} {
		if btn.Update(input) {
			handled = true
		}
	}
	for _, cb := range []*Checkbox{p.highlight, p.sound} {
		if cb.Update(input) {
			handled = true
		}
	}
	return handled
}

// SyncHighlight keeps the checkbox in step with the table.
func (p *Panel) SyncHighlight(enabled bool) {
	p.highlight.Checked = enabled
}

// AnyButtonHovered returns true if any control in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	return p.newGameBtn.hovered || p.flipBtn.hovered || p.exitBtn.hovered || p.highlight.hovered || p.sound.hovered
}

func (p *Panel) historyStartY() int {
	return p.sound.Y + 24 + SectionSpacing
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(p.x), 0, float32(PanelWidth), float32(p.height), panelBg, false)

	drawText(screen, Face(Bold, titleFontSize), "Chess Table", p.x+PanelPadding, PanelPadding, textPrimary)

	p.newGameBtn.Draw(screen)
	p.flipBtn.Draw(screen)
	p.exitBtn.Draw(screen)
	p.highlight.Draw(screen)
	p.sound.Draw(screen)

	historyY := p.historyStartY()
	drawText(screen, panelFace(), "Moves", p.x+PanelPadding, historyY, textMuted)
	p.drawMoveHistory(screen, historyY+SectionLabelH+4)

	p.drawStatusBar(screen)
}

func (p *Panel) drawMoveHistory(screen *ebiten.Image, startY int) {
	face := panelFace()
	moves := p.game.frame.History
	if len(moves) == 0 {
		drawText(screen, face, "No moves yet", p.x+PanelPadding, startY+5, textMuted)
		return
	}

	x := p.x + PanelPadding
	rowHeight := 22
	maxY := p.height - StatusBarH
	visibleHeight := maxY - startY

	totalRows := (len(moves) + 1) / 2
	contentHeight := totalRows * rowHeight
	p.maxScrollY = max(0, contentHeight-visibleHeight)
	p.scrollY = min(p.scrollY, p.maxScrollY)

	startRow := p.scrollY / rowHeight
	y := startY - (p.scrollY % rowHeight)

	for i := startRow * 2; i < len(moves); i += 2 {
		if y > maxY-rowHeight {
			break
		}
		if (i/2)%2 == 1 && y >= startY {
			vector.DrawFilledRect(screen, float32(x-4), float32(y-2),
				float32(PanelWidth-PanelPadding*2+8), float32(rowHeight), moveRowAlt, false)
		}
		if y >= startY {
			drawText(screen, face, fmt.Sprintf("%d.", i/2+1), x, y, textMuted)
			drawText(screen, face, moves[i], x+36, y, textPrimary)
			if i+1 < len(moves) {
				drawText(screen, face, moves[i+1], x+116, y, textPrimary)
			}
		}
		y += rowHeight
	}

	if p.maxScrollY > 0 {
		scrollPct := float32(p.scrollY) / float32(p.maxScrollY)
		indicatorH := max(20, float32(visibleHeight)*float32(visibleHeight)/float32(contentHeight))
		indicatorY := float32(startY) + scrollPct*(float32(visibleHeight)-indicatorH)
		vector.DrawFilledRect(screen, float32(p.x+PanelWidth-8), indicatorY, 4, indicatorH, textMuted, false)
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	face := panelFace()
	statusY := p.height - StatusBarH
	x := p.x + PanelPadding

	DrawDivider(screen, x, statusY-10, PanelWidth-PanelPadding*2)

	text, c := p.game.frame.StatusLine(), textPrimary
	if p.game.frame.Status != rules.InProgress {
		c = statusGameOver
	}
	drawText(screen, face, text, x, statusY, c)

	saved := "not saved"
	if p.game.app.Persistent() {
		id := p.game.app.GameID()
		saved = "game " + id[:min(8, len(id))]
	}
	drawText(screen, face, saved, x, statusY+22, textMuted)
}
