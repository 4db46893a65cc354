package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chesstable/internal/config"
	"github.com/hailam/chesstable/internal/rules"
	"github.com/hailam/chesstable/internal/table"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// ThemeFromPalette builds a theme from configured colours. The palette must
// already be validated.
func ThemeFromPalette(p config.PaletteConfig) *Theme {
	selected := config.MustColor(p.Selected)
	if selected.A == 255 {
		selected.A = 180 // translucent so the piece stays visible
	}
	return &Theme{
		LightSquare:    config.MustColor(p.Light),
		DarkSquare:     config.MustColor(p.Dark),
		SelectedSquare: selected,
		LegalMoveColor: config.MustColor(p.Marker),
		Background:     config.MustColor(p.Background),
		TextColor:      config.MustColor(p.Text),
	}
}

// Renderer draws frames produced by the table controller.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
}

// NewRenderer creates a new renderer.
func NewRenderer(squareSize int, theme *Theme, sprites *SpriteManager) *Renderer {
	return &Renderer{
		sprites:    sprites,
		theme:      theme,
		boardSize:  squareSize * 8,
		squareSize: squareSize,
	}
}

// DrawFrame draws every tile of f: shade, selection, piece and marker.
func (r *Renderer) DrawFrame(screen *ebiten.Image, f table.Frame) {
	sz := float32(r.squareSize)
	for _, t := range f.Tiles {
		x, y := r.SlotToScreen(t.Slot)
		fx, fy := float32(x), float32(y)

		c := r.theme.LightSquare
		if t.Shade == table.Dark {
			c = r.theme.DarkSquare
		}
		vector.DrawFilledRect(screen, fx, fy, sz, sz, c, false)

		if t.Selected {
			vector.DrawFilledRect(screen, fx, fy, sz, sz, r.theme.SelectedSquare, false)
		}
		if t.Icon != "" {
			r.sprites.DrawIconAt(screen, t.Icon, x, y)
		}
		if t.Marker {
			r.drawLegalMoveIndicator(screen, x, y)
		}
	}

	r.drawCoordinates(screen, f)
}

// drawLegalMoveIndicator draws the marker icon, or a plain dot when the icon is unavailable.
func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, x, y int) {
	if r.sprites.DrawIconAt(screen, table.MarkerIcon, x, y) {
		return
	}
	cx := float32(x) + float32(r.squareSize)/2
	cy := float32(y) + float32(r.squareSize)/2
	radius := float32(r.squareSize) * 0.15
	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, true)
}

// drawCoordinates labels the left column with ranks and the bottom row with files.
func (r *Renderer) drawCoordinates(screen *ebiten.Image, f table.Frame) {
	face := Face(Regular, coordinateSize(r.squareSize))
	if face == nil {
		return
	}
	for _, t := range f.Tiles {
		col, row := t.Slot%8, t.Slot/8
		if col != 0 && row != 7 {
			continue
		}
		name := rules.IndexName(t.Index)
		labelC := r.theme.LightSquare
		if t.Shade == table.Light {
			labelC = r.theme.DarkSquare
		}
		x, y := r.SlotToScreen(t.Slot)
		if col == 0 {
			drawText(screen, face, name[1:], x+3, y+2, labelC)
		}
		if row == 7 {
			w, h := MeasureText(name[:1], face)
			drawText(screen, face, name[:1], x+r.squareSize-int(w)-3, y+r.squareSize-int(h)-2, labelC)
		}
	}
}

// SlotToScreen converts a display slot to screen coordinates.
func (r *Renderer) SlotToScreen(slot int) (int, int) {
	return (slot % 8) * r.squareSize, (slot / 8) * r.squareSize
}

// ScreenToSlot converts screen coordinates to a display slot, or -1 off the board.
func (r *Renderer) ScreenToSlot(x, y int) int {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return -1
	}
	return (y/r.squareSize)*8 + x/r.squareSize
}

// BoardSize returns the board size in pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
