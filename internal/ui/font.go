package ui

import (
	"bytes"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle picks one of the bundled Go fonts.
type FontStyle uint8

const (
	Regular FontStyle = iota
	Bold
)

const (
	panelFontSize = 14.0
	titleFontSize = 16.0
)

type faceKey struct {
	style FontStyle
	size  float64
}

var (
	sources = map[FontStyle]*text.GoTextFaceSource{}
	faces   = map[faceKey]*text.GoTextFace{}
)

func init() {
	for style, ttf := range map[FontStyle][]byte{Regular: goregular.TTF, Bold: gobold.TTF} {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			log.Warn("failed to load font", "style", style, "error", err)
			continue
		}
		sources[style] = src
	}
}

// Face returns the face for style at size points. Bold falls back to regular,
// and nil is returned when no font loaded.
func Face(style FontStyle, size float64) *text.GoTextFace {
	src := sources[style]
	if src == nil {
		style, src = Regular, sources[Regular]
	}
	if src == nil {
		return nil
	}
	k := faceKey{style, size}
	if f, ok := faces[k]; ok {
		return f
	}
	f := &text.GoTextFace{Source: src, Size: size}
	faces[k] = f
	return f
}

// panelFace is the face used by panel widgets.
func panelFace() *text.GoTextFace {
	return Face(Regular, panelFontSize)
}

// coordinateSize scales coordinate labels with the tile: 11pt on 80px tiles.
func coordinateSize(tile int) float64 {
	return math.Max(8, math.Round(float64(tile)*0.14))
}

// MeasureText returns the width and height of s in face.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}

func drawText(screen *ebiten.Image, face *text.GoTextFace, s string, x, y int, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func drawTextCentered(screen *ebiten.Image, face *text.GoTextFace, s string, centerX, centerY int, c color.Color) {
	w, h := MeasureText(s, face)
	drawText(screen, face, s, centerX-int(w/2), centerY-int(h/2), c)
}
