package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToastKind selects a toast's colours.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastWarning
	ToastSuccess
)

const (
	toastDuration = 2500 * time.Millisecond
	toastFade     = 200 * time.Millisecond
	toastMax      = 3
)

// Toast is a short notice drawn over the board.
type Toast struct {
	Message string
	Kind    ToastKind
	Start   time.Time
}

// ToastManager keeps the active toasts, newest last.
type ToastManager struct {
	toasts []Toast
	width  int
	now    func() time.Time
}

// NewToastManager creates a manager that centres toasts over width pixels.
func NewToastManager(width int) *ToastManager {
	return &ToastManager{width: width, now: time.Now}
}

// Show queues a toast, dropping the oldest when the stack is full. It is a
// no-op on a nil manager.
func (tm *ToastManager) Show(message string, kind ToastKind) {
	if tm == nil {
		return
	}
	tm.toasts = append(tm.toasts, Toast{Message: message, Kind: kind, Start: tm.now()})
	if len(tm.toasts) > toastMax {
		tm.toasts = tm.toasts[len(tm.toasts)-toastMax:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := tm.now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.Start) < toastDuration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Active returns the messages currently shown.
func (tm *ToastManager) Active() []string {
	out := make([]string, len(tm.toasts))
	for i, t := range tm.toasts {
		out[i] = t.Message
	}
	return out
}

func (tm *ToastManager) alpha(t Toast) float64 {
	elapsed := tm.now().Sub(t.Start)
	switch {
	case elapsed < toastFade:
		return float64(elapsed) / float64(toastFade)
	case elapsed > toastDuration-toastFade:
		return float64(toastDuration-elapsed) / float64(toastFade)
	}
	return 1
}

// Draw renders the active toasts.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := panelFace()
	if face == nil {
		return
	}

	y := 50.0
	for _, t := range tm.toasts {
		a := max(0, min(1, tm.alpha(t)))

		bg := color.RGBA{50, 100, 150, uint8(220 * a)}
		fg := color.RGBA{255, 255, 255, uint8(255 * a)}
		switch t.Kind {
		case ToastWarning:
			bg = color.RGBA{180, 140, 20, uint8(220 * a)}
			fg = color.RGBA{40, 30, 0, uint8(255 * a)}
		case ToastSuccess:
			bg = color.RGBA{50, 150, 50, uint8(220 * a)}
		}

		w, h := MeasureText(t.Message, face)
		padding := 12.0
		boxW, boxH := w+padding*2, h+padding*2
		x := float64(tm.width)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}
