package ui

import (
	"image/color"
	"slices"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chesstable/internal/config"
	"github.com/hailam/chesstable/internal/rules"
	"github.com/hailam/chesstable/internal/table"
)

func TestScreenToSlot(t *testing.T) {
	r := NewRenderer(80, ThemeFromPalette(config.Default().Palette), nil)

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{79, 79, 0},
		{80, 0, 1},
		{639, 0, 7},
		{0, 80, 8},
		{639, 639, 63},
		{640, 0, -1},
		{-1, 10, -1},
		{10, 640, -1},
	}
	for _, tc := range tests {
		if got := r.ScreenToSlot(tc.x, tc.y); got != tc.want {
			t.Errorf("ScreenToSlot(%d, %d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}

	for slot := 0; slot < rules.NumTiles; slot++ {
		x, y := r.SlotToScreen(slot)
		if got := r.ScreenToSlot(x+40, y+40); got != slot {
			t.Errorf("centre of slot %d maps to %d", slot, got)
		}
	}
}

func TestHitTestFollowsOrientation(t *testing.T) {
	c := table.NewController(table.WithOrientation(table.Flipped))
	f := c.Frame()
	r := NewRenderer(50, ThemeFromPalette(config.Default().Palette), nil)

	// Top-left corner of a flipped board is h1.
	slot := r.ScreenToSlot(5, 5)
	if got := rules.IndexName(f.Tiles[slot].Index); got != "h1" {
		t.Errorf("top-left of flipped board = %s, want h1", got)
	}
}

func TestThemeFromPalette(t *testing.T) {
	theme := ThemeFromPalette(config.Default().Palette)
	if theme.LightSquare != (color.RGBA{240, 217, 181, 255}) {
		t.Errorf("light square = %v", theme.LightSquare)
	}
	if theme.DarkSquare != (color.RGBA{181, 136, 99, 255}) {
		t.Errorf("dark square = %v", theme.DarkSquare)
	}
	if theme.SelectedSquare.A == 255 {
		t.Error("selection overlay is opaque")
	}
}

func TestToastExpiry(t *testing.T) {
	now := time.Unix(1000, 0)
	tm := NewToastManager(640)
	tm.now = func() time.Time { return now }

	tm.Show("one", ToastInfo)
	tm.Show("two", ToastInfo)
	tm.Show("three", ToastInfo)
	tm.Show("four", ToastWarning)
	if got := tm.Active(); len(got) != 3 || got[0] != "two" || got[2] != "four" {
		t.Fatalf("Active() = %v, want [two three four]", got)
	}

	now = now.Add(toastDuration)
	tm.Update()
	if got := tm.Active(); len(got) != 0 {
		t.Errorf("Active() after expiry = %v, want none", got)
	}

	var nilManager *ToastManager
	nilManager.Show("ignored", ToastInfo)
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		want    Command
	}{
		{"nothing", nil, CmdNone},
		{"escape", []ebiten.Key{ebiten.KeyEscape}, CmdCancel},
		{"backspace", []ebiten.Key{ebiten.KeyBackspace}, CmdCancel},
		{"flip", []ebiten.Key{ebiten.KeyF}, CmdFlip},
		{"highlight", []ebiten.Key{ebiten.KeyH}, CmdToggleHighlight},
		{"new game", []ebiten.Key{ebiten.KeyN}, CmdNewGame},
		{"unbound", []ebiten.Key{ebiten.KeyQ}, CmdNone},
		{"cancel wins", []ebiten.Key{ebiten.KeyN, ebiten.KeyEscape}, CmdCancel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := commandFor(func(k ebiten.Key) bool {
				return slices.Contains(tc.pressed, k)
			})
			if got != tc.want {
				t.Errorf("commandFor = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestGesture(t *testing.T) {
	ih := NewInputHandler()
	if ih.Gesture() != GestureNone {
		t.Error("idle input produced a gesture")
	}
	ih.leftJust = true
	if ih.Gesture() != GesturePrimary {
		t.Error("left click is not primary")
	}
	ih.rightJust = true
	if ih.Gesture() != GestureCancel {
		t.Error("right click does not cancel")
	}
}

func TestCoordinateSize(t *testing.T) {
	if got := coordinateSize(80); got != 11 {
		t.Errorf("coordinateSize(80) = %v, want 11", got)
	}
	if got := coordinateSize(16); got != 8 {
		t.Errorf("coordinateSize(16) = %v, want 8", got)
	}
}

func TestSynth(t *testing.T) {
	for st, v := range voices {
		pcm := synth(v)
		if want := int(sampleRate*v.duration) * 4; len(pcm) != want {
			t.Errorf("sound %d: %d bytes, want %d", st, len(pcm), want)
		}
		silent := true
		for _, b := range pcm {
			if b != 0 {
				silent = false
				break
			}
		}
		if silent {
			t.Errorf("sound %d is silent", st)
		}
	}

	chord := voices[SoundGameEnd]
	if e := envelope(chord, 0); e != 0 {
		t.Errorf("chord starts at %v, want 0", e)
	}
	if e := envelope(chord, chord.duration/2); e != 1 {
		t.Errorf("chord middle at %v, want 1", e)
	}
}
