// Package ui implements the desktop chess table using Ebitengine.
package ui

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chesstable/internal/assets"
)

// SpriteManager holds rasterized icons keyed by icon id.
type SpriteManager struct {
	icons       map[string]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager rasterizes every icon in catalog at the given size.
// Icons that fail to load are logged and left out; tiles using them are
// drawn without an icon.
func NewSpriteManager(catalog *assets.Catalog, size int, logger *log.Logger) *SpriteManager {
	sm := &SpriteManager{
		icons:       make(map[string]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadIcons(catalog, logger)
	return sm
}

func (sm *SpriteManager) loadIcons(catalog *assets.Catalog, logger *log.Logger) {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, id := range assets.IDs() {
		img, err := catalog.Rasterize(id, renderSize)
		if err != nil {
			logger.Warn("icon unavailable", "icon", id, "error", err)
			continue
		}
		sm.icons[id] = ebiten.NewImageFromImage(img)
	}
}

// DrawIconAt draws icon id with its top-left corner at x, y and reports
// whether anything was drawn.
func (sm *SpriteManager) DrawIconAt(screen *ebiten.Image, id string, x, y int) bool {
	sprite := sm.icons[id]
	if sprite == nil {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
	return true
}
