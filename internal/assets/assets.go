// Package assets loads piece and marker icons from SVG and rasterizes them.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/fs"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed pieces/*.svg marker.svg
var embedded embed.FS

// ErrUnknownIcon is returned for an id that names no icon.
var ErrUnknownIcon = errors.New("assets: unknown icon")

// MarkerID is the id of the legal-destination marker.
const MarkerID = "marker"

var pieceIDs = []string{
	"wP", "wN", "wB", "wR", "wQ", "wK",
	"bP", "bN", "bB", "bR", "bQ", "bK",
}

// IDs returns every icon id the catalog knows.
func IDs() []string {
	return append(append([]string(nil), pieceIDs...), MarkerID)
}

// Catalog reads icons from an optional directory, falling back to the
// embedded set for anything the directory does not have.
type Catalog struct {
	sources []fs.FS
}

// NewCatalog returns a catalog. An empty dir uses only the embedded icons.
// The directory layout mirrors the embedded one: pieces/wP.svg, marker.svg.
func NewCatalog(dir string) *Catalog {
	c := &Catalog{}
	if dir != "" {
		c.sources = append(c.sources, os.DirFS(dir))
	}
	c.sources = append(c.sources, embedded)
	return c
}

func iconPath(id string) (string, error) {
	if id == MarkerID {
		return "marker.svg", nil
	}
	for _, p := range pieceIDs {
		if p == id {
			return "pieces/" + id + ".svg", nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIcon, id)
}

// Read returns the SVG source of icon id.
func (c *Catalog) Read(id string) ([]byte, error) {
	name, err := iconPath(id)
	if err != nil {
		return nil, err
	}
	var lastErr error
	for _, src := range c.sources {
		data, err := fs.ReadFile(src, name)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("read icon %s: %w", name, lastErr)
}

// Rasterize renders icon id into a size×size image.
func (c *Catalog) Rasterize(id string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rasterize %s: invalid size %d", id, size)
	}
	data, err := c.Read(id)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse icon %s: %w", id, err)
	}
	if icon.ViewBox.W <= 0 {
		icon.ViewBox.W = float64(size)
	}
	if icon.ViewBox.H <= 0 {
		icon.ViewBox.H = float64(size)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
