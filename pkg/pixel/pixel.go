// Package pixel provides the alpha-channel grid the collider pipeline reads.
// Images arrive here already decoded; the pipeline never touches files.
package pixel

import (
	"errors"
	"fmt"
	"image"
)

// Pixel grid errors.
var (
	ErrBadPixelBuffer = errors.New("pixel buffer size does not match dimensions")
	ErrBadDimensions  = errors.New("invalid image dimensions")
)

// Image is the read-only view the pipeline needs: dimensions and per-pixel
// alpha. Callers sharing one Image across concurrent extractions must treat
// it as immutable for the duration.
type Image interface {
	// Size returns width and height in pixels.
	Size() (w, h int)
	// AlphaAt returns the alpha value at (x, y), 0 transparent, 255 opaque.
	// Coordinates are image-space: origin top-left, y growing downward.
	AlphaAt(x, y int) uint8
}

// Grid is a row-major alpha buffer.
type Grid struct {
	W, H  int
	Alpha []uint8
}

// Size returns the grid dimensions.
func (g *Grid) Size() (int, int) {
	return g.W, g.H
}

// AlphaAt returns the alpha at (x, y). Out-of-bounds coordinates read as
// transparent.
func (g *Grid) AlphaAt(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.Alpha[y*g.W+x]
}

// FromImage extracts the alpha channel of a decoded image. Color models
// without an alpha channel (e.g. YCbCr) report full opacity everywhere, so
// such images produce a fully opaque grid.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	g := &Grid{W: w, H: h, Alpha: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			g.Alpha[y*w+x] = uint8(a >> 8)
		}
	}
	return g
}

// FromRGBA builds a grid from raw RGBA bytes, 4 per pixel, row-major.
func FromRGBA(w, h int, pix []byte) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	if len(pix) != w*h*4 {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d", ErrBadPixelBuffer, len(pix), w, h)
	}
	g := &Grid{W: w, H: h, Alpha: make([]uint8, w*h)}
	for i := range g.Alpha {
		g.Alpha[i] = pix[i*4+3]
	}
	return g, nil
}

// Opaque returns a fully opaque grid, useful for tests and for treating
// alpha-less sprites as solid rectangles.
func Opaque(w, h int) *Grid {
	g := &Grid{W: w, H: h, Alpha: make([]uint8, w*h)}
	for i := range g.Alpha {
		g.Alpha[i] = 255
	}
	return g
}
