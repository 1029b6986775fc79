// Package collider converts sprite images with an alpha channel into 2D
// collision geometry: convex polygon sets for rigid bodies and heightfield
// profiles for terrain. The pipeline is pure and synchronous; every call
// reads its input image and returns fresh values.
package collider

import "github.com/Faultbox/spritephys/pkg/pixel"

// Mask is a binary occupancy grid: true means the pixel counts as solid.
type Mask struct {
	W, H  int
	cells []bool
}

// BuildMask derives the occupancy grid from an image's alpha channel.
// A pixel is solid when its alpha is strictly above threshold, so the
// zero threshold means "any alpha at all".
func BuildMask(img pixel.Image, threshold uint8) *Mask {
	w, h := img.Size()
	m := &Mask{W: w, H: h, cells: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.cells[y*w+x] = img.AlphaAt(x, y) > threshold
		}
	}
	return m
}

// Solid reports whether (x, y) is occupied. Out-of-bounds reads are empty,
// which lets the boundary tracer treat the image border uniformly.
func (m *Mask) Solid(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.cells[y*m.W+x]
}
