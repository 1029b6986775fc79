package collider

import "github.com/Faultbox/spritephys/pkg/geom"

// Profile is a terrain silhouette sampled from an image: exactly one
// sample per pixel column. Each sample is the row index of the topmost
// solid pixel in that column (0 is the image's top row), so smaller
// values mean taller terrain. Columns with no solid pixel record Height,
// the row bound just past the bottom row, i.e. minimum terrain height.
type Profile struct {
	Samples   []float64
	CellWidth float64 // horizontal spacing between samples, in pixels
	Height    float64 // source image height; also the empty-column sentinel
}

// BuildProfile scans every column top to bottom for its first solid
// pixel. Single pass, no smoothing: the profile keeps the exact pixel
// silhouette of the source.
func BuildProfile(m *Mask) *Profile {
	p := &Profile{
		Samples:   make([]float64, m.W),
		CellWidth: 1,
		Height:    float64(m.H),
	}
	for x := 0; x < m.W; x++ {
		p.Samples[x] = p.Height
		for y := 0; y < m.H; y++ {
			if m.Solid(x, y) {
				p.Samples[x] = float64(y)
				break
			}
		}
	}
	return p
}

// WorldPoints returns the profile surface as world-space points, one per
// column, using the same centered y-up mapping as the polygon pipeline.
// Suitable for a physics engine's chain or heightfield collider.
func (p *Profile) WorldPoints() []geom.Vec2 {
	t := Translator{W: len(p.Samples), H: int(p.Height)}
	pts := make([]geom.Vec2, len(p.Samples))
	for x, s := range p.Samples {
		pts[x] = t.ToWorld(float64(x), s)
	}
	return pts
}
