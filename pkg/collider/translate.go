package collider

import "github.com/Faultbox/spritephys/pkg/geom"

// Translator maps image-space pixel coordinates (origin top-left, y down)
// to world space centered on the image midpoint with y up. A collider
// built through one Translator lines up with the same sprite rendered
// centered on its origin. This type is the single source of coordinate
// truth for the whole pipeline: polylines, heightfield samples and the
// physics bridge all go through it.
type Translator struct {
	W, H int
}

// ToWorld converts one image-space position:
//
//	worldX = x - W/2
//	worldY = H/2 - y
//
// Pure offset and y reflection, never a scale.
func (t Translator) ToWorld(x, y float64) geom.Vec2 {
	return geom.Vec2{
		X: x - float64(t.W)/2,
		Y: float64(t.H)/2 - y,
	}
}

// Ring converts a traced pixel polyline into a world-space polygon wound
// counter-clockwise. The y reflection flips the trace winding, so the ring
// is normalized by signed area rather than by reasoning about the trace
// direction.
func (t Translator) Ring(pl Polyline) geom.Polygon {
	ring := make(geom.Polygon, 0, len(pl))
	for _, p := range pl {
		ring = append(ring, t.ToWorld(float64(p.X), float64(p.Y)))
	}
	if ring.SignedArea() < 0 {
		ring.Reverse()
	}
	return ring
}
