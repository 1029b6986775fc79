package geom

// Polygon is a closed ring of vertices. The closing edge from the last
// vertex back to the first is implicit.
type Polygon []Vec2

// SignedArea returns the shoelace area: positive for counter-clockwise
// rings (in a y-up coordinate space), negative for clockwise.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.Cross(b)
	}
	return sum / 2
}

// Area returns the absolute enclosed area.
func (p Polygon) Area() float64 {
	a := p.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// IsCounterClockwise reports whether the ring winds counter-clockwise.
func (p Polygon) IsCounterClockwise() bool {
	return p.SignedArea() > 0
}

// IsConvex reports whether the ring is convex. Collinear runs are
// tolerated; a ring with fewer than 3 vertices is not convex.
func (p Polygon) IsConvex() bool {
	n := len(p)
	if n < 3 {
		return false
	}
	var sign float64
	for i := range p {
		a := p[i]
		b := p[(i+1)%n]
		c := p[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if cross*sign < 0 {
			return false
		}
	}
	return true
}

// Centroid returns the area-weighted centroid. For degenerate rings with
// near-zero area it falls back to the vertex average.
func (p Polygon) Centroid() Vec2 {
	n := len(p)
	if n == 0 {
		return Vec2{}
	}
	var cx, cy, area float64
	for i, a := range p {
		b := p[(i+1)%n]
		cross := a.Cross(b)
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
		area += cross
	}
	if area == 0 {
		var avg Vec2
		for _, v := range p {
			avg = avg.Add(v)
		}
		return avg.Scale(1 / float64(n))
	}
	return Vec2{cx / (3 * area), cy / (3 * area)}
}

// Reverse flips the winding order in place.
func (p Polygon) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// Clone returns an independent copy of the ring.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}
