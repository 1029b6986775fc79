package collider

// Point is an integer pixel coordinate, origin top-left, y growing downward.
type Point struct {
	X, Y int
}

// Polyline is an ordered closed loop of boundary pixels. The closing edge
// back to the first point is implicit.
type Polyline []Point

// Blob is one maximal 8-connected region of solid pixels together with its
// traced outer boundary. ID is the discovery order of the region in a
// left-to-right, top-to-bottom scan of the mask, so blob order is
// deterministic for a given image.
type Blob struct {
	ID      int
	Area    int // solid pixel count
	Outline Polyline
}

// Moore neighborhood in clockwise screen order, starting west.
var mooreOffsets = [8]Point{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

// TraceBlobs finds every 8-connected solid region in the mask and traces
// one closed boundary polyline around each. Regions smaller than
// minBlobArea pixels are discarded, as are regions whose trace encloses
// (near) zero area — isolated pixels and 1-pixel-wide slivers both die
// here rather than becoming degenerate colliders. An all-empty mask
// returns no blobs; that is a valid "no geometry" outcome, not an error.
//
// Only outer boundaries are traced. Holes inside a region are not emitted.
func TraceBlobs(m *Mask, minBlobArea int) []Blob {
	labels := make([]int, m.W*m.H)
	var blobs []Blob

	next := 1
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.Solid(x, y) || labels[y*m.W+x] != 0 {
				continue
			}
			// The scan finds each region at its topmost row first and the
			// leftmost pixel within that row, which is exactly the start
			// pixel Moore tracing wants.
			start := Point{x, y}
			area := flood(m, labels, next, start)
			next++

			if area < minBlobArea {
				continue
			}
			outline := traceBoundary(m, start)
			if len(outline) < 3 || pixelArea(outline) < 0.5 {
				continue
			}
			blobs = append(blobs, Blob{ID: len(blobs), Area: area, Outline: outline})
		}
	}
	return blobs
}

// flood labels the 8-connected region containing start and returns its
// pixel count.
func flood(m *Mask, labels []int, label int, start Point) int {
	stack := []Point{start}
	labels[start.Y*m.W+start.X] = label
	area := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		area++
		for _, d := range mooreOffsets {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !m.Solid(nx, ny) || labels[ny*m.W+nx] != 0 {
				continue
			}
			labels[ny*m.W+nx] = label
			stack = append(stack, Point{nx, ny})
		}
	}
	return area
}

// traceBoundary walks the outer boundary of the region containing start
// using Moore-neighbor tracing. start must be the region's topmost-leftmost
// pixel so the cell to its west is guaranteed empty. The walk scans each
// pixel's Moore neighborhood clockwise from the previous backtrack cell,
// which keeps the region interior on a fixed side throughout the trace.
// Termination follows Jacob's criterion: stop on re-entering the start
// pixel from the original backtrack cell.
func traceBoundary(m *Mask, start Point) Polyline {
	startBacktrack := Point{start.X - 1, start.Y}

	contour := Polyline{start}
	cur := start
	backtrack := startBacktrack

	// Jacob's criterion alone can cycle on 1-pixel-wide slivers, where the
	// walk re-enters start with a shifted backtrack. Tracking (pixel,
	// backtrack) states guarantees termination on any input.
	type state struct{ cur, back Point }
	seen := map[state]bool{{cur, backtrack}: true}

	for {
		// Index of the backtrack cell within cur's Moore neighborhood.
		from := 0
		for i, d := range mooreOffsets {
			if cur.X+d.X == backtrack.X && cur.Y+d.Y == backtrack.Y {
				from = i
				break
			}
		}

		found := false
		prev := backtrack
		for i := 1; i <= 8; i++ {
			d := mooreOffsets[(from+i)%8]
			n := Point{cur.X + d.X, cur.Y + d.Y}
			if m.Solid(n.X, n.Y) {
				if n == start && prev == startBacktrack {
					return contour
				}
				backtrack = prev
				cur = n
				contour = append(contour, n)
				found = true
				break
			}
			prev = n
		}
		if !found {
			// Isolated pixel: its whole neighborhood is empty.
			return contour
		}
		if seen[state{cur, backtrack}] {
			if len(contour) > 1 && contour[len(contour)-1] == contour[0] {
				contour = contour[:len(contour)-1]
			}
			return contour
		}
		seen[state{cur, backtrack}] = true
	}
}

// pixelArea is the shoelace area of a polyline over pixel centers. The
// sign is meaningless here (image space is y-down); callers only use the
// magnitude to reject slivers.
func pixelArea(pl Polyline) float64 {
	if len(pl) < 3 {
		return 0
	}
	sum := 0
	for i, a := range pl {
		b := pl[(i+1)%len(pl)]
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return float64(sum) / 2
}
