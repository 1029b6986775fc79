package collider

import (
	"math"

	"github.com/Faultbox/spritephys/pkg/geom"
)

// collinearEps is the cross-product magnitude below which three
// consecutive vertices count as collinear. Contour vertices sit on pixel
// centers, so genuine corners produce crosses of at least 1.
const collinearEps = 1e-9

// Decompose splits a closed world-space ring into convex polygons whose
// union covers the ring's interior. Traced rings of 8-connected regions
// can touch themselves at diagonal necks; the ring is first split into
// simple sub-rings at repeated vertices so no piece ever spans across a
// neck into empty space. Already-convex sub-rings pass through as a
// single polygon without subdivision; splitting a convex shape would
// change the collider's mass distribution for no benefit. Concave
// sub-rings are ear-clipped into triangles which are then greedily merged
// back into larger convex pieces (Hertel-Mehlhorn), each capped at
// maxVerts vertices (0 means uncapped). Pieces with fewer than 3 distinct
// vertices or area below minArea are dropped. All output is
// counter-clockwise.
func Decompose(ring geom.Polygon, minArea float64, maxVerts int) []geom.Polygon {
	var out, tris []geom.Polygon
	for _, sub := range splitSelfTouches(ring) {
		sub = dropDegenerate(sub)
		if len(sub) < 3 || sub.Area() < minArea {
			continue
		}
		if sub.SignedArea() < 0 {
			sub.Reverse()
		}
		if sub.IsConvex() {
			out = append(out, sub)
			continue
		}
		tris = append(tris, triangulate(sub)...)
	}

	for _, p := range mergeConvex(tris, maxVerts) {
		p = dropDegenerate(p)
		if len(p) >= 3 && p.Area() >= minArea {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// splitSelfTouches cuts a closed ring into simple sub-rings at repeated
// vertices. Boundary traces pass through every diagonal-neck pixel twice,
// so each touch point shows up as an exact coordinate repeat; the loop
// closed by the second visit is peeled off and the walk continues on the
// remainder. Out-and-back traversals peel off as two-vertex fragments
// that the caller's degeneracy filter discards. The input is not
// modified.
func splitSelfTouches(p geom.Polygon) []geom.Polygon {
	at := make(map[geom.Vec2]int, len(p))
	stack := make(geom.Polygon, 0, len(p))
	var subs []geom.Polygon
	for _, v := range p {
		j, ok := at[v]
		if !ok {
			at[v] = len(stack)
			stack = append(stack, v)
			continue
		}
		sub := make(geom.Polygon, len(stack)-j)
		copy(sub, stack[j:])
		subs = append(subs, sub)
		for _, w := range stack[j+1:] {
			delete(at, w)
		}
		stack = stack[:j+1]
	}
	return append(subs, stack)
}

// dropDegenerate removes consecutive duplicate vertices, an explicit
// closing vertex, and collinear (or spike) vertices. Nearly-collinear
// runs are collapsed before decomposition to keep the ear tests stable.
func dropDegenerate(p geom.Polygon) geom.Polygon {
	out := p[:0]
	for _, v := range p {
		if len(out) == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}

	for {
		removed := false
		for i := 0; len(out) > 3 && i < len(out); i++ {
			a := out[(i+len(out)-1)%len(out)]
			b := out[i]
			c := out[(i+1)%len(out)]
			if math.Abs(b.Sub(a).Cross(c.Sub(b))) <= collinearEps {
				out = append(out[:i], out[i+1:]...)
				removed = true
				i--
			}
		}
		if !removed {
			return out
		}
	}
}

// triangulate ear-clips a counter-clockwise simple ring into triangles.
// A simple ring always has a clean ear; if float noise ever hides every
// candidate, the most convex corner is clipped anyway so the walk
// terminates, and any zero-area slivers that produces are discarded.
func triangulate(p geom.Polygon) []geom.Polygon {
	n := len(p)
	if n < 3 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var tris []geom.Polygon
	emit := func(a, b, c geom.Vec2) {
		t := geom.Polygon{a, b, c}
		if t.SignedArea() > collinearEps {
			tris = append(tris, t)
		}
	}

	for len(idx) > 3 {
		ear := -1
		fallback, fallbackCross := 0, math.Inf(-1)
		for k := range idx {
			a := p[idx[(k+len(idx)-1)%len(idx)]]
			b := p[idx[k]]
			c := p[idx[(k+1)%len(idx)]]
			cross := b.Sub(a).Cross(c.Sub(b))
			if cross > fallbackCross {
				fallback, fallbackCross = k, cross
			}
			if cross <= collinearEps {
				continue // reflex or straight corner
			}
			if triangleClear(p, idx, k, a, b, c) {
				ear = k
				break
			}
		}
		if ear < 0 {
			ear = fallback
		}

		a := p[idx[(ear+len(idx)-1)%len(idx)]]
		b := p[idx[ear]]
		c := p[idx[(ear+1)%len(idx)]]
		emit(a, b, c)
		idx = append(idx[:ear], idx[ear+1:]...)
	}
	emit(p[idx[0]], p[idx[1]], p[idx[2]])
	return tris
}

// triangleClear reports whether no remaining vertex lies inside (or on)
// the candidate ear at position k.
func triangleClear(p geom.Polygon, idx []int, k int, a, b, c geom.Vec2) bool {
	for j, vi := range idx {
		if j == k || j == (k+len(idx)-1)%len(idx) || j == (k+1)%len(idx) {
			continue
		}
		if pointInTriangle(p[vi], a, b, c) {
			return false
		}
	}
	return true
}

// pointInTriangle tests containment in a counter-clockwise triangle,
// inclusive of edges.
func pointInTriangle(pt, a, b, c geom.Vec2) bool {
	return b.Sub(a).Cross(pt.Sub(a)) >= -collinearEps &&
		c.Sub(b).Cross(pt.Sub(b)) >= -collinearEps &&
		a.Sub(c).Cross(pt.Sub(c)) >= -collinearEps
}

// mergeConvex greedily merges pieces that share an edge whenever the
// union stays convex and within the vertex cap.
func mergeConvex(pieces []geom.Polygon, maxVerts int) []geom.Polygon {
	for {
		merged := false
	scan:
		for i := 0; i < len(pieces); i++ {
			for j := i + 1; j < len(pieces); j++ {
				m, ok := tryMerge(pieces[i], pieces[j], maxVerts)
				if !ok {
					continue
				}
				pieces[i] = m
				pieces = append(pieces[:j], pieces[j+1:]...)
				merged = true
				break scan
			}
		}
		if !merged {
			return pieces
		}
	}
}

// tryMerge splices two pieces along a shared edge. Vertices come from the
// same source ring, so exact float comparison identifies shared edges.
func tryMerge(a, b geom.Polygon, maxVerts int) (geom.Polygon, bool) {
	for i := 0; i < len(a); i++ {
		u, v := a[i], a[(i+1)%len(a)]
		for j := 0; j < len(b); j++ {
			if b[j] != v || b[(j+1)%len(b)] != u {
				continue
			}
			// a runs u→v, b runs v→u across the shared edge. Walk all of a
			// starting at v, then b's vertices strictly between u and v.
			out := make(geom.Polygon, 0, len(a)+len(b)-2)
			for k := 0; k < len(a); k++ {
				out = append(out, a[(i+1+k)%len(a)])
			}
			for k := 2; k < len(b); k++ {
				out = append(out, b[(j+k)%len(b)])
			}
			out = dropDegenerate(out)
			if len(out) < 3 || !out.IsConvex() {
				continue
			}
			if maxVerts > 0 && len(out) > maxVerts {
				continue
			}
			return out, true
		}
	}
	return nil, false
}
