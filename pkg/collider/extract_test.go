package collider

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/Faultbox/spritephys/pkg/geom"
	"github.com/Faultbox/spritephys/pkg/pixel"
)

func TestZeroSizeImageFailsFast(t *testing.T) {
	empty := &pixel.Grid{W: 0, H: 0}

	if _, err := SingleConvexCollider(empty); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("SingleConvexCollider() error = %v, want ErrEmptyImage", err)
	}
	if _, err := MultiConvexColliders(empty); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("MultiConvexColliders() error = %v, want ErrEmptyImage", err)
	}
	if _, err := BoundaryGroups(empty); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("BoundaryGroups() error = %v, want ErrEmptyImage", err)
	}
	if _, err := Heightfield(empty); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Heightfield() error = %v, want ErrEmptyImage", err)
	}
}

func TestTransparentImageYieldsEmptyResults(t *testing.T) {
	g := art(t,
		"....",
		"....",
		"....",
	)

	polys, err := SingleConvexCollider(g)
	if err != nil || len(polys) != 0 {
		t.Errorf("SingleConvexCollider() = %v, %v, want empty, nil", polys, err)
	}
	groups, err := MultiConvexColliders(g)
	if err != nil || len(groups) != 0 {
		t.Errorf("MultiConvexColliders() = %v, %v, want empty, nil", groups, err)
	}
	rings, err := BoundaryGroups(g)
	if err != nil || len(rings) != 0 {
		t.Errorf("BoundaryGroups() = %v, %v, want empty, nil", rings, err)
	}
	profile, err := Heightfield(g)
	if err != nil {
		t.Fatalf("Heightfield() error = %v", err)
	}
	for x, s := range profile.Samples {
		if s != profile.Height {
			t.Errorf("sample[%d] = %v, want sentinel %v", x, s, profile.Height)
		}
	}
}

func TestBoundaryGroupsMinimumPoints(t *testing.T) {
	g := art(t,
		"XXXX.XXXX",
		"XXXX.XX..",
		"XXXX.XXXX",
	)
	rings, err := BoundaryGroups(g)
	if err != nil {
		t.Fatalf("BoundaryGroups() error = %v", err)
	}
	if len(rings) == 0 {
		t.Fatal("BoundaryGroups() found nothing in an opaque image")
	}
	for i, r := range rings {
		if len(r) < 3 {
			t.Errorf("ring %d has %d points, want at least 3", i, len(r))
		}
	}
}

func TestWindingAndConvexity(t *testing.T) {
	g := art(t,
		"XXXX..XXXX",
		"XXXX..X...",
		"XX....XXXX",
		"XX....XXXX",
	)
	rings, err := BoundaryGroups(g)
	if err != nil {
		t.Fatalf("BoundaryGroups() error = %v", err)
	}
	for i, r := range rings {
		if !r.IsCounterClockwise() {
			t.Errorf("boundary ring %d is not counter-clockwise", i)
		}
	}

	groups, err := MultiConvexColliders(g)
	if err != nil {
		t.Fatalf("MultiConvexColliders() error = %v", err)
	}
	for gi, group := range groups {
		for pi, p := range group {
			if !p.IsConvex() {
				t.Errorf("group %d piece %d is not convex: %v", gi, pi, p)
			}
			if !p.IsCounterClockwise() {
				t.Errorf("group %d piece %d is not counter-clockwise", gi, pi)
			}
		}
	}
}

func TestAreaPreservation(t *testing.T) {
	// Concave blob: decomposed pieces must cover the traced ring's area.
	g := art(t,
		"XXXXXX",
		"XXXXXX",
		"XX....",
		"XX....",
	)
	rings, err := BoundaryGroups(g)
	if err != nil || len(rings) != 1 {
		t.Fatalf("BoundaryGroups() = %d rings, %v, want 1 ring", len(rings), err)
	}
	polys, err := SingleConvexCollider(g)
	if err != nil {
		t.Fatalf("SingleConvexCollider() error = %v", err)
	}
	var total float64
	for _, p := range polys {
		total += p.Area()
	}
	ringArea := rings[0].Area()
	if math.Abs(total-ringArea)/ringArea > 0.005 {
		t.Errorf("decomposed area %v vs traced area %v, want within 0.5%%", total, ringArea)
	}
}

func TestAreaPreservationDiagonalNeck(t *testing.T) {
	// One 8-connected blob whose trace touches itself at the neck. The
	// decomposition must cover exactly the two blocks, with nothing
	// spilling into the transparent quadrants.
	g := art(t,
		"XXXX....",
		"XXXX....",
		"XXXX....",
		"....XXXX",
		"....XXXX",
		"....XXXX",
	)
	rings, err := BoundaryGroups(g)
	if err != nil || len(rings) != 1 {
		t.Fatalf("BoundaryGroups() = %d rings, %v, want 1 ring", len(rings), err)
	}
	polys, err := SingleConvexCollider(g)
	if err != nil {
		t.Fatalf("SingleConvexCollider() error = %v", err)
	}

	var total float64
	for i, p := range polys {
		total += p.Area()
		// Centers of the transparent quadrants in world space.
		for _, pt := range []geom.Vec2{{X: 1, Y: 2}, {X: -3, Y: -1}} {
			if pieceContains(p, pt) {
				t.Errorf("piece %d = %v covers transparent space at %v", i, p, pt)
			}
		}
	}
	ringArea := rings[0].Area()
	if math.Abs(total-ringArea)/ringArea > 0.005 {
		t.Errorf("decomposed area %v vs traced area %v, want within 0.5%%", total, ringArea)
	}
}

func TestIdempotence(t *testing.T) {
	g := art(t,
		"XXX.XXXX",
		"XXX.XXXX",
		"XX......",
	)
	a1, err := MultiConvexColliders(g)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := MultiConvexColliders(g)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a1, a2) {
		t.Error("MultiConvexColliders() is not deterministic for identical input")
	}

	h1, _ := Heightfield(g)
	h2, _ := Heightfield(g)
	if !reflect.DeepEqual(h1, h2) {
		t.Error("Heightfield() is not deterministic for identical input")
	}
}

func TestSingleConvexUsesLargestBlob(t *testing.T) {
	// Speck on the left, dominant shape on the right: the speck must not
	// influence the single-collider output.
	g := art(t,
		"XX..XXXX",
		"XX..XXXX",
		"....XXXX",
		"....XXXX",
	)
	polys, err := SingleConvexCollider(g)
	if err != nil {
		t.Fatalf("SingleConvexCollider() error = %v", err)
	}
	if len(polys) != 1 {
		t.Fatalf("SingleConvexCollider() = %d polygons, want 1 (a convex square)", len(polys))
	}
	// The 4x4 square spans pixel centers x 4..7 → world x 0.5 ± 1.5.
	c := polys[0].Centroid()
	if math.Abs(c.X-1.5) > 1e-9 {
		t.Errorf("collider centroid X = %v, want 1.5 (the large blob)", c.X)
	}
}

func TestScenarioThreeByThreeWithHole(t *testing.T) {
	g := art(t,
		"XXX",
		"X.X",
		"XXX",
	)
	rings, err := BoundaryGroups(g)
	if err != nil {
		t.Fatalf("BoundaryGroups() error = %v", err)
	}
	if len(rings) != 1 {
		t.Fatalf("BoundaryGroups() = %d rings, want 1 (hole not emitted)", len(rings))
	}
	// Pixel centers of the border span a 2x2 world square.
	if got := rings[0].Area(); got != 4 {
		t.Errorf("ring area = %v, want 4", got)
	}
}

func TestScenarioTwoDisjointSquares(t *testing.T) {
	g := art(t,
		"XXXX.XXXX",
		"XXXX.XXXX",
		"XXXX.XXXX",
		"XXXX.XXXX",
	)
	groups, err := MultiConvexColliders(g)
	if err != nil {
		t.Fatalf("MultiConvexColliders() error = %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("MultiConvexColliders() = %d groups, want 2", len(groups))
	}
	for i, group := range groups {
		if len(group) != 1 {
			t.Errorf("group %d has %d pieces, want 1 (squares are convex)", i, len(group))
		}
	}
}

func TestScenarioFlatHeightfield(t *testing.T) {
	g := art(t, "XXXXXXXXXX")
	p, err := Heightfield(g)
	if err != nil {
		t.Fatalf("Heightfield() error = %v", err)
	}
	if len(p.Samples) != 10 {
		t.Fatalf("Heightfield() = %d samples, want 10", len(p.Samples))
	}
	for x, s := range p.Samples {
		if s != 0 {
			t.Errorf("sample[%d] = %v, want 0 (topmost row)", x, s)
		}
	}
}

func TestHeightfieldCompleteness(t *testing.T) {
	g := art(t,
		".X.X.XX",
		"XX...XX",
		"...X.XX",
	)
	p, err := Heightfield(g)
	if err != nil {
		t.Fatalf("Heightfield() error = %v", err)
	}
	w, h := g.Size()
	if len(p.Samples) != w {
		t.Fatalf("Heightfield() = %d samples, want %d", len(p.Samples), w)
	}
	for x, s := range p.Samples {
		if s < 0 || s > float64(h) {
			t.Errorf("sample[%d] = %v, want within [0,%d]", x, s, h)
		}
	}
}

func TestAlphaThresholdOption(t *testing.T) {
	g := &pixel.Grid{W: 3, H: 3, Alpha: []uint8{
		100, 100, 100,
		100, 100, 100,
		100, 100, 100,
	}}
	rings, err := BoundaryGroups(g)
	if err != nil || len(rings) != 1 {
		t.Fatalf("default threshold: %d rings, %v, want 1", len(rings), err)
	}
	rings, err = BoundaryGroups(g, WithAlphaThreshold(128))
	if err != nil || len(rings) != 0 {
		t.Errorf("threshold 128: %d rings, %v, want 0", len(rings), err)
	}
}

func TestExtractKinds(t *testing.T) {
	g := art(t,
		"XXXX",
		"XXXX",
		"XXXX",
	)

	single, err := Extract(g, KindConvex)
	if err != nil {
		t.Fatal(err)
	}
	if single.Kind != KindConvex || len(single.Convex) == 0 {
		t.Errorf("Extract(KindConvex) = %+v, want populated Convex", single)
	}

	multi, err := Extract(g, KindConvexMulti)
	if err != nil {
		t.Fatal(err)
	}
	if multi.Kind != KindConvexMulti || len(multi.ConvexMulti) == 0 {
		t.Errorf("Extract(KindConvexMulti) = %+v, want populated ConvexMulti", multi)
	}

	hf, err := Extract(g, KindHeightfield)
	if err != nil {
		t.Fatal(err)
	}
	if hf.Kind != KindHeightfield || hf.Profile == nil {
		t.Errorf("Extract(KindHeightfield) = %+v, want populated Profile", hf)
	}

	if _, err := Extract(g, Kind(99)); err == nil {
		t.Error("Extract(unknown kind) did not fail")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindConvex, "convex"},
		{KindConvexMulti, "convex-multi"},
		{KindHeightfield, "heightfield"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
