package geom

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Cross(t *testing.T) {
	a := Vec2{1, 0}
	b := Vec2{0, 1}
	if got := a.Cross(b); got != 1 {
		t.Errorf("Vec2.Cross() = %v, want 1", got)
	}
	if got := b.Cross(a); got != -1 {
		t.Errorf("Vec2.Cross() reversed = %v, want -1", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestPolygonSignedArea(t *testing.T) {
	// Unit square, counter-clockwise in a y-up space.
	ccw := Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if got := ccw.SignedArea(); got != 1 {
		t.Errorf("SignedArea() = %v, want 1", got)
	}

	cw := ccw.Clone()
	cw.Reverse()
	if got := cw.SignedArea(); got != -1 {
		t.Errorf("SignedArea() reversed = %v, want -1", got)
	}
}

func TestPolygonIsCounterClockwise(t *testing.T) {
	p := Polygon{{0, 0}, {2, 0}, {2, 2}}
	if !p.IsCounterClockwise() {
		t.Error("expected counter-clockwise triangle")
	}
	p.Reverse()
	if p.IsCounterClockwise() {
		t.Error("expected clockwise after Reverse()")
	}
}

func TestPolygonIsConvex(t *testing.T) {
	tests := []struct {
		name string
		poly Polygon
		want bool
	}{
		{"square", Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, true},
		{"square with collinear midpoint", Polygon{{0, 0}, {1, 0}, {2, 0}, {2, 2}, {0, 2}}, true},
		{"L shape", Polygon{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}, false},
		{"degenerate", Polygon{{0, 0}, {1, 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.poly.IsConvex(); got != tt.want {
				t.Errorf("IsConvex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonCentroid(t *testing.T) {
	p := Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	got := p.Centroid()
	want := Vec2{1, 1}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestPolygonCentroidDegenerate(t *testing.T) {
	// Zero-area ring falls back to vertex average.
	p := Polygon{{0, 0}, {2, 0}, {4, 0}}
	got := p.Centroid()
	want := Vec2{2, 0}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}
