package collider

import (
	"errors"
	"fmt"

	"github.com/Faultbox/spritephys/pkg/geom"
	"github.com/Faultbox/spritephys/pkg/pixel"
)

// ErrEmptyImage is returned when an image has zero width or height. This
// is a caller contract violation; fully transparent images are NOT errors
// and yield empty results instead.
var ErrEmptyImage = errors.New("image has zero width or height")

// Options tunes the extraction pipeline. Zero value is not useful; start
// from the defaults via the With* options.
type Options struct {
	// AlphaThreshold: a pixel is solid when alpha > AlphaThreshold.
	AlphaThreshold uint8
	// MinBlobArea is the minimum pixel count for a region to produce
	// geometry. Isolated specks below this are noise, not colliders.
	MinBlobArea int
	// MinPolygonArea rejects decomposition fragments below this world
	// area (square pixels).
	MinPolygonArea float64
	// MaxVertices caps merged convex pieces. The default of 8 matches
	// Box2D's polygon fixture limit. Already-convex blobs always pass
	// through whole regardless of the cap; the physics bridge fan-splits
	// oversized fixtures instead.
	MaxVertices int
}

// Option overrides one extraction tunable.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		AlphaThreshold: 0,
		MinBlobArea:    4,
		MinPolygonArea: 0.25,
		MaxVertices:    8,
	}
}

// WithAlphaThreshold sets the solidity threshold (solid iff alpha > t).
func WithAlphaThreshold(t uint8) Option {
	return func(o *Options) { o.AlphaThreshold = t }
}

// WithMinBlobArea sets the minimum region pixel count.
func WithMinBlobArea(n int) Option {
	return func(o *Options) { o.MinBlobArea = n }
}

// WithMinPolygonArea sets the decomposition fragment area floor.
func WithMinPolygonArea(a float64) Option {
	return func(o *Options) { o.MinPolygonArea = a }
}

// WithMaxVertices sets the merged-piece vertex cap (0 disables it).
func WithMaxVertices(n int) Option {
	return func(o *Options) { o.MaxVertices = n }
}

func buildOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func validate(img pixel.Image) (w, h int, err error) {
	w, h = img.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}
	return w, h, nil
}

// traceWorld runs mask → contours → world-space rings, preserving blob
// order. The occupancy mask is discarded once tracing completes.
func traceWorld(img pixel.Image, o Options) ([]geom.Polygon, Translator, error) {
	w, h, err := validate(img)
	if err != nil {
		return nil, Translator{}, err
	}
	t := Translator{W: w, H: h}
	mask := BuildMask(img, o.AlphaThreshold)
	set := BlobSet{Blobs: TraceBlobs(mask, o.MinBlobArea)}

	rings := make([]geom.Polygon, 0, len(set.Blobs))
	for _, b := range set.Blobs {
		rings = append(rings, t.Ring(b.Outline))
	}
	return rings, t, nil
}

// BoundaryGroups traces every solid region and returns its boundary as a
// counter-clockwise world-space ring, one per blob. Raw geometry for
// callers that render outlines or run their own decomposition.
func BoundaryGroups(img pixel.Image, opts ...Option) ([]geom.Polygon, error) {
	rings, _, err := traceWorld(img, buildOptions(opts))
	return rings, err
}

// MultiConvexColliders returns one convex polygon set per solid region.
// Sprites made of several disjoint shapes (a boulder field) get one
// collider set per shape.
func MultiConvexColliders(img pixel.Image, opts ...Option) ([][]geom.Polygon, error) {
	o := buildOptions(opts)
	rings, _, err := traceWorld(img, o)
	if err != nil {
		return nil, err
	}
	groups := make([][]geom.Polygon, 0, len(rings))
	for _, ring := range rings {
		if polys := Decompose(ring, o.MinPolygonArea, o.MaxVertices); len(polys) > 0 {
			groups = append(groups, polys)
		}
	}
	return groups, nil
}

// SingleConvexCollider decomposes only the dominant (largest-area) blob.
// For sprites known to be one connected shape; stray specks in the image
// are ignored. A fully transparent image returns an empty set.
func SingleConvexCollider(img pixel.Image, opts ...Option) ([]geom.Polygon, error) {
	o := buildOptions(opts)
	w, h, err := validate(img)
	if err != nil {
		return nil, err
	}
	t := Translator{W: w, H: h}
	mask := BuildMask(img, o.AlphaThreshold)
	set := BlobSet{Blobs: TraceBlobs(mask, o.MinBlobArea)}
	blob, ok := set.Largest()
	if !ok {
		return nil, nil
	}
	return Decompose(t.Ring(blob.Outline), o.MinPolygonArea, o.MaxVertices), nil
}

// Heightfield samples the image as a terrain profile: one sample per
// column. Fully transparent images yield an all-sentinel profile.
func Heightfield(img pixel.Image, opts ...Option) (*Profile, error) {
	o := buildOptions(opts)
	if _, _, err := validate(img); err != nil {
		return nil, err
	}
	return BuildProfile(BuildMask(img, o.AlphaThreshold)), nil
}

// Kind selects which geometry an Extract call produces.
type Kind int

// Geometry kinds.
const (
	KindConvex      Kind = iota // dominant blob, decomposed
	KindConvexMulti             // one convex set per blob
	KindHeightfield             // terrain profile
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindConvex:
		return "convex"
	case KindConvexMulti:
		return "convex-multi"
	case KindHeightfield:
		return "heightfield"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Geometry is the tagged result of an Extract call. Exactly the field
// matching Kind is populated.
type Geometry struct {
	Kind        Kind
	Convex      []geom.Polygon
	ConvexMulti [][]geom.Polygon
	Profile     *Profile
}

// Extract runs the pipeline in the mode named by kind. The mode is an
// explicit request, never inferred from the image.
func Extract(img pixel.Image, kind Kind, opts ...Option) (*Geometry, error) {
	g := &Geometry{Kind: kind}
	var err error
	switch kind {
	case KindConvex:
		g.Convex, err = SingleConvexCollider(img, opts...)
	case KindConvexMulti:
		g.ConvexMulti, err = MultiConvexColliders(img, opts...)
	case KindHeightfield:
		g.Profile, err = Heightfield(img, opts...)
	default:
		return nil, fmt.Errorf("unknown geometry kind %d", int(kind))
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}
