package pixel

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestFromRGBA(t *testing.T) {
	// 2x1: left pixel transparent, right pixel opaque.
	pix := []byte{
		10, 20, 30, 0,
		40, 50, 60, 255,
	}
	g, err := FromRGBA(2, 1, pix)
	if err != nil {
		t.Fatalf("FromRGBA() error = %v", err)
	}
	if got := g.AlphaAt(0, 0); got != 0 {
		t.Errorf("AlphaAt(0,0) = %d, want 0", got)
	}
	if got := g.AlphaAt(1, 0); got != 255 {
		t.Errorf("AlphaAt(1,0) = %d, want 255", got)
	}
}

func TestFromRGBABadBuffer(t *testing.T) {
	_, err := FromRGBA(2, 2, []byte{1, 2, 3})
	if !errors.Is(err, ErrBadPixelBuffer) {
		t.Errorf("FromRGBA() error = %v, want ErrBadPixelBuffer", err)
	}
}

func TestFromRGBABadDimensions(t *testing.T) {
	_, err := FromRGBA(0, 4, nil)
	if !errors.Is(err, ErrBadDimensions) {
		t.Errorf("FromRGBA() error = %v, want ErrBadDimensions", err)
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 255, A: 128})
	g := FromImage(img)

	if got := g.AlphaAt(0, 0); got != 255 {
		t.Errorf("AlphaAt(0,0) = %d, want 255", got)
	}
	if got := g.AlphaAt(1, 0); got != 0 {
		t.Errorf("AlphaAt(1,0) = %d, want 0", got)
	}
	if got := g.AlphaAt(1, 1); got != 128 {
		t.Errorf("AlphaAt(1,1) = %d, want 128", got)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	// Subimages carry non-zero Min; alpha must still land at (0,0).
	img := image.NewNRGBA(image.Rect(5, 7, 7, 9))
	img.Set(5, 7, color.NRGBA{A: 200})
	g := FromImage(img)
	if w, h := g.Size(); w != 2 || h != 2 {
		t.Fatalf("Size() = %dx%d, want 2x2", w, h)
	}
	if got := g.AlphaAt(0, 0); got != 200 {
		t.Errorf("AlphaAt(0,0) = %d, want 200", got)
	}
}

func TestFromImageNoAlphaChannel(t *testing.T) {
	// YCbCr has no alpha channel: every pixel reads as opaque.
	img := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444)
	g := FromImage(img)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := g.AlphaAt(x, y); got != 255 {
				t.Errorf("AlphaAt(%d,%d) = %d, want 255", x, y, got)
			}
		}
	}
}

func TestAlphaAtOutOfBounds(t *testing.T) {
	g := Opaque(2, 2)
	if got := g.AlphaAt(-1, 0); got != 0 {
		t.Errorf("AlphaAt(-1,0) = %d, want 0", got)
	}
	if got := g.AlphaAt(2, 5); got != 0 {
		t.Errorf("AlphaAt(2,5) = %d, want 0", got)
	}
}
