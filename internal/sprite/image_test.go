package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-topdown/internal/core"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestScale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 0, red)

	dst := Scale(src, 3)

	if dst.Bounds().Dx() != 6 || dst.Bounds().Dy() != 6 {
		t.Fatalf("Scale() size = %v, expected 6x6", dst.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 3; x < 6; x++ {
			if dst.NRGBAAt(x, y) != red {
				t.Errorf("scaled pixel (%d, %d) = %v, expected red", x, y, dst.NRGBAAt(x, y))
			}
		}
	}
	if dst.NRGBAAt(0, 0).A != 0 {
		t.Error("transparent pixel should stay transparent")
	}
}

func TestTint(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, white)
	// (1, 0) transparent

	tinted := Tint(src, core.ColorCyan)

	if got := tinted.NRGBAAt(0, 0); got != (color.NRGBA{G: 255, B: 255, A: 255}) {
		t.Errorf("white tinted cyan = %v, expected cyan", got)
	}
	if got := tinted.NRGBAAt(1, 0); got.A != 0 {
		t.Errorf("transparent pixel should keep zero alpha, got %v", got)
	}
	if src.NRGBAAt(0, 0) != white {
		t.Error("Tint must not modify its source")
	}
}

func TestRotatedSize(t *testing.T) {
	tests := []struct {
		w, h    int
		degrees float64
		ww, wh  int
	}{
		{16, 8, 0, 16, 8},
		{16, 8, 90, 8, 16},
		{16, 8, -90, 8, 16},
		{16, 8, 180, 16, 8},
		{10, 10, 45, 15, 15}, // 10*sqrt(2) = 14.14 -> 15
	}

	for _, tc := range tests {
		w, h := RotatedSize(tc.w, tc.h, tc.degrees)
		if w != tc.ww || h != tc.wh {
			t.Errorf("RotatedSize(%d, %d, %v) = %dx%d, expected %dx%d",
				tc.w, tc.h, tc.degrees, w, h, tc.ww, tc.wh)
		}
	}
}

func TestRotateClockwiseOnScreen(t *testing.T) {
	// 4x2 image with its right-top pixel marked, i.e. the art "points" right.
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.SetNRGBA(3, 0, red)

	// 90° turns +x toward +y (down the screen).
	dst := Rotate(src, 90)

	if dst.Bounds().Dx() != 2 || dst.Bounds().Dy() != 4 {
		t.Fatalf("Rotate(90) size = %v, expected 2x4", dst.Bounds())
	}
	if dst.NRGBAAt(1, 3) != red {
		t.Errorf("marked pixel should land at (1, 3), got image %v", dst.Pix)
	}
}

func TestRotateZeroCopies(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.SetNRGBA(2, 1, red)

	dst := Rotate(src, 0)
	if dst == src {
		t.Fatal("Rotate should return a new image")
	}
	if dst.NRGBAAt(2, 1) != red || dst.Bounds() != src.Bounds() {
		t.Error("Rotate(0) should reproduce the source")
	}
}
