// Package sprite owns frame images for animated entities: loading them from
// a Source, preparing them (scale, tint) and rotating them for display.
package sprite

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/tui-topdown/internal/core"
)

// Scale returns src enlarged by an integer factor using nearest-neighbour
// sampling, which keeps pixel art crisp.
func Scale(src image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	sb := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, sb.Dx()*factor, sb.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}

// Tint returns a copy of src with every channel multiplied by the matching
// channel of tint (alpha is kept). src is not modified.
func Tint(src image.Image, tint core.Color) *image.NRGBA {
	sb := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	for y := sb.Min.Y; y < sb.Max.Y; y++ {
		for x := sb.Min.X; x < sb.Max.X; x++ {
			p := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			dst.SetNRGBA(x-sb.Min.X, y-sb.Min.Y, color.NRGBA{
				R: mul8(p.R, tint.R),
				G: mul8(p.G, tint.G),
				B: mul8(p.B, tint.B),
				A: p.A,
			})
		}
	}
	return dst
}

func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

// RotatedSize returns the bounding size of a w×h image rotated by degrees.
func RotatedSize(w, h int, degrees float64) (int, int) {
	rad := degrees * math.Pi / 180
	c := math.Abs(math.Cos(rad))
	s := math.Abs(math.Sin(rad))
	// Trim float noise so that 90° of 16×8 is 8×16, not 9×17.
	const eps = 1e-9
	rw := int(math.Ceil(float64(w)*c + float64(h)*s - eps))
	rh := int(math.Ceil(float64(w)*s + float64(h)*c - eps))
	return core.Max(rw, 1), core.Max(rh, 1)
}

// Rotate returns src rotated about its center onto a canvas just large enough
// to hold the result; uncovered pixels are transparent.
//
// Screen space has +y pointing down, so a positive angle turns the image
// clockwise as seen on screen. An angle computed with atan2(dy, dx) in screen
// space therefore turns art drawn facing +x toward (dx, dy).
func Rotate(src image.Image, degrees float64) *image.NRGBA {
	sb := src.Bounds()
	w, h := RotatedSize(sb.Dx(), sb.Dy(), degrees)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	if math.Mod(degrees, 360) == 0 {
		xdraw.Draw(dst, dst.Bounds(), src, sb.Min, xdraw.Src)
		return dst
	}

	rad := degrees * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	scx := float64(sb.Min.X) + float64(sb.Dx())/2
	scy := float64(sb.Min.Y) + float64(sb.Dy())/2
	dcx := float64(w) / 2
	dcy := float64(h) / 2

	// Source -> destination: translate to origin, rotate, translate to the
	// destination center.
	s2d := f64.Aff3{
		cos, -sin, dcx - (cos*scx - sin*scy),
		sin, cos, dcy - (sin*scx + cos*scy),
	}
	xdraw.NearestNeighbor.Transform(dst, s2d, src, sb, xdraw.Src, nil)
	return dst
}
