package core

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Surface is the render target the game draws into each frame.
type Surface interface {
	// Size returns the surface dimensions in world pixels.
	Size() (w, h int)

	// Clear fills the whole surface with c and drops pending text.
	Clear(c Color)

	// Blit composites img with its top-left corner at (x, y).
	Blit(img image.Image, x, y int)

	// FillCircle draws a filled disc.
	FillCircle(center Vec2, radius float64, c Color)

	// DrawTextCentered draws text centered on the given world position.
	DrawTextCentered(text string, center Vec2, c Color)
}

// Text is a pending text overlay recorded by a Canvas.
type Text struct {
	Text   string
	Center Vec2
	Color  Color
}

// Canvas is a Surface backed by an NRGBA framebuffer at world resolution.
// Text is not rasterised; it is kept as overlays for the platform to place
// on its own character grid.
type Canvas struct {
	img   *image.NRGBA
	bg    Color
	texts []Text
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a black canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
	c.Clear(ColorBlack)
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the canvas with col and drops all text overlays.
func (c *Canvas) Clear(col Color) {
	c.bg = col
	c.texts = c.texts[:0]

	pix := c.img.Pix
	if len(pix) == 0 {
		return
	}
	// Seed one pixel, then double the filled prefix.
	pix[0], pix[1], pix[2], pix[3] = col.R, col.G, col.B, 0xff
	for n := 4; n < len(pix); n *= 2 {
		copy(pix[n:], pix[:n])
	}
}

// Background returns the color of the last Clear.
func (c *Canvas) Background() Color {
	return c.bg
}

// Blit composites img over the canvas at (x, y), clipped to the canvas.
func (c *Canvas) Blit(img image.Image, x, y int) {
	sb := img.Bounds()
	dr := image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+sb.Dx(), y+sb.Dy())}
	xdraw.Draw(c.img, dr, img, sb.Min, xdraw.Over)
}

// FillCircle draws a filled disc centered on center.
func (c *Canvas) FillCircle(center Vec2, radius float64, col Color) {
	if radius <= 0 {
		return
	}
	b := c.img.Bounds()
	px := col.NRGBA()
	r2 := radius * radius
	x0 := Clamp(int(center.X-radius), b.Min.X, b.Max.X)
	x1 := Clamp(int(center.X+radius)+1, b.Min.X, b.Max.X)
	y0 := Clamp(int(center.Y-radius), b.Min.Y, b.Max.Y)
	y1 := Clamp(int(center.Y+radius)+1, b.Min.Y, b.Max.Y)
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - center.X
			if dx*dx+dy*dy <= r2 {
				c.img.SetNRGBA(x, y, px)
			}
		}
	}
}

// DrawTextCentered records a text overlay.
func (c *Canvas) DrawTextCentered(text string, center Vec2, col Color) {
	c.texts = append(c.texts, Text{Text: text, Center: center, Color: col})
}

// Texts returns the overlays recorded since the last Clear.
func (c *Canvas) Texts() []Text {
	return c.texts
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.NRGBA {
	return c.img.NRGBAAt(x, y)
}

// Image exposes the framebuffer for read-only use by the platform.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}
