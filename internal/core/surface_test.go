package core

import (
	"image"
	"image/color"
	"testing"
)

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 3)
	c.DrawTextCentered("hi", V(2, 1), ColorWhite)
	c.Clear(ColorRed)

	w, h := c.Size()
	if w != 4 || h != 3 {
		t.Fatalf("Size() = %dx%d, expected 4x3", w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got := c.At(x, y); got != ColorRed.NRGBA() {
				t.Fatalf("At(%d, %d) = %v, expected red", x, y, got)
			}
		}
	}
	if len(c.Texts()) != 0 {
		t.Error("Clear should drop text overlays")
	}
	if c.Background() != ColorRed {
		t.Errorf("Background() = %v, expected red", c.Background())
	}
}

func TestCanvasBlitRespectsAlpha(t *testing.T) {
	c := NewCanvas(10, 10)

	sprite := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	sprite.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	// (1, 0), (0, 1) and (1, 1) stay transparent

	c.Blit(sprite, 3, 4)

	if got := c.At(3, 4); got != ColorRed.NRGBA() {
		t.Errorf("opaque pixel not blitted, got %v", got)
	}
	if got := c.At(4, 4); got != ColorBlack.NRGBA() {
		t.Errorf("transparent pixel should keep background, got %v", got)
	}

	// Partially off-canvas blits are clipped, not rejected
	c.Blit(sprite, -1, -1)
	c.Blit(sprite, 9, 9)
	if got := c.At(9, 9); got != ColorRed.NRGBA() {
		t.Errorf("clipped blit missing at (9, 9), got %v", got)
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(20, 20)
	c.FillCircle(V(10, 10), 3, ColorYellow)

	if got := c.At(10, 10); got != ColorYellow.NRGBA() {
		t.Errorf("center should be filled, got %v", got)
	}
	if got := c.At(10, 16); got != ColorBlack.NRGBA() {
		t.Errorf("pixel outside radius should be untouched, got %v", got)
	}

	// Circles at the edge must not panic
	c.FillCircle(V(0, 0), 5, ColorYellow)
	c.FillCircle(V(-50, -50), 5, ColorYellow)
}

func TestCanvasTexts(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawTextCentered("GAME OVER", V(5, 5), ColorWhite)

	texts := c.Texts()
	if len(texts) != 1 || texts[0].Text != "GAME OVER" || texts[0].Center != V(5, 5) {
		t.Errorf("Texts() = %+v, expected one GAME OVER overlay", texts)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#00ffff", ColorCyan, false},
		{"ff0000", ColorRed, false},
		{" #FFFF00 ", ColorYellow, false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
	}

	for _, tc := range tests {
		got, err := ParseHex(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHex(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}

	if ColorCyan.Hex() != "#00ffff" {
		t.Errorf("Hex() = %q, expected #00ffff", ColorCyan.Hex())
	}
}
