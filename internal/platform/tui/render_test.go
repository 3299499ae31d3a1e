package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-topdown/internal/core"
)

func TestCellToWorld(t *testing.T) {
	tests := []struct {
		col, row int
		want     core.Vec2
	}{
		{0, 0, core.V(5, 6.25)},
		{79, 47, core.V(795, 593.75)},
		{40, 24, core.V(405, 306.25)},
	}
	for _, tc := range tests {
		got := cellToWorld(tc.col, tc.row, 80, 48, 800, 600)
		if got != tc.want {
			t.Errorf("cellToWorld(%d, %d) = %v, expected %v", tc.col, tc.row, got, tc.want)
		}
	}
}

func TestWorldToCellRoundTrip(t *testing.T) {
	for col := 0; col < 80; col += 7 {
		for row := 0; row < 48; row += 5 {
			p := cellToWorld(col, row, 80, 48, 800, 600)
			c, r := worldToCell(p, 800, 600, 80, 48)
			if c != col || r != row {
				t.Errorf("cell (%d,%d) -> %v -> (%d,%d)", col, row, p, c, r)
			}
		}
	}

	// Out-of-arena positions clamp to the edge cells
	if c, r := worldToCell(core.V(-10, 900), 800, 600, 80, 48); c != 0 || r != 47 {
		t.Errorf("clamped cell = (%d,%d), expected (0,47)", c, r)
	}
}

func TestSpan(t *testing.T) {
	lo, hi := span(3, 10, 100)
	if lo != 30 || hi != 40 {
		t.Errorf("span(3,10,100) = [%d,%d), expected [30,40)", lo, hi)
	}
	// More slots than pixels still yields a pixel per slot
	lo, hi = span(5, 20, 10)
	if hi-lo != 1 {
		t.Errorf("span(5,20,10) = [%d,%d), expected one pixel", lo, hi)
	}
}

func TestRenderCanvasHalfBlocks(t *testing.T) {
	canvas := core.NewCanvas(4, 4)
	canvas.Clear(core.ColorBlack)
	canvas.FillCircle(core.V(0.5, 0.5), 0.5, core.ColorRed)   // pixel (0,0)
	canvas.FillCircle(core.V(0.5, 1.5), 0.5, core.ColorCyan)  // pixel (0,1)
	canvas.FillCircle(core.V(3.5, 3.5), 0.5, core.ColorWhite) // pixel (3,3)

	screen := core.NewScreen(4, 2)
	RenderCanvas(canvas, screen)

	cell := screen.GetCell(0, 0)
	if cell.Rune != HalfBlock || cell.Fg != core.ColorRed || cell.Bg != core.ColorCyan {
		t.Errorf("cell (0,0) = %+v, expected red over cyan", cell)
	}
	cell = screen.GetCell(3, 1)
	if cell.Fg != core.ColorBlack || cell.Bg != core.ColorWhite {
		t.Errorf("cell (3,1) = %+v, expected black over white", cell)
	}
	cell = screen.GetCell(1, 1)
	if cell.Fg != core.ColorBlack || cell.Bg != core.ColorBlack {
		t.Errorf("cell (1,1) = %+v, expected background", cell)
	}
}

func TestRenderCanvasKeepsSmallFeatures(t *testing.T) {
	canvas := core.NewCanvas(100, 100)
	canvas.Clear(core.ColorBlack)
	// A single pixel away from the block center
	canvas.FillCircle(core.V(1.5, 1.5), 0.5, core.ColorYellow)

	screen := core.NewScreen(10, 5)
	RenderCanvas(canvas, screen)

	if got := screen.GetCell(0, 0).Fg; got != core.ColorYellow {
		t.Errorf("small feature lost, top color = %v", got)
	}
}

func TestRenderCanvasText(t *testing.T) {
	canvas := core.NewCanvas(800, 600)
	canvas.Clear(core.ColorBlack)
	canvas.DrawTextCentered("GAME OVER", core.V(400, 300), core.ColorWhite)

	screen := core.NewScreen(80, 24)
	RenderCanvas(canvas, screen)

	if row := screen.Row(12); !strings.Contains(row, "GAME OVER") {
		t.Errorf("banner missing from row 12: %q", row)
	}
	if got := screen.GetCell(36, 12); got.Rune != 'G' || got.Fg != core.ColorWhite {
		t.Errorf("banner should start at column 36, got %+v", got)
	}
}

func TestRenderScreen(t *testing.T) {
	screen := core.NewScreen(3, 2)
	screen.DrawText(0, 0, "abc", core.ColorRed)
	screen.DrawText(0, 1, "xyz", core.ColorCyan)

	styles := make(styleCache)
	out := RenderScreen(screen, styles)

	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	for _, s := range []string{"abc", "xyz"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing run %q: %q", s, out)
		}
	}
	if len(styles) != 2 {
		t.Errorf("expected one cached style per color pair, got %d", len(styles))
	}
}
