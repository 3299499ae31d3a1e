package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-topdown/internal/core"
)

// HalfBlock is the glyph every arena cell is drawn with: the foreground
// paints the upper pixel and the background the lower one.
const HalfBlock = '▀'

// RenderCanvas downsamples c into s. Each cell covers a block of canvas
// pixels split into an upper and a lower half; each half takes the color at
// its center, or the first non-background pixel in it when the center is
// background, so features smaller than a cell still show up. Text overlays
// are then placed on the cell grid.
func RenderCanvas(c *core.Canvas, s *core.Screen) {
	cols, rows := s.Width(), s.Height()
	if cols <= 0 || rows <= 0 {
		return
	}
	w, h := c.Size()
	bg := c.Background().NRGBA()

	for row := range rows {
		for col := range cols {
			x0, x1 := span(col, cols, w)
			y0, y1 := span(2*row, 2*rows, h)
			top := sampleBlock(c, bg, x0, x1, y0, y1)
			y0, y1 = span(2*row+1, 2*rows, h)
			bottom := sampleBlock(c, bg, x0, x1, y0, y1)
			s.SetCell(col, row, core.Cell{
				Rune: HalfBlock,
				Fg:   core.FromColor(top),
				Bg:   core.FromColor(bottom),
			})
		}
	}

	for _, t := range c.Texts() {
		col, row := worldToCell(t.Center, w, h, cols, rows)
		s.DrawTextCentered(col, row, t.Text, t.Color)
	}
}

// span returns the pixel range [lo, hi) covered by slot i of n over size
// pixels. The range is never empty.
func span(i, n, size int) (int, int) {
	lo := i * size / n
	hi := (i + 1) * size / n
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// sampleBlock picks the color representing a pixel block.
func sampleBlock(c *core.Canvas, bg color.NRGBA, x0, x1, y0, y1 int) color.NRGBA {
	center := c.At((x0+x1)/2, (y0+y1)/2)
	if center != bg {
		return center
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if p := c.At(x, y); p != bg {
				return p
			}
		}
	}
	return center
}

// cellToWorld maps the center of a terminal cell to world coordinates.
func cellToWorld(col, row, cols, rows, worldW, worldH int) core.Vec2 {
	return core.V(
		(float64(col)+0.5)*float64(worldW)/float64(cols),
		(float64(row)+0.5)*float64(worldH)/float64(rows),
	)
}

// worldToCell maps a world position to the cell containing it.
func worldToCell(p core.Vec2, worldW, worldH, cols, rows int) (int, int) {
	col := int(p.X * float64(cols) / float64(worldW))
	row := int(p.Y * float64(rows) / float64(worldH))
	return core.Clamp(col, 0, cols-1), core.Clamp(row, 0, rows-1)
}

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// styleCache memoizes lipgloss styles per color pair.
type styleCache map[styleKey]lipgloss.Style

func (sc styleCache) get(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if st, ok := sc[k]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	sc[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
