package render

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Dash pattern in cells, on then off
const (
	dashOn  = 2
	dashOff = 1
)

// Canvas clips drawing to the surface bounds
type Canvas struct {
	surface Surface
	width   int
	height  int
}

// NewCanvas wraps a surface for one frame
func NewCanvas(s Surface) *Canvas {
	w, h := s.Size()
	return &Canvas{surface: s, width: w, height: h}
}

// Size returns the canvas dimensions in cells
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// SetCell writes one rune, silently dropping out-of-bounds cells
func (c *Canvas) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.surface.SetContent(x, y, r, nil, style)
}

// Fill paints every cell blank with style
func (c *Canvas) Fill(style tcell.Style) {
	c.FillRect(0, 0, c.width, c.height, style)
}

// FillRect paints a w x h block of blanks with its top-left at (x, y)
func (c *Canvas) FillRect(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.SetCell(col, row, ' ', style)
		}
	}
}

// Text draws s starting at (x, y)
func (c *Canvas) Text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.SetCell(x, y, r, style)
		x++
	}
}

// TextCentered draws s centered horizontally on (x, y)
func (c *Canvas) TextCentered(x, y int, s string, style tcell.Style) {
	c.Text(x-utf8.RuneCountInString(s)/2, y, s, style)
}

// TextRight draws s so its last rune lands on (x, y)
func (c *Canvas) TextRight(x, y int, s string, style tcell.Style) {
	c.Text(x-utf8.RuneCountInString(s)+1, y, s, style)
}

// Line draws a solid line between two cells
func (c *Canvas) Line(x0, y0, x1, y1 int, style tcell.Style) {
	c.trace(x0, y0, x1, y1, style, nil)
}

// Polyline connects consecutive points; dashed lines keep their dash phase across segments
func (c *Canvas) Polyline(xs, ys []int, style tcell.Style, dashed bool) {
	var phase *int
	if dashed {
		phase = new(int)
	}
	for i := 1; i < len(xs) && i < len(ys); i++ {
		c.trace(xs[i-1], ys[i-1], xs[i], ys[i], style, phase)
	}
}

// Ellipse outlines an axis-aligned ellipse centered on (cx, cy)
func (c *Canvas) Ellipse(cx, cy int, rx, ry float64, r rune, style tcell.Style) {
	steps := int(math.Ceil(2 * math.Pi * math.Max(rx, ry) * 2))
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(rx*math.Cos(a)))
		y := cy + int(math.Round(ry*math.Sin(a)))
		c.SetCell(x, y, r, style)
	}
}

// trace walks the line with Bresenham; a non-nil phase enables dashing
func (c *Canvas) trace(x0, y0, x1, y1 int, style tcell.Style, phase *int) {
	dx := x1 - x0
	dy := y1 - y0
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	glyph := lineGlyph(dx, dy)
	totalSteps := max(absDx, absDy)

	err := absDx - absDy
	x, y := x0, y0
	for step := 0; step <= totalSteps; step++ {
		if phase == nil || *phase%(dashOn+dashOff) < dashOn {
			c.SetCell(x, y, glyph, style)
		}
		if phase != nil {
			*phase++
		}

		e2 := 2 * err
		if e2 > -absDy {
			err -= absDy
			x += stepX
		}
		if e2 < absDx {
			err += absDx
			y += stepY
		}
	}
}

// lineGlyph picks a stroke rune by slope; terminal rows grow downward
func lineGlyph(dx, dy int) rune {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}
	switch {
	case absDx == 0 && absDy == 0:
		return '·'
	case absDy*2 < absDx:
		return '─'
	case absDx*2 < absDy:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}
