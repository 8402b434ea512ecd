package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/phrase-drift/trajectory"
	"github.com/lixenwraith/phrase-drift/vmath"
)

// BoxLayer draws the 12 edges of the wireframe cube
type BoxLayer struct{}

func (BoxLayer) Render(ctx Context, c *Canvas) {
	half := ctx.Projection.BoxSize / 2
	corners := make([]vmath.Vec3F, 0, 8)
	for _, x := range [2]float64{-1, 1} {
		for _, y := range [2]float64{-1, 1} {
			for _, z := range [2]float64{-1, 1} {
				corners = append(corners, vmath.Vec3F{X: x * half, Y: y * half, Z: z * half})
			}
		}
	}

	// Corners differing in exactly one axis share an edge
	for i := 0; i < len(corners); i++ {
		for j := i + 1; j < len(corners); j++ {
			if bitsSet(i^j) != 1 {
				continue
			}
			x0, y0 := ctx.Projection.Cell(corners[i])
			x1, y1 := ctx.Projection.Cell(corners[j])
			c.Line(x0, y0, x1, y1, StyleBox)
		}
	}
}

func bitsSet(n int) int {
	count := 0
	for ; n != 0; n &= n - 1 {
		count++
	}
	return count
}

// PathLayer draws dashed lane outlines
type PathLayer struct{}

func (PathLayer) Render(ctx Context, c *Canvas) {
	for _, l := range ctx.Assembler.Lanes() {
		drawOutline(ctx, c, l.Path, true)
	}
}

func drawOutline(ctx Context, c *Canvas, p trajectory.Path, dashed bool) {
	outline := p.Outline()
	xs := make([]int, len(outline))
	ys := make([]int, len(outline))
	for i, pt := range outline {
		xs[i], ys[i] = ctx.Projection.Cell(pt)
	}
	style := StylePath
	if !dashed {
		style = StyleDefault
	}
	c.Polyline(xs, ys, style, dashed)
}

// CenterZoneLayer outlines the region where words are tested for collection
type CenterZoneLayer struct{}

func (CenterZoneLayer) Render(ctx Context, c *Canvas) {
	cx, cy := ctx.Projection.ToCell(ctx.Projection.Center())
	rx, ry := ctx.Projection.Radius(ctx.Assembler.Options().CenterThreshold)
	c.Ellipse(cx, cy, rx, ry, '·', StyleCenterZone)
}

// WordLayer draws traveling words at their projected positions
type WordLayer struct{}

func (WordLayer) Render(ctx Context, c *Canvas) {
	for _, l := range ctx.Assembler.Lanes() {
		for _, w := range l.Words() {
			x, y := ctx.Projection.Cell(w.Position)
			c.TextCentered(x, y, w.Text, StyleWord)
		}
	}
}

// CollectorLayer draws the solid collector line and the words sitting on it
type CollectorLayer struct{}

func (CollectorLayer) Render(ctx Context, c *Canvas) {
	drawOutline(ctx, c, ctx.Assembler.Collector(), false)
	for _, w := range ctx.Assembler.Buffer() {
		x, y := ctx.Projection.Cell(w.Position)
		c.TextCentered(x, y, w.Text, StyleWord)
	}
}

// phrasePadding is the blank margin around the phrase in its box
const phrasePadding = 2

// PhraseLayer draws the phrase in progress boxed at the center, and the latest
// completed phrase in the bottom-right corner
type PhraseLayer struct{}

func (PhraseLayer) Render(ctx Context, c *Canvas) {
	width, height := c.Size()

	if buf := ctx.Assembler.Buffer(); len(buf) > 0 {
		words := make([]string, len(buf))
		for i, w := range buf {
			words[i] = w.Text
		}
		phrase := strings.Join(words, " ")
		boxW := len([]rune(phrase)) + phrasePadding*2
		cx, cy := width/2, height/2
		c.FillRect(cx-boxW/2, cy, boxW, 1, StylePhraseBox)
		c.TextCentered(cx, cy, phrase, StylePhraseBox)
	}

	if latest, ok := ctx.Assembler.LatestPhrase(); ok {
		c.TextRight(width-2, height-2, latest.Text, StyleWord)
	}
}

// HUDLayer shows the active template, the next needed category and progress
type HUDLayer struct {
	Visible bool
}

func (h *HUDLayer) IsVisible() bool { return h.Visible }

func (h *HUDLayer) Render(ctx Context, c *Canvas) {
	a := ctx.Assembler
	g := a.Grammar()

	c.Text(2, 1, "Current template: "+g.Template().String(), StyleHUD)
	c.Text(2, 2, "Next needed: "+g.CurrentCategory().String(), StyleHUD)
	c.Text(2, 3, fmt.Sprintf("Progress: %d/%d", len(a.Buffer()), len(g.Template())), StyleHUD)
	c.Text(2, 4, fmt.Sprintf("Phrases: %d  Speed: x%.2f", a.Completed(), ctx.Status.SpeedMultiplier), StyleHUD)

	if ctx.Status.Paused {
		c.Text(2, 5, "PAUSED", StylePaused)
	}
	if ctx.Status.Muted {
		width, _ := c.Size()
		c.TextRight(width-2, 1, "muted", StyleHUD)
	}
}
