package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/phrase-drift/assembler"
	"github.com/lixenwraith/phrase-drift/vmath"
)

// recordScreen captures SetContent calls for inspection
type recordScreen struct {
	w, h   int
	cells  map[[2]int]rune
	styles map[[2]int]tcell.Style
	clears int
	shows  int
}

func newRecordScreen(w, h int) *recordScreen {
	return &recordScreen{
		w:      w,
		h:      h,
		cells:  make(map[[2]int]rune),
		styles: make(map[[2]int]tcell.Style),
	}
}

func (s *recordScreen) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	s.cells[[2]int{x, y}] = r
	s.styles[[2]int{x, y}] = style
}

func (s *recordScreen) Size() (int, int) { return s.w, s.h }
func (s *recordScreen) Clear() { s.clears++; clear(s.cells) }
func (s *recordScreen) Show() { s.shows++ }

func (s *recordScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < s.w; x++ {
		r, ok := s.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *recordScreen) contains(text string) bool {
	for y := 0; y < s.h; y++ {
		if strings.Contains(s.row(y), text) {
			return true
		}
	}
	return false
}

func TestProjectionUnrotated(t *testing.T) {
	p := NewProjection(400, 101, 51)

	tests := []struct {
		name  string
		in    vmath.Vec3F
		wantX float64
		wantY float64
	}{
		{"origin", vmath.Vec3F{}, 500, 500},
		{"top-left", vmath.Vec3F{X: -200, Y: -200}, 0, 0},
		{"bottom-right", vmath.Vec3F{X: 200, Y: 200, Z: 150}, 1000, 1000},
		{"depth ignored", vmath.Vec3F{X: 100, Z: -200}, 750, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Project(tt.in)
			assert.InDelta(t, tt.wantX, got.X, 1e-9)
			assert.InDelta(t, tt.wantY, got.Y, 1e-9)
		})
	}
}

func TestProjectionOriginStaysCentered(t *testing.T) {
	p := NewProjection(400, 80, 24)
	for _, rot := range [][2]float64{{0, 0}, {math.Pi / 4, 0}, {-math.Pi / 4, math.Pi / 4}, {0.3, -0.7}} {
		p.SetRotation(rot[0], rot[1])
		got := p.Project(vmath.Vec3F{})
		assert.InDelta(t, 500, got.X, 1e-9)
		assert.InDelta(t, 500, got.Y, 1e-9)
	}
	assert.Equal(t, vmath.Vec2F{X: 500, Y: 500}, p.Center())
}

func TestProjectionRotateY(t *testing.T) {
	p := NewProjection(400, 80, 24)
	p.SetRotation(0, math.Pi/2)

	// A point on +Z swings onto +X
	got := p.Project(vmath.Vec3F{Z: 100})
	assert.InDelta(t, 750, got.X, 1e-9)
	assert.InDelta(t, 500, got.Y, 1e-9)
}

func TestProjectionToCell(t *testing.T) {
	p := NewProjection(400, 101, 51)

	x, y := p.ToCell(vmath.Vec2F{X: 0, Y: 0})
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y = p.ToCell(vmath.Vec2F{X: 1000, Y: 1000})
	assert.Equal(t, 100, x)
	assert.Equal(t, 50, y)

	x, y = p.Cell(vmath.Vec3F{})
	assert.Equal(t, 50, x)
	assert.Equal(t, 25, y)

	rx, ry := p.Radius(50)
	assert.InDelta(t, 5, rx, 1e-9)
	assert.InDelta(t, 2.5, ry, 1e-9)
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	s := newRecordScreen(10, 5)
	c := NewCanvas(s)

	c.SetCell(-1, 0, 'x', StyleDefault)
	c.SetCell(10, 0, 'x', StyleDefault)
	c.SetCell(0, 5, 'x', StyleDefault)
	c.SetCell(9, 4, 'x', StyleDefault)

	if len(s.cells) != 1 {
		t.Fatalf("expected 1 cell written, got %d", len(s.cells))
	}
	if s.cells[[2]int{9, 4}] != 'x' {
		t.Errorf("corner cell not written")
	}
}

func TestCanvasLineEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		glyph          rune
		cells          int
	}{
		{"horizontal", 1, 2, 8, 2, '─', 8},
		{"vertical", 3, 0, 3, 4, '│', 5},
		{"reverse horizontal", 8, 1, 2, 1, '─', 7},
		{"diagonal down", 0, 0, 4, 4, '╲', 5},
		{"diagonal up", 0, 4, 4, 0, '╱', 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordScreen(10, 5)
			NewCanvas(s).Line(tt.x0, tt.y0, tt.x1, tt.y1, StyleDefault)

			assert.Len(t, s.cells, tt.cells)
			assert.Equal(t, tt.glyph, s.cells[[2]int{tt.x0, tt.y0}])
			assert.Equal(t, tt.glyph, s.cells[[2]int{tt.x1, tt.y1}])
		})
	}
}

func TestCanvasDashedPolyline(t *testing.T) {
	s := newRecordScreen(20, 3)
	NewCanvas(s).Polyline([]int{0, 8}, []int{1, 1}, StylePath, true)

	// on, on, off repeating over 9 cells
	assert.Equal(t, "── ── ──            ", s.row(1))

	// Phase carries across segments
	s = newRecordScreen(20, 3)
	NewCanvas(s).Polyline([]int{0, 3, 8}, []int{1, 1, 1}, StylePath, true)
	assert.Equal(t, 6, len(s.cells))
}

func TestCanvasText(t *testing.T) {
	s := newRecordScreen(20, 3)
	c := NewCanvas(s)

	c.TextCentered(10, 0, "fish", StyleWord)
	assert.Equal(t, "        fish        ", s.row(0))

	c.TextRight(18, 1, "path", StyleWord)
	assert.Equal(t, "               path ", s.row(1))

	c.Text(18, 2, "overflow", StyleWord)
	assert.Equal(t, "                  ov", s.row(2))
}

type layerFunc struct {
	name string
	log  *[]string
}

func (l layerFunc) Render(Context, *Canvas) { *l.log = append(*l.log, l.name) }

type hiddenLayer struct{ layerFunc }

func (hiddenLayer) IsVisible() bool { return false }

func TestOrchestratorOrder(t *testing.T) {
	var log []string
	s := newRecordScreen(4, 4)
	o := NewOrchestrator(s)

	o.Register(layerFunc{"ui", &log}, PriorityUI)
	o.Register(layerFunc{"box", &log}, PriorityBox)
	o.Register(layerFunc{"words-a", &log}, PriorityWords)
	o.Register(hiddenLayer{layerFunc{"hidden", &log}}, PriorityWords)
	o.Register(layerFunc{"words-b", &log}, PriorityWords)

	o.RenderFrame(Context{})

	assert.Equal(t, []string{"box", "words-a", "words-b", "ui"}, log)
	assert.Equal(t, 5, o.LayerCount())
	assert.Equal(t, 1, s.clears)
	assert.Equal(t, 1, s.shows)
}

// centerProjector reports every point at the center so each spawned word is
// tested for collection on its first move
type centerProjector struct{}

func (centerProjector) Project(vmath.Vec3F) vmath.Vec2F { return vmath.Vec2F{X: 500, Y: 500} }
func (centerProjector) Center() vmath.Vec2F { return vmath.Vec2F{X: 500, Y: 500} }

func collectOne(t *testing.T) *assembler.Assembler {
	t.Helper()
	opts := assembler.DefaultOptions()
	opts.SpawnChance = 1
	a, err := assembler.NewDefault(opts, 7)
	require.NoError(t, err)

	for i := 0; i < 1000 && len(a.Buffer()) == 0; i++ {
		a.Tick(16*time.Millisecond, 1, centerProjector{})
	}
	require.NotEmpty(t, a.Buffer())
	return a
}

func TestRendererDrawsHUDAndPhrase(t *testing.T) {
	a := collectOne(t)
	s := newRecordScreen(120, 40)
	r := NewRenderer(s, a.Options().BoxSize, true)

	r.Draw(a, Status{Paused: true, SpeedMultiplier: 1})

	assert.True(t, s.contains("Current template: "+a.Grammar().Template().String()))
	assert.True(t, s.contains("Next needed: "+a.Grammar().CurrentCategory().String()))
	assert.True(t, s.contains("PAUSED"))
	assert.True(t, s.contains(a.Buffer()[0].Text))

	// Phrase box sits on the middle row
	assert.Contains(t, s.row(20), a.Buffer()[0].Text)
	assert.Equal(t, StylePhraseBox, s.styles[[2]int{60, 20}])
}

func TestRendererHUDToggle(t *testing.T) {
	a, err := assembler.NewDefault(assembler.DefaultOptions(), 1)
	require.NoError(t, err)

	s := newRecordScreen(120, 40)
	r := NewRenderer(s, a.Options().BoxSize, true)
	assert.False(t, r.ToggleHUD())

	r.Draw(a, Status{SpeedMultiplier: 1})
	assert.False(t, s.contains("Current template"))

	r.SetHUD(true)
	r.Draw(a, Status{SpeedMultiplier: 1})
	assert.True(t, s.contains("Current template"))
}

func TestRendererResize(t *testing.T) {
	s := newRecordScreen(80, 24)
	r := NewRenderer(s, 400, false)
	s.w, s.h = 100, 30
	r.Resize()

	assert.Equal(t, 100, r.Projection().Width)
	assert.Equal(t, 30, r.Projection().Height)
}

func TestBoxLayerDrawsCorners(t *testing.T) {
	a, err := assembler.NewDefault(assembler.DefaultOptions(), 1)
	require.NoError(t, err)

	s := newRecordScreen(81, 41)
	BoxLayer{}.Render(Context{Assembler: a, Projection: NewProjection(400, 81, 41)}, NewCanvas(s))

	for _, corner := range [][2]int{{0, 0}, {80, 0}, {0, 40}, {80, 40}} {
		_, ok := s.cells[corner]
		assert.True(t, ok, "corner %v not drawn", corner)
	}
	_, ok := s.cells[[2]int{40, 20}]
	assert.False(t, ok, "unrotated cube has no edge through the center")
}
