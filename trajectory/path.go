// Package trajectory defines the parametric 3D paths words travel along
package trajectory

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/phrase-drift/vmath"
)

// Kind tags the path variant
type Kind uint8

const (
	KindClosedCurve Kind = iota
	KindOscillatingLine
	KindCollector
)

func (k Kind) String() string {
	switch k {
	case KindClosedCurve:
		return "closed-curve"
	case KindOscillatingLine:
		return "oscillating-line"
	case KindCollector:
		return "collector"
	default:
		return "unknown"
	}
}

// Path is a parametric curve evaluated by progress in [0, ∞)
type Path interface {
	Kind() Kind
	// PositionAt returns the point at the given progress
	PositionAt(progress float64) vmath.Vec3F
	// Expired reports whether a word at this progress has left the path
	Expired(progress float64) bool
	// Outline returns the polyline drawn for the path
	Outline() []vmath.Vec3F
}

const (
	curveZScale      = 0.8
	curveFrequency   = 7
	curveOutlineSize = 200
)

// ClosedCurve is a circle in XY modulated by a sine in Z, one lap per unit progress
type ClosedCurve struct {
	Radius  float64
	outline []vmath.Vec3F
}

// NewClosedCurve builds a curve with radius boxSize/3
func NewClosedCurve(boxSize float64) *ClosedCurve {
	c := &ClosedCurve{Radius: boxSize / 3}
	c.outline = make([]vmath.Vec3F, 0, curveOutlineSize)
	for i := 0; i < curveOutlineSize; i++ {
		c.outline = append(c.outline, c.PositionAt(float64(i)/curveOutlineSize))
	}
	return c
}

func (c *ClosedCurve) Kind() Kind { return KindClosedCurve }

func (c *ClosedCurve) PositionAt(progress float64) vmath.Vec3F {
	t := progress * 2 * math.Pi
	return vmath.Vec3F{
		X: c.Radius * math.Cos(t),
		Y: c.Radius * math.Sin(t),
		Z: c.Radius * curveZScale * math.Sin(curveFrequency*t),
	}
}

func (c *ClosedCurve) Expired(progress float64) bool { return progress >= 1 }

func (c *ClosedCurve) Outline() []vmath.Vec3F { return c.outline }

// OscillatingLine runs start→end on [0,1] and back on [1,2], period 2
type OscillatingLine struct {
	Start, End vmath.Vec3F
}

// NewOscillatingLine spans the box through its center along a random direction
func NewOscillatingLine(boxSize float64, rng *rand.Rand) *OscillatingLine {
	dir := vmath.V3FRandomUnit(rng)
	start := vmath.V3FScale(dir, boxSize/2)
	return &OscillatingLine{
		Start: start,
		End:   vmath.V3FScale(start, -1),
	}
}

func (l *OscillatingLine) Kind() Kind { return KindOscillatingLine }

func (l *OscillatingLine) PositionAt(progress float64) vmath.Vec3F {
	p := math.Mod(progress, 2)
	if p <= 1 {
		return vmath.V3FLerp(l.Start, l.End, p)
	}
	return vmath.V3FLerp(l.End, l.Start, p-1)
}

func (l *OscillatingLine) Expired(progress float64) bool { return progress >= 2 }

func (l *OscillatingLine) Outline() []vmath.Vec3F { return []vmath.Vec3F{l.Start, l.End} }

// Collector is the static line where collected words are displayed
// It carries no traveling words and never expires anything
type Collector struct {
	Start, End vmath.Vec3F
}

// NewCollector spans the box along the X axis
func NewCollector(boxSize float64) *Collector {
	return &Collector{
		Start: vmath.Vec3F{X: -boxSize / 2},
		End:   vmath.Vec3F{X: boxSize / 2},
	}
}

func (c *Collector) Kind() Kind { return KindCollector }

// PositionAt always returns the start point
func (c *Collector) PositionAt(float64) vmath.Vec3F { return c.Start }

func (c *Collector) Expired(float64) bool { return false }

func (c *Collector) Outline() []vmath.Vec3F { return []vmath.Vec3F{c.Start, c.End} }

// Slot returns the point at fraction f of the collector segment
func (c *Collector) Slot(f float64) vmath.Vec3F {
	return vmath.V3FLerp(c.Start, c.End, f)
}
