package render

import (
	"math"

	"github.com/lixenwraith/phrase-drift/vmath"
)

// VirtualSize is the edge of the square canvas points are projected onto
// Center-zone thresholds are expressed in these units
const VirtualSize = 1000.0

// Projection is an orthographic view of the cube, rotated about X then Y
// It maps [-box/2, box/2] onto the virtual canvas, then stretches the canvas
// over the terminal
type Projection struct {
	RotX, RotY float64
	BoxSize    float64
	Width      int
	Height     int
}

// NewProjection creates an unrotated projection for a cube of boxSize
func NewProjection(boxSize float64, width, height int) *Projection {
	return &Projection{
		BoxSize: boxSize,
		Width:   width,
		Height:  height,
	}
}

// SetRotation updates the view angles in radians
func (p *Projection) SetRotation(rx, ry float64) {
	p.RotX, p.RotY = rx, ry
}

// SetSize updates the terminal dimensions in cells
func (p *Projection) SetSize(width, height int) {
	p.Width, p.Height = width, height
}

// Project maps a sketch-space point onto the virtual canvas
func (p *Projection) Project(v vmath.Vec3F) vmath.Vec2F {
	r := vmath.V3FRotateY(vmath.V3FRotateX(v, p.RotX), p.RotY)
	half := p.BoxSize / 2
	return vmath.Vec2F{
		X: vmath.MapRange(r.X, -half, half, 0, VirtualSize),
		Y: vmath.MapRange(r.Y, -half, half, 0, VirtualSize),
	}
}

// Center returns the middle of the virtual canvas
func (p *Projection) Center() vmath.Vec2F {
	return vmath.Vec2F{X: VirtualSize / 2, Y: VirtualSize / 2}
}

// ToCell converts virtual canvas coordinates to a terminal cell
func (p *Projection) ToCell(v vmath.Vec2F) (x, y int) {
	x = int(math.Round(v.X / VirtualSize * float64(p.Width-1)))
	y = int(math.Round(v.Y / VirtualSize * float64(p.Height-1)))
	return x, y
}

// Cell projects a sketch-space point straight to a terminal cell
func (p *Projection) Cell(v vmath.Vec3F) (x, y int) {
	return p.ToCell(p.Project(v))
}

// Radius converts a virtual distance into per-axis cell radii
func (p *Projection) Radius(d float64) (rx, ry float64) {
	return d / VirtualSize * float64(p.Width-1), d / VirtualSize * float64(p.Height-1)
}
