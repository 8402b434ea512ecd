package input

import (
	"math"
	"time"
)

const (
	// MaxRotation bounds the cube tilt in each axis
	MaxRotation = math.Pi / 4

	// idleDecay is how long a pointer sample keeps contributing speed
	idleDecay = 100 * time.Millisecond
)

// PointerTracker turns pointer motion into the sketch's speed and rotation signals
type PointerTracker struct {
	sensitivity float64

	x, y     int
	lastMove time.Time
	speed    float64 // Cells per second from the latest sample
	seen     bool
}

// NewPointerTracker creates a tracker; sensitivity scales cells/second into speed
func NewPointerTracker(sensitivity float64) *PointerTracker {
	return &PointerTracker{sensitivity: sensitivity}
}

// SetSensitivity updates the speed scaling at runtime
func (p *PointerTracker) SetSensitivity(s float64) {
	if s >= 0 {
		p.sensitivity = s
	}
}

// Move records a pointer sample at now
func (p *PointerTracker) Move(x, y int, now time.Time) {
	if p.seen {
		elapsed := now.Sub(p.lastMove).Seconds()
		if elapsed > 0 {
			dist := math.Hypot(float64(x-p.x), float64(y-p.y))
			p.speed = dist / elapsed
		}
	}
	p.x, p.y = x, y
	p.lastMove = now
	p.seen = true
}

// SpeedMultiplier returns 1 + speed*sensitivity, falling back to 1 once the pointer rests
func (p *PointerTracker) SpeedMultiplier(now time.Time) float64 {
	if !p.seen || now.Sub(p.lastMove) > idleDecay {
		return 1
	}
	return 1 + p.speed*p.sensitivity
}

// Rotation maps the pointer position across a width×height view to tilt angles
// Y position drives rotation about X, X position drives rotation about Y
func (p *PointerTracker) Rotation(width, height int) (rx, ry float64) {
	if !p.seen || width <= 1 || height <= 1 {
		return 0, 0
	}
	rx = (float64(p.y)/float64(height-1)*2 - 1) * MaxRotation
	ry = (float64(p.x)/float64(width-1)*2 - 1) * MaxRotation
	return clampAngle(rx), clampAngle(ry)
}

// Position returns the last recorded pointer cell
func (p *PointerTracker) Position() (x, y int, ok bool) {
	return p.x, p.y, p.seen
}

func clampAngle(a float64) float64 {
	return math.Max(-MaxRotation, math.Min(MaxRotation, a))
}
