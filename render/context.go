package render

import "github.com/lixenwraith/phrase-drift/assembler"

// Status carries host state shown by the HUD
type Status struct {
	Paused          bool
	Muted           bool
	SpeedMultiplier float64
}

// Context provides frame state for layers, passed by value
type Context struct {
	Assembler  *assembler.Assembler
	Projection *Projection
	Status     Status
}
