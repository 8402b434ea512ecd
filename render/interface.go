package render

import "github.com/gdamore/tcell/v2"

// Surface is the drawable part of a tcell.Screen
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Screen is a Surface with frame control
type Screen interface {
	Surface
	Clear()
	Show()
}

// Layer draws one aspect of the sketch
type Layer interface {
	Render(ctx Context, c *Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
