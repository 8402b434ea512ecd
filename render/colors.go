package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black canvas
	RgbForeground = tcell.NewRGBColor(255, 255, 255) // White strokes and text
	RgbPathDash   = tcell.NewRGBColor(150, 150, 150) // Dashed lane outlines
	RgbBoxFrame   = tcell.NewRGBColor(200, 200, 200) // Cube edges
	RgbCenterZone = tcell.NewRGBColor(60, 60, 60)    // Faint center disc
	RgbHUD        = tcell.NewRGBColor(180, 180, 180) // Status text
	RgbPaused     = tcell.NewRGBColor(255, 165, 0)   // Orange pause marker
)

var (
	StyleDefault    = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbForeground)
	StylePath       = StyleDefault.Foreground(RgbPathDash)
	StyleBox        = StyleDefault.Foreground(RgbBoxFrame)
	StyleCenterZone = StyleDefault.Foreground(RgbCenterZone)
	StyleWord       = StyleDefault.Bold(true)
	StylePhraseBox  = tcell.StyleDefault.Background(RgbForeground).Foreground(RgbBackground)
	StyleHUD        = StyleDefault.Foreground(RgbHUD)
	StylePaused     = StyleDefault.Foreground(RgbPaused).Bold(true)
)
