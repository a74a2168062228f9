package render

import "github.com/gdamore/tcell/v2"

var (
	StyleDefault = tcell.StyleDefault

	StyleWall      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleFloor     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(40, 40, 48))
	StyleAgent     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StylePickup    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleTarget    = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	StyleIndicator = tcell.StyleDefault.Foreground(tcell.ColorAqua)

	StyleScore     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleWin       = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	StyleMode      = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	StyleTelemetry = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	StyleHelp      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Glyphs
const (
	GlyphAgent      = '●'
	GlyphPickup     = '◆'
	GlyphIndicator  = '·'
	GlyphIndicatorW = '•'
	GlyphFloor      = '.'
	GlyphWallH      = '─'
	GlyphWallV      = '│'
	GlyphCornerTL   = '┌'
	GlyphCornerTR   = '┐'
	GlyphCornerBL   = '└'
	GlyphCornerBR   = '┘'
)
