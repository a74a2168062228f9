package render

import (
	"github.com/lixenwraith/rollball/game"
	"github.com/lixenwraith/rollball/telemetry"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Session *game.Session
	Frame   *telemetry.Frame

	Viewport Viewport
	Muted    bool
	Paused   bool

	ScreenWidth  int
	ScreenHeight int
}
