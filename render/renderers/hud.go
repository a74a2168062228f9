package renderers

import (
	"github.com/lixenwraith/rollball/render"
)

const helpText = "arrows/wasd move  space debug  r restart  m mute  p pause  q quit"

// HUDRenderer draws score, win text, debug mode and the telemetry readout
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Session == nil {
		return
	}
	buf.SetString(1, 0, ctx.Session.ScoreText(), render.StyleScore)
	buf.SetString(1, 1, ctx.Session.WinText(), render.StyleWin)

	if ctx.Frame != nil {
		status := "Debug: " + ctx.Frame.Mode.String()
		if ctx.Muted {
			status += "  [muted]"
		}
		if ctx.Paused {
			status += "  [paused]"
		}
		buf.SetString(1, 2, status, render.StyleMode)

		// Cleared readouts still overwrite their rows so nothing lingers
		for i, line := range ctx.Frame.Readout.Lines() {
			if render.HUDRows-3 <= i {
				break
			}
			buf.SetString(1, 3+i, line, render.StyleTelemetry)
		}
	}

	if ctx.ScreenHeight > 0 {
		buf.SetString(1, ctx.ScreenHeight-1, helpText, render.StyleHelp)
	}
}
