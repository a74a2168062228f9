package renderers

import (
	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/game"
	"github.com/lixenwraith/rollball/render"
)

// PickupsRenderer draws active collectibles colored by their applied highlight
type PickupsRenderer struct{}

func NewPickupsRenderer() *PickupsRenderer {
	return &PickupsRenderer{}
}

// Render implements SystemRenderer
func (r *PickupsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Session == nil || !ctx.Viewport.Valid() {
		return
	}
	for _, c := range ctx.Session.Collectibles {
		if !c.Active {
			continue
		}
		style := render.StylePickup
		if m, ok := c.Renderable.(*game.Marker); ok && m.Highlight() == core.HighlightTarget {
			style = render.StyleTarget
		}
		x, y := ctx.Viewport.Project(c.Position)
		if !ctx.Viewport.Contains(x, y) {
			continue
		}
		buf.Set(x, y, render.GlyphPickup, style)
	}
}
