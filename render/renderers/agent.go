package renderers

import "github.com/lixenwraith/rollball/render"

// AgentRenderer draws the rolling ball
type AgentRenderer struct{}

func NewAgentRenderer() *AgentRenderer {
	return &AgentRenderer{}
}

// Render implements SystemRenderer
func (r *AgentRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Session == nil || !ctx.Viewport.Valid() {
		return
	}
	x, y := ctx.Viewport.Project(ctx.Session.Agent.Position)
	if !ctx.Viewport.Contains(x, y) {
		return
	}
	buf.Set(x, y, render.GlyphAgent, render.StyleAgent)
}
