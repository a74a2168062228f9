package renderers

import "github.com/lixenwraith/rollball/render"

// wideLineCells is the projected width at which the indicator switches to the heavy glyph
const wideLineCells = 0.5

// IndicatorRenderer draws the debug line from the agent to the nearest collectible
type IndicatorRenderer struct{}

func NewIndicatorRenderer() *IndicatorRenderer {
	return &IndicatorRenderer{}
}

// Render implements SystemRenderer
func (r *IndicatorRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Frame == nil || !ctx.Frame.Line.Visible || !ctx.Viewport.Valid() {
		return
	}
	line := ctx.Frame.Line
	x0, y0 := ctx.Viewport.Project(line.From)
	x1, y1 := ctx.Viewport.Project(line.To)

	glyph := render.GlyphIndicator
	if line.Width*ctx.Viewport.RowsPerUnit >= wideLineCells {
		glyph = render.GlyphIndicatorW
	}

	// Endpoints are left for the agent and pickup glyphs
	TraceLine(x0, y0, x1, y1, func(x, y int) {
		if (x == x0 && y == y0) || (x == x1 && y == y1) {
			return
		}
		buf.Set(x, y, glyph, render.StyleIndicator)
	})
}

// TraceLine visits every cell on the Bresenham line from (x0, y0) to (x1, y1) inclusive
func TraceLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	stepX := -1
	if x0 < x1 {
		stepX = 1
	}
	stepY := -1
	if y0 < y1 {
		stepY = 1
	}

	err := dx - dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += stepX
		}
		if e2 < dx {
			err += dx
			y0 += stepY
		}
	}
}
