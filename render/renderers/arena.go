package renderers

import "github.com/lixenwraith/rollball/render"

// ArenaRenderer draws the floor grid and the walls
type ArenaRenderer struct{}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Render implements SystemRenderer
func (r *ArenaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := ctx.Viewport
	if !v.Valid() {
		return
	}
	left, top := v.OriginX-1, v.OriginY-1
	right, bottom := v.OriginX+v.Cols+1, v.OriginY+v.Rows+1

	// Floor dots every other column keep the grid readable at 2:1 cells
	for y := top + 1; y < bottom; y++ {
		for x := left + 1; x < right; x++ {
			if (x-left)%2 == 0 {
				buf.Set(x, y, render.GlyphFloor, render.StyleFloor)
			}
		}
	}

	for x := left + 1; x < right; x++ {
		buf.Set(x, top, render.GlyphWallH, render.StyleWall)
		buf.Set(x, bottom, render.GlyphWallH, render.StyleWall)
	}
	for y := top + 1; y < bottom; y++ {
		buf.Set(left, y, render.GlyphWallV, render.StyleWall)
		buf.Set(right, y, render.GlyphWallV, render.StyleWall)
	}
	buf.Set(left, top, render.GlyphCornerTL, render.StyleWall)
	buf.Set(right, top, render.GlyphCornerTR, render.StyleWall)
	buf.Set(left, bottom, render.GlyphCornerBL, render.StyleWall)
	buf.Set(right, bottom, render.GlyphCornerBR, render.StyleWall)
}
