package telemetry

import (
	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/vmath"
)

// swatch records the last highlight applied by the host
type swatch struct {
	color core.Highlight
	calls int
}

func (s *swatch) SetHighlight(h core.Highlight) {
	s.color = h
	s.calls++
}

func pickup(id int, x, y, z float64) *core.Collectible {
	return &core.Collectible{
		ID:         id,
		Position:   vmath.Vec3F{X: x, Y: y, Z: z},
		Active:     true,
		Renderable: &swatch{},
	}
}

func colorOf(c *core.Collectible) core.Highlight {
	return c.Renderable.(*swatch).color
}

func countTargets(cs []*core.Collectible) int {
	n := 0
	for _, c := range cs {
		if c == nil || c.Renderable == nil {
			continue
		}
		if colorOf(c) == core.HighlightTarget {
			n++
		}
	}
	return n
}
