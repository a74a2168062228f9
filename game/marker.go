package game

import "github.com/lixenwraith/rollball/core"

// Marker is the visual state of one collectible, read by the renderer
type Marker struct {
	highlight core.Highlight
}

func (m *Marker) SetHighlight(h core.Highlight) {
	m.highlight = h
}

func (m *Marker) Highlight() core.Highlight {
	return m.highlight
}
