package core

import "github.com/lixenwraith/rollball/vmath"

// Renderable is the host-side visual of a collectible
type Renderable interface {
	SetHighlight(h Highlight)
}

// Collectible is a pickup owned by the game session
// Deactivated on pickup, never removed; Renderable is nil when the host has no visual for it
type Collectible struct {
	ID         int
	Position   vmath.Vec3F
	Active     bool
	Renderable Renderable
}
