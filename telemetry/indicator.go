package telemetry

import (
	"fmt"

	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/vmath"
)

// DefaultLineWidth is the indicator line width in world units
const DefaultLineWidth = 0.1

// IndicatorLine runs from the agent to the nearest collectible
// Recomputed from scratch every tick
type IndicatorLine struct {
	Visible bool        `json:"visible"`
	From    vmath.Vec3F `json:"from"`
	To      vmath.Vec3F `json:"to"`
	Width   float64     `json:"width"`
}

// Assignment is one highlight the host applies to a collectible renderable
type Assignment struct {
	ID        int               `json:"id"`
	Highlight core.Highlight    `json:"highlight"`
	Target    *core.Collectible `json:"-"`
}

// IndicatorRenderer reconciles the indicator line and collectible highlights
type IndicatorRenderer struct {
	Width float64
}

// NewIndicatorRenderer creates a renderer with the default line width
func NewIndicatorRenderer() *IndicatorRenderer {
	return &IndicatorRenderer{Width: DefaultLineWidth}
}

// Reconcile computes the line and a full highlight assignment list for every candidate
// Candidates without a renderable are skipped; the rest of the pass continues
func (r *IndicatorRenderer) Reconcile(mode core.DebugMode, agent vmath.Vec3F, nearest *core.Collectible, candidates []*core.Collectible) (IndicatorLine, []Assignment) {
	var target *core.Collectible
	switch mode {
	case core.ModeNormal:
	case core.ModeDistance, core.ModeVision:
		target = nearest
	default:
		panic(fmt.Sprintf("telemetry: unmapped debug mode %d", uint8(mode)))
	}

	line := IndicatorLine{Width: r.Width}
	if target != nil {
		line.Visible = true
		line.From = agent
		line.To = target.Position
	}

	assignments := make([]Assignment, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || c.Renderable == nil {
			continue
		}
		h := core.HighlightDefault
		if c == target {
			h = core.HighlightTarget
		}
		assignments = append(assignments, Assignment{ID: c.ID, Highlight: h, Target: c})
	}
	return line, assignments
}

// Apply pushes assignments onto their renderables
func Apply(assignments []Assignment) {
	for _, a := range assignments {
		if a.Target == nil || a.Target.Renderable == nil {
			continue
		}
		a.Target.Renderable.SetHighlight(a.Highlight)
	}
}
