package telemetry

import (
	"fmt"

	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/vmath"
)

const (
	labelPosition = "Position: "
	labelVelocity = "Velocity: "
	labelDistance = "Nearest: "
	labelHeading  = "Heading: "

	// NoTargetText replaces the infinity sentinel in the distance readout
	NoTargetText = "no target"
)

// Readout is the set of telemetry strings shown for one tick
// Empty strings mean cleared, not absent
type Readout struct {
	Position string `json:"position"`
	Velocity string `json:"velocity"`
	Distance string `json:"distance"`
	Heading  string `json:"heading"`
}

// Empty reports whether every line is cleared
func (r Readout) Empty() bool {
	return r == Readout{}
}

// Lines returns the readout rows in display order, skipping an empty heading
func (r Readout) Lines() []string {
	lines := []string{r.Position, r.Velocity, r.Distance}
	if r.Heading != "" {
		lines = append(lines, r.Heading)
	}
	return lines
}

// Sample is the per-tick input to the presenter
type Sample struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Nearest  *core.Collectible
	Distance float64
}

// Present formats a sample for the given mode
func Present(mode core.DebugMode, s Sample) Readout {
	switch mode {
	case core.ModeNormal:
		return Readout{}
	case core.ModeDistance:
		return presentDistance(s)
	case core.ModeVision:
		r := presentDistance(s)
		r.Heading = presentHeading(s)
		return r
	}
	panic(fmt.Sprintf("telemetry: unmapped debug mode %d", uint8(mode)))
}

func presentDistance(s Sample) Readout {
	dist := NoTargetText
	if HasTarget(s.Distance) {
		dist = vmath.FormatScalar2(s.Distance)
	}
	return Readout{
		Position: labelPosition + s.Position.FormatFixed2(),
		Velocity: labelVelocity + s.Velocity.FormatFixed2(),
		Distance: labelDistance + dist,
	}
}

// presentHeading is the unit vector toward the nearest target, vision mode only
func presentHeading(s Sample) string {
	if s.Nearest == nil || !HasTarget(s.Distance) {
		return labelHeading + NoTargetText
	}
	dir := vmath.V3FNormalize(vmath.V3FSub(s.Nearest.Position, s.Position))
	return labelHeading + dir.FormatFixed2()
}
