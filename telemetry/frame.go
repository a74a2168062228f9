package telemetry

import (
	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/vmath"
)

// NoNearest is the NearestID of a frame without an active collectible
const NoNearest = -1

// Frame is the full output of one controller tick
// It is also the record written by the recorder and streamed to observers
type Frame struct {
	Session  string         `json:"session,omitempty"`
	Tick     uint64         `json:"tick"`
	Mode     core.DebugMode `json:"mode"`
	Position vmath.Vec3F    `json:"position"`
	Velocity vmath.Vec3F    `json:"velocity"`

	// NearestDistance is nil when no collectible is active
	NearestID       int      `json:"nearest_id"`
	NearestDistance *float64 `json:"nearest_distance"`

	Readout     Readout       `json:"readout"`
	Line        IndicatorLine `json:"line"`
	Assignments []Assignment  `json:"assignments"`
}

// Distance returns the nearest distance, +Inf when there is no target
func (f *Frame) Distance() float64 {
	if f.NearestDistance == nil {
		return inf
	}
	return *f.NearestDistance
}

// Highlighted returns the IDs assigned the target highlight this tick
func (f *Frame) Highlighted() []int {
	var ids []int
	for _, a := range f.Assignments {
		if a.Highlight == core.HighlightTarget {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
