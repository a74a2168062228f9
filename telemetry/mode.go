package telemetry

import (
	"fmt"

	"github.com/lixenwraith/rollball/core"
)

// ModeController owns the session debug mode
// Each Advance call is exactly one transition; edge detection belongs to the input side
type ModeController struct {
	mode     core.DebugMode
	switches int
}

// NewModeController panics when initial is not a declared mode
func NewModeController(initial core.DebugMode) *ModeController {
	if !initial.Valid() {
		panic(fmt.Sprintf("telemetry: invalid initial debug mode %d", uint8(initial)))
	}
	return &ModeController{mode: initial}
}

// Advance moves to the next mode in cyclic order and returns it
func (m *ModeController) Advance() core.DebugMode {
	m.mode = m.mode.Next()
	m.switches++
	return m.mode
}

func (m *ModeController) Mode() core.DebugMode {
	return m.mode
}

// Switches returns the number of transitions since construction
func (m *ModeController) Switches() int {
	return m.switches
}
