package core

import "fmt"

// DebugMode selects which debug overlays run each tick
type DebugMode uint8

const (
	ModeNormal DebugMode = iota
	ModeDistance
	ModeVision
)

// DebugModeCount is the cycle length of DebugMode
const DebugModeCount = 3

// Valid reports whether m is one of the declared modes
func (m DebugMode) Valid() bool {
	return m < DebugModeCount
}

// Next returns the cyclic successor, wrapping Vision back to Normal
// Panics on an undeclared value; a raw mode outside the enum is a programming error
func (m DebugMode) Next() DebugMode {
	switch m {
	case ModeNormal:
		return ModeDistance
	case ModeDistance:
		return ModeVision
	case ModeVision:
		return ModeNormal
	}
	panic(fmt.Sprintf("core: invalid debug mode %d", uint8(m)))
}

func (m DebugMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDistance:
		return "distance"
	case ModeVision:
		return "vision"
	}
	return fmt.Sprintf("DebugMode(%d)", uint8(m))
}

// ParseDebugMode maps a config/CLI name onto a mode
func ParseDebugMode(s string) (DebugMode, error) {
	switch s {
	case "", "normal":
		return ModeNormal, nil
	case "distance":
		return ModeDistance, nil
	case "vision":
		return ModeVision, nil
	}
	return ModeNormal, fmt.Errorf("unknown debug mode %q", s)
}

// MarshalText encodes the mode by name for JSON frames
func (m DebugMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid debug mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *DebugMode) UnmarshalText(b []byte) error {
	parsed, err := ParseDebugMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
