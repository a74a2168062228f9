package core

import "fmt"

// Highlight is the debug color assigned to a collectible
type Highlight uint8

const (
	HighlightDefault Highlight = iota
	HighlightTarget
)

func (h Highlight) String() string {
	switch h {
	case HighlightDefault:
		return "default"
	case HighlightTarget:
		return "target"
	}
	return fmt.Sprintf("Highlight(%d)", uint8(h))
}

func (h Highlight) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Highlight) UnmarshalText(b []byte) error {
	switch string(b) {
	case "default":
		*h = HighlightDefault
	case "target":
		*h = HighlightTarget
	default:
		return fmt.Errorf("unknown highlight %q", string(b))
	}
	return nil
}
