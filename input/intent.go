package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit    // q, Esc, Ctrl+C
	IntentRestart // r
	IntentMute    // m
	IntentPause   // p
	IntentResize  // Terminal resize event

	// Gameplay
	IntentMove        // arrows, w/a/s/d
	IntentToggleDebug // Space
)

// Intent is one decoded input action
// DX/DZ carry the push direction for IntentMove
type Intent struct {
	Type   IntentType
	DX, DZ float64
}
