package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]Intent
	Runes       map[rune]Intent
}

// DefaultKeyTable returns the standard bindings
// Screen rows grow downward, so "up" pushes toward -Z
func DefaultKeyTable() *KeyTable {
	up := Intent{Type: IntentMove, DZ: -1}
	down := Intent{Type: IntentMove, DZ: 1}
	left := Intent{Type: IntentMove, DX: -1}
	right := Intent{Type: IntentMove, DX: 1}
	quit := Intent{Type: IntentQuit}

	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     up,
			tcell.KeyDown:   down,
			tcell.KeyLeft:   left,
			tcell.KeyRight:  right,
			tcell.KeyEscape: quit,
			tcell.KeyCtrlC:  quit,
		},
		Runes: map[rune]Intent{
			'w': up,
			's': down,
			'a': left,
			'd': right,
			'W': up,
			'S': down,
			'A': left,
			'D': right,
			' ': {Type: IntentToggleDebug},
			'r': {Type: IntentRestart},
			'm': {Type: IntentMute},
			'p': {Type: IntentPause},
			'q': quit,
		},
	}
}

// Decode translates a tcell event into an intent
func (t *KeyTable) Decode(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if in, ok := t.Runes[ev.Rune()]; ok {
				return in
			}
			return Intent{}
		}
		if in, ok := t.SpecialKeys[ev.Key()]; ok {
			return in
		}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}
