package input

import (
	"time"

	"github.com/lixenwraith/rollball/vmath"
)

const (
	// DefaultHoldWindow keeps a pushed direction alive between key repeats
	DefaultHoldWindow = 150 * time.Millisecond
	// DefaultRepeatWindow collapses auto-repeated toggle presses into one edge
	DefaultRepeatWindow = 200 * time.Millisecond
)

// ToggleEdge turns a stream of key presses into discrete toggle edges
// Terminals report no key release; presses closer than Window to the previous one count as held
type ToggleEdge struct {
	Window time.Duration

	last    time.Time
	seen    bool
	pending bool
}

// Press records a key-down; it reports whether the press started a new edge
func (e *ToggleEdge) Press(now time.Time) bool {
	held := e.seen && now.Sub(e.last) < e.Window
	e.last = now
	e.seen = true
	if held {
		return false
	}
	e.pending = true
	return true
}

// Consume returns true at most once per accepted edge
func (e *ToggleEdge) Consume() bool {
	p := e.pending
	e.pending = false
	return p
}

type axisHold struct {
	dir     float64
	expires time.Time
}

func (a *axisHold) value(now time.Time) float64 {
	if now.After(a.expires) {
		return 0
	}
	return a.dir
}

// Snapshot is the input state handed to one fixed step
type Snapshot struct {
	Move    vmath.Vec3F
	Toggle  bool
	Restart bool
	Mute    bool
	Pause   bool
	Quit    bool
}

// Collector accumulates intents between steps
type Collector struct {
	HoldWindow time.Duration

	x, z    axisHold
	toggle  ToggleEdge
	restart bool
	mute    bool
	pause   bool
	quit    bool
}

func NewCollector(hold, repeat time.Duration) *Collector {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	if repeat <= 0 {
		repeat = DefaultRepeatWindow
	}
	return &Collector{
		HoldWindow: hold,
		toggle:     ToggleEdge{Window: repeat},
	}
}

// Handle records one intent at time now
func (c *Collector) Handle(in Intent, now time.Time) {
	switch in.Type {
	case IntentMove:
		if in.DX != 0 {
			c.x = axisHold{dir: in.DX, expires: now.Add(c.HoldWindow)}
		}
		if in.DZ != 0 {
			c.z = axisHold{dir: in.DZ, expires: now.Add(c.HoldWindow)}
		}
	case IntentToggleDebug:
		c.toggle.Press(now)
	case IntentRestart:
		c.restart = true
	case IntentMute:
		c.mute = true
	case IntentPause:
		c.pause = true
	case IntentQuit:
		c.quit = true
	}
}

// Drain returns the state for the next step and clears one-shot flags
// Move stays live across steps until its hold window lapses
func (c *Collector) Drain(now time.Time) Snapshot {
	s := Snapshot{
		Move:    vmath.Vec3F{X: c.x.value(now), Z: c.z.value(now)},
		Toggle:  c.toggle.Consume(),
		Restart: c.restart,
		Mute:    c.mute,
		Pause:   c.pause,
		Quit:    c.quit,
	}
	c.restart = false
	c.mute = false
	c.pause = false
	return s
}
