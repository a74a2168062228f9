package telemetry

import (
	"io"
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/status"
	"github.com/lixenwraith/rollball/vmath"
)

var inf = math.Inf(1)

// TickInput is what the host hands the controller once per fixed step
// Position must be read after the step's physics integration
type TickInput struct {
	Position     vmath.Vec3F
	DT           time.Duration
	Toggle       bool
	Collectibles []*core.Collectible
}

// Controller is the per-session debug state: previous position, mode, tick counter
type Controller struct {
	session   string
	velocity  VelocityEstimator
	modes     *ModeController
	indicator *IndicatorRenderer
	tick      uint64
	logger    *log.Logger

	statTicks    *atomic.Int64
	statSwitches *atomic.Int64
	statNearest  *status.AtomicFloat
	statMode     *status.AtomicString
}

// Option configures a Controller
type Option func(*Controller)

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics caches metric cells from reg; tick writes go straight to atomics
func WithMetrics(reg *status.Registry) Option {
	return func(c *Controller) {
		if reg == nil {
			return
		}
		c.statTicks = reg.Ints.Get(status.KeyTicks)
		c.statSwitches = reg.Ints.Get(status.KeyModeSwitches)
		c.statNearest = reg.Floats.Get(status.KeyNearestDist)
		c.statMode = reg.Strings.Get(status.KeyMode)
	}
}

// WithInitialMode starts the session in mode; panics on an undeclared mode
func WithInitialMode(mode core.DebugMode) Option {
	return func(c *Controller) {
		c.modes = NewModeController(mode)
	}
}

func WithSession(id string) Option {
	return func(c *Controller) {
		c.session = id
	}
}

// NewController creates a controller in normal mode unless overridden
func NewController(opts ...Option) *Controller {
	c := &Controller{
		modes:     NewModeController(core.ModeNormal),
		indicator: NewIndicatorRenderer(),
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.statMode != nil {
		c.statMode.Store(c.modes.Mode().String())
	}
	return c
}

// Mode returns the current debug mode
func (c *Controller) Mode() core.DebugMode {
	return c.modes.Mode()
}

// ToggleMode advances the debug mode by one step outside of a tick
func (c *Controller) ToggleMode() core.DebugMode {
	prev := c.modes.Mode()
	next := c.modes.Advance()
	c.logger.Printf("[telemetry] mode %s -> %s at tick %d", prev, next, c.tick)
	if c.statSwitches != nil {
		c.statSwitches.Add(1)
	}
	if c.statMode != nil {
		c.statMode.Store(next.String())
	}
	return next
}

// Reset re-primes velocity at pos and restarts the tick count; the mode is kept
func (c *Controller) Reset(pos vmath.Vec3F) {
	c.velocity.Reset(pos)
	c.tick = 0
}

// Switches returns the mode transitions made by this controller, restarts included
func (c *Controller) Switches() int {
	return c.modes.Switches()
}

// SetSession stamps subsequent frames with id
func (c *Controller) SetSession(id string) {
	c.session = id
}

// Tick runs one step: toggle, velocity, nearest search, then the mode-gated outputs
func (c *Controller) Tick(in TickInput) Frame {
	if in.Toggle {
		c.ToggleMode()
	}

	// Velocity is sampled in every mode so switching mid-session never shows a stale delta
	vel := c.velocity.Update(in.Position, in.DT)
	nearest, dist := FindNearest(in.Position, in.Collectibles)
	mode := c.modes.Mode()

	readout := Present(mode, Sample{
		Position: in.Position,
		Velocity: vel,
		Nearest:  nearest,
		Distance: dist,
	})
	line, assignments := c.indicator.Reconcile(mode, in.Position, nearest, in.Collectibles)

	c.tick++
	f := Frame{
		Session:     c.session,
		Tick:        c.tick,
		Mode:        mode,
		Position:    in.Position,
		Velocity:    vel,
		NearestID:   NoNearest,
		Readout:     readout,
		Line:        line,
		Assignments: assignments,
	}
	if nearest != nil {
		d := dist
		f.NearestID = nearest.ID
		f.NearestDistance = &d
	}

	if c.statTicks != nil {
		c.statTicks.Add(1)
	}
	if c.statNearest != nil {
		// -1 keeps the metric JSON-encodable when there is no target
		if nearest != nil {
			c.statNearest.Set(dist)
		} else {
			c.statNearest.Set(-1)
		}
	}
	return f
}
