package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/vmath"
)

// Config is the session configuration loaded from YAML and overridden by CLI flags
type Config struct {
	FixedStep     time.Duration `yaml:"fixed_step"`
	FrameInterval time.Duration `yaml:"frame_interval"`

	Speed        float64 `yaml:"speed"`
	Mass         float64 `yaml:"mass"`
	Drag         float64 `yaml:"drag"`
	AgentRadius  float64 `yaml:"agent_radius"`
	PickupRadius float64 `yaml:"pickup_radius"`
	ArenaHalf    float64 `yaml:"arena_half_size"`

	Pickups     []Point `yaml:"pickups"`
	TargetScore int     `yaml:"target_score"`

	DebugMode string `yaml:"debug_mode"`

	HoldWindow   time.Duration `yaml:"hold_window"`
	RepeatWindow time.Duration `yaml:"repeat_window"`

	Audio   bool   `yaml:"audio"`
	Record  string `yaml:"record"`
	Observe string `yaml:"observe"`
	LogDir  string `yaml:"log_dir"`
	Debug   bool   `yaml:"debug"`
}

// Point is a pickup location on the arena floor
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (p Point) Vec() vmath.Vec3F {
	return vmath.Vec3F{X: p.X, Y: p.Y, Z: p.Z}
}

// Default returns the stock four-pickup arena
func Default() Config {
	return Config{
		FixedStep:     DefaultFixedStep,
		FrameInterval: DefaultFrameInterval,
		Speed:         DefaultSpeed,
		Mass:          DefaultMass,
		Drag:          DefaultDrag,
		AgentRadius:   DefaultAgentRadius,
		PickupRadius:  DefaultPickupRadius,
		ArenaHalf:     DefaultArenaHalf,
		Pickups: []Point{
			{X: -6, Z: -4},
			{X: 6, Z: -4},
			{X: -6, Z: 4},
			{X: 6, Z: 4},
		},
		DebugMode:    "normal",
		HoldWindow:   DefaultHoldWindow,
		RepeatWindow: DefaultRepeatWindow,
		Audio:        true,
		LogDir:       DefaultLogDir,
	}
}

// Load reads path over the defaults; keys absent from the file keep default values
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// Mode resolves the configured initial debug mode
func (c Config) Mode() (core.DebugMode, error) {
	m, err := core.ParseDebugMode(c.DebugMode)
	return m, errors.Wrap(err, "debug_mode")
}

// Target returns the win score, defaulting to the pickup count
func (c Config) Target() int {
	if c.TargetScore > 0 {
		return c.TargetScore
	}
	return len(c.Pickups)
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.FixedStep <= 0:
		return errors.Errorf("fixed_step must be positive, got %s", c.FixedStep)
	case c.FrameInterval <= 0:
		return errors.Errorf("frame_interval must be positive, got %s", c.FrameInterval)
	case c.Mass <= 0:
		return errors.Errorf("mass must be positive, got %g", c.Mass)
	case c.Drag < 0:
		return errors.Errorf("drag must not be negative, got %g", c.Drag)
	case c.PickupRadius <= 0:
		return errors.Errorf("pickup_radius must be positive, got %g", c.PickupRadius)
	case c.ArenaHalf <= c.AgentRadius:
		return errors.Errorf("arena_half_size %g must exceed agent_radius %g", c.ArenaHalf, c.AgentRadius)
	case c.TargetScore < 0:
		return errors.Errorf("target_score must not be negative, got %d", c.TargetScore)
	case c.TargetScore > len(c.Pickups):
		return errors.Errorf("target_score %d exceeds pickup count %d", c.TargetScore, len(c.Pickups))
	}
	for i, p := range c.Pickups {
		if abs(p.X) > c.ArenaHalf || abs(p.Z) > c.ArenaHalf {
			return errors.Errorf("pickup %d at (%g, %g) lies outside the arena", i, p.X, p.Z)
		}
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	return nil
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
