package config

import "time"

// Simulation tuning
const (
	DefaultFixedStep     = 20 * time.Millisecond
	DefaultFrameInterval = 16 * time.Millisecond

	DefaultSpeed        = 600.0
	DefaultMass         = 1.0
	DefaultDrag         = 1.5
	DefaultAgentRadius  = 0.5
	DefaultPickupRadius = 0.5
	DefaultArenaHalf    = 10.0
)

// Input timing
const (
	DefaultHoldWindow   = 150 * time.Millisecond
	DefaultRepeatWindow = 200 * time.Millisecond
)

// Files
const (
	DefaultLogDir = "logs"
	LogFileName   = "rollball.log"
	DefaultConfig = "rollball.yaml"
	RecordingExt  = ".jsonl.zst"
)
