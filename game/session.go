package game

import (
	"io"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/rollball/config"
	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/vmath"
)

const (
	winText     = "You win!"
	winTextIdle = " "
)

// StepResult reports what happened during one fixed step
type StepResult struct {
	Picked []int
	Won    bool
}

// Session owns the agent body, the collectibles and the score
type Session struct {
	ID string

	Agent        Body
	Collectibles []*core.Collectible

	speed   float64
	half    float64
	trigger float64
	target  int
	score   int
	won     bool

	logger *log.Logger
}

// NewSession builds a session from cfg; the agent starts at the origin
func NewSession(cfg config.Config, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Session{
		ID: uuid.NewString(),
		Agent: Body{
			Mass:   cfg.Mass,
			Drag:   cfg.Drag,
			Radius: cfg.AgentRadius,
		},
		speed:   cfg.Speed,
		half:    cfg.ArenaHalf,
		trigger: cfg.AgentRadius + cfg.PickupRadius,
		target:  cfg.Target(),
		logger:  logger,
	}
	s.Collectibles = make([]*core.Collectible, len(cfg.Pickups))
	for i, p := range cfg.Pickups {
		s.Collectibles[i] = &core.Collectible{
			ID:         i,
			Position:   p.Vec(),
			Active:     true,
			Renderable: &Marker{},
		}
	}
	s.logger.Printf("[game] session %s started: %d pickups, target %d", s.ID, len(s.Collectibles), s.target)
	return s
}

// Step applies the movement input as a force, integrates, then runs the pickup trigger
// Physics always precedes the trigger so callers observe the post-integration position
func (s *Session) Step(move vmath.Vec3F, dt time.Duration) StepResult {
	secs := dt.Seconds()
	move.Y = 0
	s.Agent.AddForce(vmath.V3FScale(move, s.speed*secs))
	s.Agent.Integrate(secs, s.half)

	var res StepResult
	for _, c := range s.Collectibles {
		if !c.Active {
			continue
		}
		if vmath.V3FDist(s.Agent.Position, c.Position) <= s.trigger {
			res.Picked = append(res.Picked, c.ID)
			s.collect(c)
		}
	}
	if len(res.Picked) > 0 && !s.won && s.score >= s.target {
		s.won = true
		res.Won = true
		s.logger.Printf("[game] session %s won at score %d", s.ID, s.score)
	}
	return res
}

// collect deactivates c and counts it; the collectible stays in the set
func (s *Session) collect(c *core.Collectible) {
	c.Active = false
	s.score++
	s.logger.Printf("[game] pickup %d collected, score %d/%d", c.ID, s.score, s.target)
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Target() int {
	return s.target
}

func (s *Session) Won() bool {
	return s.won
}

// Remaining counts active collectibles
func (s *Session) Remaining() int {
	n := 0
	for _, c := range s.Collectibles {
		if c.Active {
			n++
		}
	}
	return n
}

func (s *Session) ScoreText() string {
	return "Score: " + strconv.Itoa(s.score)
}

// WinText is a single space until the target is reached
func (s *Session) WinText() string {
	if s.won {
		return winText
	}
	return winTextIdle
}

// Half returns the arena half extent
func (s *Session) Half() float64 {
	return s.half
}
