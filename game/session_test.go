package game

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rollball/config"
	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/vmath"
)

const step = 20 * time.Millisecond

func lineConfig() config.Config {
	cfg := config.Default()
	cfg.Pickups = []config.Point{{X: 2}, {X: 4}}
	return cfg
}

func TestNewSessionStartsIdle(t *testing.T) {
	s := NewSession(lineConfig(), nil)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Score: 0", s.ScoreText())
	assert.Equal(t, " ", s.WinText())
	assert.Equal(t, 2, s.Remaining())
	assert.Equal(t, 2, s.Target())
	for i, c := range s.Collectibles {
		assert.Equal(t, i, c.ID)
		assert.True(t, c.Active)
		require.IsType(t, &Marker{}, c.Renderable)
	}
}

func TestSessionPushMovesAgent(t *testing.T) {
	s := NewSession(lineConfig(), nil)
	s.Step(vmath.Vec3F{X: 1}, step)

	assert.Greater(t, s.Agent.Position.X, 0.0)
	assert.Greater(t, s.Agent.Velocity.X, 0.0)
	assert.Equal(t, 0.0, s.Agent.Position.Y)
	assert.Equal(t, 0.0, s.Agent.Position.Z)
}

func TestSessionCollectsAndWins(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(lineConfig(), log.New(&buf, "", 0))

	var picked []int
	won := 0
	for i := 0; i < 500 && !s.Won(); i++ {
		res := s.Step(vmath.Vec3F{X: 1}, step)
		picked = append(picked, res.Picked...)
		if res.Won {
			won++
		}
	}

	assert.Equal(t, []int{0, 1}, picked)
	assert.Equal(t, 1, won)
	assert.Equal(t, "Score: 2", s.ScoreText())
	assert.Equal(t, "You win!", s.WinText())
	assert.Equal(t, 0, s.Remaining())
	assert.Len(t, s.Collectibles, 2, "collectibles are deactivated, not removed")
	assert.Contains(t, buf.String(), "[game] pickup 0 collected")
}

func TestSessionArenaClamp(t *testing.T) {
	cfg := lineConfig()
	cfg.Pickups = nil
	s := NewSession(cfg, nil)
	for i := 0; i < 2000; i++ {
		s.Step(vmath.Vec3F{X: -1, Z: 1}, step)
	}
	limit := cfg.ArenaHalf - cfg.AgentRadius
	assert.InDelta(t, -limit, s.Agent.Position.X, 1e-9)
	assert.InDelta(t, limit, s.Agent.Position.Z, 1e-9)
}

func TestBodyZeroStepClearsForce(t *testing.T) {
	b := Body{Mass: 1, Radius: 0.5}
	b.AddForce(vmath.Vec3F{X: 10})
	b.Integrate(0, 10)
	assert.Equal(t, vmath.Vec3F{}, b.Velocity)

	b.Integrate(1, 10)
	assert.Equal(t, vmath.Vec3F{}, b.Velocity, "force was consumed by the zero step")
}

func TestMarkerHighlight(t *testing.T) {
	var m Marker
	assert.Equal(t, core.HighlightDefault, m.Highlight())
	m.SetHighlight(core.HighlightTarget)
	assert.Equal(t, core.HighlightTarget, m.Highlight())
}
