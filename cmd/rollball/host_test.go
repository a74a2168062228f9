package main

import (
	"bytes"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rollball/config"
	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/game"
	"github.com/lixenwraith/rollball/input"
	"github.com/lixenwraith/rollball/record"
	"github.com/lixenwraith/rollball/status"
)

type fakeSound struct {
	pickups, wins, toggles int
	muted                  bool
}

func (f *fakeSound) PlayPickup()      { f.pickups++ }
func (f *fakeSound) PlayWin()         { f.wins++ }
func (f *fakeSound) PlayToggle()      { f.toggles++ }
func (f *fakeSound) ToggleMute() bool { f.muted = !f.muted; return f.muted }
func (f *fakeSound) Muted() bool      { return f.muted }

// One pickup inside the trigger radius of the origin and one far away
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Pickups = []config.Point{{X: 0.9}, {X: -8}}
	cfg.TargetScore = 1
	return cfg
}

func newTestHost(t *testing.T, cfg config.Config) (*host, *fakeSound, *status.Registry) {
	t.Helper()
	reg := status.NewRegistry()
	snd := &fakeSound{}
	h, err := newHost(cfg, log.New(io.Discard, "", 0), reg, snd, nil)
	require.NoError(t, err)
	t.Cleanup(h.close)
	return h, snd, reg
}

func TestHostEmitsFirstFrame(t *testing.T) {
	h, _, reg := newTestHost(t, testConfig())

	assert.Equal(t, uint64(1), h.frame.Tick)
	assert.Equal(t, core.ModeNormal, h.frame.Mode)
	assert.Equal(t, h.sess.ID, h.frame.Session)
	assert.True(t, h.frame.Readout.Empty())
	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyTicks).Load())
}

func TestHostRejectsBadMode(t *testing.T) {
	cfg := testConfig()
	cfg.DebugMode = "xray"
	_, err := newHost(cfg, log.New(io.Discard, "", 0), status.NewRegistry(), &fakeSound{}, nil)
	assert.Error(t, err)
}

func TestHostToggleWaitsForStep(t *testing.T) {
	h, snd, _ := newTestHost(t, testConfig())

	h.advance(input.Snapshot{Toggle: true}, 0)
	assert.Equal(t, core.ModeNormal, h.frame.Mode)
	assert.Equal(t, 0, snd.toggles)

	h.advance(input.Snapshot{}, 2)
	assert.Equal(t, core.ModeDistance, h.frame.Mode)
	assert.Equal(t, 1, snd.toggles, "one press advances one mode")
	assert.Equal(t, uint64(3), h.frame.Tick)
}

func TestHostQueuedTogglesEachTransition(t *testing.T) {
	h, snd, _ := newTestHost(t, testConfig())

	// Two separate presses while paused: no step is due for either
	h.advance(input.Snapshot{Toggle: true}, 0)
	h.advance(input.Snapshot{Toggle: true}, 0)
	assert.Equal(t, core.ModeNormal, h.frame.Mode)

	h.advance(input.Snapshot{}, 1)
	assert.Equal(t, core.ModeVision, h.frame.Mode)
	assert.Equal(t, 2, h.ctrl.Switches())
	assert.Equal(t, 1, snd.toggles)

	// Three queued presses come back around to the start
	for i := 0; i < 3; i++ {
		h.advance(input.Snapshot{Toggle: true}, 0)
	}
	h.advance(input.Snapshot{}, 1)
	assert.Equal(t, core.ModeVision, h.frame.Mode)
	assert.Equal(t, 5, h.ctrl.Switches())

	h.advance(input.Snapshot{}, 1)
	assert.Equal(t, core.ModeVision, h.frame.Mode, "queue is drained")
}

func TestHostPickupRetargetsAndWins(t *testing.T) {
	cfg := testConfig()
	cfg.DebugMode = "distance"
	h, snd, reg := newTestHost(t, cfg)

	// Before any step the close pickup is the target
	assert.Equal(t, 0, h.frame.NearestID)
	assert.Equal(t, core.HighlightTarget, h.sess.Collectibles[0].Renderable.(*game.Marker).Highlight())

	h.advance(input.Snapshot{}, 1)

	assert.False(t, h.sess.Collectibles[0].Active)
	assert.True(t, h.sess.Won())
	assert.Equal(t, 1, snd.pickups)
	assert.Equal(t, 1, snd.wins)
	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyPickups).Load())

	// Same step: the far pickup takes over the highlight
	assert.Equal(t, 1, h.frame.NearestID)
	assert.Equal(t, core.HighlightTarget, h.sess.Collectibles[1].Renderable.(*game.Marker).Highlight())
	assert.Equal(t, "Nearest: 8.00", h.frame.Readout.Distance)
}

func TestHostRestartKeepsMode(t *testing.T) {
	cfg := testConfig()
	cfg.DebugMode = "vision"
	h, _, _ := newTestHost(t, cfg)
	h.advance(input.Snapshot{}, 3)
	first := h.sess.ID

	h.advance(input.Snapshot{Restart: true}, 0)

	assert.NotEqual(t, first, h.sess.ID)
	assert.Equal(t, h.sess.ID, h.frame.Session)
	assert.Equal(t, uint64(1), h.frame.Tick)
	assert.Equal(t, core.ModeVision, h.frame.Mode)
	assert.Equal(t, 2, h.sess.Remaining())
	assert.Equal(t, "Velocity: (0.00, 0.00, 0.00)", h.frame.Readout.Velocity)
}

func TestHostMute(t *testing.T) {
	h, snd, _ := newTestHost(t, testConfig())
	h.advance(input.Snapshot{Mute: true}, 0)
	assert.True(t, snd.muted)
	assert.True(t, h.renderContext(80, 24, false).Muted)
}

func TestHostRecordsEveryFrame(t *testing.T) {
	cfg := testConfig()
	cfg.Record = filepath.Join(t.TempDir(), "run"+config.RecordingExt)
	h, _, _ := newTestHost(t, cfg)

	h.advance(input.Snapshot{Toggle: true}, 4)
	sum := h.summary(0)
	h.close()

	assert.Equal(t, cfg.Record, sum.Recording)
	assert.Equal(t, int64(5), sum.Recorded)
	assert.Equal(t, int64(1), sum.Switches)

	s, err := record.Summarize(cfg.Record)
	require.NoError(t, err)
	assert.Equal(t, h.sess.ID, s.Header.Session)
	assert.Equal(t, uint64(5), s.Frames)
	assert.Equal(t, uint64(1), s.ModeTicks[core.ModeNormal])
	assert.Equal(t, uint64(4), s.ModeTicks[core.ModeDistance])
}

func TestHostRenderContext(t *testing.T) {
	h, _, _ := newTestHost(t, testConfig())
	ctx := h.renderContext(80, 30, true)

	assert.Same(t, h.sess, ctx.Session)
	assert.Equal(t, &h.frame, ctx.Frame)
	assert.True(t, ctx.Paused)
	assert.True(t, ctx.Viewport.Valid())
	assert.Equal(t, 80, ctx.ScreenWidth)
}

func TestPrintSession(t *testing.T) {
	var buf bytes.Buffer
	printSession(&buf, sessionSummary{
		Session:  "abc",
		Score:    4,
		Target:   4,
		Won:      true,
		Ticks:    12345,
		Switches: 2,
		Dropped:  3,
	})
	out := buf.String()
	assert.Contains(t, out, "rollball session abc")
	assert.Contains(t, out, "score 4/4")
	assert.Contains(t, out, "12,345 ticks")
	assert.Contains(t, out, "observers dropped 3 frames")
	assert.False(t, strings.Contains(out, "recorded"))
}
