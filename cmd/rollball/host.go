package main

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/rollball/config"
	"github.com/lixenwraith/rollball/game"
	"github.com/lixenwraith/rollball/input"
	"github.com/lixenwraith/rollball/observer"
	"github.com/lixenwraith/rollball/record"
	"github.com/lixenwraith/rollball/render"
	"github.com/lixenwraith/rollball/status"
	"github.com/lixenwraith/rollball/telemetry"
)

// soundPlayer is the slice of audio.SoundManager the host drives
type soundPlayer interface {
	PlayPickup()
	PlayWin()
	PlayToggle()
	ToggleMute() bool
	Muted() bool
}

// host owns one play session and runs the per-step pipeline:
// force and integration, pickup trigger, telemetry tick, highlight apply, publish
type host struct {
	cfg    config.Config
	logger *log.Logger
	reg    *status.Registry

	sess  *game.Session
	ctrl  *telemetry.Controller
	sound soundPlayer
	rec   *record.Recorder
	hub   *observer.Hub

	frame         telemetry.Frame
	pendingToggles int

	statPickups  *atomic.Int64
	statRecorded *atomic.Int64
}

// newHost builds the session and controller and emits the first frame
// Recording starts when cfg.Record is set; hub is optional
func newHost(cfg config.Config, logger *log.Logger, reg *status.Registry, sound soundPlayer, hub *observer.Hub) (*host, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}
	sess := game.NewSession(cfg, logger)

	var rec *record.Recorder
	if cfg.Record != "" {
		rec, err = record.NewRecorder(cfg.Record, sess.ID, time.Now())
		if err != nil {
			return nil, err
		}
		logger.Printf("[record] writing %s", cfg.Record)
	}

	h := &host{
		cfg:          cfg,
		logger:       logger,
		reg:          reg,
		sess:         sess,
		sound:        sound,
		rec:          rec,
		hub:          hub,
		statPickups:  reg.Ints.Get(status.KeyPickups),
		statRecorded: reg.Ints.Get(status.KeyRecorded),
	}
	h.ctrl = telemetry.NewController(
		telemetry.WithLogger(logger),
		telemetry.WithMetrics(reg),
		telemetry.WithInitialMode(mode),
		telemetry.WithSession(sess.ID),
	)
	h.tick(0)
	return h, nil
}

// advance applies one drained input snapshot and runs steps fixed steps
// Toggles pressed while no step is due queue up; each one is a separate transition on the next step
func (h *host) advance(snap input.Snapshot, steps int) {
	if snap.Mute {
		muted := h.sound.ToggleMute()
		h.logger.Printf("[audio] muted=%v", muted)
	}
	if snap.Restart {
		h.restart()
	}
	if snap.Toggle {
		h.pendingToggles++
	}

	for i := 0; i < steps; i++ {
		res := h.sess.Step(snap.Move, h.cfg.FixedStep)
		for range res.Picked {
			h.statPickups.Add(1)
			h.sound.PlayPickup()
		}
		if res.Won {
			h.sound.PlayWin()
		}
		h.tick(h.pendingToggles)
		h.pendingToggles = 0
	}
}

// tick runs one controller step after applying the queued mode transitions
// All but the last are applied ahead of the tick so the frame shows the final mode
func (h *host) tick(toggles int) {
	for i := 1; i < toggles; i++ {
		h.ctrl.ToggleMode()
	}
	f := h.ctrl.Tick(telemetry.TickInput{
		Position:     h.sess.Agent.Position,
		DT:           h.cfg.FixedStep,
		Toggle:       toggles > 0,
		Collectibles: h.sess.Collectibles,
	})
	telemetry.Apply(f.Assignments)
	if toggles > 0 {
		h.sound.PlayToggle()
	}
	h.publish(&f)
	h.frame = f
}

// restart replaces the session; the debug mode survives
func (h *host) restart() {
	h.sess = game.NewSession(h.cfg, h.logger)
	h.ctrl.Reset(h.sess.Agent.Position)
	h.ctrl.SetSession(h.sess.ID)
	h.pendingToggles = 0
	h.tick(0)
}

func (h *host) publish(f *telemetry.Frame) {
	if h.rec != nil {
		if err := h.rec.Write(f); err != nil {
			// Recording is best effort; one failure stops it for the session
			h.logger.Printf("[record] %v; recording stopped", err)
			_ = h.rec.Close()
			h.rec = nil
		} else {
			h.statRecorded.Store(int64(h.rec.Frames()))
		}
	}
	if h.hub != nil {
		h.hub.Publish(f)
	}
}

func (h *host) renderContext(w, ht int, paused bool) render.RenderContext {
	return render.RenderContext{
		Session:      h.sess,
		Frame:        &h.frame,
		Viewport:     render.FitViewport(w, ht, h.sess.Half()),
		Muted:        h.sound.Muted(),
		Paused:       paused,
		ScreenWidth:  w,
		ScreenHeight: ht,
	}
}

// sessionSummary is printed after the terminal is restored
type sessionSummary struct {
	Session   string
	Score     int
	Target    int
	Won       bool
	Ticks     int64
	Switches  int64
	Pickups   int64
	Elapsed   time.Duration
	Recording string
	Recorded  int64
	Dropped   int64
}

func (h *host) summary(elapsed time.Duration) sessionSummary {
	s := sessionSummary{
		Session:  h.sess.ID,
		Score:    h.sess.Score(),
		Target:   h.sess.Target(),
		Won:      h.sess.Won(),
		Ticks:    h.reg.Ints.Get(status.KeyTicks).Load(),
		Switches: int64(h.ctrl.Switches()),
		Pickups:  h.statPickups.Load(),
		Elapsed:  elapsed,
		Recorded: h.statRecorded.Load(),
		Dropped:  h.reg.Ints.Get(status.KeyDropped).Load(),
	}
	if h.rec != nil {
		s.Recording = h.rec.Path()
	}
	return s
}

// close flushes the recording; the hub is owned by the caller
func (h *host) close() {
	if h.rec != nil {
		if err := h.rec.Close(); err != nil {
			h.logger.Printf("[record] %v", err)
		}
	}
}
