package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/rollball/audio"
	"github.com/lixenwraith/rollball/config"
	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/engine"
	"github.com/lixenwraith/rollball/input"
	"github.com/lixenwraith/rollball/observer"
	"github.com/lixenwraith/rollball/render"
	"github.com/lixenwraith/rollball/render/renderers"
	"github.com/lixenwraith/rollball/status"
)

func newOrchestrator(screen tcell.Screen) *render.RenderOrchestrator {
	o := render.NewRenderOrchestrator(screen)
	o.Register(renderers.NewArenaRenderer(), render.PriorityBackground)
	o.Register(renderers.NewIndicatorRenderer(), render.PriorityIndicator)
	o.Register(renderers.NewPickupsRenderer(), render.PriorityEntities)
	o.Register(renderers.NewAgentRenderer(), render.PriorityAgent)
	o.Register(renderers.NewHUDRenderer(), render.PriorityUI)
	return o
}

// play runs the interactive session until quit
func play(cfg config.Config) error {
	logFile := setupLogging(cfg.Debug, cfg.LogDir)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := log.Default()
	reg := status.NewRegistry()

	var hub *observer.Hub
	if cfg.Observe != "" {
		hub = observer.NewHub(logger, reg)
		if _, err := hub.Listen(cfg.Observe); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := hub.Close(ctx); err != nil {
				logger.Printf("[observer] %v", err)
			}
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	core.SetCrashRestore(screen.Fini)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	sound := audio.NewSoundManager()
	if cfg.Audio {
		if err := sound.Initialize(); err != nil {
			logger.Printf("[audio] disabled: %v", err)
		} else {
			defer sound.Cleanup()
		}
	}

	h, err := newHost(cfg, logger, reg, sound, hub)
	if err != nil {
		return err
	}
	defer h.close()

	orchestrator := newOrchestrator(screen)
	clock := engine.NewMonotonicTimeProvider()
	stepper := engine.NewStepper(cfg.FixedStep, clock)
	collector := input.NewCollector(cfg.HoldWindow, cfg.RepeatWindow)
	keys := input.DefaultKeyTable()
	started := clock.Now()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(cfg.FrameInterval)
	defer frameTicker.Stop()

loop:
	for {
		select {
		case ev := <-eventChan:
			in := keys.Decode(ev)
			if in.Type == input.IntentResize {
				orchestrator.Resize()
				continue
			}
			collector.Handle(in, clock.Now())

		case <-frameTicker.C:
			snap := collector.Drain(clock.Now())
			if snap.Quit {
				break loop
			}
			if snap.Pause {
				if stepper.Paused() {
					stepper.Resume()
				} else {
					stepper.Pause()
				}
				logger.Printf("[engine] paused=%v", stepper.Paused())
			}

			h.advance(snap, stepper.Due())

			w, ht := orchestrator.Size()
			orchestrator.RenderFrame(h.renderContext(w, ht, stepper.Paused()))
		}
	}

	if d := stepper.Dropped(); d > 0 {
		logger.Printf("[engine] drift correction dropped %d steps", d)
	}
	h.close()
	screen.Fini()
	printSession(os.Stdout, h.summary(clock.Now().Sub(started)))
	fmt.Fprintln(os.Stdout)
	return nil
}
