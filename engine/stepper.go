package engine

import "time"

// maxCatchUpSteps bounds how many fixed steps a single Due call may return
// Beyond this the stepper drops the backlog instead of spiralling
const maxCatchUpSteps = 5

// Stepper converts wall time into a count of fixed simulation steps
// Every step advances the simulation by exactly Step; leftover time carries over
type Stepper struct {
	Step time.Duration

	clock   TimeProvider
	last    time.Time
	acc     time.Duration
	started bool
	paused  bool
	steps   uint64
	dropped uint64
}

// NewStepper creates a stepper for the given fixed step
// A non-positive step is a configuration error and panics
func NewStepper(step time.Duration, clock TimeProvider) *Stepper {
	if step <= 0 {
		panic("engine: fixed step must be positive")
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Stepper{Step: step, clock: clock}
}

// Due returns how many fixed steps to run now
func (s *Stepper) Due() int {
	now := s.clock.Now()
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}

	elapsed := now.Sub(s.last)
	s.last = now
	if s.paused || elapsed <= 0 {
		return 0
	}

	s.acc += elapsed
	n := int(s.acc / s.Step)
	s.acc -= time.Duration(n) * s.Step

	// Drift correction: when far behind, resync instead of replaying the backlog
	if n > maxCatchUpSteps {
		s.dropped += uint64(n - maxCatchUpSteps)
		n = maxCatchUpSteps
		s.acc = 0
	}
	s.steps += uint64(n)
	return n
}

// Pause freezes step accumulation; Resume continues without replaying the pause
func (s *Stepper) Pause() {
	s.paused = true
}

func (s *Stepper) Resume() {
	s.paused = false
	s.last = s.clock.Now()
}

func (s *Stepper) Paused() bool {
	return s.paused
}

// Steps returns the total fixed steps handed out
func (s *Stepper) Steps() uint64 {
	return s.steps
}

// Dropped returns steps discarded by drift correction
func (s *Stepper) Dropped() uint64 {
	return s.dropped
}
