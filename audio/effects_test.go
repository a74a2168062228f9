package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	n, peak := drain(NewOscillator(440, 10*time.Millisecond, WaveSine, rate))
	assert.Equal(t, rate.N(10*time.Millisecond), n)
	assert.InDelta(t, 1.0, peak, 0.01)
}

func TestSquareWaveIsBinary(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewOscillator(440, 5*time.Millisecond, WaveSquare, rate)
	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, math.Abs(buf[i][0]))
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 50*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 4)
	env.Stream(buf)
	assert.Equal(t, 0.0, buf[0][0])
	assert.Less(t, math.Abs(buf[3][0]), 0.01)
}

func TestPickupSoundLength(t *testing.T) {
	n, peak := drain(PickupSound())
	assert.Equal(t, sampleRate.N(pickupDuration), n)
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, 0.5+1e-9)
}

func TestWinSoundIsFourNotes(t *testing.T) {
	n, _ := drain(WinSound())
	assert.Equal(t, 4*sampleRate.N(winNote), n)
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(newVolume(NewOscillator(440, 5*time.Millisecond, WaveSine, sampleRate), 0))
	assert.Equal(t, 0.0, peak)
}

func TestSoundManagerSilentUntilInitialized(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.PlayPickup()
		sm.PlayWin()
		sm.PlayToggle()
		sm.Cleanup()
	})
	assert.False(t, sm.Muted())
	assert.True(t, sm.ToggleMute())
	assert.False(t, sm.ToggleMute())
}
