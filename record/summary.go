package record

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/vmath"
)

// Summary aggregates a whole recording
type Summary struct {
	Header    Header
	Frames    uint64
	LastTick  uint64
	ModeTicks [core.DebugModeCount]uint64
	// Targeted counts frames with an active nearest collectible
	Targeted    uint64
	MinDistance float64
	MaxSpeed    float64
	Bytes       int64
}

// ModeShare is the fraction of frames spent in m
func (s Summary) ModeShare(m core.DebugMode) float64 {
	if s.Frames == 0 || !m.Valid() {
		return 0
	}
	return float64(s.ModeTicks[m]) / float64(s.Frames)
}

// HasTarget reports whether any frame had an active nearest collectible
func (s Summary) HasTarget() bool {
	return !math.IsInf(s.MinDistance, 1)
}

// Summarize reads every frame in path
func Summarize(path string) (Summary, error) {
	s := Summary{MinDistance: math.Inf(1)}

	st, err := os.Stat(path)
	if err != nil {
		return s, errors.Wrapf(err, "stat %s", path)
	}
	s.Bytes = st.Size()

	r, err := Open(path)
	if err != nil {
		return s, err
	}
	defer r.Close()
	s.Header = r.Header()

	for {
		fr, err := r.Next()
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			return s, errors.Wrapf(err, "summarize %s", path)
		}

		s.Frames++
		s.LastTick = fr.Tick
		if fr.Mode.Valid() {
			s.ModeTicks[fr.Mode]++
		}
		if fr.NearestDistance != nil {
			s.Targeted++
			s.MinDistance = math.Min(s.MinDistance, *fr.NearestDistance)
		}
		s.MaxSpeed = math.Max(s.MaxSpeed, vmath.V3FMag(fr.Velocity))
	}
}

