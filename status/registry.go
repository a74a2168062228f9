package status

import "sync/atomic"

// Well-known metric keys written by the tick loop
const (
	KeyTicks        = "session.ticks"
	KeyPickups      = "session.pickups"
	KeyModeSwitches = "telemetry.mode_switches"
	KeyNearestDist  = "telemetry.nearest_distance"
	KeyMode         = "telemetry.mode"
	KeyObservers    = "observer.clients"
	KeyDropped      = "observer.dropped_frames"
	KeyRecorded     = "record.frames"
)

// Registry is the central metrics facade
// Components cache pointers during init; tick code writes directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a plain map, keys in registry naming
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out[key] = v.Get()
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out[key] = v.Load()
	})
	return out
}
