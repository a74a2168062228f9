package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 as bits in an atomic word
// Zero value is ready to use (represents 0.0)
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Min lowers the stored value to val when val is smaller, returning the result
func (f *AtomicFloat) Min(val float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		if cur <= val {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}
