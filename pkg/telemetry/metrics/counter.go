package metrics

import (
	"fmt"
	"math"
)

// Counter is a labelled, monotonically non-decreasing metric. It has no
// way to decrease or reset a series.
type Counter struct {
	vec *seriesVec[*atomicFloat]
}

func newCounter(desc *Descriptor) *Counter {
	return &Counter{vec: newSeriesVec(desc, newAtomicFloat)}
}

// Inc adds one to the series identified by labelValues.
func (c *Counter) Inc(labelValues ...string) error {
	return c.Add(1, labelValues...)
}

// Add adds delta to the series identified by labelValues. A negative or
// NaN delta is rejected with ErrObservation.
func (c *Counter) Add(delta float64, labelValues ...string) error {
	if delta < 0 || math.IsNaN(delta) {
		return fmt.Errorf("%w: %s: counter delta %v must be non-negative", ErrObservation, c.vec.desc.Name, delta)
	}

	s, err := c.vec.get(labelValues)
	if err != nil {
		return err
	}
	s.add(delta)
	return nil
}

// Value returns the current value of a series and whether it exists.
func (c *Counter) Value(labelValues ...string) (float64, bool) {
	s, ok := c.vec.lookup(labelValues)
	if !ok {
		return 0, false
	}
	return s.load(), true
}

func (c *Counter) snapshot() []SeriesSnapshot {
	return scalarSnapshot(c.vec)
}
