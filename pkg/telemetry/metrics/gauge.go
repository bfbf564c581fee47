package metrics

import (
	"fmt"
	"math"
)

// Gauge is a labelled metric that can be set, increased and decreased.
type Gauge struct {
	vec *seriesVec[*atomicFloat]
}

func newGauge(desc *Descriptor) *Gauge {
	return &Gauge{vec: newSeriesVec(desc, newAtomicFloat)}
}

// Set replaces the value of the series.
func (g *Gauge) Set(value float64, labelValues ...string) error {
	s, err := g.vec.get(labelValues)
	if err != nil {
		return err
	}
	s.set(value)
	return nil
}

// Inc adds one to the series.
func (g *Gauge) Inc(labelValues ...string) error {
	return g.Add(1, labelValues...)
}

// Dec subtracts one from the series.
func (g *Gauge) Dec(labelValues ...string) error {
	return g.Add(-1, labelValues...)
}

// Add adds delta, which may be negative, to the series.
func (g *Gauge) Add(delta float64, labelValues ...string) error {
	if math.IsNaN(delta) {
		return fmt.Errorf("%w: %s: gauge delta is NaN", ErrObservation, g.vec.desc.Name)
	}

	s, err := g.vec.get(labelValues)
	if err != nil {
		return err
	}
	s.add(delta)
	return nil
}

// Value returns the current value of a series and whether it exists.
func (g *Gauge) Value(labelValues ...string) (float64, bool) {
	s, ok := g.vec.lookup(labelValues)
	if !ok {
		return 0, false
	}
	return s.load(), true
}

func (g *Gauge) snapshot() []SeriesSnapshot {
	return scalarSnapshot(g.vec)
}
