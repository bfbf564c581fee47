package metrics

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Histogram is a labelled metric counting observations into cumulative
// buckets. Each series also tracks the sum and count of observations.
type Histogram struct {
	vec         *seriesVec[*histogramSeries]
	upperBounds []float64
}

func newHistogram(desc *Descriptor) *Histogram {
	h := &Histogram{upperBounds: desc.Buckets}
	h.vec = newSeriesVec(desc, func() *histogramSeries {
		return &histogramSeries{
			upperBounds: h.upperBounds,
			counts:      make([]uint64, len(h.upperBounds)+1),
		}
	})
	return h
}

// Observe records value in the series identified by labelValues. NaN is
// rejected with ErrObservation.
func (h *Histogram) Observe(value float64, labelValues ...string) error {
	if math.IsNaN(value) {
		return fmt.Errorf("%w: %s: observed NaN", ErrObservation, h.vec.desc.Name)
	}

	s, err := h.vec.get(labelValues)
	if err != nil {
		return err
	}
	s.observe(value)
	return nil
}

// Snapshot returns the state of one series and whether it exists.
func (h *Histogram) Snapshot(labelValues ...string) (HistogramSnapshot, bool) {
	s, ok := h.vec.lookup(labelValues)
	if !ok {
		return HistogramSnapshot{}, false
	}
	return s.snapshot(), true
}

func (h *Histogram) snapshot() []SeriesSnapshot {
	entries := h.vec.entries()
	out := make([]SeriesSnapshot, 0, len(entries))
	for _, e := range entries {
		hs := e.series.snapshot()
		out = append(out, SeriesSnapshot{
			LabelValues: e.labelValues,
			Histogram:   &hs,
		})
	}
	return out
}

// histogramSeries stores per-bucket (non-cumulative) counts. The last slot
// is the +Inf overflow bucket.
type histogramSeries struct {
	upperBounds []float64

	mu     sync.Mutex
	counts []uint64
	sum    float64
	count  uint64
}

func (s *histogramSeries) observe(v float64) {
	// First bound >= v, or len(upperBounds) for the overflow bucket.
	i := sort.SearchFloat64s(s.upperBounds, v)

	s.mu.Lock()
	s.counts[i]++
	s.sum += v
	s.count++
	s.mu.Unlock()
}

func (s *histogramSeries) snapshot() HistogramSnapshot {
	s.mu.Lock()
	counts := make([]uint64, len(s.counts))
	copy(counts, s.counts)
	sum, count := s.sum, s.count
	s.mu.Unlock()

	buckets := make([]BucketSnapshot, len(counts))
	var cumulative uint64
	for i, c := range counts {
		cumulative += c
		bound := math.Inf(1)
		if i < len(s.upperBounds) {
			bound = s.upperBounds[i]
		}
		buckets[i] = BucketSnapshot{UpperBound: bound, CumulativeCount: cumulative}
	}

	return HistogramSnapshot{Buckets: buckets, Sum: sum, Count: count}
}
