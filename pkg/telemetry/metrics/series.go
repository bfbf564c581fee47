package metrics

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// labelSeparator joins label values into a map key. It cannot appear in
// valid UTF-8, and label values are required to be valid UTF-8.
const labelSeparator = "\xff"

// seriesVec holds the lazily created series of one descriptor, keyed by
// label values and remembered in first-seen order.
type seriesVec[S any] struct {
	desc      *Descriptor
	newSeries func() S

	mu    sync.RWMutex
	byKey map[string]S
	order []seriesEntry[S]
}

type seriesEntry[S any] struct {
	labelValues []string
	series      S
}

func newSeriesVec[S any](desc *Descriptor, newSeries func() S) *seriesVec[S] {
	return &seriesVec[S]{
		desc:      desc,
		newSeries: newSeries,
		byKey:     make(map[string]S),
	}
}

// get returns the series for labelValues, creating it on first use.
func (v *seriesVec[S]) get(labelValues []string) (S, error) {
	var zero S
	if err := v.checkLabels(labelValues); err != nil {
		return zero, err
	}

	key := strings.Join(labelValues, labelSeparator)

	v.mu.RLock()
	s, ok := v.byKey[key]
	v.mu.RUnlock()
	if ok {
		return s, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// Double-check after acquiring write lock
	if s, ok := v.byKey[key]; ok {
		return s, nil
	}

	s = v.newSeries()
	v.byKey[key] = s
	v.order = append(v.order, seriesEntry[S]{
		labelValues: slices.Clone(labelValues),
		series:      s,
	})
	return s, nil
}

// lookup returns an existing series without creating one.
func (v *seriesVec[S]) lookup(labelValues []string) (S, bool) {
	var zero S
	if len(labelValues) != len(v.desc.LabelNames) {
		return zero, false
	}

	v.mu.RLock()
	defer v.mu.RUnlock()
	s, ok := v.byKey[strings.Join(labelValues, labelSeparator)]
	return s, ok
}

// entries returns the series in first-seen order. The slice is a copy; the
// series themselves are shared.
func (v *seriesVec[S]) entries() []seriesEntry[S] {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.order)
}

func (v *seriesVec[S]) checkLabels(labelValues []string) error {
	if len(labelValues) != len(v.desc.LabelNames) {
		return fmt.Errorf("%w: %s expects %d label values %v, got %d",
			ErrObservation, v.desc.Name, len(v.desc.LabelNames), v.desc.LabelNames, len(labelValues))
	}
	for i, lv := range labelValues {
		if !utf8.ValidString(lv) {
			return fmt.Errorf("%w: %s: value for label %q is not valid UTF-8",
				ErrObservation, v.desc.Name, v.desc.LabelNames[i])
		}
	}
	return nil
}

// atomicFloat is a float64 updated with compare-and-swap on its bits.
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) add(delta float64) {
	for {
		old := f.bits.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if f.bits.CompareAndSwap(old, next) {
			return
		}
	}
}

func (f *atomicFloat) set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *atomicFloat) load() float64 {
	return math.Float64frombits(f.bits.Load())
}

func newAtomicFloat() *atomicFloat {
	return &atomicFloat{}
}

// scalarSnapshot renders counter and gauge series.
func scalarSnapshot(vec *seriesVec[*atomicFloat]) []SeriesSnapshot {
	entries := vec.entries()
	out := make([]SeriesSnapshot, 0, len(entries))
	for _, e := range entries {
		out = append(out, SeriesSnapshot{
			LabelValues: e.labelValues,
			Value:       e.series.load(),
		})
	}
	return out
}
