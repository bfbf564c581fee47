package metrics

import (
	"fmt"
	"sync"
)

// Registry owns metric descriptors and their series. It is created once at
// startup and shared, by pointer, between the request instrumentation and
// the exposition handler. Independent registries never share state.
//
// Registration is meant for startup; observation and collection are safe
// for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families []*family
	byName   map[string]*family
}

// family is a registered descriptor plus the instrument holding its series.
type family struct {
	desc       Descriptor
	instrument instrument
}

type instrument interface {
	snapshot() []SeriesSnapshot
}

// FamilySnapshot is the collected state of one descriptor.
type FamilySnapshot struct {
	Descriptor Descriptor
	Series     []SeriesSnapshot
}

// SeriesSnapshot is the collected state of one label combination. Value is
// set for counters and gauges, Histogram for histograms.
type SeriesSnapshot struct {
	LabelValues []string
	Value       float64
	Histogram   *HistogramSnapshot
}

// HistogramSnapshot holds cumulative bucket counts. The last bucket is
// always +Inf and its count equals Count.
type HistogramSnapshot struct {
	Buckets []BucketSnapshot
	Sum     float64
	Count   uint64
}

// BucketSnapshot is one cumulative histogram bucket.
type BucketSnapshot struct {
	UpperBound      float64
	CumulativeCount uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*family),
	}
}

// Register validates and adds a descriptor. It fails with ErrDuplicateMetric
// if the name is taken, ErrInvalidBuckets for a bad histogram layout, or
// ErrInvalidDescriptor for malformed names. Nothing is stored on failure.
func (r *Registry) Register(d Descriptor) error {
	_, err := r.register(d)
	return err
}

func (r *Registry) register(d Descriptor) (*family, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	f := &family{desc: d.clone()}
	switch f.desc.Kind {
	case KindCounter:
		f.instrument = newCounter(&f.desc)
	case KindGauge:
		f.instrument = newGauge(&f.desc)
	case KindHistogram:
		f.instrument = newHistogram(&f.desc)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[f.desc.Name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateMetric, f.desc.Name)
	}
	r.byName[f.desc.Name] = f
	r.families = append(r.families, f)

	return f, nil
}

// NewCounter registers a counter and returns it.
func (r *Registry) NewCounter(name, help string, labelNames ...string) (*Counter, error) {
	f, err := r.register(Descriptor{Name: name, Help: help, LabelNames: labelNames, Kind: KindCounter})
	if err != nil {
		return nil, err
	}
	return f.instrument.(*Counter), nil
}

// NewGauge registers a gauge and returns it.
func (r *Registry) NewGauge(name, help string, labelNames ...string) (*Gauge, error) {
	f, err := r.register(Descriptor{Name: name, Help: help, LabelNames: labelNames, Kind: KindGauge})
	if err != nil {
		return nil, err
	}
	return f.instrument.(*Gauge), nil
}

// NewHistogram registers a histogram with the given bucket upper bounds and
// returns it.
func (r *Registry) NewHistogram(name, help string, buckets []float64, labelNames ...string) (*Histogram, error) {
	f, err := r.register(Descriptor{Name: name, Help: help, LabelNames: labelNames, Kind: KindHistogram, Buckets: buckets})
	if err != nil {
		return nil, err
	}
	return f.instrument.(*Histogram), nil
}

// MustNewCounter is like NewCounter but panics on error.
func (r *Registry) MustNewCounter(name, help string, labelNames ...string) *Counter {
	c, err := r.NewCounter(name, help, labelNames...)
	if err != nil {
		panic(err)
	}
	return c
}

// MustNewGauge is like NewGauge but panics on error.
func (r *Registry) MustNewGauge(name, help string, labelNames ...string) *Gauge {
	g, err := r.NewGauge(name, help, labelNames...)
	if err != nil {
		panic(err)
	}
	return g
}

// MustNewHistogram is like NewHistogram but panics on error.
func (r *Registry) MustNewHistogram(name, help string, buckets []float64, labelNames ...string) *Histogram {
	h, err := r.NewHistogram(name, help, buckets, labelNames...)
	if err != nil {
		panic(err)
	}
	return h
}

// Descriptors returns the registered descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.families))
	for _, f := range r.families {
		out = append(out, f.desc.clone())
	}
	return out
}

// Collect returns a snapshot of every family in registration order, with
// series in the order their label combination was first observed.
//
// Each series is read independently; a snapshot taken during concurrent
// writes may miss the most recent updates and is not atomic across series.
func (r *Registry) Collect() []FamilySnapshot {
	r.mu.RLock()
	families := make([]*family, len(r.families))
	copy(families, r.families)
	r.mu.RUnlock()

	out := make([]FamilySnapshot, 0, len(families))
	for _, f := range families {
		out = append(out, FamilySnapshot{
			Descriptor: f.desc.clone(),
			Series:     f.instrument.snapshot(),
		})
	}
	return out
}
