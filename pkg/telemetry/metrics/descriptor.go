package metrics

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/prometheus/common/model"
)

// Kind identifies the aggregation semantics of a registered metric.
type Kind int

const (
	// KindCounter is a monotonically non-decreasing value.
	KindCounter Kind = iota
	// KindGauge is a value that may move in either direction.
	KindGauge
	// KindHistogram counts observations into cumulative buckets.
	KindHistogram
)

// String returns the exposition TYPE name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	case KindHistogram:
		return "histogram"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Descriptor describes a metric: its name, help text, label names, kind,
// and for histograms the bucket upper bounds. The implicit +Inf bucket is
// never listed in Buckets.
//
// A descriptor is copied on registration and never changes afterwards.
type Descriptor struct {
	Name       string
	Help       string
	LabelNames []string
	Kind       Kind
	Buckets    []float64
}

// validate checks naming rules and bucket ordering.
func (d Descriptor) validate() error {
	if !model.IsValidLegacyMetricName(d.Name) {
		return fmt.Errorf("%w: metric name %q", ErrInvalidDescriptor, d.Name)
	}

	seen := make(map[string]struct{}, len(d.LabelNames))
	for _, name := range d.LabelNames {
		if !model.LabelName(name).IsValidLegacy() || strings.HasPrefix(name, "__") {
			return fmt.Errorf("%w: %s: label name %q", ErrInvalidDescriptor, d.Name, name)
		}
		if d.Kind == KindHistogram && name == model.BucketLabel {
			return fmt.Errorf("%w: %s: label name %q is reserved for histograms", ErrInvalidDescriptor, d.Name, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s: duplicate label name %q", ErrInvalidDescriptor, d.Name, name)
		}
		seen[name] = struct{}{}
	}

	switch d.Kind {
	case KindCounter, KindGauge:
		if len(d.Buckets) > 0 {
			return fmt.Errorf("%w: %s: buckets set on a %s", ErrInvalidDescriptor, d.Name, d.Kind)
		}
	case KindHistogram:
		return validateBuckets(d.Name, d.Buckets)
	default:
		return fmt.Errorf("%w: %s: unknown kind %d", ErrInvalidDescriptor, d.Name, int(d.Kind))
	}

	return nil
}

func validateBuckets(name string, buckets []float64) error {
	if len(buckets) == 0 {
		return fmt.Errorf("%w: %s: no bucket boundaries", ErrInvalidBuckets, name)
	}
	for i, b := range buckets {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: %s: boundary %d is %v", ErrInvalidBuckets, name, i, b)
		}
		if i > 0 && b <= buckets[i-1] {
			return fmt.Errorf("%w: %s: boundary %v does not exceed %v", ErrInvalidBuckets, name, b, buckets[i-1])
		}
	}
	return nil
}

func (d Descriptor) clone() Descriptor {
	d.LabelNames = slices.Clone(d.LabelNames)
	d.Buckets = slices.Clone(d.Buckets)
	return d
}
