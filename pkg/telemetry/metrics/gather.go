package metrics

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"google.golang.org/protobuf/proto"
)

var _ prometheus.Gatherer = (*Registry)(nil)

// Gather implements prometheus.Gatherer. Families are returned in
// registration order and series in first-seen order, unlike
// prometheus.Registry which sorts both. Families without any series are
// omitted; the exposition handler writes their HELP and TYPE lines itself.
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	snapshots := r.Collect()

	out := make([]*dto.MetricFamily, 0, len(snapshots))
	for _, fs := range snapshots {
		if len(fs.Series) == 0 {
			continue
		}
		out = append(out, toMetricFamily(fs))
	}
	return out, nil
}

func toMetricFamily(fs FamilySnapshot) *dto.MetricFamily {
	d := fs.Descriptor
	mf := &dto.MetricFamily{
		Name:   proto.String(d.Name),
		Help:   proto.String(d.Help),
		Metric: make([]*dto.Metric, 0, len(fs.Series)),
	}

	switch d.Kind {
	case KindCounter:
		mf.Type = dto.MetricType_COUNTER.Enum()
	case KindGauge:
		mf.Type = dto.MetricType_GAUGE.Enum()
	case KindHistogram:
		mf.Type = dto.MetricType_HISTOGRAM.Enum()
	}

	for _, s := range fs.Series {
		m := &dto.Metric{Label: toLabelPairs(d.LabelNames, s.LabelValues)}
		switch d.Kind {
		case KindCounter:
			m.Counter = &dto.Counter{Value: proto.Float64(s.Value)}
		case KindGauge:
			m.Gauge = &dto.Gauge{Value: proto.Float64(s.Value)}
		case KindHistogram:
			m.Histogram = toHistogram(s.Histogram)
		}
		mf.Metric = append(mf.Metric, m)
	}

	return mf
}

func toLabelPairs(names, values []string) []*dto.LabelPair {
	if len(names) == 0 {
		return nil
	}
	pairs := make([]*dto.LabelPair, len(names))
	for i := range names {
		pairs[i] = &dto.LabelPair{
			Name:  proto.String(names[i]),
			Value: proto.String(values[i]),
		}
	}
	return pairs
}

// toHistogram drops the +Inf bucket; the text encoder derives it from the
// sample count.
func toHistogram(hs *HistogramSnapshot) *dto.Histogram {
	h := &dto.Histogram{
		SampleCount: proto.Uint64(hs.Count),
		SampleSum:   proto.Float64(hs.Sum),
		Bucket:      make([]*dto.Bucket, 0, len(hs.Buckets)),
	}
	for _, b := range hs.Buckets {
		if math.IsInf(b.UpperBound, 1) {
			continue
		}
		h.Bucket = append(h.Bucket, &dto.Bucket{
			UpperBound:      proto.Float64(b.UpperBound),
			CumulativeCount: proto.Uint64(b.CumulativeCount),
		})
	}
	return h
}
