package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/ultranum/internal/kernel"
)

const namespace = "ultranum"

// Recorder collects evaluation metrics. A nil *Recorder discards everything,
// so callers never need to check whether metrics are enabled.
type Recorder struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	mismatches  prometheus.Counter
}

// NewRecorder returns a Recorder with its own registry. Scratch-pool
// counters and heap usage are read on every gather.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Evaluations run, by backend, operation and outcome.",
		}, []string{"backend", "op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Wall time of one evaluation.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"backend", "op"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_mismatches_total",
			Help:      "Requests on which backends disagreed.",
		}),
	}

	mc := NewMemoryCollector()
	r.registry.MustRegister(
		r.evaluations,
		r.duration,
		r.mismatches,
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "scratch", Name: "acquired_total",
			Help: "Scratch slices taken from the word pools.",
		}, func() float64 { return float64(kernel.ReadPoolStats().Acquired) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "scratch", Name: "released_total",
			Help: "Scratch slices returned to the word pools.",
		}, func() float64 { return float64(kernel.ReadPoolStats().Released) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "scratch", Name: "direct_total",
			Help: "Scratch slices too large for any pool class.",
		}, func() float64 { return float64(kernel.ReadPoolStats().Direct) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace, Name: "heap_alloc_bytes",
			Help: "Bytes of allocated heap objects.",
		}, func() float64 { return float64(mc.Snapshot().HeapAlloc) }),
	)
	return r
}

// ObserveEvaluation records one evaluation.
func (r *Recorder) ObserveEvaluation(backend, op string, d time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.evaluations.WithLabelValues(backend, op, outcome).Inc()
	r.duration.WithLabelValues(backend, op).Observe(d.Seconds())
}

// ObserveMismatch records a request on which backends disagreed.
func (r *Recorder) ObserveMismatch() {
	if r == nil {
		return
	}
	r.mismatches.Inc()
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteText gathers every metric and writes it to w in the Prometheus text
// exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
