package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Conversion results used as the "result" label.
const (
	ResultOK          = "ok"
	ResultSyntaxError = "syntax_error"
	ResultEmitError   = "emit_error"
	ResultIOError     = "io_error"
)

// Recorder collects conversion metrics in a private registry.
// It is meant for batch runs: metrics are flushed to a textfile at exit
// rather than scraped.
type Recorder struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	lines       prometheus.Counter
	duration    prometheus.Histogram
}

// NewRecorder creates a Recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepc_conversions_total",
				Help: "Total number of step program conversions by result",
			},
			[]string{"result"},
		),
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stepc_emitted_lines_total",
			Help: "Total number of lines written to output files",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stepc_conversion_duration_seconds",
			Help:    "Duration of step program conversions",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	r.registry.MustRegister(r.conversions, r.lines, r.duration)
	return r
}

// ObserveConversion records the outcome of one conversion.
func (r *Recorder) ObserveConversion(result string, lines int, elapsed time.Duration) {
	r.conversions.WithLabelValues(result).Inc()
	r.lines.Add(float64(lines))
	r.duration.Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format
// understood by the node exporter's textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
