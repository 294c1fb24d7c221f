package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"URLAnalyzer/internal/domain"
	"URLAnalyzer/internal/ports"
)

// Recorder counts classified URLs and analyses on a private registry.
type Recorder struct {
	registry   *prometheus.Registry
	classified *prometheus.CounterVec
	analyses   *prometheus.CounterVec
	batchSize  prometheus.Histogram
}

var _ ports.ReportRecorder = (*Recorder)(nil)

// NewRecorder registers the analyzer collectors plus the Go and process collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	factory := promauto.With(registry)
	return &Recorder{
		registry: registry,
		classified: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "urlanalyzer",
			Name:      "urls_classified_total",
			Help:      "URLs classified, by verdict.",
		}, []string{"classification"}),
		analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "urlanalyzer",
			Name:      "analyses_total",
			Help:      "Completed analyses, by front-end.",
		}, []string{"frontend"}),
		batchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "urlanalyzer",
			Name:      "batch_size",
			Help:      "Number of URLs per analysis.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 7),
		}),
	}
}

// RecordReport updates counters from a finished analysis.
func (r *Recorder) RecordReport(report domain.Report) {
	for _, s := range report.Distribution.Slices {
		r.classified.WithLabelValues(string(s.Classification)).Add(float64(s.Count))
	}
	frontend := report.Frontend
	if frontend == "" {
		frontend = "unknown"
	}
	r.analyses.WithLabelValues(frontend).Inc()
	r.batchSize.Observe(float64(len(report.Records)))
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
