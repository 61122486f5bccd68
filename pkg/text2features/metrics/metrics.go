// Package metrics instruments batch extraction runs with Prometheus.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/cognicore/text2features/pkg/text2features/store"
)

const namespace = "text2features"

// Outcome labels for the documents counter.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics instruments batch extraction runs. All methods are safe on a nil
// receiver so callers can run uninstrumented.
type Metrics struct {
	Registry *prometheus.Registry

	documents *prometheus.CounterVec
	keywords  prometheus.Histogram
	duration  prometheus.Histogram
	universe  prometheus.Gauge
}

// New creates the metric set on a private registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Documents processed by outcome",
		}, []string{"outcome"}),
		keywords: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "keywords_per_document",
			Help:      "Keywords selected per document",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "Time spent extracting keywords from one document",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		universe: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "universe_size",
			Help:      "Distinct keywords across the last batch",
		}),
	}
	m.Registry.MustRegister(m.documents, m.keywords, m.duration, m.universe)
	return m
}

// ObserveDocument records one successfully extracted document.
func (m *Metrics) ObserveDocument(keywords int, took time.Duration) {
	if m == nil {
		return
	}
	m.documents.WithLabelValues(OutcomeOK).Inc()
	m.keywords.Observe(float64(keywords))
	m.duration.Observe(took.Seconds())
}

// ObserveFailure records a document that could not be processed.
func (m *Metrics) ObserveFailure() {
	if m == nil {
		return
	}
	m.documents.WithLabelValues(OutcomeError).Inc()
}

// SetUniverse records the size of the batch keyword universe.
func (m *Metrics) SetUniverse(n int) {
	if m == nil {
		return
	}
	m.universe.Set(float64(n))
}

// WriteTextfile writes the registry in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}

// RegisterStore exposes stored run counts, read from st on each collection.
func (m *Metrics) RegisterStore(st store.Store) error {
	if m == nil {
		return nil
	}
	return m.Registry.Register(&RunCollector{store: st})
}

var storedRunsDesc = prometheus.NewDesc(
	prometheus.BuildFQName(namespace, "store", "runs"),
	"Extraction runs held in the run store",
	nil,
	nil,
)

// RunCollector is a custom Prometheus collector that reads the number of
// stored runs on each scrape.
type RunCollector struct {
	store store.Store
}

// Describe sends the metric descriptor to the channel.
func (c *RunCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- storedRunsDesc
}

// Collect queries the store and emits the run count as a gauge.
func (c *RunCollector) Collect(ch chan<- prometheus.Metric) {
	runs, err := c.store.Runs(context.Background(), 0)
	if err != nil {
		logrus.WithError(err).Error("failed to collect stored run metrics")
		return
	}
	ch <- prometheus.MustNewConstMetric(storedRunsDesc, prometheus.GaugeValue, float64(len(runs)))
}
