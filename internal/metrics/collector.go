// Package metrics exposes the service's Prometheus instruments.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector groups every instrument the service records. A nil *Collector is a no-op,
// so use cases can run without metrics in tests.
type Collector struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	jobsTotal     *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec

	artifactBytes  *prometheus.HistogramVec
	downloadsTotal *prometheus.CounterVec
	reclaimedTotal prometheus.Counter

	viewsRecorded prometheus.Counter
}

// NewCollector registers the instruments on reg under namespace.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		httpRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		jobsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_jobs_total",
				Help:      "Report jobs by final state and failure code",
			},
			[]string{"state", "code"},
		),
		stageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_stage_duration_seconds",
				Help:      "Duration of report generation stages",
				Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"stage"},
		),
		artifactBytes: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_artifact_size_bytes",
				Help:      "Size of stored report artifacts",
				Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
			},
			[]string{"format"},
		),
		downloadsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_downloads_total",
				Help:      "Artifact downloads by format",
			},
			[]string{"format"},
		),
		reclaimedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_artifacts_reclaimed_total",
				Help:      "Expired artifacts reclaimed",
			},
		),
		viewsRecorded: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "product_views_recorded_total",
				Help:      "Product views added to the quarter-hour counters",
			},
		),
	}
}

func (c *Collector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordJob counts a job reaching a terminal state. code is empty for READY jobs.
func (c *Collector) RecordJob(state, code string) {
	if c == nil {
		return
	}
	c.jobsTotal.WithLabelValues(state, code).Inc()
}

func (c *Collector) ObserveStage(stage string, duration time.Duration) {
	if c == nil {
		return
	}
	c.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

func (c *Collector) RecordArtifact(format string, size int64) {
	if c == nil {
		return
	}
	c.artifactBytes.WithLabelValues(format).Observe(float64(size))
}

func (c *Collector) RecordDownload(format string) {
	if c == nil {
		return
	}
	c.downloadsTotal.WithLabelValues(format).Inc()
}

func (c *Collector) RecordReclaimed(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.reclaimedTotal.Add(float64(n))
}

func (c *Collector) RecordViews(n int64) {
	if c == nil || n <= 0 {
		return
	}
	c.viewsRecorded.Add(float64(n))
}
