package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection and failure reasons used as label values.
const (
	ReasonInvalid     = "invalid"
	ReasonOutOfRange  = "out_of_range"
	ReasonUnavailable = "unavailable"
	ReasonMalformed   = "malformed"
)

type Metrics struct {
	RecordsRead     prometheus.Counter
	RecordsRejected *prometheus.CounterVec
	SourceFailures  *prometheus.CounterVec
	Invitees        prometheus.Gauge
	PipelineSeconds prometheus.Histogram
	GeocodeSeconds  *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RecordsRead: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hermes_customer_records_read_total",
			Help: "Total number of raw customer records read from the source.",
		}),
		RecordsRejected: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hermes_customer_records_rejected_total",
			Help: "Total number of customer records left out of the invitation list.",
		}, []string{"reason"}),
		SourceFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hermes_customer_source_failures_total",
			Help: "Total number of customer source reads that degraded to an empty dataset.",
		}, []string{"reason"}),
		Invitees: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "hermes_invitees",
			Help: "Number of customers invited by the last run.",
		}),
		PipelineSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "hermes_pipeline_duration_seconds",
			Help:    "Duration of a read, filter and sort pass over the customer dataset.",
			Buckets: prometheus.DefBuckets,
		}),
		GeocodeSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hermes_geocoding_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}
}
