package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ReportsSubmitted   prometheus.Counter
	AggregationsRun    prometheus.Counter
	AggregationTime    prometheus.Histogram
	HandoversSent      prometheus.Counter
	ErrorsCount        *prometheus.CounterVec
	FleetOperational   prometheus.Gauge
	FleetInMaintenance prometheus.Gauge
	FleetRented        prometheus.Gauge
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ReportsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_submitted_total",
			Help:      "The total number of shift reports submitted",
		}),
		AggregationsRun: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregations_run_total",
			Help:      "The total number of analytics aggregation passes",
		}),
		AggregationTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_time_seconds",
			Help:      "Time taken to compute period analytics",
			Buckets:   prometheus.DefBuckets,
		}),
		HandoversSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handovers_sent_total",
			Help:      "The total number of handover messages dispatched to WhatsApp",
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
		FleetOperational: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fleet_operational",
			Help:      "Units currently operational",
		}),
		FleetInMaintenance: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fleet_in_maintenance",
			Help:      "Units currently in maintenance",
		}),
		FleetRented: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fleet_rented",
			Help:      "Units currently rented out",
		}),
	}
}
