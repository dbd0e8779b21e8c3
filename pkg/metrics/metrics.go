package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "envdash_"

var (
	registerOnce sync.Once

	readingsIngested *prometheus.CounterVec
	evaluationsTotal prometheus.Counter
	cyclesSkipped    prometheus.Counter
	notifications    *prometheus.CounterVec
)

// Init registers the service metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		readingsIngested = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "readings_ingested_total",
				Help: "Total readings accepted by the ingestion endpoint",
			},
			[]string{"result"},
		)
		evaluationsTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "evaluations_total",
				Help: "Total monitor evaluation cycles run",
			},
		)
		cyclesSkipped = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "cycles_skipped_total",
				Help: "Poll cycles skipped because the previous cycle was still running",
			},
		)
		notifications = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "notifications_total",
				Help: "Notifications emitted by kind and level",
			},
			[]string{"kind", "level"},
		)

		prometheus.MustRegister(readingsIngested, evaluationsTotal, cyclesSkipped, notifications)
	})
}

func ObserveReading(ok bool) {
	Init()
	result := "success"
	if !ok {
		result = "error"
	}
	readingsIngested.WithLabelValues(result).Inc()
}

func ObserveEvaluation() {
	Init()
	evaluationsTotal.Inc()
}

func ObserveSkippedCycle() {
	Init()
	cyclesSkipped.Inc()
}

func ObserveNotification(kind, level string) {
	Init()
	notifications.WithLabelValues(kind, level).Inc()
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	Init()
	return promhttp.Handler()
}
