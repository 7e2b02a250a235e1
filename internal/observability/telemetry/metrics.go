package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReadingsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "powerdash_readings_recorded_total",
		Help: "Total number of meter readings recorded",
	})

	AlertsRaisedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "powerdash_alerts_raised_total",
		Help: "Total number of anomaly alerts raised",
	})

	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "powerdash_login_attempts_total",
		Help: "Total number of login attempts",
	}, []string{"status"})
)
