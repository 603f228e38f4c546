package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful signups, by activity.",
	}, []string{"activity"})
	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations, by activity.",
	}, []string{"activity"})
	activitiesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "activities_api",
		Subsystem: "registry",
		Name:      "activities",
		Help:      "Number of activities in the registry.",
	})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, activitiesGauge)
}

// RecordSignup increments the signup counter for an activity.
func RecordSignup(activity string) {
	signupsTotal.WithLabelValues(activity).Inc()
}

// RecordUnregistration increments the unregistration counter for an activity.
func RecordUnregistration(activity string) {
	unregistrationsTotal.WithLabelValues(activity).Inc()
}

// SetActivityCount records the registry size. Called once after seeding;
// activities are never added or removed at runtime.
func SetActivityCount(n int) {
	activitiesGauge.Set(float64(n))
}
