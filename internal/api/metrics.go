package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics bundles the prometheus collectors for the resolution service.
type metrics struct {
	resolutions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "equus",
			Name:      "resolutions_total",
			Help:      "Phenotype resolutions by final display color.",
		}, []string{"color"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "equus",
			Name:      "request_duration_seconds",
			Help:      "HTTP handler latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"handler"}),
	}
	reg.MustRegister(m.resolutions, m.duration)
	return m
}
