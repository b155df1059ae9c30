package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP and business collectors. A nil *Metrics records nothing.
type Metrics struct {
	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
	ApplicantsRegistered prometheus.Counter
	ApplicationsCreated  prometheus.Counter
	Exports              *prometheus.CounterVec
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sais_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sais_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		ApplicantsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "sais_applicants_registered_total",
			Help: "Total number of applicants registered",
		}),
		ApplicationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "sais_applications_created_total",
			Help: "Total number of applications created",
		}),
		Exports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sais_exports_total",
			Help: "Total number of report exports by format",
		}, []string{"format"}),
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncApplicantsRegistered() {
	if m == nil {
		return
	}
	m.ApplicantsRegistered.Inc()
}

func (m *Metrics) IncApplicationsCreated() {
	if m == nil {
		return
	}
	m.ApplicationsCreated.Inc()
}

func (m *Metrics) IncExports(format string) {
	if m == nil {
		return
	}
	m.Exports.WithLabelValues(format).Inc()
}
