package metrics

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bannerbuddy"

// Dismissal kinds.
const (
	DismissExplicit = "explicit"
	DismissAuto     = "auto"
)

// Fetch results.
const (
	FetchSuccess = "success"
	FetchError   = "error"
)

// Metrics exposes Prometheus collectors for banner sessions.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	fetches    *prometheus.CounterVec
	dismissals *prometheus.CounterVec
	sessions   prometheus.Gauge
	gatherer   prometheus.Gatherer
}

var (
	defaultOnce sync.Once
	shared      *Metrics
)

// Default returns the metrics registered with the global Prometheus registry.
// The collectors are created only once to avoid duplicate registration panics.
func Default() *Metrics {
	defaultOnce.Do(func() {
		shared = MustNew(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	})
	return shared
}

// MustNew constructs Metrics on the given registerer and panics on registration errors.
func MustNew(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "banner_fetches_total",
			Help:      "Banner provider fetches by result.",
		}, []string{"result"}),
		dismissals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "banner_dismissals_total",
			Help:      "Banners dismissed, by explicit user action or auto-dismiss timer.",
		}, []string{"kind"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Display sessions currently mounted.",
		}),
		gatherer: gatherer,
	}

	reg.MustRegister(m.fetches, m.dismissals, m.sessions)
	return m
}

// ObserveFetch counts a provider fetch.
func (m *Metrics) ObserveFetch(result string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(result).Inc()
}

// ObserveDismissal counts a dismissed banner.
func (m *Metrics) ObserveDismissal(kind string) {
	if m == nil {
		return
	}
	m.dismissals.WithLabelValues(kind).Inc()
}

// SessionOpened increments the active session gauge.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.sessions.Inc()
}

// SessionClosed decrements the active session gauge.
func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.sessions.Dec()
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	gatherer := prometheus.DefaultGatherer
	if m != nil && m.gatherer != nil {
		gatherer = m.gatherer
	}
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
