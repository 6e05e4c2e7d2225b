// Package observability holds the Prometheus collectors of the service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records intake, chat, calculator and chart activity. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	intakeProfiles  *prometheus.CounterVec
	chatTurns       *prometheus.CounterVec
	calculatorTimes *prometheus.HistogramVec
	chartRenders    *prometheus.CounterVec
}

// NewMetricsWithRegisterer allows tests to provide a dedicated registry.
func NewMetricsWithRegisterer(reg prometheus.Registerer) *Metrics {
	return newMetrics(reg)
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		intakeProfiles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astroguide",
			Subsystem: "intake",
			Name:      "profiles_total",
			Help:      "Intake submissions by result",
		}, []string{"result"}),
		chatTurns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astroguide",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Answered chat messages by classified topic",
		}, []string{"topic"}),
		calculatorTimes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "astroguide",
			Subsystem: "calculator",
			Name:      "duration_seconds",
			Help:      "Time spent computing astro and human design data",
			Buckets:   []float64{0.005, 0.05, 0.25, 1, 2.5, 5, 10},
		}, []string{"kind"}),
		chartRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astroguide",
			Subsystem: "chart",
			Name:      "renders_total",
			Help:      "Chart render attempts by result",
		}, []string{"result"}),
	}
}

// RecordIntake counts an intake outcome ("created", "invalid", "error").
func (m *Metrics) RecordIntake(result string) {
	if m == nil {
		return
	}
	m.intakeProfiles.WithLabelValues(result).Inc()
}

// RecordChatTurn counts an answered message.
func (m *Metrics) RecordChatTurn(topic string) {
	if m == nil {
		return
	}
	m.chatTurns.WithLabelValues(topic).Inc()
}

// ObserveCalculator records how long one calculation took.
func (m *Metrics) ObserveCalculator(kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.calculatorTimes.WithLabelValues(kind).Observe(d.Seconds())
}

// RecordChartRender counts a render outcome ("ok", "disabled", "error").
func (m *Metrics) RecordChartRender(result string) {
	if m == nil {
		return
	}
	m.chartRenders.WithLabelValues(result).Inc()
}

// CacheStats is a point-in-time read of a cache's lookup counters.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// RegisterCacheStats exposes a cache's counters as astroguide_cache_hits_total
// and astroguide_cache_misses_total labelled with cache=name. The counters
// are read from stats on every scrape.
func RegisterCacheStats(reg prometheus.Registerer, name string, stats func() CacheStats) error {
	if reg == nil || stats == nil {
		return nil
	}
	labels := prometheus.Labels{"cache": name}
	hits := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace:   "astroguide",
		Subsystem:   "cache",
		Name:        "hits_total",
		Help:        "Cache lookups served from memory",
		ConstLabels: labels,
	}, func() float64 { return float64(stats().Hits) })
	misses := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace:   "astroguide",
		Subsystem:   "cache",
		Name:        "misses_total",
		Help:        "Cache lookups that fell through to the backing store",
		ConstLabels: labels,
	}, func() float64 { return float64(stats().Misses) })
	if err := reg.Register(hits); err != nil {
		return err
	}
	return reg.Register(misses)
}
