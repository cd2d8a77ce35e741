package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tartampluch/go-clockface/internal/config"
)

// metrics tracks snapshot publication. Each server owns a registry so tests
// can create servers freely.
type metrics struct {
	registry   *prometheus.Registry
	updates    prometheus.Counter
	lastUpdate prometheus.Gauge
	size       prometheus.Gauge
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		registry: reg,
		updates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricRedraws,
			Help:      config.MetricRedrawsHelp,
		}),
		lastUpdate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricLastRedraw,
			Help:      config.MetricLastRedrawHelp,
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricSnapshotSize,
			Help:      config.MetricSnapshotSizeHlp,
		}),
	}
	reg.MustRegister(m.updates, m.lastUpdate, m.size)
	return m
}

func (m *metrics) observe(size int, at time.Time) {
	m.updates.Inc()
	m.lastUpdate.Set(float64(at.Unix()))
	m.size.Set(float64(size))
}
