package synccache

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "pocketcache"

type metrics struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	expirations prometheus.Counter
	loads       prometheus.Counter
	loadErrors  prometheus.Counter
	entries     prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer, name string) *metrics {
	labels := prometheus.Labels{"cache": name}
	m := &metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "hits_total",
			Help:        "Total number of cache hits",
			ConstLabels: labels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "misses_total",
			Help:        "Total number of cache misses, including expired entries",
			ConstLabels: labels,
		}),
		expirations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "expirations_total",
			Help:        "Total number of expired entries removed on read",
			ConstLabels: labels,
		}),
		loads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "loads_total",
			Help:        "Total number of loader calls",
			ConstLabels: labels,
		}),
		loadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "load_errors_total",
			Help:        "Total number of failed loader calls",
			ConstLabels: labels,
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "entries",
			Help:        "Number of stored entries, including expired entries not read yet",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(m.hits, m.misses, m.expirations, m.loads, m.loadErrors, m.entries)
	return m
}

// The methods below are no-ops on a nil *metrics.

func (m *metrics) observeGet(hit, expired bool) {
	if m == nil {
		return
	}
	if hit {
		m.hits.Inc()
		return
	}
	m.misses.Inc()
	if expired {
		m.expirations.Inc()
	}
}

func (m *metrics) observeLoad(err error) {
	if m == nil {
		return
	}
	m.loads.Inc()
	if err != nil {
		m.loadErrors.Inc()
	}
}

func (m *metrics) setEntries(n int) {
	if m == nil {
		return
	}
	m.entries.Set(float64(n))
}
