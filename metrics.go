package eventchannel

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "eventchannel"

// Metrics holds the Prometheus collectors of a Registry.
// A nil *Metrics records nothing.
type Metrics struct {
	ChannelsActive  prometheus.Gauge
	Listeners       *prometheus.GaugeVec
	PushesTotal     *prometheus.CounterVec
	DeliveriesTotal *prometheus.CounterVec
	InvalidTotal    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChannelsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "channels_active",
				Help:      "Number of channels that have been touched at least once",
			},
		),
		Listeners: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "listeners",
				Help:      "Number of listeners registered per topic",
			},
			[]string{"topic"},
		),
		PushesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pushes_total",
				Help:      "Total number of broadcasts started",
			},
			[]string{"topic"},
		),
		DeliveriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deliveries_total",
				Help:      "Total number of listener invocations",
			},
			[]string{"topic"},
		),
		InvalidTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invalid_listener_total",
				Help:      "Total number of broadcasts aborted on a nil listener",
			},
			[]string{"topic"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.ChannelsActive, m.Listeners, m.PushesTotal, m.DeliveriesTotal, m.InvalidTotal)
	}
	return m
}

func (m *Metrics) activated(n int) {
	if m == nil {
		return
	}
	m.ChannelsActive.Set(float64(n))
}

// The listener gauge is shared by every channel reporting the same topic,
// so it moves by deltas rather than being set from one channel's length.
func (m *Metrics) listenerAdded(topic string) {
	if m == nil {
		return
	}
	m.Listeners.WithLabelValues(topic).Inc()
}

func (m *Metrics) listenerRemoved(topic string) {
	if m == nil {
		return
	}
	m.Listeners.WithLabelValues(topic).Dec()
}

func (m *Metrics) pushed(topic string) {
	if m == nil {
		return
	}
	m.PushesTotal.WithLabelValues(topic).Inc()
}

func (m *Metrics) delivered(topic string) {
	if m == nil {
		return
	}
	m.DeliveriesTotal.WithLabelValues(topic).Inc()
}

func (m *Metrics) invalid(topic string) {
	if m == nil {
		return
	}
	m.InvalidTotal.WithLabelValues(topic).Inc()
}
