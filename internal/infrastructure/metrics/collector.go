package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lotmarket"

// Collector считает опросы почты, исходы писем и переходы лотов.
type Collector struct {
	messages    *prometheus.CounterVec
	polls       *prometheus.CounterVec
	pollSeconds prometheus.Histogram
	transitions *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "messages_total",
			Help:      "Inbound messages by ingestion outcome.",
		}, []string{"outcome"}),
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "polls_total",
			Help:      "Mailbox polls by result.",
		}, []string{"result"}),
		pollSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "poll_duration_seconds",
			Help:      "Duration of a mailbox poll.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lot",
			Name:      "transitions_total",
			Help:      "Applied lot status transitions.",
		}, []string{"from", "to"}),
	}

	reg.MustRegister(c.messages, c.polls, c.pollSeconds, c.transitions)

	return c
}

func (c *Collector) ObserveMessage(outcome string) {
	c.messages.WithLabelValues(outcome).Inc()
}

func (c *Collector) ObservePoll(result string, took time.Duration) {
	c.polls.WithLabelValues(result).Inc()
	c.pollSeconds.Observe(took.Seconds())
}

func (c *Collector) ObserveTransition(from, to string) {
	c.transitions.WithLabelValues(from, to).Inc()
}
