package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain/service/ingest"
	"lotmarket/internal/domain/service/lot"
	"lotmarket/internal/infrastructure/metrics"
)

var (
	_ ingest.Observer = (*metrics.Collector)(nil)
	_ lot.Observer    = (*metrics.Collector)(nil)
)

func TestCollector(t *testing.T) {
	rq := require.New(t)

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.ObserveMessage("ingested")
	c.ObserveMessage("ingested")
	c.ObserveMessage("duplicate")
	c.ObservePoll("ok", 1500*time.Millisecond)
	c.ObserveTransition("open", "offers_received")

	expected := `
# HELP lotmarket_ingest_messages_total Inbound messages by ingestion outcome.
# TYPE lotmarket_ingest_messages_total counter
lotmarket_ingest_messages_total{outcome="duplicate"} 1
lotmarket_ingest_messages_total{outcome="ingested"} 2
# HELP lotmarket_lot_transitions_total Applied lot status transitions.
# TYPE lotmarket_lot_transitions_total counter
lotmarket_lot_transitions_total{from="open",to="offers_received"} 1
`

	rq.NoError(testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"lotmarket_ingest_messages_total", "lotmarket_lot_transitions_total"))

	n, err := testutil.GatherAndCount(reg, "lotmarket_ingest_poll_duration_seconds", "lotmarket_ingest_polls_total")
	rq.NoError(err)
	rq.Equal(2, n)
}
