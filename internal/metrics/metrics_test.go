package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())

	m.RecordInbound("reminder")
	m.RecordInbound("reminder")
	m.RecordInbound("lookup")
	m.RecordReply(nil)
	m.RecordReply(errors.New("boom"))
	m.RecordFailure()
	m.RecordProvisioned()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.InboundTotal.WithLabelValues("reminder")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InboundTotal.WithLabelValues("lookup")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RepliesTotal.WithLabelValues("sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RepliesTotal.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HandlingFailuresTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UsersProvisionedTotal))
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordInbound("help")
		m.RecordReply(nil)
		m.RecordFailure()
		m.RecordProvisioned()
	})
}
