// Package metrics holds Prometheus counters for SMS handling.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the SMS assistant. A nil *Metrics is
// valid and records nothing.
//
// Metrics:
//   - foreverly_sms_inbound_total{intent} - inbound messages by classified intent
//   - foreverly_sms_replies_total{outcome} - reply sends by outcome (sent, failed)
//   - foreverly_sms_handling_failures_total - runs that ended in the fallback reply
//   - foreverly_users_provisioned_total - accounts created from unknown numbers
type Metrics struct {
	InboundTotal          *prometheus.CounterVec
	RepliesTotal          *prometheus.CounterVec
	HandlingFailuresTotal prometheus.Counter
	UsersProvisionedTotal prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		InboundTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foreverly_sms_inbound_total",
				Help: "Total number of inbound SMS by classified intent",
			},
			[]string{"intent"},
		),
		RepliesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foreverly_sms_replies_total",
				Help: "Total number of reply sends by outcome",
			},
			[]string{"outcome"},
		),
		HandlingFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "foreverly_sms_handling_failures_total",
				Help: "Total number of handling runs that ended in the fallback reply",
			},
		),
		UsersProvisionedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "foreverly_users_provisioned_total",
				Help: "Total number of users created from unknown numbers",
			},
		),
	}
}

// RecordInbound counts one inbound message classified as intent.
func (m *Metrics) RecordInbound(intent string) {
	if m == nil {
		return
	}
	m.InboundTotal.WithLabelValues(intent).Inc()
}

// RecordReply counts a reply send, failed when err is non-nil.
func (m *Metrics) RecordReply(err error) {
	if m == nil {
		return
	}
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	m.RepliesTotal.WithLabelValues(outcome).Inc()
}

// RecordFailure counts a handling run that ended in the fallback reply.
func (m *Metrics) RecordFailure() {
	if m == nil {
		return
	}
	m.HandlingFailuresTotal.Inc()
}

// RecordProvisioned counts a newly created user.
func (m *Metrics) RecordProvisioned() {
	if m == nil {
		return
	}
	m.UsersProvisionedTotal.Inc()
}
