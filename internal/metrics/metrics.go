// Package metrics exposes Prometheus counters for content changes, reorders,
// logins and contact submissions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what handlers report domain events to.
type Recorder interface {
	RecordMutation(kind, action string)
	RecordReorder(kind string, applied, skipped int)
	RecordLogin(success bool)
	RecordContact(contactType string)
}

type Collector struct {
	mutations       *prometheus.CounterVec
	reorderApplied  *prometheus.CounterVec
	reorderSkipped  *prometheus.CounterVec
	logins          *prometheus.CounterVec
	contactMessages *prometheus.CounterVec
}

// NewCollector creates the counters and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_mutations_total",
			Help: "Content mutations by kind and action.",
		}, []string{"kind", "action"}),
		reorderApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_reorder_applied_total",
			Help: "Sequence assignments written by bulk reorders.",
		}, []string{"kind"}),
		reorderSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_reorder_skipped_total",
			Help: "Sequence assignments skipped by bulk reorders.",
		}, []string{"kind"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		contactMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_messages_total",
			Help: "Contact form submissions by type.",
		}, []string{"type"}),
	}

	reg.MustRegister(
		c.mutations,
		c.reorderApplied,
		c.reorderSkipped,
		c.logins,
		c.contactMessages,
	)

	return c
}

func (c *Collector) RecordMutation(kind, action string) {
	c.mutations.WithLabelValues(kind, action).Inc()
}

func (c *Collector) RecordReorder(kind string, applied, skipped int) {
	c.reorderApplied.WithLabelValues(kind).Add(float64(applied))
	c.reorderSkipped.WithLabelValues(kind).Add(float64(skipped))
}

func (c *Collector) RecordLogin(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordContact(contactType string) {
	c.contactMessages.WithLabelValues(contactType).Inc()
}

// Nop discards every event.
type Nop struct{}

func (Nop) RecordMutation(string, string) {}
func (Nop) RecordReorder(string, int, int) {}
func (Nop) RecordLogin(bool) {}
func (Nop) RecordContact(string) {}

// Handler serves the scrape endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
