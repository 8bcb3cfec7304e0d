package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns its registry so tests and the process can each build one
// without colliding on the global default.
type Collector struct {
	registry          *prometheus.Registry
	joins             *prometheus.CounterVec
	commitConflicts   prometheus.Counter
	notifications     *prometheus.CounterVec
	inventoryCapacity *prometheus.GaugeVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		joins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "referral_joins_total",
			Help: "Join events adjudicated, by outcome and ineligibility reason.",
		}, []string{"outcome", "reason"}),
		commitConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "referral_commit_conflicts_total",
			Help: "Allocation commits rejected because inventory changed underneath them.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "referral_notifications_total",
			Help: "Notification delivery attempts by kind and status.",
		}, []string{"kind", "status"}),
		inventoryCapacity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "referral_inventory_capacity",
			Help: "Allocatable voucher units by voucher kind.",
		}, []string{"kind"}),
	}
	c.registry.MustRegister(
		c.joins,
		c.commitConflicts,
		c.notifications,
		c.inventoryCapacity,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) ObserveJoin(outcome, reason string) {
	if c == nil {
		return
	}
	if reason == "" {
		reason = "none"
	}
	c.joins.WithLabelValues(outcome, reason).Inc()
}

func (c *Collector) IncCommitConflict() {
	if c == nil {
		return
	}
	c.commitConflicts.Inc()
}

func (c *Collector) ObserveNotification(kind, status string) {
	if c == nil {
		return
	}
	c.notifications.WithLabelValues(kind, status).Inc()
}

func (c *Collector) SetInventoryCapacity(multiUseRemaining, singleUseAvailable int64) {
	if c == nil {
		return
	}
	c.inventoryCapacity.WithLabelValues("multi_use").Set(float64(multiUseRemaining))
	c.inventoryCapacity.WithLabelValues("single_use").Set(float64(singleUseAvailable))
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
