package metrics

import (
	"net/http"

	"github.com/jekabolt/sales-panel/internal/dto"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the sales panel collectors. A nil *Registry is valid and records nothing.
type Registry struct {
	reg                   *prometheus.Registry
	NotificationsReceived *prometheus.CounterVec
	OrdersIngested        prometheus.Counter
	IngestFailures        *prometheus.CounterVec
	IngestLatencySec      prometheus.Histogram
	SKUConflicts          prometheus.Gauge
	OrdersReenriched      prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	received := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_notifications_received_total",
		Help: "Marketplace notifications received, by topic (orders_v2 or other).",
	}, []string{"topic"})
	ingested := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sales_orders_ingested_total",
		Help: "Orders fetched, enriched and stored.",
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_ingest_failures_total",
		Help: "Notifications that could not be ingested, by stage.",
	}, []string{"stage"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sales_ingest_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})
	conflicts := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sales_sku_conflicts",
		Help: "SKUs claimed by more than one product in the last built cost index.",
	})
	reenriched := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sales_orders_reenriched_total",
		Help: "Orders whose persisted costs were rewritten after a catalog change.",
	})

	r.MustRegister(received, ingested, failures, latency, conflicts, reenriched)
	return &Registry{
		reg:                   r,
		NotificationsReceived: received,
		OrdersIngested:        ingested,
		IngestFailures:        failures,
		IngestLatencySec:      latency,
		SKUConflicts:          conflicts,
		OrdersReenriched:      reenriched,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// TopicOther labels every notification whose topic is not consumed.
const TopicOther = "other"

// NotificationReceived counts a notification under its topic, or under
// TopicOther when the topic is not one the ingester handles.
func (r *Registry) NotificationReceived(topic string) {
	if r == nil {
		return
	}
	if topic != dto.TopicOrders {
		topic = TopicOther
	}
	r.NotificationsReceived.WithLabelValues(topic).Inc()
}

func (r *Registry) OrderIngested(seconds float64) {
	if r == nil {
		return
	}
	r.OrdersIngested.Inc()
	r.IngestLatencySec.Observe(seconds)
}

func (r *Registry) IngestFailed(stage string) {
	if r == nil {
		return
	}
	r.IngestFailures.WithLabelValues(stage).Inc()
}

func (r *Registry) SetSKUConflicts(n int) {
	if r == nil {
		return
	}
	r.SKUConflicts.Set(float64(n))
}

func (r *Registry) Reenriched(n int) {
	if r == nil {
		return
	}
	r.OrdersReenriched.Add(float64(n))
}
