package core

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder exports session operation metrics together with the
// derived economics and stock levels on its own registry.
type PrometheusRecorder struct {
	registry  *prometheus.Registry
	latency   *prometheus.HistogramVec
	results   *prometheus.CounterVec
	economics *prometheus.GaugeVec
	stock     *prometheus.GaugeVec
	lowStock  *prometheus.GaugeVec
}

// NewPrometheusRecorder builds a recorder and registers its collectors.
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "farmtwin",
				Name:      "operation_duration_seconds",
				Help:      "Latency of session operations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		results: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "farmtwin",
				Name:      "operations_total",
				Help:      "Session operations by outcome",
			},
			[]string{"operation", "status"},
		),
		economics: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "farmtwin",
				Name:      "economics",
				Help:      "Latest daily operating figures",
			},
			[]string{"figure"},
		),
		stock: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "farmtwin",
				Name:      "inventory_quantity",
				Help:      "Vault quantity per item",
			},
			[]string{"item"},
		),
		lowStock: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "farmtwin",
				Name:      "inventory_low_stock",
				Help:      "1 when the item is below the low-stock threshold",
			},
			[]string{"item"},
		),
	}
	r.registry.MustRegister(r.latency, r.results, r.economics, r.stock, r.lowStock)
	return r
}

// Registry exposes the registry for scraping or gathering.
func (r *PrometheusRecorder) Registry() *prometheus.Registry { return r.registry }

// Observe implements MetricsRecorder.
func (r *PrometheusRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	r.latency.WithLabelValues(operation).Observe(duration.Seconds())
	r.results.WithLabelValues(operation, status).Inc()
}

// ObserveEconomics implements EconomicsObserver.
func (r *PrometheusRecorder) ObserveEconomics(report EconomicsReport) {
	figures := map[string]float64{
		"elec_kwh":   report.ElecKwh,
		"water_l":    report.WaterL,
		"chem_units": report.ChemUnits,
		"vet_costs":  report.VetCosts,
		"daily_burn": report.DailyBurn,
		"daily_rev":  report.DailyRev,
		"net_profit": report.NetProfit,
		"margin_pct": report.Margin,
	}
	for figure, v := range figures {
		r.economics.WithLabelValues(figure).Set(v)
	}
}

// ObserveInventory implements EconomicsObserver.
func (r *PrometheusRecorder) ObserveInventory(items []InventoryItem) {
	for _, it := range items {
		r.stock.WithLabelValues(it.Name).Set(it.Quantity)
		low := 0.0
		if it.IsLowStock() {
			low = 1
		}
		r.lowStock.WithLabelValues(it.Name).Set(low)
	}
}
