package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contadores e histogramas del flujo de pedidos.
type Metrics struct {
	OrdersPlaced   prometheus.Counter
	OrdersRejected prometheus.Counter
	StockConflicts prometheus.Counter
	PlaceDuration  prometheus.Histogram
}

// NewMetrics registra las métricas en el Registerer dado (usar prometheus.DefaultRegisterer
// en producción y un Registry nuevo en tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Pedidos colocados con éxito.",
		}),
		OrdersRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_rejected_total",
			Help: "Pedidos rechazados por producto inexistente o sin stock.",
		}),
		StockConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stock_conflicts_total",
			Help: "Pedidos que pasaron la validación pero perdieron el stock en el commit (carrera).",
		}),
		PlaceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "order_placement_duration_seconds",
			Help:    "Duración de la colocación de pedidos.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.OrdersPlaced, m.OrdersRejected, m.StockConflicts, m.PlaceDuration)
	return m
}
