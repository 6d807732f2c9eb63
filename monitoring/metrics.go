package monitoring

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Metrics owns its own registry so several routers (tests included) can be
// built in one process without duplicate registration panics.
type Metrics struct {
	Registry        *prometheus.Registry
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	DatabaseErrors  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		DatabaseErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_db_errors_total",
				Help: "Database statements that returned an error other than record not found",
			},
			[]string{"operation"},
		),
	}

	m.Registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.DatabaseErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// InstrumentDB counts failed gorm statements per operation.
func (m *Metrics) InstrumentDB(db *gorm.DB) error {
	count := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
				m.DatabaseErrors.WithLabelValues(operation).Inc()
			}
		}
	}

	cb := db.Callback()
	if err := cb.Create().After("gorm:create").Register("monitoring:create", count("create")); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("monitoring:query", count("query")); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("monitoring:update", count("update")); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("monitoring:delete", count("delete")); err != nil {
		return err
	}
	return cb.Row().After("gorm:row").Register("monitoring:row", count("row"))
}
