package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics contains HTTP-related Prometheus metrics
type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// GRPCMetrics contains gRPC-related Prometheus metrics
type GRPCMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// CatalogMetrics contains catalog-specific metrics
type CatalogMetrics struct {
	QueriesTotal       *prometheus.CounterVec
	OrdersTotal        *prometheus.CounterVec
	RestocksTotal      prometheus.Counter
	RestockedProducts  prometheus.Counter
	SnapshotsTotal     prometheus.Counter
	SnapshotDuration   prometheus.Histogram
	InvalidationsTotal *prometheus.CounterVec
}

// OrderMetrics contains order-replica-specific metrics
type OrderMetrics struct {
	OrdersPlaced      prometheus.Counter
	OrdersRejected    *prometheus.CounterVec
	PropagationsTotal *prometheus.CounterVec
	RecoveredRecords  prometheus.Counter
	FlushedRecords    prometheus.Counter
	FlushDuration     prometheus.Histogram
}

// FrontendMetrics contains front-end-specific metrics
type FrontendMetrics struct {
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	InvalidationsTotal prometheus.Counter
	ElectionsTotal     prometheus.Counter
	LeaderID           prometheus.Gauge
}

// NewHTTPMetrics creates HTTP metrics for a service
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	return &HTTPMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    serviceName + "_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// NewGRPCMetrics creates gRPC metrics for a service
func NewGRPCMetrics(serviceName string) *GRPCMetrics {
	return &GRPCMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_grpc_requests_total",
				Help: "Total number of gRPC requests",
			},
			[]string{"method", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    serviceName + "_grpc_request_duration_seconds",
				Help:    "gRPC request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// NewCatalogMetrics creates catalog metrics
func NewCatalogMetrics(serviceName string) *CatalogMetrics {
	return &CatalogMetrics{
		QueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_queries_total",
				Help: "Total number of product lookups",
			},
			[]string{"result"},
		),
		OrdersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_orders_total",
				Help: "Total number of stock decrements by result",
			},
			[]string{"result"},
		),
		RestocksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_restocks_total",
				Help: "Total number of restock sweeps",
			},
		),
		RestockedProducts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_restocked_products_total",
				Help: "Total number of products refilled by the restocker",
			},
		),
		SnapshotsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_snapshots_total",
				Help: "Total number of catalog file rewrites",
			},
		),
		SnapshotDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    serviceName + "_snapshot_duration_seconds",
				Help:    "Catalog file rewrite duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		InvalidationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_invalidations_total",
				Help: "Total number of cache invalidation notifications by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// NewOrderMetrics creates order replica metrics
func NewOrderMetrics(serviceName string) *OrderMetrics {
	return &OrderMetrics{
		OrdersPlaced: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_orders_placed_total",
				Help: "Total number of orders committed by this replica",
			},
		),
		OrdersRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_orders_rejected_total",
				Help: "Total number of rejected purchase attempts by reason",
			},
			[]string{"reason"},
		),
		PropagationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_propagations_total",
				Help: "Total number of order propagations to peers by outcome",
			},
			[]string{"outcome"},
		),
		RecoveredRecords: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_recovered_records_total",
				Help: "Total number of order records filled in from peers",
			},
		),
		FlushedRecords: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_flushed_records_total",
				Help: "Total number of order records appended to the log file",
			},
		),
		FlushDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    serviceName + "_flush_duration_seconds",
				Help:    "Order log flush duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// NewFrontendMetrics creates front-end metrics
func NewFrontendMetrics(serviceName string) *FrontendMetrics {
	return &FrontendMetrics{
		CacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_cache_hits_total",
				Help: "Total number of product cache hits",
			},
		),
		CacheMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_cache_misses_total",
				Help: "Total number of product cache misses",
			},
		),
		InvalidationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_invalidations_total",
				Help: "Total number of cache invalidations received",
			},
		),
		ElectionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_leader_elections_total",
				Help: "Total number of leader elections run",
			},
		),
		LeaderID: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: serviceName + "_leader_component_id",
				Help: "Component id of the order replica currently treated as leader (0 = none)",
			},
		),
	}
}

// RecordHTTPRequest records an HTTP request metric
func (m *HTTPMetrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordGRPCRequest records a gRPC request metric
func (m *GRPCMetrics) RecordGRPCRequest(method, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, status).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}
