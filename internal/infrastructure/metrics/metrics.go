package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Statement metrics
	StatementsBuilt      *prometheus.CounterVec
	StatementDuration    prometheus.Histogram
	StatementCacheHits   prometheus.Counter
	StatementCacheMisses prometheus.Counter
	StatementEntries     prometheus.Histogram

	// Invoice metrics
	InvoicesCreated *prometheus.CounterVec
	InvoicesPosted  *prometheus.CounterVec
	InvoiceAmount   prometheus.Histogram
	InvoiceErrors   *prometheus.CounterVec

	// Voucher metrics
	VouchersCreated *prometheus.CounterVec
	VouchersDeleted *prometheus.CounterVec
	VoucherAmount   prometheus.Histogram

	// Return metrics
	ReturnsRecorded *prometheus.CounterVec

	// Party metrics
	PartiesCreated *prometheus.CounterVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Statement metrics
		StatementsBuilt: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_statements_built_total",
				Help: "Total number of statements built",
			},
			[]string{"party_type"},
		),
		StatementDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "partyledger_statement_duration_seconds",
			Help:    "Duration of statement builds",
			Buckets: prometheus.DefBuckets,
		}),
		StatementCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "partyledger_statement_cache_hits_total",
			Help: "Total number of statement cache hits",
		}),
		StatementCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "partyledger_statement_cache_misses_total",
			Help: "Total number of statement cache misses",
		}),
		StatementEntries: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "partyledger_statement_entries",
			Help:    "Number of entries per built statement",
			Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),

		// Invoice metrics
		InvoicesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_invoices_created_total",
				Help: "Total number of invoices created by kind",
			},
			[]string{"kind"},
		),
		InvoicesPosted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_invoices_posted_total",
				Help: "Total number of invoices posted to account by kind",
			},
			[]string{"kind"},
		),
		InvoiceAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "partyledger_invoice_amount",
			Help:    "Invoice totals",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		InvoiceErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_invoice_errors_total",
				Help: "Total number of invoice errors by type",
			},
			[]string{"error_type"},
		),

		// Voucher metrics
		VouchersCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_vouchers_created_total",
				Help: "Total number of vouchers created by kind",
			},
			[]string{"kind"},
		),
		VouchersDeleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_vouchers_deleted_total",
				Help: "Total number of vouchers deleted by kind",
			},
			[]string{"kind"},
		),
		VoucherAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "partyledger_voucher_amount",
			Help:    "Voucher amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		// Return metrics
		ReturnsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_returns_recorded_total",
				Help: "Total number of returns recorded by kind",
			},
			[]string{"kind"},
		),

		// Party metrics
		PartiesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_parties_created_total",
				Help: "Total number of parties created by type",
			},
			[]string{"party_type"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "partyledger_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "partyledger_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
