package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/iho/partyledger/internal/adapter/http/handler"
	"github.com/iho/partyledger/internal/adapter/http/middleware"
	"github.com/iho/partyledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ClientHandler            *handler.PartyHandler
	SupplierHandler          *handler.PartyHandler
	ClientStatementHandler   *handler.StatementHandler
	SupplierStatementHandler *handler.StatementHandler
	SaleHandler              *handler.InvoiceHandler
	PurchaseHandler          *handler.InvoiceHandler
	ReceiptVoucherHandler    *handler.VoucherHandler
	PaymentVoucherHandler    *handler.VoucherHandler
	SalesReturnHandler       *handler.ReturnHandler
	PurchaseReturnHandler    *handler.ReturnHandler
	EmployeeHandler          *handler.EmployeeHandler
	HealthHandler            *handler.HealthHandler
	IdempotencyStore         usecase.IdempotencyStore
	RateLimiter              *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(log.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Clients
		r.Route("/clients", func(r chi.Router) {
			r.Post("/", cfg.ClientHandler.Create)
			r.Get("/", cfg.ClientHandler.List)
			r.Get("/{id}", cfg.ClientHandler.Get)
			r.Put("/{id}", cfg.ClientHandler.Update)
			r.Delete("/{id}", cfg.ClientHandler.Delete)
			r.Get("/{id}/statement", cfg.ClientStatementHandler.Get)
			r.Get("/{id}/statement/print", cfg.ClientStatementHandler.Print)
		})

		// Suppliers
		r.Route("/suppliers", func(r chi.Router) {
			r.Post("/", cfg.SupplierHandler.Create)
			r.Get("/", cfg.SupplierHandler.List)
			r.Get("/{id}", cfg.SupplierHandler.Get)
			r.Put("/{id}", cfg.SupplierHandler.Update)
			r.Delete("/{id}", cfg.SupplierHandler.Delete)
			r.Get("/{id}/statement", cfg.SupplierStatementHandler.Get)
			r.Get("/{id}/statement/print", cfg.SupplierStatementHandler.Print)
		})

		// Sales invoices
		r.Route("/sales", func(r chi.Router) {
			r.Post("/", cfg.SaleHandler.Create)
			r.Get("/", cfg.SaleHandler.List)
			r.Get("/{id}", cfg.SaleHandler.Get)
			r.Post("/{id}/post", cfg.SaleHandler.Post)
		})

		// Purchase invoices
		r.Route("/purchases", func(r chi.Router) {
			r.Post("/", cfg.PurchaseHandler.Create)
			r.Get("/", cfg.PurchaseHandler.List)
			r.Get("/{id}", cfg.PurchaseHandler.Get)
			r.Post("/{id}/post", cfg.PurchaseHandler.Post)
		})

		// Vouchers
		r.Route("/client-receipt-vouchers", func(r chi.Router) {
			r.Post("/", cfg.ReceiptVoucherHandler.Create)
			r.Get("/", cfg.ReceiptVoucherHandler.List)
			r.Get("/{id}", cfg.ReceiptVoucherHandler.Get)
			r.Delete("/{id}", cfg.ReceiptVoucherHandler.Delete)
		})
		r.Route("/supplier-payment-vouchers", func(r chi.Router) {
			r.Post("/", cfg.PaymentVoucherHandler.Create)
			r.Get("/", cfg.PaymentVoucherHandler.List)
			r.Get("/{id}", cfg.PaymentVoucherHandler.Get)
			r.Delete("/{id}", cfg.PaymentVoucherHandler.Delete)
		})

		// Returns
		r.Route("/sales-returns", func(r chi.Router) {
			r.Post("/", cfg.SalesReturnHandler.Create)
			r.Get("/", cfg.SalesReturnHandler.List)
		})
		r.Route("/purchase-returns", func(r chi.Router) {
			r.Post("/", cfg.PurchaseReturnHandler.Create)
			r.Get("/", cfg.PurchaseReturnHandler.List)
		})

		// Employee debts and deductions
		r.Route("/employee-debts", func(r chi.Router) {
			r.Post("/", cfg.EmployeeHandler.CreateDebt)
			r.Get("/", cfg.EmployeeHandler.ListDebts)
			r.Delete("/{id}", cfg.EmployeeHandler.DeleteDebt)
		})
		r.Route("/deductions", func(r chi.Router) {
			r.Post("/", cfg.EmployeeHandler.CreateDeduction)
			r.Get("/", cfg.EmployeeHandler.ListDeductions)
			r.Delete("/{id}", cfg.EmployeeHandler.DeleteDeduction)
		})
	})

	return r
}
