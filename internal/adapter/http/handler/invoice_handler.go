package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/partyledger/internal/adapter/http/dto"
	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/usecase"
)

// InvoiceService defines the behavior needed by InvoiceHandler.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, filter usecase.InvoiceFilter) ([]*domain.Invoice, error)
	PostToAccount(ctx context.Context, id string) (*domain.Invoice, error)
}

// InvoiceHandler handles sale or purchase invoice HTTP requests. One
// instance is mounted per invoice kind.
type InvoiceHandler struct {
	invoiceUC InvoiceService
	kind      domain.InvoiceKind
}

// NewInvoiceHandler creates a new InvoiceHandler bound to one invoice kind.
func NewInvoiceHandler(invoiceUC InvoiceService, kind domain.InvoiceKind) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC, kind: kind}
}

// Create creates a new invoice.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.invoiceUC.CreateInvoice(r.Context(), req.ToUseCaseInput(h.kind))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.InvoiceFromDomain(invoice))
}

// Get retrieves an invoice by ID.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	invoice, err := h.invoiceUC.GetInvoice(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get invoice", err.Error())
		return
	}

	if invoice.Kind != h.kind {
		writeError(w, http.StatusNotFound, "failed to get invoice", domain.ErrInvoiceNotFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}

// List lists invoices of this kind.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.InvoiceFilter{
		Kind:     h.kind,
		PartyID:  r.URL.Query().Get("party_id"),
		BranchID: r.URL.Query().Get("branch_id"),
		Limit:    parseIntQuery(r, "limit", 20),
		Offset:   parseIntQuery(r, "offset", 0),
	}

	invoices, err := h.invoiceUC.ListInvoices(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list invoices", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListInvoicesResponse{
		Invoices: dto.InvoicesFromDomain(invoices),
		Total:    int64(len(invoices)),
	})
}

// Post commits a draft invoice to its party's account.
func (h *InvoiceHandler) Post(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	invoice, err := h.invoiceUC.PostToAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to post invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}
