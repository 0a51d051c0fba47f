package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/partyledger/internal/adapter/http/dto"
	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/usecase"
)

// ReturnService defines the behavior needed by ReturnHandler.
type ReturnService interface {
	CreateReturn(ctx context.Context, input usecase.CreateReturnInput) (*domain.ReturnRecord, error)
	ListReturns(ctx context.Context, kind domain.InvoiceKind, limit, offset int) ([]*domain.ReturnRecord, error)
}

// ReturnHandler handles sales or purchase return HTTP requests. One instance
// is mounted per invoice kind.
type ReturnHandler struct {
	returnUC ReturnService
	kind     domain.InvoiceKind
}

// NewReturnHandler creates a new ReturnHandler bound to one invoice kind.
func NewReturnHandler(returnUC ReturnService, kind domain.InvoiceKind) *ReturnHandler {
	return &ReturnHandler{returnUC: returnUC, kind: kind}
}

// Create records a return against an invoice.
func (h *ReturnHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.returnUC.CreateReturn(r.Context(), req.ToUseCaseInput(h.kind))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create return", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReturnFromDomain(record))
}

// List lists returns of this kind.
func (h *ReturnHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	records, err := h.returnUC.ListReturns(r.Context(), h.kind, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list returns", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListReturnsResponse{
		Returns: dto.ReturnsFromDomain(records),
		Total:   int64(len(records)),
	})
}
