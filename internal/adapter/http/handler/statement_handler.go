package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/partyledger/internal/adapter/http/dto"
	"github.com/iho/partyledger/internal/adapter/printer"
	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	BuildClientStatement(ctx context.Context, input usecase.StatementInput) (*domain.Statement, error)
	BuildSupplierStatement(ctx context.Context, input usecase.StatementInput) (*domain.Statement, error)
}

// StatementHandler serves party account statements, as JSON and as a
// printable HTML page.
type StatementHandler struct {
	statementUC StatementService
	partyType   domain.PartyType
	renderer    printer.Renderer
}

// NewStatementHandler creates a new StatementHandler bound to one party type.
func NewStatementHandler(statementUC StatementService, partyType domain.PartyType, renderer printer.Renderer) *StatementHandler {
	return &StatementHandler{
		statementUC: statementUC,
		partyType:   partyType,
		renderer:    renderer,
	}
}

func (h *StatementHandler) build(r *http.Request) (*domain.Statement, error) {
	input := usecase.StatementInput{
		PartyID: chi.URLParam(r, "id"),
		From:    parseDateQuery(r, "from"),
		To:      parseDateQuery(r, "to"),
	}

	if h.partyType == domain.PartySupplier {
		return h.statementUC.BuildSupplierStatement(r.Context(), input)
	}
	return h.statementUC.BuildClientStatement(r.Context(), input)
}

// Get returns the statement as JSON.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "id") == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	statement, err := h.build(r)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement))
}

// Print returns the statement as a self-contained HTML page suitable for
// the browser's print dialog.
func (h *StatementHandler) Print(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "id") == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	statement, err := h.build(r)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	h.renderer.Render(w, statement) //nolint:errcheck // status already written
}
