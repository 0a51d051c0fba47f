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

// EmployeeService defines the behavior needed by EmployeeHandler.
type EmployeeService interface {
	CreateDebt(ctx context.Context, input usecase.CreateDebtInput) (*domain.EmployeeDebt, error)
	DeleteDebt(ctx context.Context, id string) error
	ListDebts(ctx context.Context, limit, offset int) ([]*domain.EmployeeDebt, error)
	CreateDeduction(ctx context.Context, input usecase.CreateDeductionInput) (*domain.Deduction, error)
	DeleteDeduction(ctx context.Context, id string) error
	ListDeductions(ctx context.Context, limit, offset int) ([]*domain.Deduction, error)
}

// EmployeeHandler handles employee debt and deduction HTTP requests.
type EmployeeHandler struct {
	employeeUC EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeUC EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeUC: employeeUC}
}

// CreateDebt records an employee debt.
func (h *EmployeeHandler) CreateDebt(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.employeeUC.CreateDebt(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create debt", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DebtFromDomain(debt))
}

// DeleteDebt removes an employee debt.
func (h *EmployeeHandler) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing debt ID", "")
		return
	}

	if err := h.employeeUC.DeleteDebt(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete debt", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDebts lists employee debts.
func (h *EmployeeHandler) ListDebts(w http.ResponseWriter, r *http.Request) {
	debts, err := h.employeeUC.ListDebts(r.Context(), parseIntQuery(r, "limit", 20), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list debts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtsFromDomain(debts))
}

// CreateDeduction records a pay deduction.
func (h *EmployeeHandler) CreateDeduction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	deduction, err := h.employeeUC.CreateDeduction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create deduction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DeductionFromDomain(deduction))
}

// DeleteDeduction removes a deduction.
func (h *EmployeeHandler) DeleteDeduction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing deduction ID", "")
		return
	}

	if err := h.employeeUC.DeleteDeduction(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete deduction", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDeductions lists pay deductions.
func (h *EmployeeHandler) ListDeductions(w http.ResponseWriter, r *http.Request) {
	deductions, err := h.employeeUC.ListDeductions(r.Context(), parseIntQuery(r, "limit", 20), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list deductions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DeductionsFromDomain(deductions))
}
