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

// VoucherService defines the behavior needed by VoucherHandler.
type VoucherService interface {
	CreateVoucher(ctx context.Context, input usecase.CreateVoucherInput) (*domain.PaymentVoucher, error)
	GetVoucher(ctx context.Context, id string) (*domain.PaymentVoucher, error)
	DeleteVoucher(ctx context.Context, kind domain.VoucherKind, id string) error
	ListVouchers(ctx context.Context, input usecase.ListVouchersInput) ([]*domain.PaymentVoucher, error)
}

// VoucherHandler handles receipt or payment voucher HTTP requests. One
// instance is mounted per voucher kind.
type VoucherHandler struct {
	voucherUC VoucherService
	kind      domain.VoucherKind
}

// NewVoucherHandler creates a new VoucherHandler bound to one voucher kind.
func NewVoucherHandler(voucherUC VoucherService, kind domain.VoucherKind) *VoucherHandler {
	return &VoucherHandler{voucherUC: voucherUC, kind: kind}
}

// Create records a new voucher.
func (h *VoucherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	voucher, err := h.voucherUC.CreateVoucher(r.Context(), req.ToUseCaseInput(h.kind))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create voucher", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.VoucherFromDomain(voucher))
}

// Get retrieves a voucher by ID.
func (h *VoucherHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	voucher, err := h.voucherUC.GetVoucher(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get voucher", err.Error())
		return
	}

	if voucher.Kind != h.kind {
		writeError(w, http.StatusNotFound, "failed to get voucher", domain.ErrVoucherNotFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// Delete removes a voucher.
func (h *VoucherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	if err := h.voucherUC.DeleteVoucher(r.Context(), h.kind, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete voucher", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists vouchers of this kind.
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.voucherUC.ListVouchers(r.Context(), usecase.ListVouchersInput{
		Kind:    h.kind,
		PartyID: r.URL.Query().Get("party_id"),
		Limit:   parseIntQuery(r, "limit", 20),
		Offset:  parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list vouchers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListVouchersResponse{
		Vouchers: dto.VouchersFromDomain(vouchers),
		Total:    int64(len(vouchers)),
	})
}
