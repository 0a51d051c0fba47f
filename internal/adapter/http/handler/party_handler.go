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

// PartyService defines the behavior needed by PartyHandler.
type PartyService interface {
	CreateParty(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error)
	GetParty(ctx context.Context, partyType domain.PartyType, id string) (*domain.Party, error)
	UpdateParty(ctx context.Context, input usecase.UpdatePartyInput) (*domain.Party, error)
	DeleteParty(ctx context.Context, partyType domain.PartyType, id string) error
	ListParties(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error)
}

// PartyHandler handles client or supplier HTTP requests. One instance is
// mounted per party type, so the routes stay flat.
type PartyHandler struct {
	partyUC   PartyService
	partyType domain.PartyType
}

// NewPartyHandler creates a new PartyHandler bound to one party type.
func NewPartyHandler(partyUC PartyService, partyType domain.PartyType) *PartyHandler {
	return &PartyHandler{partyUC: partyUC, partyType: partyType}
}

// Create creates a new party.
func (h *PartyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	party, err := h.partyUC.CreateParty(r.Context(), req.ToUseCaseInput(h.partyType))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create party", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PartyFromDomain(party))
}

// Get retrieves a party by ID.
func (h *PartyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	party, err := h.partyUC.GetParty(r.Context(), h.partyType, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get party", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PartyFromDomain(party))
}

// Update updates a party's details.
func (h *PartyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	var req dto.UpdatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	party, err := h.partyUC.UpdateParty(r.Context(), req.ToUseCaseInput(h.partyType, id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update party", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PartyFromDomain(party))
}

// Delete removes a party.
func (h *PartyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	if err := h.partyUC.DeleteParty(r.Context(), h.partyType, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete party", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists parties.
func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	parties, err := h.partyUC.ListParties(r.Context(), usecase.ListPartiesInput{
		Type:   h.partyType,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list parties", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListPartiesResponse{
		Parties: dto.PartiesFromDomain(parties),
		Total:   int64(len(parties)),
	})
}
