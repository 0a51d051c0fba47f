package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/adapter/http/dto"
	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/tests/testutil"
)

func TestClientLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(ctx, t, testDB)

	t.Run("create client with valid data", func(t *testing.T) {
		req := dto.CreatePartyRequest{
			Name:           "Al Noor Trading",
			Phone:          "0501234567",
			OpeningBalance: decimal.NewFromInt(500),
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/clients", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Errorf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.PartyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.Name != req.Name {
			t.Errorf("expected name %q, got %q", req.Name, resp.Name)
		}
		if !resp.OpeningBalance.Equal(req.OpeningBalance) {
			t.Errorf("expected opening balance %s, got %s", req.OpeningBalance, resp.OpeningBalance)
		}
	})

	t.Run("create client with empty name fails", func(t *testing.T) {
		body, _ := json.Marshal(dto.CreatePartyRequest{Name: ""})

		r := httptest.NewRequest(http.MethodPost, "/api/v1/clients", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("get client by ID", func(t *testing.T) {
		client := testDB.CreateTestParty(ctx, domain.PartyClient, "get-test", decimal.Zero)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/clients/"+client.ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.PartyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.ID != client.ID {
			t.Errorf("expected ID %q, got %q", client.ID, resp.ID)
		}
	})

	t.Run("get non-existent client returns 404", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/clients/non-existent-id", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})

	t.Run("supplier with same ID space is not visible as client", func(t *testing.T) {
		supplier := testDB.CreateTestParty(ctx, domain.PartySupplier, "supplier-only", decimal.Zero)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/clients/"+supplier.ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})

	t.Run("list clients", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		testDB.CreateTestParty(ctx, domain.PartyClient, "list-1", decimal.Zero)
		testDB.CreateTestParty(ctx, domain.PartyClient, "list-2", decimal.Zero)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/clients?limit=10&offset=0", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.ListPartiesResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if len(resp.Parties) != 2 {
			t.Errorf("expected 2 clients, got %d", len(resp.Parties))
		}
	})

	t.Run("update client", func(t *testing.T) {
		client := testDB.CreateTestParty(ctx, domain.PartyClient, "before-update", decimal.Zero)

		body, _ := json.Marshal(dto.UpdatePartyRequest{
			Name:           "after-update",
			OpeningBalance: decimal.NewFromInt(75),
		})

		r := httptest.NewRequest(http.MethodPut, "/api/v1/clients/"+client.ID, bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.PartyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.Name != "after-update" {
			t.Errorf("expected updated name, got %q", resp.Name)
		}
	})

	t.Run("delete client", func(t *testing.T) {
		client := testDB.CreateTestParty(ctx, domain.PartyClient, "to-delete", decimal.Zero)

		r := httptest.NewRequest(http.MethodDelete, "/api/v1/clients/"+client.ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusNoContent {
			t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
		}

		r = httptest.NewRequest(http.MethodGet, "/api/v1/clients/"+client.ID, nil)
		w = httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected deleted client to 404, got %d", w.Code)
		}
	})
}
