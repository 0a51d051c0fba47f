package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/adapter/http/dto"
	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/tests/testutil"
)

func TestClientStatement(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(ctx, t, testDB)

	client := testDB.CreateTestParty(ctx, domain.PartyClient, "statement-client", decimal.NewFromInt(1000))

	feb1 := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	feb10 := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

	sale := testDB.CreateTestInvoice(ctx, domain.InvoiceSale, client.ID, decimal.NewFromInt(500), domain.MethodDeferred, true, feb1)
	testDB.CreateTestReturn(ctx, domain.InvoiceSale, sale.ID, domain.ReturnItems{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
	}, feb1)
	testDB.CreateTestVoucher(ctx, domain.VoucherReceipt, client.ID, decimal.NewFromInt(300), feb10)

	// Draft invoices never reach the statement.
	testDB.CreateTestInvoice(ctx, domain.InvoiceSale, client.ID, decimal.NewFromInt(999), domain.MethodDeferred, false, feb1)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/clients/"+client.ID+"/statement", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp dto.StatementResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Entries))
	}

	// Sale net of return: 500 - 100 = 400 debit against opening 1000.
	if !resp.Entries[0].Balance.Equal(decimal.NewFromInt(1400)) {
		t.Errorf("expected first balance 1400, got %s", resp.Entries[0].Balance)
	}

	if !resp.FinalBalance.Equal(decimal.NewFromInt(1100)) {
		t.Errorf("expected final balance 1100, got %s", resp.FinalBalance)
	}

	if !resp.TotalDebit.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected total debit 400, got %s", resp.TotalDebit)
	}
	if !resp.TotalCredit.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected total credit 300, got %s", resp.TotalCredit)
	}
}

func TestSupplierStatementExcludesCashPurchases(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(ctx, t, testDB)

	supplier := testDB.CreateTestParty(ctx, domain.PartySupplier, "statement-supplier", decimal.NewFromInt(200))

	mar1 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mar5 := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	testDB.CreateTestInvoice(ctx, domain.InvoicePurchase, supplier.ID, decimal.NewFromInt(400), domain.MethodDeferred, true, mar1)
	// Cash purchases settle immediately and stay off the running account.
	testDB.CreateTestInvoice(ctx, domain.InvoicePurchase, supplier.ID, decimal.NewFromInt(999), domain.MethodCash, true, mar1)
	testDB.CreateTestVoucher(ctx, domain.VoucherDisbursement, supplier.ID, decimal.NewFromInt(150), mar5)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/"+supplier.ID+"/statement", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp dto.StatementResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Entries))
	}

	// 200 opening + 400 purchase credit - 150 payment debit.
	if !resp.FinalBalance.Equal(decimal.NewFromInt(450)) {
		t.Errorf("expected final balance 450, got %s", resp.FinalBalance)
	}
}

func TestStatementPeriodFilter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(ctx, t, testDB)

	client := testDB.CreateTestParty(ctx, domain.PartyClient, "period-client", decimal.NewFromInt(1000))

	jan := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	testDB.CreateTestInvoice(ctx, domain.InvoiceSale, client.ID, decimal.NewFromInt(500), domain.MethodDeferred, true, jan)
	testDB.CreateTestInvoice(ctx, domain.InvoiceSale, client.ID, decimal.NewFromInt(200), domain.MethodDeferred, true, mar)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/clients/"+client.ID+"/statement?from=2024-02-01", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp dto.StatementResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(resp.Entries) != 1 {
		t.Fatalf("expected 1 entry inside the period, got %d", len(resp.Entries))
	}

	// The opening balance stays the party's all-time opening balance even
	// when earlier activity is filtered out of the view.
	if !resp.FinalBalance.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected final balance 1200, got %s", resp.FinalBalance)
	}

	t.Run("inverted period is rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/clients/"+client.ID+"/statement?from=2024-06-01&to=2024-01-01", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})
}

func TestStatementPrint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(ctx, t, testDB)

	client := testDB.CreateTestParty(ctx, domain.PartyClient, "print-client", decimal.NewFromInt(100))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/clients/"+client.ID+"/statement/print", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected HTML content type, got %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "print-client") {
		t.Errorf("expected party name in printable statement")
	}
	if !strings.Contains(body, `dir="rtl"`) {
		t.Errorf("expected RTL document")
	}
}
