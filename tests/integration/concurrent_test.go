package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/tests/testutil"
)

// Posting locks the invoice row, so exactly one of N concurrent posts can
// win; the rest observe the already-posted state.
func TestConcurrentPosting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(ctx, t, testDB)

	client := testDB.CreateTestParty(ctx, domain.PartyClient, "concurrent-client", decimal.Zero)
	invoice := testDB.CreateTestInvoice(ctx, domain.InvoiceSale, client.ID, decimal.NewFromInt(300), domain.MethodDeferred, false, time.Now().UTC())

	const workers = 8

	var wg sync.WaitGroup
	codes := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			r := httptest.NewRequest(http.MethodPost, "/api/v1/sales/"+invoice.ID+"/post", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, r)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			successes++
		case http.StatusConflict:
			conflicts++
		default:
			t.Errorf("unexpected status code %d", code)
		}
	}

	if successes != 1 {
		t.Errorf("expected exactly 1 successful post, got %d", successes)
	}
	if conflicts != workers-1 {
		t.Errorf("expected %d conflicts, got %d", workers-1, conflicts)
	}
}
