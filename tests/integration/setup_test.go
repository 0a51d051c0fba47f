package integration

import (
	"context"
	"net/http"
	"os"
	"testing"

	adaptershttp "github.com/iho/partyledger/internal/adapter/http"
	"github.com/iho/partyledger/internal/adapter/http/handler"
	"github.com/iho/partyledger/internal/adapter/printer"
	"github.com/iho/partyledger/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/partyledger/internal/adapter/repository/redis"
	"github.com/iho/partyledger/internal/domain"
	infraredis "github.com/iho/partyledger/internal/infrastructure/redis"
	"github.com/iho/partyledger/internal/usecase"
	"github.com/iho/partyledger/tests/testutil"
)

// newTestRouter wires the full HTTP surface against the test database and a
// real Redis instance. Statement caching is disabled so assertions always see
// fresh projections.
func newTestRouter(ctx context.Context, t *testing.T, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	pool := testDB.Pool

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	txManager := postgres.NewTxManager(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	voucherRepo := postgres.NewVoucherRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	debtRepo := postgres.NewEmployeeDebtRepository(pool)
	deductionRepo := postgres.NewDeductionRepository(pool)
	idGen := postgres.NewULIDGenerator()

	partyUC := usecase.NewPartyUseCase(partyRepo, idGen)
	invoiceUC := usecase.NewInvoiceUseCase(txManager, invoiceRepo, partyRepo, idGen, postgres.NewRetrier())
	voucherUC := usecase.NewVoucherUseCase(voucherRepo, partyRepo, idGen)
	returnUC := usecase.NewReturnUseCase(returnRepo, invoiceRepo, idGen)
	employeeUC := usecase.NewEmployeeUseCase(debtRepo, deductionRepo, idGen)
	statementUC := usecase.NewStatementUseCase(partyRepo, invoiceRepo, voucherRepo, returnRepo, nil, 0, nil)

	renderer := printer.NewHTMLRenderer()

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		ClientHandler:            handler.NewPartyHandler(partyUC, domain.PartyClient),
		SupplierHandler:          handler.NewPartyHandler(partyUC, domain.PartySupplier),
		ClientStatementHandler:   handler.NewStatementHandler(statementUC, domain.PartyClient, renderer),
		SupplierStatementHandler: handler.NewStatementHandler(statementUC, domain.PartySupplier, renderer),
		SaleHandler:              handler.NewInvoiceHandler(invoiceUC, domain.InvoiceSale),
		PurchaseHandler:          handler.NewInvoiceHandler(invoiceUC, domain.InvoicePurchase),
		ReceiptVoucherHandler:    handler.NewVoucherHandler(voucherUC, domain.VoucherReceipt),
		PaymentVoucherHandler:    handler.NewVoucherHandler(voucherUC, domain.VoucherDisbursement),
		SalesReturnHandler:       handler.NewReturnHandler(returnUC, domain.InvoiceSale),
		PurchaseReturnHandler:    handler.NewReturnHandler(returnUC, domain.InvoicePurchase),
		EmployeeHandler:          handler.NewEmployeeHandler(employeeUC),
		HealthHandler:            handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:         redisrepo.NewIdempotencyStore(redisClient),
	})
}
