package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/infrastructure/metrics"
)

// StatementUseCase derives party statements from the current snapshot of
// invoices, vouchers and returns. Statements are a pure projection: nothing
// here is persisted, and the same snapshot always produces the same ledger.
type StatementUseCase struct {
	partyRepo   PartyRepository
	invoiceRepo InvoiceRepository
	voucherRepo VoucherRepository
	returnRepo  ReturnRepository
	cache       Cache
	cacheTTL    time.Duration
	metrics     *metrics.Metrics
}

// NewStatementUseCase creates a new StatementUseCase. cache and m may be nil
// to disable snapshot caching and instrumentation; a non-positive cacheTTL
// falls back to StatementCacheTTL.
func NewStatementUseCase(
	partyRepo PartyRepository,
	invoiceRepo InvoiceRepository,
	voucherRepo VoucherRepository,
	returnRepo ReturnRepository,
	cache Cache,
	cacheTTL time.Duration,
	m *metrics.Metrics,
) *StatementUseCase {
	if cacheTTL <= 0 {
		cacheTTL = StatementCacheTTL
	}

	return &StatementUseCase{
		partyRepo:   partyRepo,
		invoiceRepo: invoiceRepo,
		voucherRepo: voucherRepo,
		returnRepo:  returnRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		metrics:     m,
	}
}

// StatementInput represents input for building a statement.
type StatementInput struct {
	PartyID string
	From    *time.Time
	To      *time.Time
}

// BuildClientStatement builds a client statement: sales debit the ledger,
// receipt vouchers credit it.
func (uc *StatementUseCase) BuildClientStatement(ctx context.Context, input StatementInput) (*domain.Statement, error) {
	return uc.buildStatement(ctx, domain.PartyClient, input)
}

// BuildSupplierStatement builds a supplier statement: deferred purchases
// credit the ledger, payment vouchers debit it.
func (uc *StatementUseCase) BuildSupplierStatement(ctx context.Context, input StatementInput) (*domain.Statement, error) {
	return uc.buildStatement(ctx, domain.PartySupplier, input)
}

func (uc *StatementUseCase) buildStatement(ctx context.Context, partyType domain.PartyType, input StatementInput) (*domain.Statement, error) {
	start := time.Now()

	period, err := domain.NewPeriod(input.From, input.To)
	if err != nil {
		return nil, err
	}

	party, err := uc.partyRepo.GetByID(ctx, partyType, input.PartyID)
	if err != nil {
		return nil, err
	}

	cacheKey := statementCacheKey(partyType, input.PartyID, period)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		if uc.metrics != nil {
			uc.metrics.StatementCacheHits.Inc()
		}
		return cached, nil
	}
	if uc.metrics != nil {
		uc.metrics.StatementCacheMisses.Inc()
	}

	invoiceKind := domain.InvoiceSale
	voucherKind := domain.VoucherReceipt
	if partyType == domain.PartySupplier {
		invoiceKind = domain.InvoicePurchase
		voucherKind = domain.VoucherDisbursement
	}

	invoices, err := uc.invoiceRepo.ListByParty(ctx, invoiceKind, party.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}

	vouchers, err := uc.voucherRepo.ListByParty(ctx, voucherKind, party.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vouchers: %w", err)
	}

	invoiceIDs := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		invoiceIDs = append(invoiceIDs, inv.ID)
	}

	var returns []*domain.ReturnRecord
	if len(invoiceIDs) > 0 {
		returns, err = uc.returnRepo.ListByInvoiceIDs(ctx, invoiceKind, invoiceIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load returns: %w", err)
		}
	}

	entries := domain.NormalizeInvoices(partyType, invoices, returns)
	entries = append(entries, domain.NormalizeVouchers(partyType, vouchers)...)

	// Period filtering happens before accumulation. The opening balance of a
	// filtered statement is still the party's all-time opening balance.
	entries = period.Filter(entries)

	sorted, totals := domain.Accumulate(partyType, party.OpeningBalance, entries)

	statement := &domain.Statement{
		Party:       party,
		Period:      period,
		Entries:     sorted,
		Totals:      totals,
		GeneratedAt: time.Now().UTC(),
	}

	uc.toCache(ctx, cacheKey, statement)

	if uc.metrics != nil {
		uc.metrics.StatementsBuilt.WithLabelValues(string(partyType)).Inc()
		uc.metrics.StatementDuration.Observe(time.Since(start).Seconds())
		uc.metrics.StatementEntries.Observe(float64(len(sorted)))
	}

	return statement, nil
}

func statementCacheKey(partyType domain.PartyType, partyID string, period domain.Period) string {
	from, to := "", ""
	if period.From != nil {
		from = period.From.Format(time.RFC3339)
	}
	if period.To != nil {
		to = period.To.Format(time.RFC3339)
	}

	return fmt.Sprintf("statement:%s:%s:%s:%s", partyType, partyID, from, to)
}

// fromCache returns a cached statement or nil. Cache failures are ignored:
// a miss just rebuilds the projection.
func (uc *StatementUseCase) fromCache(ctx context.Context, key string) *domain.Statement {
	if uc.cache == nil {
		return nil
	}

	data, err := uc.cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil
	}

	var statement domain.Statement
	if err := json.Unmarshal(data, &statement); err != nil {
		return nil
	}

	return &statement
}

func (uc *StatementUseCase) toCache(ctx context.Context, key string, statement *domain.Statement) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(statement)
	if err != nil {
		return
	}

	_ = uc.cache.Set(ctx, key, data, uc.cacheTTL)
}
