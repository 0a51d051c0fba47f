package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iho/partyledger/internal/adapter/http/dto"
	"github.com/iho/partyledger/internal/domain"
)

func TestStatementFromDomain(t *testing.T) {
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)

	statement := &domain.Statement{
		Party: &domain.Party{
			ID:             "c-1",
			Type:           domain.PartyClient,
			Name:           "Al Noor Trading",
			OpeningBalance: decimal.NewFromInt(1000),
		},
		Period: domain.Period{From: &from, To: &to},
		Entries: []domain.LedgerEntry{
			{
				ID:          "inv-1",
				Date:        from,
				Kind:        domain.EntryInvoice,
				Description: "Sales invoice #S-100",
				Debit:       decimal.NewFromInt(500),
				Reference:   "S-100",
				Balance:     decimal.NewFromInt(1500),
			},
		},
		Totals: domain.StatementTotals{
			TotalDebit:   decimal.NewFromInt(500),
			TotalCredit:  decimal.Zero,
			FinalBalance: decimal.NewFromInt(1500),
		},
		GeneratedAt: to,
	}

	resp := dto.StatementFromDomain(statement)

	require.Equal(t, "c-1", resp.Party.ID)
	require.Len(t, resp.Entries, 1)
	require.Equal(t, "Sales invoice #S-100", resp.Entries[0].Description)
	require.True(t, resp.Entries[0].Balance.Equal(decimal.NewFromInt(1500)))
	require.True(t, resp.FinalBalance.Equal(decimal.NewFromInt(1500)))
	require.NotNil(t, resp.From)
	require.NotNil(t, resp.To)
}

func TestReturnFromDomain_ComputesValue(t *testing.T) {
	rec := &domain.ReturnRecord{
		ID:        "r-1",
		InvoiceID: "inv-1",
		Items: domain.ReturnItems{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(75)},
			{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(40)},
		},
	}

	resp := dto.ReturnFromDomain(rec)

	require.True(t, resp.Value.Equal(decimal.NewFromInt(190)), "got %s", resp.Value)
}
