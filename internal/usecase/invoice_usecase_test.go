package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/usecase"
	"github.com/iho/partyledger/internal/usecase/mocks"
)

func TestInvoiceUseCase_CreateInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	partyRepo := mocks.NewMockPartyRepository(ctrl)
	idGen := &mocks.StaticIDGenerator{IDs: []string{"inv-1"}}

	partyRepo.EXPECT().GetByID(gomock.Any(), domain.PartyClient, "c-1").
		Return(&domain.Party{ID: "c-1", Type: domain.PartyClient}, nil)
	invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewInvoiceUseCase(mocks.NewMockTransactionManager(), invoiceRepo, partyRepo, idGen, &mocks.MockRetrier{})

	invoice, err := uc.CreateInvoice(context.Background(), usecase.CreateInvoiceInput{
		Kind:    domain.InvoiceSale,
		Number:  "S-100",
		PartyID: "c-1",
		Total:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	require.Equal(t, "inv-1", invoice.ID)
	require.Equal(t, domain.MethodCash, invoice.Method)
	require.False(t, invoice.Date.IsZero())
}

func TestInvoiceUseCase_CreateInvoice_CashPurchaseNeverPosted(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	partyRepo := mocks.NewMockPartyRepository(ctrl)
	idGen := &mocks.StaticIDGenerator{}

	partyRepo.EXPECT().GetByID(gomock.Any(), domain.PartySupplier, "s-1").
		Return(&domain.Party{ID: "s-1", Type: domain.PartySupplier}, nil)
	invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewInvoiceUseCase(mocks.NewMockTransactionManager(), invoiceRepo, partyRepo, idGen, &mocks.MockRetrier{})

	invoice, err := uc.CreateInvoice(context.Background(), usecase.CreateInvoiceInput{
		Kind:            domain.InvoicePurchase,
		Number:          "P-9",
		PartyID:         "s-1",
		Total:           decimal.NewFromInt(100),
		Method:          domain.MethodCash,
		PostedToAccount: true,
	})
	require.NoError(t, err)
	require.False(t, invoice.PostedToAccount)
}

func TestInvoiceUseCase_CreateInvoice_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreateInvoiceInput
		wantErr error
	}{
		{
			name:    "non-positive total",
			input:   usecase.CreateInvoiceInput{Kind: domain.InvoiceSale, Number: "S-1", PartyID: "c-1", Total: decimal.Zero},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "missing number",
			input:   usecase.CreateInvoiceInput{Kind: domain.InvoiceSale, PartyID: "c-1", Total: decimal.NewFromInt(10)},
			wantErr: domain.ErrInvalidDocumentNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
			partyRepo := mocks.NewMockPartyRepository(ctrl)

			uc := usecase.NewInvoiceUseCase(mocks.NewMockTransactionManager(), invoiceRepo, partyRepo, &mocks.StaticIDGenerator{}, &mocks.MockRetrier{})

			_, err := uc.CreateInvoice(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInvoiceUseCase_CreateInvoice_PartyMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	partyRepo := mocks.NewMockPartyRepository(ctrl)

	partyRepo.EXPECT().GetByID(gomock.Any(), domain.PartySupplier, "ghost").
		Return(nil, domain.ErrSupplierNotFound)

	uc := usecase.NewInvoiceUseCase(mocks.NewMockTransactionManager(), invoiceRepo, partyRepo, &mocks.StaticIDGenerator{}, &mocks.MockRetrier{})

	_, err := uc.CreateInvoice(context.Background(), usecase.CreateInvoiceInput{
		Kind:    domain.InvoicePurchase,
		Number:  "P-1",
		PartyID: "ghost",
		Total:   decimal.NewFromInt(10),
	})
	require.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestInvoiceUseCase_PostToAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	partyRepo := mocks.NewMockPartyRepository(ctrl)
	txManager := mocks.NewMockTransactionManager()

	draft := &domain.Invoice{
		ID:     "inv-1",
		Kind:   domain.InvoiceSale,
		Number: "S-1",
		Total:  decimal.NewFromInt(100),
	}

	invoiceRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "inv-1").Return(draft, nil)
	invoiceRepo.EXPECT().MarkPosted(gomock.Any(), gomock.Any(), "inv-1", gomock.Any()).Return(nil)

	uc := usecase.NewInvoiceUseCase(txManager, invoiceRepo, partyRepo, &mocks.StaticIDGenerator{}, &mocks.MockRetrier{})

	invoice, err := uc.PostToAccount(context.Background(), "inv-1")
	require.NoError(t, err)
	require.True(t, invoice.PostedToAccount)
	require.True(t, txManager.LastTx.Committed)
}

func TestInvoiceUseCase_PostToAccount_GoesThroughRetrier(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	partyRepo := mocks.NewMockPartyRepository(ctrl)
	txManager := mocks.NewMockTransactionManager()
	retrier := &mocks.MockRetrier{}

	draft := &domain.Invoice{ID: "inv-1", Kind: domain.InvoiceSale, Total: decimal.NewFromInt(100)}

	invoiceRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "inv-1").Return(draft, nil)
	invoiceRepo.EXPECT().MarkPosted(gomock.Any(), gomock.Any(), "inv-1", gomock.Any()).Return(nil)

	uc := usecase.NewInvoiceUseCase(txManager, invoiceRepo, partyRepo, &mocks.StaticIDGenerator{}, retrier)

	_, err := uc.PostToAccount(context.Background(), "inv-1")
	require.NoError(t, err)
	require.Equal(t, 1, retrier.Calls)
}

func TestInvoiceUseCase_PostToAccount_AlreadyPosted(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	partyRepo := mocks.NewMockPartyRepository(ctrl)
	txManager := mocks.NewMockTransactionManager()

	posted := &domain.Invoice{
		ID:              "inv-1",
		Kind:            domain.InvoiceSale,
		PostedToAccount: true,
	}

	invoiceRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "inv-1").Return(posted, nil)

	uc := usecase.NewInvoiceUseCase(txManager, invoiceRepo, partyRepo, &mocks.StaticIDGenerator{}, &mocks.MockRetrier{})

	_, err := uc.PostToAccount(context.Background(), "inv-1")
	require.ErrorIs(t, err, domain.ErrAlreadyPosted)
	require.False(t, txManager.LastTx.Committed)
	require.True(t, txManager.LastTx.RolledBack)
}

func TestInvoiceUseCase_PostToAccount_CashPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	partyRepo := mocks.NewMockPartyRepository(ctrl)
	txManager := mocks.NewMockTransactionManager()

	cash := &domain.Invoice{
		ID:     "inv-2",
		Kind:   domain.InvoicePurchase,
		Method: domain.MethodCash,
		Date:   time.Now(),
	}

	invoiceRepo.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "inv-2").Return(cash, nil)

	uc := usecase.NewInvoiceUseCase(txManager, invoiceRepo, partyRepo, &mocks.StaticIDGenerator{}, &mocks.MockRetrier{})

	_, err := uc.PostToAccount(context.Background(), "inv-2")
	require.ErrorIs(t, err, domain.ErrCashPurchaseOnAccount)
}
