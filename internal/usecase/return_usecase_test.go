package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/partyledger/internal/domain"
	"github.com/iho/partyledger/internal/usecase"
	"github.com/iho/partyledger/internal/usecase/mocks"
)

func TestReturnUseCase_CreateReturn(t *testing.T) {
	ctrl := gomock.NewController(t)
	returnRepo := mocks.NewMockReturnRepository(ctrl)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

	invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").
		Return(&domain.Invoice{ID: "inv-1", Kind: domain.InvoiceSale}, nil)
	returnRepo.EXPECT().Create(gomock.Any(), domain.InvoiceSale, gomock.Any()).Return(nil)

	uc := usecase.NewReturnUseCase(returnRepo, invoiceRepo, &mocks.StaticIDGenerator{IDs: []string{"r-1"}})

	record, err := uc.CreateReturn(context.Background(), usecase.CreateReturnInput{
		Kind:      domain.InvoiceSale,
		InvoiceID: "inv-1",
		Items: domain.ReturnItems{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(75)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "r-1", record.ID)
	require.True(t, record.Value().Equal(decimal.NewFromInt(150)))
	require.False(t, record.Date.IsZero())
}

func TestReturnUseCase_CreateReturn_KindMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	returnRepo := mocks.NewMockReturnRepository(ctrl)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

	// A sales return cannot target a purchase invoice.
	invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-2").
		Return(&domain.Invoice{ID: "inv-2", Kind: domain.InvoicePurchase}, nil)

	uc := usecase.NewReturnUseCase(returnRepo, invoiceRepo, &mocks.StaticIDGenerator{})

	_, err := uc.CreateReturn(context.Background(), usecase.CreateReturnInput{
		Kind:      domain.InvoiceSale,
		InvoiceID: "inv-2",
	})
	require.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestReturnUseCase_CreateReturn_InvoiceMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	returnRepo := mocks.NewMockReturnRepository(ctrl)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

	invoiceRepo.EXPECT().GetByID(gomock.Any(), "ghost").
		Return(nil, domain.ErrInvoiceNotFound)

	uc := usecase.NewReturnUseCase(returnRepo, invoiceRepo, &mocks.StaticIDGenerator{})

	_, err := uc.CreateReturn(context.Background(), usecase.CreateReturnInput{
		Kind:      domain.InvoicePurchase,
		InvoiceID: "ghost",
	})
	require.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestReturnUseCase_CreateReturn_EmptyItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	returnRepo := mocks.NewMockReturnRepository(ctrl)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

	invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").
		Return(&domain.Invoice{ID: "inv-1", Kind: domain.InvoiceSale}, nil)
	returnRepo.EXPECT().Create(gomock.Any(), domain.InvoiceSale, gomock.Any()).Return(nil)

	uc := usecase.NewReturnUseCase(returnRepo, invoiceRepo, &mocks.StaticIDGenerator{})

	// Items that failed to parse upstream arrive empty; the return is still
	// recorded and simply offsets nothing.
	record, err := uc.CreateReturn(context.Background(), usecase.CreateReturnInput{
		Kind:      domain.InvoiceSale,
		InvoiceID: "inv-1",
	})
	require.NoError(t, err)
	require.True(t, record.Value().IsZero())
}
