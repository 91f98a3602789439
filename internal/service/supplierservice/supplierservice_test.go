package supplierservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockSupplierRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	supplierRepo := NewMockSupplierRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	return New(supplierRepo, txManager), supplierRepo, txManager
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func lockedWrite(suppliers *MockSupplierRepo, tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
	tx.EXPECT().Lock(gomock.Any(), "supplier:2").Return(nil)
	suppliers.EXPECT().GetSupplier(gomock.Any(), int64(2)).Return(&domain.Supplier{ID: 2, Name: "Sri Sand Suppliers"}, nil)
}

func echo(_ context.Context, tx *domain.SupplierTransaction) (*domain.SupplierTransaction, error) {
	created := *tx
	created.ID = 30
	return &created, nil
}

func TestRecordTransaction(t *testing.T) {
	tests := []struct {
		name           string
		input          domain.SupplierTransaction
		prepareMock    func(suppliers *MockSupplierRepo, tx *pg.MockTXManager)
		expectedErr    string
		is             error
		expectedAmount string
	}{
		{
			name:  "Supply is stored negative",
			input: domain.SupplierTransaction{SupplierID: 2, Type: domain.SupplierSupply, Amount: dec("1500"), Item: " sand "},
			prepareMock: func(suppliers *MockSupplierRepo, tx *pg.MockTXManager) {
				lockedWrite(suppliers, tx)
				suppliers.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(echo)
			},
			expectedAmount: "-1500",
		},
		{
			name:  "Payment is stored positive",
			input: domain.SupplierTransaction{SupplierID: 2, Type: domain.SupplierPayment, Amount: dec("1000"), Description: "cash"},
			prepareMock: func(suppliers *MockSupplierRepo, tx *pg.MockTXManager) {
				lockedWrite(suppliers, tx)
				suppliers.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(echo)
			},
			expectedAmount: "1000",
		},
		{
			name:  "Adjustment keeps its sign",
			input: domain.SupplierTransaction{SupplierID: 2, Type: domain.SupplierAdjustment, Amount: dec("-250"), Description: "short delivery"},
			prepareMock: func(suppliers *MockSupplierRepo, tx *pg.MockTXManager) {
				lockedWrite(suppliers, tx)
				suppliers.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(echo)
			},
			expectedAmount: "-250",
		},
		{
			name:        "Adjustment without description",
			input:       domain.SupplierTransaction{SupplierID: 2, Type: domain.SupplierAdjustment, Amount: dec("10")},
			prepareMock: func(*MockSupplierRepo, *pg.MockTXManager) {},
			is:          domain.ErrValidation,
			expectedErr: "invalid description: is required for adjustments",
		},
		{
			name:        "Unknown type",
			input:       domain.SupplierTransaction{SupplierID: 2, Type: "credit_note", Amount: dec("10")},
			prepareMock: func(*MockSupplierRepo, *pg.MockTXManager) {},
			is:          domain.ErrValidation,
			expectedErr: `invalid type: unknown supplier transaction type "credit_note"`,
		},
		{
			name:  "Unknown supplier",
			input: domain.SupplierTransaction{SupplierID: 2, Type: domain.SupplierPayment, Amount: dec("10")},
			prepareMock: func(suppliers *MockSupplierRepo, tx *pg.MockTXManager) {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				tx.EXPECT().Lock(gomock.Any(), "supplier:2").Return(nil)
				suppliers.EXPECT().GetSupplier(gomock.Any(), int64(2)).Return(nil, nil)
			},
			is:          domain.ErrNotFound,
			expectedErr: "supplier 2 not found",
		},
		{
			name:  "Insert failure",
			input: domain.SupplierTransaction{SupplierID: 2, Type: domain.SupplierPayment, Amount: dec("10")},
			prepareMock: func(suppliers *MockSupplierRepo, tx *pg.MockTXManager) {
				lockedWrite(suppliers, tx)
				suppliers.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, suppliers, tx := NewMock(t)
			tt.prepareMock(suppliers, tx)

			created, err := service.RecordTransaction(context.Background(), tt.input)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err.Error())
				if tt.is != nil {
					assert.ErrorIs(t, err, tt.is)
				}
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(30), created.ID)
			assert.Equal(t, tt.input.Type, created.Type)
			assert.Equal(t, tt.expectedAmount, created.Amount.String())
		})
	}
}

func TestAccount(t *testing.T) {
	service, suppliers, _ := NewMock(t)
	txs := []domain.SupplierTransaction{
		{ID: 1, SupplierID: 2, Type: domain.SupplierSupply, Amount: dec("-1500"), Item: "sand"},
		{ID: 2, SupplierID: 2, Type: domain.SupplierPayment, Amount: dec("1000")},
	}
	suppliers.EXPECT().GetSupplier(gomock.Any(), int64(2)).Return(&domain.Supplier{ID: 2, Name: "Sri Sand Suppliers"}, nil)
	suppliers.EXPECT().ListTransactions(gomock.Any(), int64(2)).Return(txs, nil)

	account, err := service.Account(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Sri Sand Suppliers", account.Supplier.Name)
	assert.Equal(t, "-500", account.WalletBalance.String())
	assert.Equal(t, txs, account.Transactions)

	suppliers.EXPECT().GetSupplier(gomock.Any(), int64(3)).Return(nil, nil)
	_, err = service.Account(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPendingByItem(t *testing.T) {
	service, suppliers, _ := NewMock(t)
	suppliers.EXPECT().GetSupplier(gomock.Any(), int64(2)).Return(&domain.Supplier{ID: 2}, nil)
	suppliers.EXPECT().ListTransactions(gomock.Any(), int64(2)).Return([]domain.SupplierTransaction{
		{Amount: dec("-1500"), Item: "sand"},
		{Amount: dec("-700"), Item: "gravel"},
		{Amount: dec("500"), Item: "sand"},
	}, nil)

	items, err := service.PendingByItem(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "gravel", items[0].Item)
	assert.Equal(t, "-700", items[0].Amount.String())
	assert.Equal(t, "sand", items[1].Item)
	assert.Equal(t, "-1000", items[1].Amount.String())
}
