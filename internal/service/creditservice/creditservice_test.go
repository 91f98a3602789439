package creditservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockCreditRepo, *MockTripRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	creditRepo := NewMockCreditRepo(ctrl)
	tripRepo := NewMockTripRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	return New(creditRepo, tripRepo, txManager), creditRepo, tripRepo, txManager
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func passThrough(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func existingAccount(credit *MockCreditRepo, trips *MockTripRepo) {
	credit.EXPECT().GetCustomer(gomock.Any(), int64(8)).Return(&domain.Customer{ID: 8, Name: "Lakshmi Builders"}, nil)
	trips.EXPECT().CreditTotal(gomock.Any(), int64(8)).Return(dec("10000"), nil)
	credit.EXPECT().TotalPaid(gomock.Any(), int64(8)).Return(dec("3000"), nil)
}

func TestRecordPayment(t *testing.T) {
	date := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		input           domain.CreditPaymentInput
		prepareMock     func(credit *MockCreditRepo, trips *MockTripRepo, tx *pg.MockTXManager)
		expectedErr     string
		is              error
		expectedWarning string
		expectedLeft    string
	}{
		{
			name:  "Payment matches the client's view",
			input: domain.CreditPaymentInput{CustomerID: 8, Amount: dec("2000"), Date: date, Method: "cash", OriginalCreditAmount: decPtr("7000"), CreatedBy: 99},
			prepareMock: func(credit *MockCreditRepo, trips *MockTripRepo, tx *pg.MockTXManager) {
				passThrough(tx)
				tx.EXPECT().Lock(gomock.Any(), "customer:8").Return(nil)
				existingAccount(credit, trips)
				credit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.CreditPayment) (*domain.CreditPayment, error) {
						assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), p.Date)
						assert.Equal(t, "7000", p.OriginalCreditAmount.String())
						assert.Equal(t, int64(99), p.CreatedBy)
						created := *p
						created.ID = 21
						return &created, nil
					})
			},
			expectedLeft: "5000",
		},
		{
			name:  "Stale client view warns",
			input: domain.CreditPaymentInput{CustomerID: 8, Amount: dec("2000"), Date: date, OriginalCreditAmount: decPtr("8000")},
			prepareMock: func(credit *MockCreditRepo, trips *MockTripRepo, tx *pg.MockTXManager) {
				passThrough(tx)
				tx.EXPECT().Lock(gomock.Any(), "customer:8").Return(nil)
				existingAccount(credit, trips)
				credit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.CreditPayment) (*domain.CreditPayment, error) {
						created := *p
						created.ID = 22
						return &created, nil
					})
			},
			expectedWarning: "original credit amount Rs. 8000.00 differs from current remaining credit Rs. 7000.00",
			expectedLeft:    "5000",
		},
		{
			name:  "Payment above remaining credit",
			input: domain.CreditPaymentInput{CustomerID: 8, Amount: dec("8000"), Date: date, OriginalCreditAmount: decPtr("7000")},
			prepareMock: func(credit *MockCreditRepo, trips *MockTripRepo, tx *pg.MockTXManager) {
				passThrough(tx)
				tx.EXPECT().Lock(gomock.Any(), "customer:8").Return(nil)
				existingAccount(credit, trips)
			},
			is:          domain.ErrConsistency,
			expectedErr: "customer 8 credit: overpayment of Rs. 1000.00 (payment Rs. 8000.00, outstanding Rs. 7000.00)",
		},
		{
			name:  "Original credit amount missing",
			input: domain.CreditPaymentInput{CustomerID: 8, Amount: dec("100"), Date: date},
			prepareMock: func(credit *MockCreditRepo, trips *MockTripRepo, tx *pg.MockTXManager) {
				passThrough(tx)
				tx.EXPECT().Lock(gomock.Any(), "customer:8").Return(nil)
				existingAccount(credit, trips)
			},
			is:          domain.ErrValidation,
			expectedErr: "invalid originalCreditAmount: is required",
		},
		{
			name:  "Unknown customer",
			input: domain.CreditPaymentInput{CustomerID: 8, Amount: dec("100"), Date: date, OriginalCreditAmount: decPtr("100")},
			prepareMock: func(credit *MockCreditRepo, trips *MockTripRepo, tx *pg.MockTXManager) {
				passThrough(tx)
				tx.EXPECT().Lock(gomock.Any(), "customer:8").Return(nil)
				credit.EXPECT().GetCustomer(gomock.Any(), int64(8)).Return(nil, nil)
			},
			is:          domain.ErrNotFound,
			expectedErr: "customer 8 not found",
		},
		{
			name:        "Customer missing from input",
			input:       domain.CreditPaymentInput{Amount: dec("100")},
			prepareMock: func(*MockCreditRepo, *MockTripRepo, *pg.MockTXManager) {},
			is:          domain.ErrValidation,
			expectedErr: "invalid customerId: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, credit, trips, tx := NewMock(t)
			tt.prepareMock(credit, trips, tx)

			result, err := service.RecordPayment(context.Background(), tt.input)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err.Error())
				assert.ErrorIs(t, err, tt.is)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedWarning, result.Warning)
			assert.Equal(t, tt.expectedLeft, result.Account.RemainingCredit.String())
			assert.Equal(t, "5000", result.Account.TotalPaid.String())
		})
	}
}

func TestRecordPayment_DefaultsDateToToday(t *testing.T) {
	service, credit, trips, tx := NewMock(t)
	service.now = func() time.Time { return time.Date(2024, time.April, 1, 18, 45, 0, 0, time.UTC) }

	passThrough(tx)
	tx.EXPECT().Lock(gomock.Any(), "customer:8").Return(nil)
	existingAccount(credit, trips)
	credit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.CreditPayment) (*domain.CreditPayment, error) {
			assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), p.Date)
			return p, nil
		})

	_, err := service.RecordPayment(context.Background(), domain.CreditPaymentInput{
		CustomerID: 8, Amount: dec("100"), OriginalCreditAmount: decPtr("7000"),
	})
	require.NoError(t, err)
}

func TestDeletePayment(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(credit *MockCreditRepo, trips *MockTripRepo, tx *pg.MockTXManager)
		expectedErr string
	}{
		{
			name: "Payment deleted",
			prepareMock: func(credit *MockCreditRepo, trips *MockTripRepo, tx *pg.MockTXManager) {
				passThrough(tx)
				credit.EXPECT().GetByID(gomock.Any(), int64(21)).Return(&domain.CreditPayment{ID: 21, CustomerID: 8, Amount: dec("1000")}, nil)
				tx.EXPECT().Lock(gomock.Any(), "customer:8").Return(nil)
				credit.EXPECT().Delete(gomock.Any(), int64(21)).Return(nil)
				trips.EXPECT().CreditTotal(gomock.Any(), int64(8)).Return(dec("10000"), nil)
				credit.EXPECT().TotalPaid(gomock.Any(), int64(8)).Return(dec("2000"), nil)
			},
		},
		{
			name: "Payment not found",
			prepareMock: func(credit *MockCreditRepo, trips *MockTripRepo, tx *pg.MockTXManager) {
				passThrough(tx)
				credit.EXPECT().GetByID(gomock.Any(), int64(21)).Return(nil, nil)
			},
			expectedErr: "credit payment 21 not found",
		},
		{
			name: "Deleted meanwhile by another operator",
			prepareMock: func(credit *MockCreditRepo, trips *MockTripRepo, tx *pg.MockTXManager) {
				passThrough(tx)
				credit.EXPECT().GetByID(gomock.Any(), int64(21)).Return(&domain.CreditPayment{ID: 21, CustomerID: 8}, nil)
				tx.EXPECT().Lock(gomock.Any(), "customer:8").Return(nil)
				credit.EXPECT().Delete(gomock.Any(), int64(21)).Return(domain.NewNotFoundError("credit payment", int64(21)))
			},
			expectedErr: "credit payment 21 not found",
		},
		{
			name: "Delete fails",
			prepareMock: func(credit *MockCreditRepo, trips *MockTripRepo, tx *pg.MockTXManager) {
				passThrough(tx)
				credit.EXPECT().GetByID(gomock.Any(), int64(21)).Return(&domain.CreditPayment{ID: 21, CustomerID: 8}, nil)
				tx.EXPECT().Lock(gomock.Any(), "customer:8").Return(nil)
				credit.EXPECT().Delete(gomock.Any(), int64(21)).Return(errors.New("db error"))
			},
			expectedErr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, credit, trips, tx := NewMock(t)
			tt.prepareMock(credit, trips, tx)

			account, err := service.DeletePayment(context.Background(), 21)

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(8), account.CustomerID)
			assert.Equal(t, "8000", account.RemainingCredit.String())
		})
	}
}

func TestAccount(t *testing.T) {
	service, credit, trips, _ := NewMock(t)
	existingAccount(credit, trips)

	account, err := service.Account(context.Background(), 8)

	require.NoError(t, err)
	assert.Equal(t, "10000", account.TotalCredit.String())
	assert.Equal(t, "3000", account.TotalPaid.String())
	assert.Equal(t, "7000", account.RemainingCredit.String())

	credit.EXPECT().GetCustomer(gomock.Any(), int64(9)).Return(nil, nil)
	_, err = service.Account(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPayments(t *testing.T) {
	service, credit, _, _ := NewMock(t)
	payments := []domain.CreditPayment{{ID: 21, CustomerID: 8, Amount: dec("1000")}}
	credit.EXPECT().GetCustomer(gomock.Any(), int64(8)).Return(&domain.Customer{ID: 8}, nil)
	credit.EXPECT().ListByCustomer(gomock.Any(), int64(8)).Return(payments, nil)

	result, err := service.ListPayments(context.Background(), 8)

	require.NoError(t, err)
	assert.Equal(t, payments, result)
}
