package shedwalletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

type mocks struct {
	fuel      *MockFuelRepo
	trips     *MockTripRepo
	employees *MockEmployeeRepo
	wallet    *MockWalletRepo
	tx        *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		fuel:      NewMockFuelRepo(ctrl),
		trips:     NewMockTripRepo(ctrl),
		employees: NewMockEmployeeRepo(ctrl),
		wallet:    NewMockWalletRepo(ctrl),
		tx:        pg.NewMockTXManager(ctrl),
	}
	return New(m.fuel, m.trips, m.employees, m.wallet, m.tx), m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func (m mocks) walletTransaction() {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
	m.tx.EXPECT().Lock(gomock.Any(), pg.ShedWalletLock).Return(nil)
}

func (m mocks) echoCreate() {
	m.wallet.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *domain.ShedWalletTransaction) (*domain.ShedWalletTransaction, error) {
			return tx, nil
		})
}

func paidEquals(t *testing.T, expected string) func(context.Context, int64, decimal.Decimal) error {
	return func(_ context.Context, _ int64, overallPaid decimal.Decimal) error {
		assert.Equal(t, expected, overallPaid.String())
		return nil
	}
}

var (
	fuelA   = domain.FuelPurchase{ID: 1, EmployeeID: 1, Date: day(1), TotalCost: dec("1000"), PaidByEmployee: decimal.Zero, OverallPaid: decimal.Zero}
	fuelB   = domain.FuelPurchase{ID: 2, EmployeeID: 2, Date: day(3), TotalCost: dec("500"), PaidByEmployee: decimal.Zero, OverallPaid: decimal.Zero}
	advance = domain.SetCashAdvance{TripID: 5, EmployeeID: 1, VehicleID: 4, Date: day(2), Taken: dec("800"), PaidBack: dec("300")}
)

func TestPendingDetails(t *testing.T) {
	service, m := NewMock(t)
	m.fuel.EXPECT().ListPending(gomock.Any()).Return([]domain.FuelPurchase{fuelA, fuelB}, nil)
	m.trips.EXPECT().ListOutstandingSetCash(gomock.Any()).Return([]domain.SetCashAdvance{advance}, nil)
	m.employees.EXPECT().ListNames(gomock.Any()).Return(map[int64]string{1: "Ravi", 2: "Suresh"}, nil)

	details, err := service.PendingDetails(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1500", details.TotalPendingFuel.String())
	assert.Equal(t, "500", details.TotalSetCashTaken.String())
	assert.Equal(t, "2000", details.TotalPendingAmount.String())
	require.Len(t, details.PendingByEmployee, 2)
	assert.Equal(t, "Ravi", details.PendingByEmployee[0].EmployeeName)
	assert.Equal(t, "1500", details.PendingByEmployee[0].Total.String())
}

func TestPendingDetails_Error(t *testing.T) {
	service, m := NewMock(t)
	m.fuel.EXPECT().ListPending(gomock.Any()).Return(nil, errors.New("db error"))
	m.trips.EXPECT().ListOutstandingSetCash(gomock.Any()).Return(nil, nil).AnyTimes()
	m.employees.EXPECT().ListNames(gomock.Any()).Return(nil, nil).AnyTimes()

	details, err := service.PendingDetails(context.Background())

	assert.EqualError(t, err, "db error")
	assert.Nil(t, details)
}

func TestRecordTransaction_Settlement(t *testing.T) {
	service, m := NewMock(t)
	id := uuid.New()
	service.newID = func() uuid.UUID { return id }

	m.walletTransaction()
	m.fuel.EXPECT().LockPending(gomock.Any(), gomock.Nil()).Return([]domain.FuelPurchase{fuelB, fuelA}, nil)
	m.trips.EXPECT().LockOutstandingSetCash(gomock.Any()).Return([]domain.SetCashAdvance{advance}, nil)
	gomock.InOrder(
		m.fuel.EXPECT().UpdateOverallPaid(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(paidEquals(t, "1000")),
		m.fuel.EXPECT().UpdateOverallPaid(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(paidEquals(t, "500")),
	)
	m.trips.EXPECT().UpdateSetCashPaidBack(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, paidBack decimal.Decimal) error {
			assert.Equal(t, "600", paidBack.String())
			return nil
		})
	m.echoCreate()

	created, err := service.RecordTransaction(context.Background(), domain.WalletTransactionInput{
		Type: domain.WalletPaymentSent, Amount: dec("1800"), Description: "weekly settlement",
		PaymentMethod: "bank", SettleAggregate: true, CreatedBy: 99,
	})

	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, domain.WalletTxCompleted, created.Status)
	require.Len(t, created.Allocations, 3)
	assert.Equal(t, domain.AllocationFuelPurchase, created.Allocations[0].Kind)
	assert.Equal(t, int64(1), created.Allocations[0].RecordID)
	assert.Equal(t, int64(2), created.Allocations[1].RecordID)
	assert.Equal(t, domain.AllocationSetCash, created.Allocations[2].Kind)
	assert.Equal(t, "300", created.Allocations[2].Amount.String())
	assert.Equal(t, "200", created.Allocations[2].RemainingAfter.String())
}

func TestRecordTransaction_RestrictedToFuelLogs(t *testing.T) {
	service, m := NewMock(t)

	m.walletTransaction()
	m.fuel.EXPECT().LockPending(gomock.Any(), []int64{2}).Return([]domain.FuelPurchase{fuelB}, nil)
	m.fuel.EXPECT().UpdateOverallPaid(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(paidEquals(t, "200"))
	m.echoCreate()

	created, err := service.RecordTransaction(context.Background(), domain.WalletTransactionInput{
		Type: domain.WalletPaymentSent, Amount: dec("200"), FuelLogIDs: []int64{2}, CreatedBy: 99,
	})

	require.NoError(t, err)
	require.Len(t, created.Allocations, 1)
	assert.Equal(t, "300", created.Allocations[0].RemainingAfter.String())
}

func TestRecordTransaction_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       domain.WalletTransactionInput
		prepareMock func(m mocks)
		is          error
		expectedErr string
	}{
		{
			name:        "Unknown type",
			input:       domain.WalletTransactionInput{Type: "bonus", Amount: dec("10")},
			prepareMock: func(mocks) {},
			is:          domain.ErrValidation,
			expectedErr: `invalid type: unknown transaction type "bonus"`,
		},
		{
			name:        "Zero amount",
			input:       domain.WalletTransactionInput{Type: domain.WalletRefund, Amount: decimal.Zero},
			prepareMock: func(mocks) {},
			is:          domain.ErrValidation,
			expectedErr: "invalid amount: must be greater than zero",
		},
		{
			name:        "Half paisa settlement touches nothing",
			input:       domain.WalletTransactionInput{Type: domain.WalletPaymentSent, Amount: dec("50.005"), SettleAggregate: true},
			prepareMock: func(mocks) {},
			is:          domain.ErrValidation,
			expectedErr: "invalid amount: must not have more than 2 decimal places",
		},
		{
			name:        "Settlement on a non payment type",
			input:       domain.WalletTransactionInput{Type: domain.WalletRefund, Amount: dec("10"), SettleAggregate: true},
			prepareMock: func(mocks) {},
			is:          domain.ErrValidation,
			expectedErr: "invalid settleAggregate: only payment_sent transactions settle debts",
		},
		{
			name:  "Overpayment applies nothing",
			input: domain.WalletTransactionInput{Type: domain.WalletPaymentSent, Amount: dec("2500"), SettleAggregate: true},
			prepareMock: func(m mocks) {
				m.walletTransaction()
				m.fuel.EXPECT().LockPending(gomock.Any(), gomock.Nil()).Return([]domain.FuelPurchase{fuelA, fuelB}, nil)
				m.trips.EXPECT().LockOutstandingSetCash(gomock.Any()).Return([]domain.SetCashAdvance{advance}, nil)
			},
			is:          domain.ErrConsistency,
			expectedErr: "shed wallet: overpayment of Rs. 500.00 (payment Rs. 2500.00, outstanding Rs. 2000.00)",
		},
		{
			name:  "Fuel log that is not pending",
			input: domain.WalletTransactionInput{Type: domain.WalletPaymentSent, Amount: dec("100"), FuelLogIDs: []int64{2, 3}},
			prepareMock: func(m mocks) {
				m.walletTransaction()
				m.fuel.EXPECT().LockPending(gomock.Any(), []int64{2, 3}).Return([]domain.FuelPurchase{fuelB}, nil)
			},
			is:          domain.ErrNotFound,
			expectedErr: "pending fuel purchase 3 not found",
		},
		{
			name:  "Wallet insert failure",
			input: domain.WalletTransactionInput{Type: domain.WalletRefund, Amount: dec("100")},
			prepareMock: func(m mocks) {
				m.walletTransaction()
				m.wallet.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			created, err := service.RecordTransaction(context.Background(), tt.input)

			assert.Nil(t, created)
			require.Error(t, err)
			assert.Equal(t, tt.expectedErr, err.Error())
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestRecordTransaction_AppendOnly(t *testing.T) {
	service, m := NewMock(t)
	m.walletTransaction()
	m.echoCreate()

	created, err := service.RecordTransaction(context.Background(), domain.WalletTransactionInput{
		Type: domain.WalletPaymentReceived, Amount: dec("750"), Description: "customer cash", CreatedBy: 99,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.WalletPaymentReceived, created.Type)
	assert.Empty(t, created.Allocations)
	assert.Equal(t, int64(99), created.CreatedBy)
}

func TestListTransactions(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "Default limit", limit: 0, expected: DefaultListLimit},
		{name: "Requested limit", limit: 20, expected: 20},
		{name: "Capped limit", limit: 10000, expected: MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.wallet.EXPECT().List(gomock.Any(), tt.expected).Return([]domain.ShedWalletTransaction{}, nil)

			txs, err := service.ListTransactions(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Empty(t, txs)
		})
	}
}
