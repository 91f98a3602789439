package employeeservice

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

func NewMock(t *testing.T) (*Service, *MockEmployeeRepo, *MockTripRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	employeeRepo := NewMockEmployeeRepo(ctrl)
	tripRepo := NewMockTripRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	return New(employeeRepo, tripRepo, txManager), employeeRepo, tripRepo, txManager
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAdjustWallet(t *testing.T) {
	tests := []struct {
		name            string
		kind            domain.EmployeeWalletType
		amount          decimal.Decimal
		prepareMock     func(employees *MockEmployeeRepo)
		expectedPending string
		expectedErr     string
		is              error
	}{
		{
			name:   "Accrual raises pending salary",
			kind:   domain.EmployeeSalaryAccrued,
			amount: dec("500"),
			prepareMock: func(employees *MockEmployeeRepo) {
				employees.EXPECT().UpdatePendingSalary(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ int64, pending decimal.Decimal) error {
						assert.Equal(t, "800", pending.String())
						return nil
					})
				employees.EXPECT().CreateWalletEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *domain.EmployeeWalletEntry) (*domain.EmployeeWalletEntry, error) {
						assert.Equal(t, domain.EmployeeSalaryAccrued, e.Type)
						assert.Equal(t, "500", e.Amount.String())
						assert.Equal(t, "march wages", e.Description)
						return e, nil
					})
			},
			expectedPending: "800",
		},
		{
			name:   "Deduction is audited negative",
			kind:   domain.EmployeeSalaryDeduct,
			amount: dec("300"),
			prepareMock: func(employees *MockEmployeeRepo) {
				employees.EXPECT().UpdatePendingSalary(gomock.Any(), int64(5), gomock.Any()).Return(nil)
				employees.EXPECT().CreateWalletEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *domain.EmployeeWalletEntry) (*domain.EmployeeWalletEntry, error) {
						assert.Equal(t, "-300", e.Amount.String())
						return e, nil
					})
			},
			expectedPending: "0",
		},
		{
			name:        "Pending salary never goes negative",
			kind:        domain.EmployeeAdjustment,
			amount:      dec("-301"),
			prepareMock: func(*MockEmployeeRepo) {},
			is:          domain.ErrConsistency,
			expectedErr: "employee 5 pending salary: Rs. 301.00 exceeds pending Rs. 300.00",
		},
		{
			name:        "Unknown entry type",
			kind:        "bonus",
			amount:      dec("10"),
			prepareMock: func(*MockEmployeeRepo) {},
			is:          domain.ErrValidation,
			expectedErr: `invalid type: unknown wallet entry type "bonus"`,
		},
		{
			name:   "Audit insert failure",
			kind:   domain.EmployeeAdjustment,
			amount: dec("50"),
			prepareMock: func(employees *MockEmployeeRepo) {
				employees.EXPECT().UpdatePendingSalary(gomock.Any(), int64(5), gomock.Any()).Return(nil)
				employees.EXPECT().CreateWalletEntry(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, employees, _, tx := NewMock(t)
			tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
				return fn(ctx)
			})
			tx.EXPECT().Lock(gomock.Any(), "employee:5").Return(nil)
			employees.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Employee{ID: 5, PendingSalary: dec("300")}, nil)
			tt.prepareMock(employees)

			employee, err := service.AdjustWallet(context.Background(), 5, tt.kind, tt.amount, "march wages")

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err.Error())
				if tt.is != nil {
					assert.ErrorIs(t, err, tt.is)
				}
				assert.Nil(t, employee)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPending, employee.PendingSalary.String())
		})
	}
}

func TestAdjustWallet_UnknownEmployee(t *testing.T) {
	service, employees, _, tx := NewMock(t)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
	tx.EXPECT().Lock(gomock.Any(), "employee:5").Return(nil)
	employees.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, nil)

	_, err := service.AdjustWallet(context.Background(), 5, domain.EmployeeAdjustment, dec("10"), "")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWallet(t *testing.T) {
	service, employees, trips, _ := NewMock(t)
	asOf := time.Date(2024, time.March, 5, 16, 20, 0, 0, time.UTC)
	employee := &domain.Employee{ID: 5, Name: "Ravi", PendingSalary: dec("300"), YesterdayBalance: dec("1")}
	entries := []domain.EmployeeWalletEntry{{ID: 1, EmployeeID: 5, Type: domain.EmployeeSalaryAccrued, Amount: dec("300")}}

	employees.EXPECT().GetByID(gomock.Any(), int64(5)).Return(employee, nil)
	trips.EXPECT().ListBefore(gomock.Any(), int64(5), time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)).
		Return([]domain.TripRecord{
			{ID: 1, Date: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), CashCollected: dec("900")},
			{ID: 2, Date: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), CashCollected: dec("400"), SalaryDeducted: dec("200")},
		}, nil)
	employees.EXPECT().ListWalletEntries(gomock.Any(), int64(5)).Return(entries, nil)

	wallet, err := service.Wallet(context.Background(), 5, asOf)

	require.NoError(t, err)
	assert.Equal(t, "Ravi", wallet.Employee.Name)
	assert.Equal(t, "1100", wallet.CarryForward.String())
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), wallet.AsOf)
	assert.Equal(t, entries, wallet.Entries)
}

func TestWallet_UnknownEmployee(t *testing.T) {
	service, employees, _, _ := NewMock(t)
	employees.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, nil)

	wallet, err := service.Wallet(context.Background(), 5, time.Now())

	assert.EqualError(t, err, "employee 5 not found")
	assert.Nil(t, wallet)
}
