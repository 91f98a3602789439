package tripservice

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
	employees *MockEmployeeRepo
	trips     *MockTripRepo
	customers *MockCustomerRepo
	suppliers *MockSupplierRepo
	tx        *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		employees: NewMockEmployeeRepo(ctrl),
		trips:     NewMockTripRepo(ctrl),
		customers: NewMockCustomerRepo(ctrl),
		suppliers: NewMockSupplierRepo(ctrl),
		tx:        pg.NewMockTXManager(ctrl),
	}
	return New(m.employees, m.trips, m.customers, m.suppliers, m.tx), m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func (m mocks) inTransaction() {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func sampleSheet() domain.TripSheet {
	customer := int64(8)
	return domain.TripSheet{
		EmployeeID: 1,
		SalaryMode: domain.SalaryDeductFromBalance,
		Rows: []domain.TripRow{{
			VehicleID:      4,
			CustomerID:     &customer,
			Date:           day(2),
			CashCollected:  dec("1000"),
			CreditExtended: dec("400"),
			SetCashTaken:   dec("500"),
			Supplies:       []domain.SupplyLine{{SupplierID: 9, Item: "sand", Amount: dec("250")}},
		}},
		Expenses: []domain.Expense{
			{Description: "diesel top-up", Amount: dec("150")},
			{Description: "driver", Amount: dec("300"), Kind: domain.ExpenseSalary},
		},
	}
}

func TestSaveTripSheet(t *testing.T) {
	service, m := NewMock(t)
	sheetID := uuid.New()
	service.newID = func() uuid.UUID { return sheetID }
	employee := &domain.Employee{ID: 1, Name: "Ravi", PendingSalary: dec("200")}
	history := []domain.TripRecord{{ID: 3, EmployeeID: 1, Date: day(1), CashCollected: dec("1300")}}

	m.inTransaction()
	gomock.InOrder(
		m.tx.EXPECT().Lock(gomock.Any(), "employee:1").Return(nil),
		m.tx.EXPECT().Lock(gomock.Any(), "customer:8").Return(nil),
		m.tx.EXPECT().Lock(gomock.Any(), "supplier:9").Return(nil),
	)
	m.employees.EXPECT().GetByID(gomock.Any(), int64(1)).Return(employee, nil)
	m.customers.EXPECT().GetCustomer(gomock.Any(), int64(8)).Return(&domain.Customer{ID: 8}, nil)
	m.suppliers.EXPECT().GetSupplier(gomock.Any(), int64(9)).Return(&domain.Supplier{ID: 9}, nil)
	m.trips.EXPECT().ListBefore(gomock.Any(), int64(1), day(3)).Return(history, nil)
	m.trips.EXPECT().CreateTrips(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []domain.TripRecord) ([]domain.TripRecord, error) {
			require.Len(t, records, 1)
			assert.Equal(t, sheetID, records[0].SheetID)
			assert.Equal(t, "1300", records[0].YesterdayBalance.String())
			assert.Equal(t, "500", records[0].SalaryDeducted.String())
			assert.Len(t, records[0].Expenses, 1)
			created := append([]domain.TripRecord(nil), records...)
			created[0].ID = 11
			return created, nil
		})
	m.suppliers.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *domain.SupplierTransaction) (*domain.SupplierTransaction, error) {
			assert.Equal(t, domain.SupplierSupply, tx.Type)
			assert.Equal(t, "-250", tx.Amount.String())
			assert.Equal(t, "trip 11 on 2024-03-02", tx.Description)
			return tx, nil
		})
	m.employees.EXPECT().UpdateBalances(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, pending, yesterday decimal.Decimal) error {
			assert.True(t, pending.IsZero())
			assert.Equal(t, "2150", yesterday.String())
			return nil
		})
	m.employees.EXPECT().CreateWalletEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.EmployeeWalletEntry) (*domain.EmployeeWalletEntry, error) {
			assert.Equal(t, domain.EmployeeSalaryDeduct, entry.Type)
			assert.Equal(t, "-200", entry.Amount.String())
			return entry, nil
		})

	summary, err := service.SaveTripSheet(context.Background(), sampleSheet())

	require.NoError(t, err)
	assert.Equal(t, sheetID, summary.SheetID)
	assert.Equal(t, "2800", summary.GrossFloat.String())
	assert.Equal(t, "2650", summary.NetOfExpenses.String())
	assert.Equal(t, "500", summary.SalaryDeducted.String())
	assert.Equal(t, "2150", summary.ClosingBalance.String())
	assert.Equal(t, "Rs. 500.00 deducted from balance (includes Rs. 200.00 pending)", summary.SalarySummary)
}

func TestSaveTripSheet_Errors(t *testing.T) {
	tests := []struct {
		name        string
		sheet       func() domain.TripSheet
		prepareMock func(m mocks)
		is          error
		expectedErr string
	}{
		{
			name: "Invalid row is rejected before the transaction",
			sheet: func() domain.TripSheet {
				s := sampleSheet()
				s.Rows[0].VehicleID = 0
				return s
			},
			prepareMock: func(mocks) {},
			is:          domain.ErrValidation,
			expectedErr: "invalid rows[0].vehicleId: is required",
		},
		{
			name:  "Unknown employee",
			sheet: sampleSheet,
			prepareMock: func(m mocks) {
				m.inTransaction()
				m.tx.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(nil).Times(3)
				m.employees.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)
			},
			is:          domain.ErrNotFound,
			expectedErr: "employee 1 not found",
		},
		{
			name:  "Unknown supplier",
			sheet: sampleSheet,
			prepareMock: func(m mocks) {
				m.inTransaction()
				m.tx.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(nil).Times(3)
				m.employees.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Employee{ID: 1}, nil)
				m.customers.EXPECT().GetCustomer(gomock.Any(), int64(8)).Return(&domain.Customer{ID: 8}, nil)
				m.suppliers.EXPECT().GetSupplier(gomock.Any(), int64(9)).Return(nil, nil)
			},
			is:          domain.ErrNotFound,
			expectedErr: "supplier 9 not found",
		},
		{
			name:  "Lock failure aborts",
			sheet: sampleSheet,
			prepareMock: func(m mocks) {
				m.inTransaction()
				m.tx.EXPECT().Lock(gomock.Any(), "employee:1").Return(errors.New("lock timeout"))
			},
			expectedErr: "lock timeout",
		},
		{
			name:  "Insert failure rolls the sheet back",
			sheet: sampleSheet,
			prepareMock: func(m mocks) {
				m.inTransaction()
				m.tx.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(nil).Times(3)
				m.employees.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Employee{ID: 1}, nil)
				m.customers.EXPECT().GetCustomer(gomock.Any(), int64(8)).Return(&domain.Customer{ID: 8}, nil)
				m.suppliers.EXPECT().GetSupplier(gomock.Any(), int64(9)).Return(&domain.Supplier{ID: 9}, nil)
				m.trips.EXPECT().ListBefore(gomock.Any(), int64(1), day(3)).Return(nil, nil)
				m.trips.EXPECT().CreateTrips(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			summary, err := service.SaveTripSheet(context.Background(), tt.sheet())

			assert.Nil(t, summary)
			require.Error(t, err)
			assert.Equal(t, tt.expectedErr, err.Error())
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestSaveTripSheet_LocksCreditedCustomersInOrder(t *testing.T) {
	service, m := NewMock(t)
	first, second, cashOnly := int64(12), int64(5), int64(7)
	sheet := domain.TripSheet{
		EmployeeID: 1,
		SalaryMode: domain.SalaryAccrueToPending,
		Rows: []domain.TripRow{
			{VehicleID: 4, Date: day(2), CustomerID: &first, CreditExtended: dec("300")},
			{VehicleID: 4, Date: day(2), CustomerID: &cashOnly, CashCollected: dec("900")},
			{VehicleID: 4, Date: day(2), CustomerID: &second, CreditExtended: dec("150")},
			{VehicleID: 4, Date: day(3), CustomerID: &first, CreditExtended: dec("50")},
		},
	}

	m.inTransaction()
	gomock.InOrder(
		m.tx.EXPECT().Lock(gomock.Any(), "employee:1").Return(nil),
		m.tx.EXPECT().Lock(gomock.Any(), "customer:5").Return(nil),
		m.tx.EXPECT().Lock(gomock.Any(), "customer:12").Return(nil),
	)
	m.employees.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

	summary, err := service.SaveTripSheet(context.Background(), sheet)

	assert.Nil(t, summary)
	assert.EqualError(t, err, "db error")
}

func TestCarryForward(t *testing.T) {
	service, m := NewMock(t)
	history := []domain.TripRecord{
		{ID: 1, Date: day(1), CashCollected: dec("1000"), SetCashTaken: dec("200")},
		{ID: 2, Date: day(2), CashCollected: dec("500"), Expenses: []domain.Expense{{Amount: dec("100")}}},
	}
	m.employees.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Employee{ID: 1}, nil)
	m.trips.EXPECT().ListBefore(gomock.Any(), int64(1), day(3)).Return(history, nil)

	balance, err := service.CarryForward(context.Background(), 1, day(3).Add(15*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, "1600", balance.String())

	m.employees.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)
	_, err = service.CarryForward(context.Background(), 2, day(3))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.CarryForward(context.Background(), 1, time.Time{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListTrips(t *testing.T) {
	service, m := NewMock(t)
	records := []domain.TripRecord{{ID: 1, Date: day(2)}}
	m.trips.EXPECT().ListBetween(gomock.Any(), int64(1), day(1), day(5)).Return(records, nil)

	result, err := service.ListTrips(context.Background(), 1, day(1), day(5))
	require.NoError(t, err)
	assert.Equal(t, records, result)

	_, err = service.ListTrips(context.Background(), 1, day(5), day(1))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
