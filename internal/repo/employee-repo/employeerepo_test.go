package employeerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func passThrough(mock pgxmock.PgxPoolIface, tx *pg.MockTXManager, expect func()) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		expect()
		return fn(ctx)
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, name, pending_salary, yesterday_balance FROM employees WHERE id = $1`)
	pending, balance := decimal.RequireFromString("250"), decimal.RequireFromString("1300")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Employee
	}{
		{
			name: "Employee found",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "name", "pending_salary", "yesterday_balance"}).
						AddRow(int64(1), "Ravi", pending, balance))
			},
			result: &domain.Employee{ID: 1, Name: "Ravi", PendingSalary: pending, YesterdayBalance: balance},
		},
		{
			name: "Employee not found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListNames(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM employees`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Ravi").
			AddRow(int64(2), "Suresh"))

	names, err := repo.ListNames(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "Ravi", 2: "Suresh"}, names)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM employees`)).
		WillReturnError(errors.New("database error"))
	names, err = repo.ListNames(context.Background())
	assert.Error(t, err)
	assert.Nil(t, names)
}

func TestRepository_UpdateBalances(t *testing.T) {
	repo, mock, tx := NewMock(t)
	pending, balance := decimal.RequireFromString("0"), decimal.RequireFromString("1850")
	query := regexp.QuoteMeta(`UPDATE employees SET pending_salary = $1, yesterday_balance = $2 WHERE id = $3`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Balances updated",
			mockSetup: func() {
				passThrough(mock, tx, func() {
					mock.ExpectExec(query).
						WithArgs(pending, balance, int64(4)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				passThrough(mock, tx, func() {
					mock.ExpectExec(query).
						WithArgs(pending, balance, int64(4)).
						WillReturnError(errors.New("database error"))
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateBalances(context.Background(), 4, pending, balance)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_UpdatePendingSalary(t *testing.T) {
	repo, mock, tx := NewMock(t)
	pending := decimal.RequireFromString("600")

	passThrough(mock, tx, func() {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE employees SET pending_salary = $1 WHERE id = $2`)).
			WithArgs(pending, int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	})

	assert.NoError(t, repo.UpdatePendingSalary(context.Background(), 4, pending))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateWalletEntry(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()
	amount := decimal.RequireFromString("-150")
	entry := &domain.EmployeeWalletEntry{
		EmployeeID:  4,
		Type:        domain.EmployeeAdjustment,
		Amount:      amount,
		Description: "advance returned",
	}
	query := regexp.QuoteMeta(`INSERT INTO employee_wallet_entries (employee_id, type, amount, description)`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.EmployeeWalletEntry
	}{
		{
			name: "Entry created",
			mockSetup: func() {
				passThrough(mock, tx, func() {
					mock.ExpectQuery(query).
						WithArgs(int64(4), domain.EmployeeAdjustment, amount, "advance returned").
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(12), now))
				})
			},
			result: &domain.EmployeeWalletEntry{
				ID:          12,
				EmployeeID:  4,
				Type:        domain.EmployeeAdjustment,
				Amount:      amount,
				Description: "advance returned",
				CreatedAt:   now,
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				passThrough(mock, tx, func() {
					mock.ExpectQuery(query).
						WithArgs(int64(4), domain.EmployeeAdjustment, amount, "advance returned").
						WillReturnError(errors.New("database error"))
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateWalletEntry(context.Background(), entry)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListWalletEntries(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	amount := decimal.RequireFromString("400")
	query := regexp.QuoteMeta(`SELECT id, employee_id, type, amount, description, created_at FROM employee_wallet_entries WHERE employee_id = $1`)

	mock.ExpectQuery(query).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "type", "amount", "description", "created_at"}).
			AddRow(int64(3), int64(4), domain.EmployeeSalaryAccrued, amount, "Rs. 400.00 added to pending salary", now))

	entries, err := repo.ListWalletEntries(context.Background(), 4)

	assert.NoError(t, err)
	assert.Equal(t, []domain.EmployeeWalletEntry{{
		ID: 3, EmployeeID: 4, Type: domain.EmployeeSalaryAccrued, Amount: amount,
		Description: "Rs. 400.00 added to pending salary", CreatedAt: now,
	}}, entries)

	mock.ExpectQuery(query).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "type", "amount", "description", "created_at"}).
			AddRow("bad", int64(4), domain.EmployeeSalaryAccrued, amount, "", now))
	entries, err = repo.ListWalletEntries(context.Background(), 4)
	assert.Error(t, err)
	assert.Nil(t, entries)
}
