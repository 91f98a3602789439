package employeerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := `
        SELECT id, name, pending_salary, yesterday_balance
        FROM employees
        WHERE id = $1
    `
	var employee domain.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(&employee.ID, &employee.Name, &employee.PendingSalary, &employee.YesterdayBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get employee", zap.Int64("employee_id", id), zap.Error(err))
		return nil, err
	}
	return &employee, nil
}

func (r *Repository) ListNames(ctx context.Context) (map[int64]string, error) {
	query := `
        SELECT id, name
        FROM employees
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list employees", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			zap.L().Error("can't scan employee row", zap.Error(err))
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

// UpdateBalances stores the pending salary and the cached carry-forward.
func (r *Repository) UpdateBalances(ctx context.Context, id int64, pendingSalary, yesterdayBalance decimal.Decimal) error {
	query := `
        UPDATE employees
        SET pending_salary = $1, yesterday_balance = $2
        WHERE id = $3
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, pendingSalary, yesterdayBalance, id); err != nil {
			zap.L().Error("can't update employee balances", zap.Int64("employee_id", id), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) UpdatePendingSalary(ctx context.Context, id int64, pendingSalary decimal.Decimal) error {
	query := `
        UPDATE employees
        SET pending_salary = $1
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, pendingSalary, id); err != nil {
			zap.L().Error("can't update pending salary", zap.Int64("employee_id", id), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) CreateWalletEntry(ctx context.Context, entry *domain.EmployeeWalletEntry) (*domain.EmployeeWalletEntry, error) {
	query := `
        INSERT INTO employee_wallet_entries (employee_id, type, amount, description)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	created := *entry
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, entry.EmployeeID, entry.Type, entry.Amount, entry.Description)
		if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
			zap.L().Error("can't create wallet entry", zap.Int64("employee_id", entry.EmployeeID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repository) ListWalletEntries(ctx context.Context, employeeID int64) ([]domain.EmployeeWalletEntry, error) {
	query := `
        SELECT id, employee_id, type, amount, description, created_at
        FROM employee_wallet_entries
        WHERE employee_id = $1
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		zap.L().Error("can't list wallet entries", zap.Int64("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.EmployeeWalletEntry
	for rows.Next() {
		var e domain.EmployeeWalletEntry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Type, &e.Amount, &e.Description, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan wallet entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
