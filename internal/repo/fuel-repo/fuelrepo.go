package fuelrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

const fuelColumns = `id, vehicle_id, employee_id, purchase_date, fuel_amount, total_cost, paid_by_employee, overall_paid, created_at`

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

func scanPurchase(row pgx.Row, p *domain.FuelPurchase) error {
	return row.Scan(&p.ID, &p.VehicleID, &p.EmployeeID, &p.Date, &p.FuelAmount, &p.TotalCost,
		&p.PaidByEmployee, &p.OverallPaid, &p.CreatedAt)
}

func (r *Repository) Create(ctx context.Context, p *domain.FuelPurchase) (*domain.FuelPurchase, error) {
	query := `
        INSERT INTO fuel_purchases (vehicle_id, employee_id, purchase_date, fuel_amount, total_cost, paid_by_employee, overall_paid)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	created := *p
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, p.VehicleID, p.EmployeeID, p.Date, p.FuelAmount, p.TotalCost, p.PaidByEmployee, p.OverallPaid)
		if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
			zap.L().Error("can't create fuel purchase", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.FuelPurchase, error) {
	query := `
        SELECT ` + fuelColumns + `
        FROM fuel_purchases
        WHERE id = $1
    `
	var p domain.FuelPurchase
	err := scanPurchase(r.db.QueryRow(ctx, query, id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get fuel purchase", zap.Int64("fuel_purchase_id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) UpdateOverallPaid(ctx context.Context, id int64, overallPaid decimal.Decimal) error {
	query := `
        UPDATE fuel_purchases
        SET overall_paid = $1
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, overallPaid, id); err != nil {
			zap.L().Error("can't update fuel purchase", zap.Int64("fuel_purchase_id", id), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) listPurchases(ctx context.Context, query string, args ...any) ([]domain.FuelPurchase, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list fuel purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.FuelPurchase
	for rows.Next() {
		var p domain.FuelPurchase
		if err := scanPurchase(rows, &p); err != nil {
			zap.L().Error("can't scan fuel purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

// ListPending returns purchases with a positive remaining, oldest first.
func (r *Repository) ListPending(ctx context.Context) ([]domain.FuelPurchase, error) {
	query := `
        SELECT ` + fuelColumns + `
        FROM fuel_purchases
        WHERE total_cost - paid_by_employee - overall_paid > 0
        ORDER BY purchase_date, id
    `
	return r.listPurchases(ctx, query)
}

// LockPending reads pending purchases FOR UPDATE. An empty ids selects all of them.
func (r *Repository) LockPending(ctx context.Context, ids []int64) ([]domain.FuelPurchase, error) {
	if len(ids) == 0 {
		query := `
        SELECT ` + fuelColumns + `
        FROM fuel_purchases
        WHERE total_cost - paid_by_employee - overall_paid > 0
        ORDER BY purchase_date, id
        FOR UPDATE
    `
		return r.listPurchases(ctx, query)
	}
	query := `
        SELECT ` + fuelColumns + `
        FROM fuel_purchases
        WHERE total_cost - paid_by_employee - overall_paid > 0 AND id = ANY($1)
        ORDER BY purchase_date, id
        FOR UPDATE
    `
	return r.listPurchases(ctx, query, ids)
}
