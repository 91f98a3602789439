package triprepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

const tripColumns = `id, sheet_id, employee_id, vehicle_id, customer_id, trip_date, cash_collected, credit_extended,
        set_cash_taken, set_cash_paid_back, yesterday_balance, expenses, salary_deducted, supplies, created_at`

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

func scanTrip(row pgx.Row, t *domain.TripRecord) error {
	return row.Scan(&t.ID, &t.SheetID, &t.EmployeeID, &t.VehicleID, &t.CustomerID, &t.Date,
		&t.CashCollected, &t.CreditExtended, &t.SetCashTaken, &t.SetCashPaidBack, &t.YesterdayBalance,
		&t.Expenses, &t.SalaryDeducted, &t.Supplies, &t.CreatedAt)
}

func (r *Repository) listTrips(ctx context.Context, query string, args ...any) ([]domain.TripRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list trips", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var trips []domain.TripRecord
	for rows.Next() {
		var trip domain.TripRecord
		if err := scanTrip(rows, &trip); err != nil {
			zap.L().Error("can't scan trip row", zap.Error(err))
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}

// ListBefore returns the employee's trips dated strictly before the given day, oldest first.
func (r *Repository) ListBefore(ctx context.Context, employeeID int64, before time.Time) ([]domain.TripRecord, error) {
	query := `
        SELECT ` + tripColumns + `
        FROM trip_records
        WHERE employee_id = $1 AND trip_date < $2
        ORDER BY trip_date, id
    `
	return r.listTrips(ctx, query, employeeID, before)
}

func (r *Repository) ListBetween(ctx context.Context, employeeID int64, from, to time.Time) ([]domain.TripRecord, error) {
	query := `
        SELECT ` + tripColumns + `
        FROM trip_records
        WHERE employee_id = $1 AND trip_date >= $2 AND trip_date <= $3
        ORDER BY trip_date, id
    `
	return r.listTrips(ctx, query, employeeID, from, to)
}

// CreateTrips inserts the records of one sheet together.
func (r *Repository) CreateTrips(ctx context.Context, records []domain.TripRecord) ([]domain.TripRecord, error) {
	query := `
        INSERT INTO trip_records (sheet_id, employee_id, vehicle_id, customer_id, trip_date, cash_collected,
            credit_extended, set_cash_taken, set_cash_paid_back, yesterday_balance, expenses, salary_deducted, supplies)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, created_at
    `
	created := make([]domain.TripRecord, len(records))
	copy(created, records)
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for i := range created {
			t := &created[i]
			if t.Expenses == nil {
				t.Expenses = []domain.Expense{}
			}
			if t.Supplies == nil {
				t.Supplies = []domain.SupplyLine{}
			}
			row := r.db.QueryRow(ctx, query, t.SheetID, t.EmployeeID, t.VehicleID, t.CustomerID, t.Date,
				t.CashCollected, t.CreditExtended, t.SetCashTaken, t.SetCashPaidBack, t.YesterdayBalance,
				t.Expenses, t.SalaryDeducted, t.Supplies)
			if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
				zap.L().Error("can't insert trip", zap.Int("row", i), zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) listSetCash(ctx context.Context, query string) ([]domain.SetCashAdvance, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list set cash advances", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var advances []domain.SetCashAdvance
	for rows.Next() {
		var a domain.SetCashAdvance
		if err := rows.Scan(&a.TripID, &a.EmployeeID, &a.VehicleID, &a.Date, &a.Taken, &a.PaidBack); err != nil {
			zap.L().Error("can't scan set cash row", zap.Error(err))
			return nil, err
		}
		advances = append(advances, a)
	}
	return advances, rows.Err()
}

const outstandingSetCash = `
        SELECT id, employee_id, vehicle_id, trip_date, set_cash_taken, set_cash_paid_back
        FROM trip_records
        WHERE set_cash_taken > set_cash_paid_back
        ORDER BY trip_date, id
    `

func (r *Repository) ListOutstandingSetCash(ctx context.Context) ([]domain.SetCashAdvance, error) {
	return r.listSetCash(ctx, outstandingSetCash)
}

// LockOutstandingSetCash reads the same rows FOR UPDATE, it must run inside a transaction.
func (r *Repository) LockOutstandingSetCash(ctx context.Context) ([]domain.SetCashAdvance, error) {
	return r.listSetCash(ctx, outstandingSetCash+` FOR UPDATE`)
}

func (r *Repository) UpdateSetCashPaidBack(ctx context.Context, tripID int64, paidBack decimal.Decimal) error {
	query := `
        UPDATE trip_records
        SET set_cash_paid_back = $1
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, paidBack, tripID); err != nil {
			zap.L().Error("can't update set cash paid back", zap.Int64("trip_id", tripID), zap.Error(err))
			return err
		}
		return nil
	})
}

// CreditTotal sums the credit extended to a customer over all trips.
func (r *Repository) CreditTotal(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(credit_extended), 0)
        FROM trip_records
        WHERE customer_id = $1
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, customerID).Scan(&total); err != nil {
		zap.L().Error("can't sum customer credit", zap.Int64("customer_id", customerID), zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}
