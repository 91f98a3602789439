package creditrepo

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

func (r *Repository) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `
        SELECT id, name
        FROM customers
        WHERE id = $1
    `
	var customer domain.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(&customer.ID, &customer.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get customer", zap.Int64("customer_id", id), zap.Error(err))
		return nil, err
	}
	return &customer, nil
}

func (r *Repository) TotalPaid(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM credit_payments
        WHERE customer_id = $1
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, customerID).Scan(&total); err != nil {
		zap.L().Error("can't sum credit payments", zap.Int64("customer_id", customerID), zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.CreditPayment) (*domain.CreditPayment, error) {
	query := `
        INSERT INTO credit_payments (customer_id, amount, payment_date, method, reference, notes, original_credit_amount, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	created := *p
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, p.CustomerID, p.Amount, p.Date, p.Method, p.Reference, p.Notes,
			p.OriginalCreditAmount, p.CreatedBy)
		if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
			zap.L().Error("can't create credit payment", zap.Int64("customer_id", p.CustomerID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const paymentColumns = `id, customer_id, amount, payment_date, method, reference, notes, original_credit_amount, created_by, created_at`

func scanPayment(row pgx.Row, p *domain.CreditPayment) error {
	return row.Scan(&p.ID, &p.CustomerID, &p.Amount, &p.Date, &p.Method, &p.Reference, &p.Notes,
		&p.OriginalCreditAmount, &p.CreatedBy, &p.CreatedAt)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CreditPayment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM credit_payments
        WHERE id = $1
    `
	var p domain.CreditPayment
	err := scanPayment(r.db.QueryRow(ctx, query, id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get credit payment", zap.Int64("payment_id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
        DELETE FROM credit_payments
        WHERE id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("can't delete credit payment", zap.Int64("payment_id", id), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.NewNotFoundError("credit payment", id)
		}
		return nil
	})
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.CreditPayment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM credit_payments
        WHERE customer_id = $1
        ORDER BY payment_date DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		zap.L().Error("can't list credit payments", zap.Int64("customer_id", customerID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.CreditPayment
	for rows.Next() {
		var p domain.CreditPayment
		if err := scanPayment(rows, &p); err != nil {
			zap.L().Error("can't scan credit payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
