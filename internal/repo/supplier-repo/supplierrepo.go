package supplierrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	query := `
        SELECT id, name
        FROM suppliers
        WHERE id = $1
    `
	var supplier domain.Supplier
	err := r.db.QueryRow(ctx, query, id).Scan(&supplier.ID, &supplier.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get supplier", zap.Int64("supplier_id", id), zap.Error(err))
		return nil, err
	}
	return &supplier, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.SupplierTransaction) (*domain.SupplierTransaction, error) {
	query := `
        INSERT INTO supplier_transactions (supplier_id, type, amount, item, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	created := *tx
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, tx.SupplierID, tx.Type, tx.Amount, tx.Item, tx.Description)
		if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
			zap.L().Error("can't create supplier transaction", zap.Int64("supplier_id", tx.SupplierID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListTransactions returns a supplier's history, oldest first.
func (r *Repository) ListTransactions(ctx context.Context, supplierID int64) ([]domain.SupplierTransaction, error) {
	query := `
        SELECT id, supplier_id, type, amount, item, description, created_at
        FROM supplier_transactions
        WHERE supplier_id = $1
        ORDER BY created_at, id
    `
	rows, err := r.db.Query(ctx, query, supplierID)
	if err != nil {
		zap.L().Error("can't list supplier transactions", zap.Int64("supplier_id", supplierID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.SupplierTransaction
	for rows.Next() {
		var tx domain.SupplierTransaction
		if err := rows.Scan(&tx.ID, &tx.SupplierID, &tx.Type, &tx.Amount, &tx.Item, &tx.Description, &tx.CreatedAt); err != nil {
			zap.L().Error("can't scan supplier transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
