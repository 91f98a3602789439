package walletrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

// Repository is the append-only audit log of the shed wallet. It has no
// update or delete.
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

func (r *Repository) Create(ctx context.Context, tx *domain.ShedWalletTransaction) (*domain.ShedWalletTransaction, error) {
	query := `
        INSERT INTO shed_wallet_transactions (id, type, amount, description, payment_method, allocations, status, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `
	created := *tx
	if created.Allocations == nil {
		created.Allocations = []domain.AllocationStep{}
	}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, created.ID, created.Type, created.Amount, created.Description,
			created.PaymentMethod, created.Allocations, created.Status, created.CreatedBy)
		if err := row.Scan(&created.CreatedAt); err != nil {
			zap.L().Error("can't create wallet transaction", zap.String("type", string(created.Type)), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns the newest transactions first.
func (r *Repository) List(ctx context.Context, limit int) ([]domain.ShedWalletTransaction, error) {
	query := `
        SELECT id, type, amount, description, payment_method, allocations, status, created_by, created_at
        FROM shed_wallet_transactions
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.ShedWalletTransaction
	for rows.Next() {
		var tx domain.ShedWalletTransaction
		err := rows.Scan(&tx.ID, &tx.Type, &tx.Amount, &tx.Description, &tx.PaymentMethod,
			&tx.Allocations, &tx.Status, &tx.CreatedBy, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
