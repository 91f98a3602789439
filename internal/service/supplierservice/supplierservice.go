package supplierservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/ledger"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

type SupplierRepo interface {
	GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error)
	CreateTransaction(ctx context.Context, tx *domain.SupplierTransaction) (*domain.SupplierTransaction, error)
	ListTransactions(ctx context.Context, supplierID int64) ([]domain.SupplierTransaction, error)
}

type Service struct {
	suppliers SupplierRepo
	txManager pg.TXManager
}

func New(suppliers SupplierRepo, txManager pg.TXManager) *Service {
	return &Service{
		suppliers: suppliers,
		txManager: txManager,
	}
}

func (s *Service) RecordSupply(ctx context.Context, supplierID int64, item string, amount decimal.Decimal, description string) (*domain.SupplierTransaction, error) {
	tx, err := ledger.SupplyTransaction(supplierID, item, amount, description)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, tx)
}

func (s *Service) RecordPayment(ctx context.Context, supplierID int64, amount decimal.Decimal, description string) (*domain.SupplierTransaction, error) {
	tx, err := ledger.PaymentTransaction(supplierID, amount, description)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, tx)
}

// RecordAdjustment books a signed correction, positive reduces what the shed owes.
func (s *Service) RecordAdjustment(ctx context.Context, supplierID int64, amount decimal.Decimal, item, description string) (*domain.SupplierTransaction, error) {
	tx, err := ledger.AdjustmentTransaction(supplierID, amount, item, description)
	if err != nil {
		return nil, err
	}
	return s.record(ctx, tx)
}

// RecordTransaction dispatches on in.Type. Supply and payment amounts are
// given positive, adjustments signed.
func (s *Service) RecordTransaction(ctx context.Context, in domain.SupplierTransaction) (*domain.SupplierTransaction, error) {
	switch in.Type {
	case domain.SupplierSupply:
		return s.RecordSupply(ctx, in.SupplierID, in.Item, in.Amount, in.Description)
	case domain.SupplierPayment:
		return s.RecordPayment(ctx, in.SupplierID, in.Amount, in.Description)
	case domain.SupplierAdjustment:
		return s.RecordAdjustment(ctx, in.SupplierID, in.Amount, in.Item, in.Description)
	default:
		return nil, domain.NewValidationError("type", fmt.Sprintf("unknown supplier transaction type %q", in.Type))
	}
}

func (s *Service) record(ctx context.Context, tx domain.SupplierTransaction) (*domain.SupplierTransaction, error) {
	var created *domain.SupplierTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.txManager.Lock(ctx, pg.SupplierLock(tx.SupplierID)); err != nil {
			return err
		}
		if err := s.supplier(ctx, tx.SupplierID); err != nil {
			return err
		}
		var err error
		created, err = s.suppliers.CreateTransaction(ctx, &tx)
		return err
	})
	if err != nil {
		zap.L().Error("failed to record supplier transaction",
			zap.Int64("supplier_id", tx.SupplierID),
			zap.String("type", string(tx.Type)),
			zap.Error(err),
		)
		return nil, err
	}
	return created, nil
}

func (s *Service) supplier(ctx context.Context, id int64) error {
	supplier, err := s.suppliers.GetSupplier(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.NewNotFoundError("supplier", id)
	}
	return nil
}

func (s *Service) Account(ctx context.Context, supplierID int64) (*domain.SupplierAccount, error) {
	supplier, err := s.suppliers.GetSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NewNotFoundError("supplier", supplierID)
	}
	txs, err := s.suppliers.ListTransactions(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return &domain.SupplierAccount{
		Supplier:      *supplier,
		WalletBalance: ledger.WalletBalance(txs),
		Transactions:  txs,
	}, nil
}

func (s *Service) PendingByItem(ctx context.Context, supplierID int64) ([]domain.ItemBalance, error) {
	if err := s.supplier(ctx, supplierID); err != nil {
		return nil, err
	}
	txs, err := s.suppliers.ListTransactions(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return ledger.PendingByItem(txs), nil
}
