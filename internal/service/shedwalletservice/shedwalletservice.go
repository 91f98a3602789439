package shedwalletservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/ledger"
	"github.com/GlebRadaev/shedledger/internal/pg"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type FuelRepo interface {
	ListPending(ctx context.Context) ([]domain.FuelPurchase, error)
	LockPending(ctx context.Context, ids []int64) ([]domain.FuelPurchase, error)
	UpdateOverallPaid(ctx context.Context, id int64, overallPaid decimal.Decimal) error
}

type TripRepo interface {
	ListOutstandingSetCash(ctx context.Context) ([]domain.SetCashAdvance, error)
	LockOutstandingSetCash(ctx context.Context) ([]domain.SetCashAdvance, error)
	UpdateSetCashPaidBack(ctx context.Context, tripID int64, paidBack decimal.Decimal) error
}

type EmployeeRepo interface {
	ListNames(ctx context.Context) (map[int64]string, error)
}

type WalletRepo interface {
	Create(ctx context.Context, tx *domain.ShedWalletTransaction) (*domain.ShedWalletTransaction, error)
	List(ctx context.Context, limit int) ([]domain.ShedWalletTransaction, error)
}

type Service struct {
	fuel      FuelRepo
	trips     TripRepo
	employees EmployeeRepo
	wallet    WalletRepo
	txManager pg.TXManager
	newID     func() uuid.UUID
}

func New(fuel FuelRepo, trips TripRepo, employees EmployeeRepo, wallet WalletRepo, txManager pg.TXManager) *Service {
	return &Service{
		fuel:      fuel,
		trips:     trips,
		employees: employees,
		wallet:    wallet,
		txManager: txManager,
		newID:     uuid.New,
	}
}

func (s *Service) PendingDetails(ctx context.Context) (*domain.PendingDetails, error) {
	var (
		fuel    []domain.FuelPurchase
		setCash []domain.SetCashAdvance
		names   map[int64]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fuel, err = s.fuel.ListPending(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		setCash, err = s.trips.ListOutstandingSetCash(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		names, err = s.employees.ListNames(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load pending details", zap.Error(err))
		return nil, err
	}

	details := ledger.Pending(fuel, setCash, names)
	return &details, nil
}

// RecordTransaction appends a shed wallet entry. A payment_sent that asks for
// settlement is first distributed over the pending debts, and the debts and
// the entry are written in one transaction.
func (s *Service) RecordTransaction(ctx context.Context, in domain.WalletTransactionInput) (*domain.ShedWalletTransaction, error) {
	if !in.Type.Valid() {
		return nil, domain.NewValidationError("type", fmt.Sprintf("unknown transaction type %q", in.Type))
	}
	if !in.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "must be greater than zero")
	}
	if err := validate.Money("amount", in.Amount); err != nil {
		return nil, err
	}
	settles := in.SettleAggregate || len(in.FuelLogIDs) > 0
	if settles && in.Type != domain.WalletPaymentSent {
		return nil, domain.NewValidationError("settleAggregate", "only payment_sent transactions settle debts")
	}

	entry := &domain.ShedWalletTransaction{
		ID:            s.newID(),
		Type:          in.Type,
		Amount:        in.Amount,
		Description:   in.Description,
		PaymentMethod: in.PaymentMethod,
		Status:        domain.WalletTxCompleted,
		CreatedBy:     in.CreatedBy,
	}

	var created *domain.ShedWalletTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.txManager.Lock(ctx, pg.ShedWalletLock); err != nil {
			return err
		}
		if settles {
			steps, err := s.settle(ctx, in)
			if err != nil {
				return err
			}
			entry.Allocations = steps
		}

		var err error
		created, err = s.wallet.Create(ctx, entry)
		return err
	})
	if err != nil {
		zap.L().Error("failed to record shed wallet transaction", zap.String("type", string(in.Type)), zap.Error(err))
		return nil, err
	}
	if settles {
		zap.L().Info("payment settled",
			zap.String("transaction_id", created.ID.String()),
			zap.String("amount", created.Amount.StringFixed(2)),
			zap.Int("steps", len(created.Allocations)),
		)
	}
	return created, nil
}

func (s *Service) settle(ctx context.Context, in domain.WalletTransactionInput) ([]domain.AllocationStep, error) {
	fuel, err := s.fuel.LockPending(ctx, in.FuelLogIDs)
	if err != nil {
		return nil, err
	}
	found := make(map[int64]bool, len(fuel))
	for _, p := range fuel {
		found[p.ID] = true
	}
	for _, id := range in.FuelLogIDs {
		if !found[id] {
			return nil, domain.NewNotFoundError("pending fuel purchase", id)
		}
	}

	var setCash []domain.SetCashAdvance
	if in.SettleAggregate {
		setCash, err = s.trips.LockOutstandingSetCash(ctx)
		if err != nil {
			return nil, err
		}
	}

	plan, err := ledger.Distribute(in.Amount, fuel, setCash)
	if err != nil {
		return nil, err
	}
	for _, p := range plan.FuelPurchases {
		if err := s.fuel.UpdateOverallPaid(ctx, p.ID, p.OverallPaid); err != nil {
			return nil, err
		}
	}
	for _, a := range plan.SetCash {
		if err := s.trips.UpdateSetCashPaidBack(ctx, a.TripID, a.PaidBack); err != nil {
			return nil, err
		}
	}
	return plan.Steps, nil
}

func (s *Service) ListTransactions(ctx context.Context, limit int) ([]domain.ShedWalletTransaction, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	txs, err := s.wallet.List(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list shed wallet transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
