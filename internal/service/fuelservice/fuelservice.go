package fuelservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/ledger"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

type FuelRepo interface {
	Create(ctx context.Context, p *domain.FuelPurchase) (*domain.FuelPurchase, error)
	GetByID(ctx context.Context, id int64) (*domain.FuelPurchase, error)
	UpdateOverallPaid(ctx context.Context, id int64, overallPaid decimal.Decimal) error
	ListPending(ctx context.Context) ([]domain.FuelPurchase, error)
}

type EmployeeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
}

type WalletRepo interface {
	Create(ctx context.Context, tx *domain.ShedWalletTransaction) (*domain.ShedWalletTransaction, error)
}

type Service struct {
	fuel      FuelRepo
	employees EmployeeRepo
	wallet    WalletRepo
	txManager pg.TXManager
	newID     func() uuid.UUID
}

func New(fuel FuelRepo, employees EmployeeRepo, wallet WalletRepo, txManager pg.TXManager) *Service {
	return &Service{
		fuel:      fuel,
		employees: employees,
		wallet:    wallet,
		txManager: txManager,
		newID:     uuid.New,
	}
}

// RecordPurchase stores a fuel log and books its cost in the shed wallet.
func (s *Service) RecordPurchase(ctx context.Context, p domain.FuelPurchase, operatorID int64) (*domain.FuelPurchase, error) {
	purchase, err := ledger.NewFuelPurchase(p)
	if err != nil {
		return nil, err
	}

	var created *domain.FuelPurchase
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.txManager.Lock(ctx, pg.ShedWalletLock); err != nil {
			return err
		}
		employee, err := s.employees.GetByID(ctx, purchase.EmployeeID)
		if err != nil {
			return err
		}
		if employee == nil {
			return domain.NewNotFoundError("employee", purchase.EmployeeID)
		}

		created, err = s.fuel.Create(ctx, &purchase)
		if err != nil {
			return err
		}
		_, err = s.wallet.Create(ctx, &domain.ShedWalletTransaction{
			ID:     s.newID(),
			Type:   domain.WalletFuelPurchase,
			Amount: created.TotalCost,
			Description: fmt.Sprintf("fuel purchase %d for vehicle %d, paid by employee Rs. %s",
				created.ID, created.VehicleID, created.PaidByEmployee.StringFixed(2)),
			Status:    domain.WalletTxCompleted,
			CreatedBy: operatorID,
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to record fuel purchase", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// ApplyPayment settles part of one fuel purchase. Amounts above the remaining
// debt are refused as a whole.
func (s *Service) ApplyPayment(ctx context.Context, id int64, amount decimal.Decimal, operatorID int64) (*domain.FuelPurchase, error) {
	var updated domain.FuelPurchase
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.txManager.Lock(ctx, pg.ShedWalletLock); err != nil {
			return err
		}
		purchase, err := s.fuel.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.NewNotFoundError("fuel purchase", id)
		}

		updated, err = ledger.ApplyFuelPayment(*purchase, amount)
		if err != nil {
			return err
		}
		if err := s.fuel.UpdateOverallPaid(ctx, id, updated.OverallPaid); err != nil {
			return err
		}
		_, err = s.wallet.Create(ctx, &domain.ShedWalletTransaction{
			ID:          s.newID(),
			Type:        domain.WalletPaymentSent,
			Amount:      amount,
			Description: fmt.Sprintf("payment for fuel purchase %d", id),
			Allocations: []domain.AllocationStep{{
				Kind:           domain.AllocationFuelPurchase,
				RecordID:       id,
				Date:           updated.Date,
				Amount:         amount,
				RemainingAfter: updated.Remaining(),
			}},
			Status:    domain.WalletTxCompleted,
			CreatedBy: operatorID,
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to apply fuel payment", zap.Int64("fuel_purchase_id", id), zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.FuelPurchase, error) {
	purchases, err := s.fuel.ListPending(ctx)
	if err != nil {
		zap.L().Error("failed to list pending fuel purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
