package employeeservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/ledger"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

type EmployeeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	UpdatePendingSalary(ctx context.Context, id int64, pendingSalary decimal.Decimal) error
	CreateWalletEntry(ctx context.Context, entry *domain.EmployeeWalletEntry) (*domain.EmployeeWalletEntry, error)
	ListWalletEntries(ctx context.Context, employeeID int64) ([]domain.EmployeeWalletEntry, error)
}

type TripRepo interface {
	ListBefore(ctx context.Context, employeeID int64, before time.Time) ([]domain.TripRecord, error)
}

type Service struct {
	employees EmployeeRepo
	trips     TripRepo
	txManager pg.TXManager
}

func New(employees EmployeeRepo, trips TripRepo, txManager pg.TXManager) *Service {
	return &Service{
		employees: employees,
		trips:     trips,
		txManager: txManager,
	}
}

// AdjustWallet changes an employee's pending salary and audits the change.
// The returned employee carries the new pending amount.
func (s *Service) AdjustWallet(ctx context.Context, id int64, kind domain.EmployeeWalletType, amount decimal.Decimal, description string) (*domain.Employee, error) {
	var employee *domain.Employee
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.txManager.Lock(ctx, pg.EmployeeLock(id)); err != nil {
			return err
		}
		var err error
		employee, err = s.employees.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if employee == nil {
			return domain.NewNotFoundError("employee", id)
		}

		pending, delta, err := ledger.AdjustPendingSalary(*employee, kind, amount)
		if err != nil {
			return err
		}
		if err := s.employees.UpdatePendingSalary(ctx, id, pending); err != nil {
			return err
		}
		if _, err := s.employees.CreateWalletEntry(ctx, &domain.EmployeeWalletEntry{
			EmployeeID:  id,
			Type:        kind,
			Amount:      delta,
			Description: description,
		}); err != nil {
			return err
		}
		employee.PendingSalary = pending
		return nil
	})
	if err != nil {
		zap.L().Error("failed to adjust employee wallet", zap.Int64("employee_id", id), zap.Error(err))
		return nil, err
	}
	return employee, nil
}

// Wallet reports the employee with the float held at the end of asOf,
// folded from trip records rather than the cached balance.
func (s *Service) Wallet(ctx context.Context, id int64, asOf time.Time) (*domain.EmployeeWallet, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.NewNotFoundError("employee", id)
	}

	next := ledger.Day(asOf).AddDate(0, 0, 1)
	history, err := s.trips.ListBefore(ctx, id, next)
	if err != nil {
		return nil, err
	}
	entries, err := s.employees.ListWalletEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.EmployeeWallet{
		Employee:     *employee,
		CarryForward: ledger.CarryForward(history, next),
		AsOf:         ledger.Day(asOf),
		Entries:      entries,
	}, nil
}
