package tripservice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/ledger"
	"github.com/GlebRadaev/shedledger/internal/pg"
)

type EmployeeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	UpdateBalances(ctx context.Context, id int64, pendingSalary decimal.Decimal, yesterdayBalance decimal.Decimal) error
	CreateWalletEntry(ctx context.Context, entry *domain.EmployeeWalletEntry) (*domain.EmployeeWalletEntry, error)
}

type TripRepo interface {
	ListBefore(ctx context.Context, employeeID int64, before time.Time) ([]domain.TripRecord, error)
	ListBetween(ctx context.Context, employeeID int64, from time.Time, to time.Time) ([]domain.TripRecord, error)
	CreateTrips(ctx context.Context, records []domain.TripRecord) ([]domain.TripRecord, error)
}

type CustomerRepo interface {
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
}

type SupplierRepo interface {
	GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error)
	CreateTransaction(ctx context.Context, tx *domain.SupplierTransaction) (*domain.SupplierTransaction, error)
}

type Service struct {
	employees EmployeeRepo
	trips     TripRepo
	customers CustomerRepo
	suppliers SupplierRepo
	txManager pg.TXManager
	newID     func() uuid.UUID
}

func New(employees EmployeeRepo, trips TripRepo, customers CustomerRepo, suppliers SupplierRepo, txManager pg.TXManager) *Service {
	return &Service{
		employees: employees,
		trips:     trips,
		customers: customers,
		suppliers: suppliers,
		txManager: txManager,
		newID:     uuid.New,
	}
}

// SaveTripSheet stores a whole trip sheet or nothing. Rows are snapshotted
// against the employee's history under the employee lock, so two sheets of
// the same employee never read each other's half-written state.
func (s *Service) SaveTripSheet(ctx context.Context, sheet domain.TripSheet) (*domain.SheetSummary, error) {
	if err := ledger.ValidateSheet(sheet); err != nil {
		return nil, err
	}

	var summary domain.SheetSummary
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.txManager.Lock(ctx, pg.EmployeeLock(sheet.EmployeeID)); err != nil {
			return err
		}
		for _, id := range creditedCustomerIDs(sheet) {
			if err := s.txManager.Lock(ctx, pg.CustomerLock(id)); err != nil {
				return err
			}
		}
		for _, id := range supplierIDs(sheet) {
			if err := s.txManager.Lock(ctx, pg.SupplierLock(id)); err != nil {
				return err
			}
		}

		employee, err := s.employees.GetByID(ctx, sheet.EmployeeID)
		if err != nil {
			return err
		}
		if employee == nil {
			return domain.NewNotFoundError("employee", sheet.EmployeeID)
		}
		if err := s.checkReferences(ctx, sheet); err != nil {
			return err
		}

		history, err := s.trips.ListBefore(ctx, sheet.EmployeeID, ledger.LastDay(sheet).AddDate(0, 0, 1))
		if err != nil {
			return err
		}
		plan, err := ledger.PlanSheet(s.newID(), sheet, employee, history)
		if err != nil {
			return err
		}

		records, err := s.trips.CreateTrips(ctx, plan.Records)
		if err != nil {
			return err
		}
		if err := s.recordSupplies(ctx, records); err != nil {
			return err
		}

		if err := s.employees.UpdateBalances(ctx, employee.ID, plan.Salary.PendingSalary, plan.CarryForward); err != nil {
			return err
		}
		if delta := plan.Salary.PendingSalary.Sub(employee.PendingSalary); !delta.IsZero() {
			entry := &domain.EmployeeWalletEntry{
				EmployeeID:  employee.ID,
				Type:        salaryEntryType(plan.Salary.Mode),
				Amount:      delta,
				Description: plan.Salary.Summary(),
			}
			if _, err := s.employees.CreateWalletEntry(ctx, entry); err != nil {
				return err
			}
		}

		summary = plan.Summary(records)
		return nil
	})
	if err != nil {
		zap.L().Error("failed to save trip sheet", zap.Int64("employee_id", sheet.EmployeeID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("trip sheet saved",
		zap.String("sheet_id", summary.SheetID.String()),
		zap.Int64("employee_id", sheet.EmployeeID),
		zap.Int("rows", len(summary.Records)),
		zap.String("closing_balance", summary.ClosingBalance.StringFixed(2)),
	)
	return &summary, nil
}

func (s *Service) checkReferences(ctx context.Context, sheet domain.TripSheet) error {
	seen := make(map[int64]bool)
	for _, row := range sheet.Rows {
		if row.CustomerID == nil || seen[*row.CustomerID] {
			continue
		}
		seen[*row.CustomerID] = true
		customer, err := s.customers.GetCustomer(ctx, *row.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.NewNotFoundError("customer", *row.CustomerID)
		}
	}
	for _, id := range supplierIDs(sheet) {
		supplier, err := s.suppliers.GetSupplier(ctx, id)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.NewNotFoundError("supplier", id)
		}
	}
	return nil
}

func (s *Service) recordSupplies(ctx context.Context, records []domain.TripRecord) error {
	for _, record := range records {
		for _, line := range record.Supplies {
			tx, err := ledger.SupplyTransaction(line.SupplierID, line.Item, line.Amount,
				fmt.Sprintf("trip %d on %s", record.ID, record.Date.Format(time.DateOnly)))
			if err != nil {
				return err
			}
			if _, err := s.suppliers.CreateTransaction(ctx, &tx); err != nil {
				return err
			}
		}
	}
	return nil
}

// CarryForward is the employee's float entering date.
func (s *Service) CarryForward(ctx context.Context, employeeID int64, date time.Time) (decimal.Decimal, error) {
	if date.IsZero() {
		return decimal.Zero, domain.NewValidationError("date", "is required")
	}
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}
	if employee == nil {
		return decimal.Zero, domain.NewNotFoundError("employee", employeeID)
	}
	history, err := s.trips.ListBefore(ctx, employeeID, ledger.Day(date))
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.CarryForward(history, date), nil
}

func (s *Service) ListTrips(ctx context.Context, employeeID int64, from, to time.Time) ([]domain.TripRecord, error) {
	if from.After(to) {
		return nil, domain.NewValidationError("from", "must not be after to")
	}
	return s.trips.ListBetween(ctx, employeeID, ledger.Day(from), ledger.Day(to))
}

func supplierIDs(sheet domain.TripSheet) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, row := range sheet.Rows {
		for _, line := range row.Supplies {
			if !seen[line.SupplierID] {
				seen[line.SupplierID] = true
				ids = append(ids, line.SupplierID)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// creditedCustomerIDs lists, ascending, the customers whose credit the sheet
// raises.
func creditedCustomerIDs(sheet domain.TripSheet) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, row := range sheet.Rows {
		if row.CustomerID == nil || !row.CreditExtended.IsPositive() || seen[*row.CustomerID] {
			continue
		}
		seen[*row.CustomerID] = true
		ids = append(ids, *row.CustomerID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func salaryEntryType(mode domain.SalaryMode) domain.EmployeeWalletType {
	if mode == domain.SalaryDeductFromBalance {
		return domain.EmployeeSalaryDeduct
	}
	return domain.EmployeeSalaryAccrued
}
