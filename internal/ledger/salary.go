package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

// SalarySettlement is the outcome of settling one batch's wages.
type SalarySettlement struct {
	Mode domain.SalaryMode
	// BatchSalary is the total of the batch's own salary rows.
	BatchSalary decimal.Decimal
	// PendingIncluded is the earlier pending salary folded into a deduction.
	PendingIncluded decimal.Decimal
	// Deducted is stamped on every record of the batch.
	Deducted decimal.Decimal
	// PendingSalary is the employee's pending salary after settlement.
	PendingSalary decimal.Decimal
}

// SettleSalary applies exactly one settlement mode to a batch. An empty mode
// is only accepted when the batch has no salary rows, and then accrues nothing.
func SettleSalary(mode domain.SalaryMode, employee *domain.Employee, salaryRows []domain.Expense) (SalarySettlement, error) {
	for i, row := range salaryRows {
		if row.Amount.IsNegative() {
			return SalarySettlement{}, domain.NewValidationError(fmt.Sprintf("salary[%d].amount", i), "must not be negative")
		}
	}
	batch := ExpensesTotal(salaryRows)

	if mode == "" {
		if batch.IsPositive() {
			return SalarySettlement{}, domain.NewValidationError("salaryMode", "required when salary rows are present")
		}
		mode = domain.SalaryAccrueToPending
	}

	switch mode {
	case domain.SalaryDeductFromBalance:
		if employee == nil {
			return SalarySettlement{}, domain.NewValidationError("employeeId", "an employee must be selected to deduct salary from balance")
		}
		return SalarySettlement{
			Mode:            mode,
			BatchSalary:     batch,
			PendingIncluded: employee.PendingSalary,
			Deducted:        batch.Add(employee.PendingSalary),
			PendingSalary:   decimal.Zero,
		}, nil
	case domain.SalaryAccrueToPending:
		if employee == nil {
			if batch.IsPositive() {
				return SalarySettlement{}, domain.NewValidationError("employeeId", "an employee must be selected to accrue salary")
			}
			return SalarySettlement{Mode: mode, BatchSalary: batch, PendingIncluded: decimal.Zero, Deducted: decimal.Zero, PendingSalary: decimal.Zero}, nil
		}
		return SalarySettlement{
			Mode:            mode,
			BatchSalary:     batch,
			PendingIncluded: decimal.Zero,
			Deducted:        decimal.Zero,
			PendingSalary:   employee.PendingSalary.Add(batch),
		}, nil
	default:
		return SalarySettlement{}, domain.NewValidationError("salaryMode", fmt.Sprintf("unknown mode %q", mode))
	}
}

// Stamp writes the settlement onto every record of the batch.
func (s SalarySettlement) Stamp(records []domain.TripRecord) {
	for i := range records {
		records[i].SalaryDeducted = s.Deducted
	}
}

func (s SalarySettlement) Summary() string {
	switch s.Mode {
	case domain.SalaryDeductFromBalance:
		if s.PendingIncluded.IsPositive() {
			return fmt.Sprintf("Rs. %s deducted from balance (includes Rs. %s pending)",
				s.Deducted.StringFixed(2), s.PendingIncluded.StringFixed(2))
		}
		return fmt.Sprintf("Rs. %s deducted from balance", s.Deducted.StringFixed(2))
	default:
		return fmt.Sprintf("Rs. %s added to pending salary (pending Rs. %s)",
			s.BatchSalary.StringFixed(2), s.PendingSalary.StringFixed(2))
	}
}

// AdjustPendingSalary applies a wallet entry to an employee's pending salary
// and returns the new pending amount with the signed change. Accruals and
// deductions take a positive amount, adjustments are signed.
func AdjustPendingSalary(employee domain.Employee, kind domain.EmployeeWalletType, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	var delta decimal.Decimal
	switch kind {
	case domain.EmployeeSalaryAccrued:
		if !amount.IsPositive() {
			return decimal.Zero, decimal.Zero, domain.NewValidationError("amount", "must be greater than zero")
		}
		delta = amount
	case domain.EmployeeSalaryDeduct:
		if !amount.IsPositive() {
			return decimal.Zero, decimal.Zero, domain.NewValidationError("amount", "must be greater than zero")
		}
		delta = amount.Neg()
	case domain.EmployeeAdjustment:
		if amount.IsZero() {
			return decimal.Zero, decimal.Zero, domain.NewValidationError("amount", "must not be zero")
		}
		delta = amount
	default:
		return decimal.Zero, decimal.Zero, domain.NewValidationError("type", fmt.Sprintf("unknown wallet entry type %q", kind))
	}

	if err := validate.Money("amount", amount); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	pending := employee.PendingSalary.Add(delta)
	if pending.IsNegative() {
		return decimal.Zero, decimal.Zero, domain.NewConsistencyError(
			fmt.Sprintf("employee %d pending salary", employee.ID),
			fmt.Sprintf("Rs. %s exceeds pending Rs. %s", delta.Abs().StringFixed(2), employee.PendingSalary.StringFixed(2)),
		)
	}
	return pending, delta, nil
}
