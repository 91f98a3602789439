package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

// NewFuelPurchase validates a fuel log entry. OverallPaid always starts at zero.
func NewFuelPurchase(p domain.FuelPurchase) (domain.FuelPurchase, error) {
	switch {
	case p.VehicleID <= 0:
		return domain.FuelPurchase{}, domain.NewValidationError("vehicleId", "is required")
	case p.EmployeeID <= 0:
		return domain.FuelPurchase{}, domain.NewValidationError("employeeId", "is required")
	case p.Date.IsZero():
		return domain.FuelPurchase{}, domain.NewValidationError("date", "is required")
	case p.FuelAmount.IsNegative():
		return domain.FuelPurchase{}, domain.NewValidationError("fuelAmount", "must not be negative")
	case !p.TotalCost.IsPositive():
		return domain.FuelPurchase{}, domain.NewValidationError("totalCost", "must be greater than zero")
	case p.PaidByEmployee.IsNegative():
		return domain.FuelPurchase{}, domain.NewValidationError("paidByEmployee", "must not be negative")
	case p.PaidByEmployee.GreaterThan(p.TotalCost):
		return domain.FuelPurchase{}, domain.NewValidationError("paidByEmployee", "must not exceed totalCost")
	}
	if err := validate.MoneyFields(
		validate.MoneyField{Name: "totalCost", Amount: p.TotalCost},
		validate.MoneyField{Name: "paidByEmployee", Amount: p.PaidByEmployee},
	); err != nil {
		return domain.FuelPurchase{}, err
	}
	p.Date = Day(p.Date)
	p.OverallPaid = decimal.Zero
	return p, nil
}

// ApplyFuelPayment adds amount to OverallPaid. The caller must clip the amount
// to Remaining, anything above it is reported as an overpayment.
func ApplyFuelPayment(p domain.FuelPurchase, amount decimal.Decimal) (domain.FuelPurchase, error) {
	if !amount.IsPositive() {
		return p, domain.NewValidationError("amount", "must be greater than zero")
	}
	if err := validate.Money("amount", amount); err != nil {
		return p, err
	}
	if remaining := p.Remaining(); amount.GreaterThan(remaining) {
		return p, &domain.OverpaymentError{
			Record:      fmt.Sprintf("fuel purchase %d", p.ID),
			Payment:     amount,
			Outstanding: remaining,
		}
	}
	p.OverallPaid = p.OverallPaid.Add(amount)
	return p, nil
}
