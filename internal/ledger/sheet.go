package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

// ValidateSheet checks every row of a sheet. The whole sheet is rejected on
// the first bad field and the error names the row.
func ValidateSheet(sheet domain.TripSheet) error {
	if sheet.EmployeeID <= 0 {
		return domain.NewValidationError("employeeId", "is required")
	}
	if len(sheet.Rows) == 0 {
		return domain.NewValidationError("rows", "at least one row is required")
	}
	for i, row := range sheet.Rows {
		field := func(name string) string { return fmt.Sprintf("rows[%d].%s", i, name) }
		switch {
		case row.VehicleID <= 0:
			return domain.NewValidationError(field("vehicleId"), "is required")
		case row.Date.IsZero():
			return domain.NewValidationError(field("date"), "is required")
		case row.CashCollected.IsNegative():
			return domain.NewValidationError(field("cashCollected"), "must not be negative")
		case row.CreditExtended.IsNegative():
			return domain.NewValidationError(field("creditExtended"), "must not be negative")
		case row.SetCashTaken.IsNegative():
			return domain.NewValidationError(field("setCashTaken"), "must not be negative")
		case row.CreditExtended.IsPositive() && row.CustomerID == nil:
			return domain.NewValidationError(field("customerId"), "is required when credit is extended")
		}
		if err := validate.MoneyFields(
			validate.MoneyField{Name: field("cashCollected"), Amount: row.CashCollected},
			validate.MoneyField{Name: field("creditExtended"), Amount: row.CreditExtended},
			validate.MoneyField{Name: field("setCashTaken"), Amount: row.SetCashTaken},
		); err != nil {
			return err
		}
		for j, s := range row.Supplies {
			supply := func(name string) string { return field(fmt.Sprintf("supplies[%d].%s", j, name)) }
			switch {
			case s.SupplierID <= 0:
				return domain.NewValidationError(supply("supplierId"), "is required")
			case strings.TrimSpace(s.Item) == "":
				return domain.NewValidationError(supply("item"), "is required")
			case !s.Amount.IsPositive():
				return domain.NewValidationError(supply("amount"), "must be greater than zero")
			}
			if err := validate.Money(supply("amount"), s.Amount); err != nil {
				return err
			}
		}
	}
	for i, e := range sheet.Expenses {
		if e.Amount.IsNegative() {
			return domain.NewValidationError(fmt.Sprintf("expenses[%d].amount", i), "must not be negative")
		}
		if err := validate.Money(fmt.Sprintf("expenses[%d].amount", i), e.Amount); err != nil {
			return err
		}
	}
	return nil
}

// LastDay is the latest row date of a sheet.
func LastDay(sheet domain.TripSheet) time.Time {
	var last time.Time
	for _, row := range sheet.Rows {
		if d := Day(row.Date); d.After(last) {
			last = d
		}
	}
	return last
}

type SheetPlan struct {
	Records        []domain.TripRecord
	Salary         SalarySettlement
	GrossFloat     decimal.Decimal
	NetOfExpenses  decimal.Decimal
	ClosingBalance decimal.Decimal
	// CarryForward is the employee's float after the sheet's last day.
	CarryForward decimal.Decimal
}

// PlanSheet builds the records of a sheet without persisting anything.
// history holds the employee's records up to and including the sheet's last
// day, each row snapshots its yesterdayBalance from it.
func PlanSheet(sheetID uuid.UUID, sheet domain.TripSheet, employee *domain.Employee, history []domain.TripRecord) (SheetPlan, error) {
	if err := ValidateSheet(sheet); err != nil {
		return SheetPlan{}, err
	}
	operational, salaryRows := SplitExpenses(sheet.Expenses)
	settlement, err := SettleSalary(sheet.SalaryMode, employee, salaryRows)
	if err != nil {
		return SheetPlan{}, err
	}

	rows := append([]domain.TripRow(nil), sheet.Rows...)
	sort.SliceStable(rows, func(i, j int) bool { return Day(rows[i].Date).Before(Day(rows[j].Date)) })

	records := make([]domain.TripRecord, len(rows))
	for i, row := range rows {
		records[i] = domain.TripRecord{
			SheetID:         sheetID,
			EmployeeID:      sheet.EmployeeID,
			VehicleID:       row.VehicleID,
			CustomerID:      row.CustomerID,
			Date:            Day(row.Date),
			CashCollected:   row.CashCollected,
			CreditExtended:  row.CreditExtended,
			SetCashTaken:    row.SetCashTaken,
			SetCashPaidBack: decimal.Zero,
			Expenses:        []domain.Expense{},
			Supplies:        row.Supplies,
		}
	}
	records[0].Expenses = append(records[0].Expenses, operational...)
	settlement.Stamp(records)

	known := append([]domain.TripRecord(nil), history...)
	for i := range records {
		records[i].YesterdayBalance = CarryForward(known, records[i].Date)
		known = append(known, records[i])
	}

	net := NetOfExpenses(records, operational)
	return SheetPlan{
		Records:        records,
		Salary:         settlement,
		GrossFloat:     GrossFloat(records),
		NetOfExpenses:  net,
		ClosingBalance: net.Sub(settlement.Deducted),
		CarryForward:   CarryForward(known, LastDay(sheet).AddDate(0, 0, 1)),
	}, nil
}

// Summary converts a plan into the figures reported to the operator.
func (p SheetPlan) Summary(records []domain.TripRecord) domain.SheetSummary {
	var sheetID uuid.UUID
	if len(records) > 0 {
		sheetID = records[0].SheetID
	}
	return domain.SheetSummary{
		SheetID:        sheetID,
		Records:        records,
		GrossFloat:     p.GrossFloat,
		NetOfExpenses:  p.NetOfExpenses,
		SalaryMode:     p.Salary.Mode,
		SalaryDeducted: p.Salary.Deducted,
		PendingSalary:  p.Salary.PendingSalary,
		SalarySummary:  p.Salary.Summary(),
		ClosingBalance: p.ClosingBalance,
	}
}
