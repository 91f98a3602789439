package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

type SupplyLineDTO struct {
	SupplierID int64           `json:"supplierId" validate:"required,gt=0" example:"3"`
	Item       string          `json:"item" validate:"required" example:"sand"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"2500.00"`
}

type ExpenseDTO struct {
	Description string          `json:"description" example:"tyre repair"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"150.00"`
	Kind        string          `json:"kind,omitempty" validate:"omitempty,oneof=operational salary" example:"operational"`
}

type TripRowDTO struct {
	VehicleID      int64           `json:"vehicleId" validate:"required,gt=0" example:"4"`
	CustomerID     *int64          `json:"customerId,omitempty" validate:"omitempty,gt=0" example:"8"`
	Date           string          `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-02"`
	CashCollected  decimal.Decimal `json:"cashCollected" swaggertype:"string" example:"1000.00"`
	CreditExtended decimal.Decimal `json:"creditExtended" swaggertype:"string" example:"400.00"`
	SetCashTaken   decimal.Decimal `json:"setCashTaken" swaggertype:"string" example:"500.00"`
	Supplies       []SupplyLineDTO `json:"supplies,omitempty" validate:"omitempty,dive"`
}

type TripSheetRequestDTO struct {
	EmployeeID int64        `json:"employeeId" validate:"required,gt=0" example:"1"`
	SalaryMode string       `json:"salaryMode,omitempty" validate:"omitempty,oneof=deduct_from_balance accrue_to_pending" example:"deduct_from_balance"`
	Rows       []TripRowDTO `json:"rows" validate:"required,min=1,dive"`
	Expenses   []ExpenseDTO `json:"expenses,omitempty" validate:"omitempty,dive"`
}

func (d TripSheetRequestDTO) ToDomain() (domain.TripSheet, error) {
	sheet := domain.TripSheet{
		EmployeeID: d.EmployeeID,
		SalaryMode: domain.SalaryMode(d.SalaryMode),
		Rows:       make([]domain.TripRow, len(d.Rows)),
		Expenses:   make([]domain.Expense, len(d.Expenses)),
	}
	for i, row := range d.Rows {
		day, err := validate.Date(fmt.Sprintf("rows[%d].date", i), row.Date)
		if err != nil {
			return domain.TripSheet{}, err
		}
		supplies := make([]domain.SupplyLine, len(row.Supplies))
		for j, s := range row.Supplies {
			supplies[j] = domain.SupplyLine{SupplierID: s.SupplierID, Item: s.Item, Amount: s.Amount}
		}
		sheet.Rows[i] = domain.TripRow{
			VehicleID:      row.VehicleID,
			CustomerID:     row.CustomerID,
			Date:           day,
			CashCollected:  row.CashCollected,
			CreditExtended: row.CreditExtended,
			SetCashTaken:   row.SetCashTaken,
			Supplies:       supplies,
		}
	}
	for i, e := range d.Expenses {
		sheet.Expenses[i] = domain.Expense{Description: e.Description, Amount: e.Amount, Kind: domain.ExpenseKind(e.Kind)}
	}
	return sheet, nil
}

type TripRecordDTO struct {
	ID               int64           `json:"id" example:"11"`
	SheetID          string          `json:"sheetId" example:"0b6e2f44-5f0c-4c55-9d0e-54a1b1f3a9c1"`
	EmployeeID       int64           `json:"employeeId" example:"1"`
	VehicleID        int64           `json:"vehicleId" example:"4"`
	CustomerID       *int64          `json:"customerId,omitempty" example:"8"`
	Date             string          `json:"date" example:"2024-03-02"`
	CashCollected    string          `json:"cashCollected" example:"1000.00"`
	CreditExtended   string          `json:"creditExtended" example:"400.00"`
	SetCashTaken     string          `json:"setCashTaken" example:"500.00"`
	SetCashPaidBack  string          `json:"setCashPaidBack" example:"0.00"`
	YesterdayBalance string          `json:"yesterdayBalance" example:"1300.00"`
	SalaryDeducted   string          `json:"salaryDeducted" example:"500.00"`
	Expenses         []ExpenseDTO    `json:"expenses"`
	Supplies         []SupplyLineDTO `json:"supplies"`
}

func FromTripRecord(r domain.TripRecord) TripRecordDTO {
	expenses := make([]ExpenseDTO, len(r.Expenses))
	for i, e := range r.Expenses {
		expenses[i] = ExpenseDTO{Description: e.Description, Amount: e.Amount, Kind: string(e.Kind)}
	}
	supplies := make([]SupplyLineDTO, len(r.Supplies))
	for i, s := range r.Supplies {
		supplies[i] = SupplyLineDTO{SupplierID: s.SupplierID, Item: s.Item, Amount: s.Amount}
	}
	return TripRecordDTO{
		ID:               r.ID,
		SheetID:          r.SheetID.String(),
		EmployeeID:       r.EmployeeID,
		VehicleID:        r.VehicleID,
		CustomerID:       r.CustomerID,
		Date:             date(r.Date),
		CashCollected:    money(r.CashCollected),
		CreditExtended:   money(r.CreditExtended),
		SetCashTaken:     money(r.SetCashTaken),
		SetCashPaidBack:  money(r.SetCashPaidBack),
		YesterdayBalance: money(r.YesterdayBalance),
		SalaryDeducted:   money(r.SalaryDeducted),
		Expenses:         expenses,
		Supplies:         supplies,
	}
}

func FromTripRecords(records []domain.TripRecord) []TripRecordDTO {
	out := make([]TripRecordDTO, len(records))
	for i, r := range records {
		out[i] = FromTripRecord(r)
	}
	return out
}

type SheetSummaryDTO struct {
	SheetID        string          `json:"sheetId" example:"0b6e2f44-5f0c-4c55-9d0e-54a1b1f3a9c1"`
	Records        []TripRecordDTO `json:"records"`
	GrossFloat     string          `json:"grossFloat" example:"2800.00"`
	NetOfExpenses  string          `json:"netOfExpenses" example:"2650.00"`
	SalaryMode     string          `json:"salaryMode" example:"deduct_from_balance"`
	SalaryDeducted string          `json:"salaryDeducted" example:"500.00"`
	PendingSalary  string          `json:"pendingSalary" example:"0.00"`
	SalarySummary  string          `json:"salarySummary" example:"Rs. 500.00 deducted from balance"`
	ClosingBalance string          `json:"closingBalance" example:"2150.00"`
}

func FromSheetSummary(s domain.SheetSummary) SheetSummaryDTO {
	return SheetSummaryDTO{
		SheetID:        s.SheetID.String(),
		Records:        FromTripRecords(s.Records),
		GrossFloat:     money(s.GrossFloat),
		NetOfExpenses:  money(s.NetOfExpenses),
		SalaryMode:     string(s.SalaryMode),
		SalaryDeducted: money(s.SalaryDeducted),
		PendingSalary:  money(s.PendingSalary),
		SalarySummary:  s.SalarySummary,
		ClosingBalance: money(s.ClosingBalance),
	}
}
