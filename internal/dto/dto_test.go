package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTripSheetRequestDTO_ToDomain(t *testing.T) {
	body := `{
		"employeeId": 1,
		"salaryMode": "accrue_to_pending",
		"rows": [
			{"vehicleId": 4, "customerId": 8, "date": "2024-03-02", "cashCollected": "1000", "creditExtended": "400",
			 "setCashTaken": "500", "supplies": [{"supplierId": 3, "item": "sand", "amount": "2500"}]}
		],
		"expenses": [{"description": "tyre", "amount": "150", "kind": "operational"}]
	}`
	var req TripSheetRequestDTO
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, validate.Struct(req))

	sheet, err := req.ToDomain()

	require.NoError(t, err)
	assert.Equal(t, domain.SalaryAccrueToPending, sheet.SalaryMode)
	require.Len(t, sheet.Rows, 1)
	row := sheet.Rows[0]
	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), row.Date)
	require.NotNil(t, row.CustomerID)
	assert.Equal(t, int64(8), *row.CustomerID)
	assert.Equal(t, "1000", row.CashCollected.String())
	assert.Equal(t, []domain.SupplyLine{{SupplierID: 3, Item: "sand", Amount: dec("2500")}}, row.Supplies)
	assert.Equal(t, domain.ExpenseOperational, sheet.Expenses[0].Kind)
}

func TestTripSheetRequestDTO_Validation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr string
	}{
		{
			name:        "No rows",
			body:        `{"employeeId": 1}`,
			expectedErr: "invalid rows: is required",
		},
		{
			name:        "Bad date",
			body:        `{"employeeId": 1, "rows": [{"vehicleId": 4, "date": "02/03/2024"}]}`,
			expectedErr: "invalid rows[0].date: must be a date in 2006-01-02 format",
		},
		{
			name:        "Supply without item",
			body:        `{"employeeId": 1, "rows": [{"vehicleId": 4, "date": "2024-03-02", "supplies": [{"supplierId": 3}]}]}`,
			expectedErr: "invalid rows[0].supplies[0].item: is required",
		},
		{
			name:        "Unknown salary mode",
			body:        `{"employeeId": 1, "salaryMode": "skip", "rows": [{"vehicleId": 4, "date": "2024-03-02"}]}`,
			expectedErr: "invalid salaryMode: must be one of [deduct_from_balance accrue_to_pending]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req TripSheetRequestDTO
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.EqualError(t, validate.Struct(req), tt.expectedErr)
		})
	}
}

func TestFromSheetSummary(t *testing.T) {
	sheetID := uuid.MustParse("0b6e2f44-5f0c-4c55-9d0e-54a1b1f3a9c1")
	summary := FromSheetSummary(domain.SheetSummary{
		SheetID: sheetID,
		Records: []domain.TripRecord{{
			ID:            11,
			SheetID:       sheetID,
			Date:          time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
			CashCollected: dec("1000"),
		}},
		GrossFloat:     dec("2800"),
		NetOfExpenses:  dec("2650"),
		SalaryMode:     domain.SalaryDeductFromBalance,
		SalaryDeducted: dec("500"),
		ClosingBalance: dec("2150"),
	})

	assert.Equal(t, sheetID.String(), summary.SheetID)
	assert.Equal(t, "2800.00", summary.GrossFloat)
	assert.Equal(t, "2150.00", summary.ClosingBalance)
	assert.Equal(t, "0.00", summary.PendingSalary)
	require.Len(t, summary.Records, 1)
	assert.Equal(t, "2024-03-02", summary.Records[0].Date)
	assert.Equal(t, "1000.00", summary.Records[0].CashCollected)
}

func TestFromFuelPurchase(t *testing.T) {
	p := FromFuelPurchase(domain.FuelPurchase{
		ID:             7,
		Date:           time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		FuelAmount:     dec("40.5"),
		TotalCost:      dec("5000"),
		PaidByEmployee: dec("1000"),
		OverallPaid:    dec("1500"),
	})

	assert.Equal(t, "2500.00", p.Remaining)
	assert.Equal(t, "partial", p.Status)
	assert.Equal(t, "40.50", p.FuelAmount)
}

func TestCreditPaymentRequestDTO_ToDomain(t *testing.T) {
	original := dec("7000")
	req := CreditPaymentRequestDTO{CustomerID: 8, PaymentAmount: dec("2000"), PaymentDate: "2024-03-05", OriginalCreditAmount: &original}

	in, err := req.ToDomain(99)

	require.NoError(t, err)
	assert.Equal(t, int64(99), in.CreatedBy)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), in.Date)
	assert.Equal(t, &original, in.OriginalCreditAmount)

	req.PaymentDate = ""
	in, err = req.ToDomain(99)
	require.NoError(t, err)
	assert.True(t, in.Date.IsZero())
}

func TestFromPendingDetails(t *testing.T) {
	details := FromPendingDetails(domain.PendingDetails{
		TotalPendingFuel:   dec("4000"),
		TotalSetCashTaken:  dec("2500"),
		TotalPendingAmount: dec("6500"),
		PendingByEmployee: []domain.EmployeePending{
			{EmployeeID: 1, EmployeeName: "Ravi", PendingFuel: dec("4000"), SetCash: dec("2500"), Total: dec("6500")},
		},
		VehicleLogsWithSetCash: []domain.SetCashAdvance{
			{TripID: 11, EmployeeID: 1, Taken: dec("2500"), PaidBack: dec("500")},
		},
	})

	assert.Equal(t, "6500.00", details.TotalPendingAmount)
	assert.Equal(t, "Ravi", details.PendingByEmployee[0].EmployeeName)
	assert.Equal(t, "2000.00", details.VehicleLogsWithSetCash[0].Outstanding)
}
