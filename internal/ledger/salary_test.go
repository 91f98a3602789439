package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/shedledger/internal/domain"
)

func TestSettleSalary(t *testing.T) {
	rows := []domain.Expense{
		{Description: "driver", Amount: dec("1000"), Kind: domain.ExpenseSalary},
		{Description: "loader", Amount: dec("500"), Kind: domain.ExpenseSalary},
	}

	tests := []struct {
		name        string
		mode        domain.SalaryMode
		employee    *domain.Employee
		rows        []domain.Expense
		expectedErr string
		deducted    string
		pending     string
		included    string
		summary     string
	}{
		{
			name:     "deduct clears pending and includes it",
			mode:     domain.SalaryDeductFromBalance,
			employee: &domain.Employee{ID: 1, PendingSalary: dec("500")},
			rows:     rows,
			deducted: "2000",
			pending:  "0",
			included: "500",
			summary:  "Rs. 2000.00 deducted from balance (includes Rs. 500.00 pending)",
		},
		{
			name:     "deduct without pending",
			mode:     domain.SalaryDeductFromBalance,
			employee: &domain.Employee{ID: 1, PendingSalary: dec("0")},
			rows:     rows,
			deducted: "1500",
			pending:  "0",
			included: "0",
			summary:  "Rs. 1500.00 deducted from balance",
		},
		{
			name:     "accrue adds batch total only",
			mode:     domain.SalaryAccrueToPending,
			employee: &domain.Employee{ID: 1, PendingSalary: dec("500")},
			rows:     rows,
			deducted: "0",
			pending:  "2000",
			included: "0",
			summary:  "Rs. 1500.00 added to pending salary (pending Rs. 2000.00)",
		},
		{
			name:     "no mode and no salary rows",
			employee: &domain.Employee{ID: 1, PendingSalary: dec("250")},
			deducted: "0",
			pending:  "250",
			included: "0",
			summary:  "Rs. 0.00 added to pending salary (pending Rs. 250.00)",
		},
		{
			name:        "deduct without employee",
			mode:        domain.SalaryDeductFromBalance,
			rows:        rows,
			expectedErr: "invalid employeeId: an employee must be selected to deduct salary from balance",
		},
		{
			name:        "salary rows require a mode",
			employee:    &domain.Employee{ID: 1},
			rows:        rows,
			expectedErr: "invalid salaryMode: required when salary rows are present",
		},
		{
			name:        "unknown mode",
			mode:        domain.SalaryMode("cash_out"),
			employee:    &domain.Employee{ID: 1},
			expectedErr: `invalid salaryMode: unknown mode "cash_out"`,
		},
		{
			name:        "negative salary row",
			mode:        domain.SalaryAccrueToPending,
			employee:    &domain.Employee{ID: 1},
			rows:        []domain.Expense{{Amount: dec("-5"), Kind: domain.ExpenseSalary}},
			expectedErr: "invalid salary[0].amount: must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settlement, err := SettleSalary(tt.mode, tt.employee, tt.rows)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrValidation))
				assert.Equal(t, tt.expectedErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.deducted, settlement.Deducted.String())
			assert.Equal(t, tt.pending, settlement.PendingSalary.String())
			assert.Equal(t, tt.included, settlement.PendingIncluded.String())
			assert.Equal(t, tt.summary, settlement.Summary())
		})
	}
}

func TestSalarySettlement_Stamp(t *testing.T) {
	records := []domain.TripRecord{{ID: 1}, {ID: 2}, {ID: 3}}

	deduct, err := SettleSalary(domain.SalaryDeductFromBalance, &domain.Employee{PendingSalary: dec("100")},
		[]domain.Expense{{Amount: dec("900"), Kind: domain.ExpenseSalary}})
	require.NoError(t, err)
	deduct.Stamp(records)
	for _, r := range records {
		assert.Equal(t, "1000", r.SalaryDeducted.String())
	}

	accrue, err := SettleSalary(domain.SalaryAccrueToPending, &domain.Employee{PendingSalary: dec("100")},
		[]domain.Expense{{Amount: dec("900"), Kind: domain.ExpenseSalary}})
	require.NoError(t, err)
	accrue.Stamp(records)
	for _, r := range records {
		assert.True(t, r.SalaryDeducted.IsZero())
	}
	assert.Equal(t, "1000", accrue.PendingSalary.String())
}
