package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/shedledger/internal/domain"
)

func fuel(id int64, d int, total, byEmployee, overall string) domain.FuelPurchase {
	return domain.FuelPurchase{
		ID:             id,
		VehicleID:      7,
		EmployeeID:     1,
		Date:           day(d),
		TotalCost:      dec(total),
		PaidByEmployee: dec(byEmployee),
		OverallPaid:    dec(overall),
	}
}

func advance(tripID int64, d int, taken, paidBack string) domain.SetCashAdvance {
	return domain.SetCashAdvance{
		TripID:     tripID,
		EmployeeID: 1,
		Date:       day(d),
		Taken:      dec(taken),
		PaidBack:   dec(paidBack),
	}
}

func TestDistribute_Scenario(t *testing.T) {
	purchases := []domain.FuelPurchase{fuel(1, 1, "5000", "1000", "0")}

	plan, err := Distribute(dec("3000"), purchases, nil)

	require.NoError(t, err)
	require.Len(t, plan.FuelPurchases, 1)
	updated := plan.FuelPurchases[0]
	assert.Equal(t, "3000", updated.OverallPaid.String())
	assert.Equal(t, "1000", updated.Remaining().String())
	assert.Equal(t, domain.FuelStatusPartial, updated.Status())
	assert.Equal(t, "0", purchases[0].OverallPaid.String(), "input must not be modified")
}

func TestDistribute_OldestFirst(t *testing.T) {
	purchases := []domain.FuelPurchase{
		fuel(3, 5, "1000", "0", "0"),
		fuel(2, 1, "1000", "0", "600"),
		fuel(1, 1, "500", "0", "0"),
	}
	advances := []domain.SetCashAdvance{
		advance(11, 4, "300", "0"),
		advance(10, 2, "200", "50"),
	}

	plan, err := Distribute(dec("2300"), purchases, advances)

	require.NoError(t, err)
	require.Len(t, plan.Steps, 5)
	expected := []struct {
		kind      domain.AllocationKind
		id        int64
		amount    string
		remaining string
	}{
		{domain.AllocationFuelPurchase, 1, "500", "0"},
		{domain.AllocationFuelPurchase, 2, "400", "0"},
		{domain.AllocationFuelPurchase, 3, "1000", "0"},
		{domain.AllocationSetCash, 10, "150", "0"},
		{domain.AllocationSetCash, 11, "250", "50"},
	}
	for i, e := range expected {
		step := plan.Steps[i]
		assert.Equal(t, e.kind, step.Kind, "step %d", i)
		assert.Equal(t, e.id, step.RecordID, "step %d", i)
		assert.Equal(t, e.amount, step.Amount.String(), "step %d", i)
		assert.Equal(t, e.remaining, step.RemainingAfter.String(), "step %d", i)
	}
	assert.Equal(t, "2300", plan.Allocated().String())
	require.Len(t, plan.SetCash, 2)
	assert.Equal(t, "250", plan.SetCash[1].PaidBack.String())
}

func TestDistribute_NeverOverpaysAnyTarget(t *testing.T) {
	purchases := []domain.FuelPurchase{
		fuel(1, 1, "800", "100", "0"),
		fuel(2, 2, "1200", "0", "200"),
		fuel(3, 3, "300", "300", "0"),
	}
	advances := []domain.SetCashAdvance{advance(5, 1, "400", "0")}

	for _, payment := range []string{"1", "250", "700", "1000", "1500", "2100"} {
		plan, err := Distribute(dec(payment), purchases, advances)
		require.NoError(t, err, payment)

		assert.True(t, plan.Allocated().Equal(dec(payment)), "allocated must equal payment %s", payment)
		for _, p := range plan.FuelPurchases {
			assert.False(t, p.Remaining().IsNegative(), "fuel purchase %d overpaid", p.ID)
			assert.True(t, p.OverallPaid.LessThanOrEqual(p.TotalCost.Sub(p.PaidByEmployee)))
		}
		for _, a := range plan.SetCash {
			assert.False(t, a.Outstanding().IsNegative())
		}
		for _, s := range plan.Steps {
			assert.True(t, s.Amount.IsPositive())
			assert.NotEqual(t, int64(3), s.RecordID, "settled purchase must be skipped")
		}
	}
}

func TestDistribute_Errors(t *testing.T) {
	purchases := []domain.FuelPurchase{fuel(1, 1, "1000", "0", "0")}
	advances := []domain.SetCashAdvance{advance(2, 1, "500", "0")}

	tests := []struct {
		name        string
		payment     decimal.Decimal
		target      error
		expectedErr string
	}{
		{
			name:        "zero payment",
			payment:     decimal.Zero,
			target:      domain.ErrValidation,
			expectedErr: "invalid amount: must be greater than zero",
		},
		{
			name:        "negative payment",
			payment:     dec("-10"),
			target:      domain.ErrValidation,
			expectedErr: "invalid amount: must be greater than zero",
		},
		{
			name:        "half paisa payment",
			payment:     dec("50.005"),
			target:      domain.ErrValidation,
			expectedErr: "invalid amount: must not have more than 2 decimal places",
		},
		{
			name:        "overpayment",
			payment:     dec("1600"),
			target:      domain.ErrConsistency,
			expectedErr: "shed wallet: overpayment of Rs. 100.00 (payment Rs. 1600.00, outstanding Rs. 1500.00)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Distribute(tt.payment, purchases, advances)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target))
			assert.Equal(t, tt.expectedErr, err.Error())
			assert.Empty(t, plan.Steps)
		})
	}
}

func TestDistribute_SubPaisaPaymentPlansNothing(t *testing.T) {
	purchases := []domain.FuelPurchase{fuel(1, 1, "50", "0", "0"), fuel(2, 2, "50", "0", "0")}

	plan, err := Distribute(dec("50.005"), purchases, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Empty(t, plan.Steps)
	assert.Empty(t, plan.FuelPurchases)

	plan, err = Distribute(dec("50.010"), purchases, nil)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, "0.01", plan.Steps[1].Amount.String())
}

func TestOutstanding(t *testing.T) {
	purchases := []domain.FuelPurchase{
		fuel(1, 1, "1000", "200", "300"),
		fuel(2, 1, "500", "500", "0"),
	}
	advances := []domain.SetCashAdvance{advance(3, 1, "400", "100"), advance(4, 1, "50", "50")}

	assert.Equal(t, "800", Outstanding(purchases, advances).String())
	assert.True(t, Outstanding(nil, nil).IsZero())
}
