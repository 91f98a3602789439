package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

// Allocation is the plan of one lump payment. FuelPurchases and SetCash hold
// the updated copies of every record the payment touched, in allocation order.
type Allocation struct {
	Payment       decimal.Decimal
	Steps         []domain.AllocationStep
	FuelPurchases []domain.FuelPurchase
	SetCash       []domain.SetCashAdvance
}

func (a Allocation) Allocated() decimal.Decimal {
	total := decimal.Zero
	for _, s := range a.Steps {
		total = total.Add(s.Amount)
	}
	return total
}

// Outstanding is the debt a lump payment can settle.
func Outstanding(fuel []domain.FuelPurchase, setCash []domain.SetCashAdvance) decimal.Decimal {
	total := decimal.Zero
	for _, p := range fuel {
		if r := p.Remaining(); r.IsPositive() {
			total = total.Add(r)
		}
	}
	for _, a := range setCash {
		if o := a.Outstanding(); o.IsPositive() {
			total = total.Add(o)
		}
	}
	return total
}

// Distribute spreads payment over fuel purchases oldest first, then over
// outstanding cash advances oldest first. A payment above the total debt is
// rejected as a whole, the inputs are never modified.
func Distribute(payment decimal.Decimal, fuel []domain.FuelPurchase, setCash []domain.SetCashAdvance) (Allocation, error) {
	if !payment.IsPositive() {
		return Allocation{}, domain.NewValidationError("amount", "must be greater than zero")
	}
	if err := validate.Money("amount", payment); err != nil {
		return Allocation{}, err
	}
	if outstanding := Outstanding(fuel, setCash); payment.GreaterThan(outstanding) {
		return Allocation{}, &domain.OverpaymentError{
			Record:      "shed wallet",
			Payment:     payment,
			Outstanding: outstanding,
		}
	}

	purchases := append([]domain.FuelPurchase(nil), fuel...)
	sort.SliceStable(purchases, func(i, j int) bool {
		di, dj := Day(purchases[i].Date), Day(purchases[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return purchases[i].ID < purchases[j].ID
	})
	advances := append([]domain.SetCashAdvance(nil), setCash...)
	sort.SliceStable(advances, func(i, j int) bool {
		di, dj := Day(advances[i].Date), Day(advances[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return advances[i].TripID < advances[j].TripID
	})

	plan := Allocation{Payment: payment}
	left := payment
	for _, p := range purchases {
		if !left.IsPositive() {
			break
		}
		remaining := p.Remaining()
		if !remaining.IsPositive() {
			continue
		}
		take := decimal.Min(left, remaining)
		updated, err := ApplyFuelPayment(p, take)
		if err != nil {
			return Allocation{}, err
		}
		left = left.Sub(take)
		plan.FuelPurchases = append(plan.FuelPurchases, updated)
		plan.Steps = append(plan.Steps, domain.AllocationStep{
			Kind:           domain.AllocationFuelPurchase,
			RecordID:       p.ID,
			Date:           p.Date,
			Amount:         take,
			RemainingAfter: updated.Remaining(),
		})
	}

	for _, a := range advances {
		if !left.IsPositive() {
			break
		}
		outstanding := a.Outstanding()
		if !outstanding.IsPositive() {
			continue
		}
		take := decimal.Min(left, outstanding)
		a.PaidBack = a.PaidBack.Add(take)
		left = left.Sub(take)
		plan.SetCash = append(plan.SetCash, a)
		plan.Steps = append(plan.Steps, domain.AllocationStep{
			Kind:           domain.AllocationSetCash,
			RecordID:       a.TripID,
			Date:           a.Date,
			Amount:         take,
			RemainingAfter: a.Outstanding(),
		})
	}

	return plan, nil
}
