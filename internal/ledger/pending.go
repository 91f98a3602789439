package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
)

// Pending rolls unpaid fuel and outstanding cash advances into one figure,
// broken down per employee. names resolves employee ids for display.
func Pending(fuel []domain.FuelPurchase, setCash []domain.SetCashAdvance, names map[int64]string) domain.PendingDetails {
	details := domain.PendingDetails{
		TotalPendingFuel:  decimal.Zero,
		TotalSetCashTaken: decimal.Zero,
	}
	byEmployee := make(map[int64]*domain.EmployeePending)
	entry := func(id int64) *domain.EmployeePending {
		e, ok := byEmployee[id]
		if !ok {
			e = &domain.EmployeePending{
				EmployeeID:   id,
				EmployeeName: names[id],
				PendingFuel:  decimal.Zero,
				SetCash:      decimal.Zero,
			}
			byEmployee[id] = e
		}
		return e
	}

	for _, p := range fuel {
		remaining := p.Remaining()
		if !remaining.IsPositive() {
			continue
		}
		details.TotalPendingFuel = details.TotalPendingFuel.Add(remaining)
		e := entry(p.EmployeeID)
		e.PendingFuel = e.PendingFuel.Add(remaining)
	}
	for _, a := range setCash {
		outstanding := a.Outstanding()
		if !outstanding.IsPositive() {
			continue
		}
		details.TotalSetCashTaken = details.TotalSetCashTaken.Add(outstanding)
		details.VehicleLogsWithSetCash = append(details.VehicleLogsWithSetCash, a)
		e := entry(a.EmployeeID)
		e.SetCash = e.SetCash.Add(outstanding)
	}

	details.TotalPendingAmount = details.TotalPendingFuel.Add(details.TotalSetCashTaken)
	for _, e := range byEmployee {
		e.Total = e.PendingFuel.Add(e.SetCash)
		details.PendingByEmployee = append(details.PendingByEmployee, *e)
	}
	sort.Slice(details.PendingByEmployee, func(i, j int) bool {
		return details.PendingByEmployee[i].EmployeeID < details.PendingByEmployee[j].EmployeeID
	})
	sort.SliceStable(details.VehicleLogsWithSetCash, func(i, j int) bool {
		return Day(details.VehicleLogsWithSetCash[i].Date).Before(Day(details.VehicleLogsWithSetCash[j].Date))
	})
	return details
}
