// Package ledger holds the reconciliation rules of the shed back-office as pure
// functions over persisted records. Nothing here caches: every figure is folded
// from the records it is given, so callers always see their latest writes.
package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
)

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CarryForward folds cashCollected + setCashTaken - expenses - salaryDeducted
// over every record dated strictly before asOf, oldest first. A sheet stamps its
// salary deduction on all of its rows, the fold subtracts it once per sheet.
func CarryForward(records []domain.TripRecord, asOf time.Time) decimal.Decimal {
	cutoff := Day(asOf)
	prior := make([]domain.TripRecord, 0, len(records))
	for _, r := range records {
		if Day(r.Date).Before(cutoff) {
			prior = append(prior, r)
		}
	}
	SortTrips(prior)

	total := decimal.Zero
	salaried := make(map[uuid.UUID]struct{})
	for _, r := range prior {
		total = total.Add(r.CashCollected).Add(r.SetCashTaken).Sub(ExpensesTotal(r.Expenses))
		if r.SheetID != uuid.Nil {
			if _, seen := salaried[r.SheetID]; seen {
				continue
			}
			salaried[r.SheetID] = struct{}{}
		}
		total = total.Sub(r.SalaryDeducted)
	}
	return total
}

// SortTrips orders records by date, ties by id.
func SortTrips(records []domain.TripRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		di, dj := Day(records[i].Date), Day(records[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return records[i].ID < records[j].ID
	})
}
