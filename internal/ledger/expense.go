package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
)

func ExpensesTotal(expenses []domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// GrossFloat is the cash a batch of trips puts in the employee's hands.
// Credit is left out, it has not been collected yet. The opening snapshot is
// counted once per sheet: later rows of a sheet already include earlier ones.
func GrossFloat(records []domain.TripRecord) decimal.Decimal {
	gross := decimal.Zero
	opening := make(map[uuid.UUID]domain.TripRecord)
	for _, r := range records {
		gross = gross.Add(r.CashCollected).Add(r.SetCashTaken)
		if r.SheetID == uuid.Nil {
			gross = gross.Add(r.YesterdayBalance)
			continue
		}
		first, ok := opening[r.SheetID]
		if !ok || Day(r.Date).Before(Day(first.Date)) {
			opening[r.SheetID] = r
		}
	}
	for _, r := range opening {
		gross = gross.Add(r.YesterdayBalance)
	}
	return gross
}

// NetOfExpenses nets ad-hoc expense rows of a batch out of its gross float.
func NetOfExpenses(records []domain.TripRecord, expenseRows []domain.Expense) decimal.Decimal {
	return GrossFloat(records).Sub(ExpensesTotal(expenseRows))
}

// SplitExpenses separates sheet rows by kind. Rows without a kind are operational.
func SplitExpenses(rows []domain.Expense) (operational, salary []domain.Expense) {
	for _, row := range rows {
		switch row.Kind {
		case domain.ExpenseSalary:
			salary = append(salary, row)
		default:
			row.Kind = domain.ExpenseOperational
			operational = append(operational, row)
		}
	}
	return operational, salary
}
