package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

// SupplyTransaction books material received from a supplier. The amount is
// stored negative: the shed owes more.
func SupplyTransaction(supplierID int64, item string, amount decimal.Decimal, description string) (domain.SupplierTransaction, error) {
	if strings.TrimSpace(item) == "" {
		return domain.SupplierTransaction{}, domain.NewValidationError("item", "is required")
	}
	if !amount.IsPositive() {
		return domain.SupplierTransaction{}, domain.NewValidationError("amount", "must be greater than zero")
	}
	if err := validate.Money("amount", amount); err != nil {
		return domain.SupplierTransaction{}, err
	}
	return domain.SupplierTransaction{
		SupplierID:  supplierID,
		Type:        domain.SupplierSupply,
		Amount:      amount.Neg(),
		Item:        strings.TrimSpace(item),
		Description: description,
	}, nil
}

func PaymentTransaction(supplierID int64, amount decimal.Decimal, description string) (domain.SupplierTransaction, error) {
	if !amount.IsPositive() {
		return domain.SupplierTransaction{}, domain.NewValidationError("amount", "must be greater than zero")
	}
	if err := validate.Money("amount", amount); err != nil {
		return domain.SupplierTransaction{}, err
	}
	return domain.SupplierTransaction{
		SupplierID:  supplierID,
		Type:        domain.SupplierPayment,
		Amount:      amount,
		Description: description,
	}, nil
}

// AdjustmentTransaction books a signed correction.
func AdjustmentTransaction(supplierID int64, amount decimal.Decimal, item, description string) (domain.SupplierTransaction, error) {
	if amount.IsZero() {
		return domain.SupplierTransaction{}, domain.NewValidationError("amount", "must not be zero")
	}
	if err := validate.Money("amount", amount); err != nil {
		return domain.SupplierTransaction{}, err
	}
	if strings.TrimSpace(description) == "" {
		return domain.SupplierTransaction{}, domain.NewValidationError("description", "is required for adjustments")
	}
	return domain.SupplierTransaction{
		SupplierID:  supplierID,
		Type:        domain.SupplierAdjustment,
		Amount:      amount,
		Item:        strings.TrimSpace(item),
		Description: description,
	}, nil
}

// WalletBalance is the sum of all transaction amounts. Negative means the
// shed owes the supplier.
func WalletBalance(txs []domain.SupplierTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

// PendingByItem groups transactions by item tag, sorted by item.
func PendingByItem(txs []domain.SupplierTransaction) []domain.ItemBalance {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		sums[tx.Item] = sums[tx.Item].Add(tx.Amount)
	}
	items := make([]domain.ItemBalance, 0, len(sums))
	for item, amount := range sums {
		items = append(items, domain.ItemBalance{Item: item, Amount: amount})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Item < items[j].Item })
	return items
}
