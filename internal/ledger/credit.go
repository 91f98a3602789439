package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

func CreditAccount(customerID int64, totalCredit, totalPaid decimal.Decimal) domain.CustomerCreditAccount {
	return domain.CustomerCreditAccount{
		CustomerID:      customerID,
		TotalCredit:     totalCredit,
		TotalPaid:       totalPaid,
		RemainingCredit: totalCredit.Sub(totalPaid),
	}
}

// CreditAccountFrom folds a customer's account from raw trips and payments.
func CreditAccountFrom(customerID int64, trips []domain.TripRecord, payments []domain.CreditPayment) domain.CustomerCreditAccount {
	credit := decimal.Zero
	for _, t := range trips {
		if t.CustomerID != nil && *t.CustomerID == customerID {
			credit = credit.Add(t.CreditExtended)
		}
	}
	paid := decimal.Zero
	for _, p := range payments {
		if p.CustomerID == customerID {
			paid = paid.Add(p.Amount)
		}
	}
	return CreditAccount(customerID, credit, paid)
}

// CheckCreditPayment validates a payment against the account as computed now.
// A client that read a different remaining credit gets a warning, not an error:
// trips entered meanwhile legitimately move the total.
func CheckCreditPayment(amount decimal.Decimal, originalCreditAmount *decimal.Decimal, account domain.CustomerCreditAccount) (string, error) {
	if !amount.IsPositive() {
		return "", domain.NewValidationError("paymentAmount", "must be greater than zero")
	}
	if originalCreditAmount == nil {
		return "", domain.NewValidationError("originalCreditAmount", "is required")
	}
	if err := validate.MoneyFields(
		validate.MoneyField{Name: "paymentAmount", Amount: amount},
		validate.MoneyField{Name: "originalCreditAmount", Amount: *originalCreditAmount},
	); err != nil {
		return "", err
	}
	if amount.GreaterThan(account.RemainingCredit) {
		return "", &domain.OverpaymentError{
			Record:      fmt.Sprintf("customer %d credit", account.CustomerID),
			Payment:     amount,
			Outstanding: account.RemainingCredit,
		}
	}
	if !originalCreditAmount.Equal(account.RemainingCredit) {
		return fmt.Sprintf("original credit amount Rs. %s differs from current remaining credit Rs. %s",
			originalCreditAmount.StringFixed(2), account.RemainingCredit.StringFixed(2)), nil
	}
	return "", nil
}
