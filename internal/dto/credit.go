package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

type CreditPaymentRequestDTO struct {
	CustomerID           int64            `json:"customerId" validate:"required,gt=0" example:"8"`
	PaymentAmount        decimal.Decimal  `json:"paymentAmount" swaggertype:"string" example:"2000.00"`
	PaymentDate          string           `json:"paymentDate,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-03-05"`
	PaymentMethod        string           `json:"paymentMethod" validate:"max=50" example:"upi"`
	Reference            string           `json:"reference" validate:"max=100" example:"UTR123456"`
	Notes                string           `json:"notes" validate:"max=500" example:"part payment"`
	OriginalCreditAmount *decimal.Decimal `json:"originalCreditAmount" swaggertype:"string" example:"7000.00"`
}

func (d CreditPaymentRequestDTO) ToDomain(operatorID int64) (domain.CreditPaymentInput, error) {
	day, err := validate.Date("paymentDate", d.PaymentDate)
	if err != nil {
		return domain.CreditPaymentInput{}, err
	}
	return domain.CreditPaymentInput{
		CustomerID:           d.CustomerID,
		Amount:               d.PaymentAmount,
		Date:                 day,
		Method:               d.PaymentMethod,
		Reference:            d.Reference,
		Notes:                d.Notes,
		OriginalCreditAmount: d.OriginalCreditAmount,
		CreatedBy:            operatorID,
	}, nil
}

type CreditPaymentDTO struct {
	ID                   int64  `json:"id" example:"21"`
	CustomerID           int64  `json:"customerId" example:"8"`
	PaymentAmount        string `json:"paymentAmount" example:"2000.00"`
	PaymentDate          string `json:"paymentDate" example:"2024-03-05"`
	PaymentMethod        string `json:"paymentMethod" example:"upi"`
	Reference            string `json:"reference" example:"UTR123456"`
	Notes                string `json:"notes" example:"part payment"`
	OriginalCreditAmount string `json:"originalCreditAmount" example:"7000.00"`
	CreatedBy            int64  `json:"createdBy" example:"1"`
}

func FromCreditPayment(p domain.CreditPayment) CreditPaymentDTO {
	return CreditPaymentDTO{
		ID:                   p.ID,
		CustomerID:           p.CustomerID,
		PaymentAmount:        money(p.Amount),
		PaymentDate:          date(p.Date),
		PaymentMethod:        p.Method,
		Reference:            p.Reference,
		Notes:                p.Notes,
		OriginalCreditAmount: money(p.OriginalCreditAmount),
		CreatedBy:            p.CreatedBy,
	}
}

func FromCreditPayments(payments []domain.CreditPayment) []CreditPaymentDTO {
	out := make([]CreditPaymentDTO, len(payments))
	for i, p := range payments {
		out[i] = FromCreditPayment(p)
	}
	return out
}

type CreditAccountDTO struct {
	CustomerID      int64  `json:"customerId" example:"8"`
	TotalCredit     string `json:"totalCredit" example:"10000.00"`
	TotalPaid       string `json:"totalPaid" example:"5000.00"`
	RemainingCredit string `json:"remainingCredit" example:"5000.00"`
}

func FromCreditAccount(a domain.CustomerCreditAccount) CreditAccountDTO {
	return CreditAccountDTO{
		CustomerID:      a.CustomerID,
		TotalCredit:     money(a.TotalCredit),
		TotalPaid:       money(a.TotalPaid),
		RemainingCredit: money(a.RemainingCredit),
	}
}

type CreditPaymentResponseDTO struct {
	Payment CreditPaymentDTO `json:"payment"`
	Account CreditAccountDTO `json:"account"`
	Warning string           `json:"warning,omitempty" example:"original credit amount Rs. 8000.00 differs from current remaining credit Rs. 7000.00"`
}

func FromCreditPaymentResult(r domain.CreditPaymentResult) CreditPaymentResponseDTO {
	return CreditPaymentResponseDTO{
		Payment: FromCreditPayment(r.Payment),
		Account: FromCreditAccount(r.Account),
		Warning: r.Warning,
	}
}
