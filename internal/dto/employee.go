package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
)

type WalletAdjustmentRequestDTO struct {
	Type        string          `json:"type" validate:"required,oneof=salary_accrued salary_deducted adjustment" example:"salary_accrued"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"500.00"`
	Description string          `json:"description" validate:"max=500" example:"march wages"`
}

type EmployeeDTO struct {
	ID               int64  `json:"id" example:"1"`
	Name             string `json:"name" example:"Ravi"`
	PendingSalary    string `json:"pendingSalary" example:"800.00"`
	YesterdayBalance string `json:"yesterdayBalance" example:"2150.00"`
}

func FromEmployee(e domain.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:               e.ID,
		Name:             e.Name,
		PendingSalary:    money(e.PendingSalary),
		YesterdayBalance: money(e.YesterdayBalance),
	}
}

type EmployeeWalletEntryDTO struct {
	ID          int64  `json:"id" example:"3"`
	Type        string `json:"type" example:"salary_accrued"`
	Amount      string `json:"amount" example:"500.00"`
	Description string `json:"description" example:"march wages"`
	CreatedAt   string `json:"createdAt" example:"2024-03-02T10:00:00Z"`
}

type EmployeeWalletDTO struct {
	Employee     EmployeeDTO              `json:"employee"`
	CarryForward string                   `json:"carryForward" example:"2150.00"`
	AsOf         string                   `json:"asOf" example:"2024-03-05"`
	Entries      []EmployeeWalletEntryDTO `json:"entries"`
}

func FromEmployeeWallet(w domain.EmployeeWallet) EmployeeWalletDTO {
	entries := make([]EmployeeWalletEntryDTO, len(w.Entries))
	for i, e := range w.Entries {
		entries[i] = EmployeeWalletEntryDTO{
			ID:          e.ID,
			Type:        string(e.Type),
			Amount:      money(e.Amount),
			Description: e.Description,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
	}
	return EmployeeWalletDTO{
		Employee:     FromEmployee(w.Employee),
		CarryForward: money(w.CarryForward),
		AsOf:         date(w.AsOf),
		Entries:      entries,
	}
}

type CarryForwardDTO struct {
	EmployeeID   int64  `json:"employeeId" example:"1"`
	Date         string `json:"date" example:"2024-03-05"`
	CarryForward string `json:"carryForward" example:"2150.00"`
}
