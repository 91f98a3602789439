package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
)

type WalletTransactionRequestDTO struct {
	Type            string          `json:"type" validate:"required,oneof=payment_sent payment_received fuel_purchase adjustment refund" example:"payment_sent"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string" example:"6500.00"`
	Description     string          `json:"description" validate:"max=500" example:"weekly settlement"`
	PaymentMethod   string          `json:"paymentMethod" validate:"max=50" example:"cash"`
	SettleAggregate bool            `json:"settleAggregate" example:"true"`
	FuelLogIDs      []int64         `json:"fuelLogIds,omitempty" validate:"omitempty,dive,gt=0"`
}

func (d WalletTransactionRequestDTO) ToDomain(operatorID int64) domain.WalletTransactionInput {
	return domain.WalletTransactionInput{
		Type:            domain.WalletTxType(d.Type),
		Amount:          d.Amount,
		Description:     d.Description,
		PaymentMethod:   d.PaymentMethod,
		SettleAggregate: d.SettleAggregate,
		FuelLogIDs:      d.FuelLogIDs,
		CreatedBy:       operatorID,
	}
}

type AllocationStepDTO struct {
	Kind           string `json:"kind" example:"fuel_purchase"`
	RecordID       int64  `json:"recordId" example:"7"`
	Date           string `json:"date" example:"2024-03-02"`
	Amount         string `json:"amount" example:"4000.00"`
	RemainingAfter string `json:"remainingAfter" example:"0.00"`
}

type WalletTransactionDTO struct {
	ID            string              `json:"id" example:"9c1d3f5e-2a7b-4e61-8f0d-3b2a1c4d5e6f"`
	Type          string              `json:"type" example:"payment_sent"`
	Amount        string              `json:"amount" example:"6500.00"`
	Description   string              `json:"description" example:"weekly settlement"`
	PaymentMethod string              `json:"paymentMethod" example:"cash"`
	Status        string              `json:"status" example:"completed"`
	Allocations   []AllocationStepDTO `json:"allocations"`
	CreatedBy     int64               `json:"createdBy" example:"1"`
	CreatedAt     string              `json:"createdAt" example:"2024-03-02T10:00:00Z"`
}

func FromWalletTransaction(tx domain.ShedWalletTransaction) WalletTransactionDTO {
	steps := make([]AllocationStepDTO, len(tx.Allocations))
	for i, s := range tx.Allocations {
		steps[i] = AllocationStepDTO{
			Kind:           string(s.Kind),
			RecordID:       s.RecordID,
			Date:           date(s.Date),
			Amount:         money(s.Amount),
			RemainingAfter: money(s.RemainingAfter),
		}
	}
	return WalletTransactionDTO{
		ID:            tx.ID.String(),
		Type:          string(tx.Type),
		Amount:        money(tx.Amount),
		Description:   tx.Description,
		PaymentMethod: tx.PaymentMethod,
		Status:        string(tx.Status),
		Allocations:   steps,
		CreatedBy:     tx.CreatedBy,
		CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
	}
}

func FromWalletTransactions(txs []domain.ShedWalletTransaction) []WalletTransactionDTO {
	out := make([]WalletTransactionDTO, len(txs))
	for i, tx := range txs {
		out[i] = FromWalletTransaction(tx)
	}
	return out
}

type EmployeePendingDTO struct {
	EmployeeID   int64  `json:"employeeId" example:"1"`
	EmployeeName string `json:"employeeName" example:"Ravi"`
	PendingFuel  string `json:"pendingFuel" example:"4000.00"`
	SetCash      string `json:"setCash" example:"2500.00"`
	Total        string `json:"total" example:"6500.00"`
}

type SetCashAdvanceDTO struct {
	TripID      int64  `json:"tripId" example:"11"`
	EmployeeID  int64  `json:"employeeId" example:"1"`
	VehicleID   int64  `json:"vehicleId" example:"4"`
	Date        string `json:"date" example:"2024-03-02"`
	Taken       string `json:"setCashTaken" example:"2500.00"`
	PaidBack    string `json:"setCashPaidBack" example:"0.00"`
	Outstanding string `json:"outstanding" example:"2500.00"`
}

type PendingDetailsDTO struct {
	TotalPendingFuel       string               `json:"totalPendingFuel" example:"4000.00"`
	TotalSetCashTaken      string               `json:"totalSetCashTaken" example:"2500.00"`
	TotalPendingAmount     string               `json:"totalPendingAmount" example:"6500.00"`
	PendingByEmployee      []EmployeePendingDTO `json:"pendingByEmployee"`
	VehicleLogsWithSetCash []SetCashAdvanceDTO  `json:"vehicleLogsWithSetCash"`
}

func FromPendingDetails(d domain.PendingDetails) PendingDetailsDTO {
	byEmployee := make([]EmployeePendingDTO, len(d.PendingByEmployee))
	for i, e := range d.PendingByEmployee {
		byEmployee[i] = EmployeePendingDTO{
			EmployeeID:   e.EmployeeID,
			EmployeeName: e.EmployeeName,
			PendingFuel:  money(e.PendingFuel),
			SetCash:      money(e.SetCash),
			Total:        money(e.Total),
		}
	}
	advances := make([]SetCashAdvanceDTO, len(d.VehicleLogsWithSetCash))
	for i, a := range d.VehicleLogsWithSetCash {
		advances[i] = SetCashAdvanceDTO{
			TripID:      a.TripID,
			EmployeeID:  a.EmployeeID,
			VehicleID:   a.VehicleID,
			Date:        date(a.Date),
			Taken:       money(a.Taken),
			PaidBack:    money(a.PaidBack),
			Outstanding: money(a.Outstanding()),
		}
	}
	return PendingDetailsDTO{
		TotalPendingFuel:       money(d.TotalPendingFuel),
		TotalSetCashTaken:      money(d.TotalSetCashTaken),
		TotalPendingAmount:     money(d.TotalPendingAmount),
		PendingByEmployee:      byEmployee,
		VehicleLogsWithSetCash: advances,
	}
}
