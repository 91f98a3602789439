package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

type FuelPurchaseRequestDTO struct {
	VehicleID      int64           `json:"vehicleId" validate:"required,gt=0" example:"4"`
	EmployeeID     int64           `json:"employeeId" validate:"required,gt=0" example:"1"`
	Date           string          `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-02"`
	FuelAmount     decimal.Decimal `json:"fuelAmount" swaggertype:"string" example:"40.5"`
	TotalCost      decimal.Decimal `json:"totalCost" swaggertype:"string" example:"5000.00"`
	PaidByEmployee decimal.Decimal `json:"paidByEmployee" swaggertype:"string" example:"1000.00"`
}

func (d FuelPurchaseRequestDTO) ToDomain() (domain.FuelPurchase, error) {
	day, err := validate.Date("date", d.Date)
	if err != nil {
		return domain.FuelPurchase{}, err
	}
	return domain.FuelPurchase{
		VehicleID:      d.VehicleID,
		EmployeeID:     d.EmployeeID,
		Date:           day,
		FuelAmount:     d.FuelAmount,
		TotalCost:      d.TotalCost,
		PaidByEmployee: d.PaidByEmployee,
	}, nil
}

type FuelPaymentRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"1500.00"`
}

type FuelPurchaseDTO struct {
	ID             int64  `json:"id" example:"7"`
	VehicleID      int64  `json:"vehicleId" example:"4"`
	EmployeeID     int64  `json:"employeeId" example:"1"`
	Date           string `json:"date" example:"2024-03-02"`
	FuelAmount     string `json:"fuelAmount" example:"40.50"`
	TotalCost      string `json:"totalCost" example:"5000.00"`
	PaidByEmployee string `json:"paidByEmployee" example:"1000.00"`
	OverallPaid    string `json:"overallPaid" example:"1500.00"`
	Remaining      string `json:"remaining" example:"2500.00"`
	Status         string `json:"status" example:"partial"`
}

func FromFuelPurchase(p domain.FuelPurchase) FuelPurchaseDTO {
	return FuelPurchaseDTO{
		ID:             p.ID,
		VehicleID:      p.VehicleID,
		EmployeeID:     p.EmployeeID,
		Date:           date(p.Date),
		FuelAmount:     money(p.FuelAmount),
		TotalCost:      money(p.TotalCost),
		PaidByEmployee: money(p.PaidByEmployee),
		OverallPaid:    money(p.OverallPaid),
		Remaining:      money(p.Remaining()),
		Status:         string(p.Status()),
	}
}

func FromFuelPurchases(purchases []domain.FuelPurchase) []FuelPurchaseDTO {
	out := make([]FuelPurchaseDTO, len(purchases))
	for i, p := range purchases {
		out[i] = FromFuelPurchase(p)
	}
	return out
}
