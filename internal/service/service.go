package service

import (
	"github.com/GlebRadaev/shedledger/internal/handlers/credit"
	"github.com/GlebRadaev/shedledger/internal/handlers/employees"
	"github.com/GlebRadaev/shedledger/internal/handlers/fuellogs"
	"github.com/GlebRadaev/shedledger/internal/handlers/shedwallet"
	"github.com/GlebRadaev/shedledger/internal/handlers/suppliers"
	"github.com/GlebRadaev/shedledger/internal/handlers/vehiclelogs"
	"github.com/GlebRadaev/shedledger/internal/repo"
	"github.com/GlebRadaev/shedledger/internal/service/creditservice"
	"github.com/GlebRadaev/shedledger/internal/service/employeeservice"
	"github.com/GlebRadaev/shedledger/internal/service/fuelservice"
	"github.com/GlebRadaev/shedledger/internal/service/shedwalletservice"
	"github.com/GlebRadaev/shedledger/internal/service/supplierservice"
	"github.com/GlebRadaev/shedledger/internal/service/tripservice"
)

// TripService backs both the vehicle log routes and the carry-forward lookup.
type TripService interface {
	vehiclelogs.Service
	employees.TripService
}

type Services struct {
	TripService       TripService
	EmployeeService   employees.WalletService
	FuelService       fuellogs.Service
	ShedWalletService shedwallet.Service
	CreditService     credit.Service
	SupplierService   suppliers.Service
}

func New(repos *repo.Repositories) *Services {
	tx := repos.TxManager
	return &Services{
		TripService:       tripservice.New(repos.EmployeeRepo, repos.TripRepo, repos.CreditRepo, repos.SupplierRepo, tx),
		EmployeeService:   employeeservice.New(repos.EmployeeRepo, repos.TripRepo, tx),
		FuelService:       fuelservice.New(repos.FuelRepo, repos.EmployeeRepo, repos.WalletRepo, tx),
		ShedWalletService: shedwalletservice.New(repos.FuelRepo, repos.TripRepo, repos.EmployeeRepo, repos.WalletRepo, tx),
		CreditService:     creditservice.New(repos.CreditRepo, repos.TripRepo, tx),
		SupplierService:   supplierservice.New(repos.SupplierRepo, tx),
	}
}
