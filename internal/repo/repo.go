package repo

import (
	"github.com/GlebRadaev/shedledger/internal/pg"
	creditrepo "github.com/GlebRadaev/shedledger/internal/repo/credit-repo"
	employeerepo "github.com/GlebRadaev/shedledger/internal/repo/employee-repo"
	fuelrepo "github.com/GlebRadaev/shedledger/internal/repo/fuel-repo"
	supplierrepo "github.com/GlebRadaev/shedledger/internal/repo/supplier-repo"
	triprepo "github.com/GlebRadaev/shedledger/internal/repo/trip-repo"
	walletrepo "github.com/GlebRadaev/shedledger/internal/repo/wallet-repo"
)

type Repositories struct {
	EmployeeRepo *employeerepo.Repository
	TripRepo     *triprepo.Repository
	FuelRepo     *fuelrepo.Repository
	WalletRepo   *walletrepo.Repository
	CreditRepo   *creditrepo.Repository
	SupplierRepo *supplierrepo.Repository
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		EmployeeRepo: employeerepo.New(conn, txManager),
		TripRepo:     triprepo.New(conn, txManager),
		FuelRepo:     fuelrepo.New(conn, txManager),
		WalletRepo:   walletrepo.New(conn, txManager),
		CreditRepo:   creditrepo.New(conn, txManager),
		SupplierRepo: supplierrepo.New(conn, txManager),
		TxManager:    txManager,
	}
}
