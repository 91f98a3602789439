package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
)

type SupplierTransactionRequestDTO struct {
	Type        string          `json:"type" validate:"required,oneof=supply payment adjustment" example:"supply"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"1500.00"`
	Item        string          `json:"item" validate:"max=100" example:"sand"`
	Description string          `json:"description" validate:"max=500" example:"two loads"`
}

func (d SupplierTransactionRequestDTO) ToDomain(supplierID int64) domain.SupplierTransaction {
	return domain.SupplierTransaction{
		SupplierID:  supplierID,
		Type:        domain.SupplierTxType(d.Type),
		Amount:      d.Amount,
		Item:        d.Item,
		Description: d.Description,
	}
}

type SupplierTransactionDTO struct {
	ID          int64  `json:"id" example:"30"`
	SupplierID  int64  `json:"supplierId" example:"2"`
	Type        string `json:"type" example:"supply"`
	Amount      string `json:"amount" example:"-1500.00"`
	Item        string `json:"item,omitempty" example:"sand"`
	Description string `json:"description,omitempty" example:"two loads"`
	CreatedAt   string `json:"createdAt" example:"2024-03-02T10:00:00Z"`
}

func FromSupplierTransaction(tx domain.SupplierTransaction) SupplierTransactionDTO {
	return SupplierTransactionDTO{
		ID:          tx.ID,
		SupplierID:  tx.SupplierID,
		Type:        string(tx.Type),
		Amount:      money(tx.Amount),
		Item:        tx.Item,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

type SupplierAccountDTO struct {
	SupplierID    int64                    `json:"supplierId" example:"2"`
	Name          string                   `json:"name" example:"Sri Sand Suppliers"`
	WalletBalance string                   `json:"walletBalance" example:"-500.00"`
	Transactions  []SupplierTransactionDTO `json:"transactions"`
}

func FromSupplierAccount(a domain.SupplierAccount) SupplierAccountDTO {
	txs := make([]SupplierTransactionDTO, len(a.Transactions))
	for i, tx := range a.Transactions {
		txs[i] = FromSupplierTransaction(tx)
	}
	return SupplierAccountDTO{
		SupplierID:    a.Supplier.ID,
		Name:          a.Supplier.Name,
		WalletBalance: money(a.WalletBalance),
		Transactions:  txs,
	}
}

type ItemBalanceDTO struct {
	Item   string `json:"item" example:"sand"`
	Amount string `json:"amount" example:"-1000.00"`
}

func FromItemBalances(items []domain.ItemBalance) []ItemBalanceDTO {
	out := make([]ItemBalanceDTO, len(items))
	for i, b := range items {
		out[i] = ItemBalanceDTO{Item: b.Item, Amount: money(b.Amount)}
	}
	return out
}
