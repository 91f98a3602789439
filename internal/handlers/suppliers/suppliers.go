package suppliers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/dto"
	"github.com/GlebRadaev/shedledger/pkg/utils"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

type Service interface {
	RecordTransaction(ctx context.Context, in domain.SupplierTransaction) (*domain.SupplierTransaction, error)
	Account(ctx context.Context, supplierID int64) (*domain.SupplierAccount, error)
	PendingByItem(ctx context.Context, supplierID int64) ([]domain.ItemBalance, error)
}

type SupplierHandler struct {
	supplierService Service
}

func New(supplierService Service) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
	}
}

// RecordTransaction godoc
//
//	@Summary		Record a supply, payment or adjustment
//	@Description	Supply and payment amounts are positive. An adjustment is signed, positive reduces what the shed owes, and needs a description.
//	@Tags			Suppliers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Supplier id"
//	@Param			request	body		dto.SupplierTransactionRequestDTO	true	"Transaction"
//	@Success		201		{object}	dto.SupplierTransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid transaction"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Supplier not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/suppliers/{id}/wallet [post]
func (h *SupplierHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	supplierID, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	var req dto.SupplierTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	created, err := h.supplierService.RecordTransaction(r.Context(), req.ToDomain(supplierID))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromSupplierTransaction(*created))
}

// Account godoc
//
//	@Summary		Supplier wallet
//	@Description	Negative balance is what the shed owes the supplier.
//	@Tags			Suppliers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Supplier id"
//	@Success		200	{object}	dto.SupplierAccountDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Supplier not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/suppliers/{id}/wallet [get]
func (h *SupplierHandler) Account(w http.ResponseWriter, r *http.Request) {
	supplierID, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	account, err := h.supplierService.Account(r.Context(), supplierID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSupplierAccount(*account))
}

// PendingByItem godoc
//
//	@Summary		Supplier balance per item
//	@Tags			Suppliers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Supplier id"
//	@Success		200	{array}		dto.ItemBalanceDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Supplier not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/suppliers/{id}/pending-items [get]
func (h *SupplierHandler) PendingByItem(w http.ResponseWriter, r *http.Request) {
	supplierID, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	items, err := h.supplierService.PendingByItem(r.Context(), supplierID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromItemBalances(items))
}
