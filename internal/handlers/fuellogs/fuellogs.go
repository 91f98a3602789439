package fuellogs

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/dto"
	"github.com/GlebRadaev/shedledger/pkg/auth"
	"github.com/GlebRadaev/shedledger/pkg/utils"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

type Service interface {
	RecordPurchase(ctx context.Context, p domain.FuelPurchase, operatorID int64) (*domain.FuelPurchase, error)
	ApplyPayment(ctx context.Context, id int64, amount decimal.Decimal, operatorID int64) (*domain.FuelPurchase, error)
	ListPending(ctx context.Context) ([]domain.FuelPurchase, error)
}

type FuelLogHandler struct {
	fuelService Service
}

func New(fuelService Service) *FuelLogHandler {
	return &FuelLogHandler{
		fuelService: fuelService,
	}
}

// RecordPurchase godoc
//
//	@Summary		Record a fuel purchase
//	@Description	Store a fuel purchase bought on credit and append a fuel_purchase row to the shed wallet.
//	@Tags			Fuel logs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FuelPurchaseRequestDTO	true	"Fuel purchase"
//	@Success		201		{object}	dto.FuelPurchaseDTO
//	@Failure		400		{object}	utils.Response	"Invalid purchase"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Unknown employee"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/fuel-logs [post]
func (h *FuelLogHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req dto.FuelPurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	purchase, err := req.ToDomain()
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	created, err := h.fuelService.RecordPurchase(r.Context(), purchase, auth.OperatorID(r.Context()))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromFuelPurchase(*created))
}

// ApplyPayment godoc
//
//	@Summary		Pay towards a fuel purchase
//	@Tags			Fuel logs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Fuel purchase id"
//	@Param			request	body		dto.FuelPaymentRequestDTO	true	"Payment"
//	@Success		200		{object}	dto.FuelPurchaseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Fuel purchase not found"
//	@Failure		409		{object}	utils.Response	"Payment exceeds what is left"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/fuel-logs/{id} [put]
func (h *FuelLogHandler) ApplyPayment(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	var req dto.FuelPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.fuelService.ApplyPayment(r.Context(), id, req.Amount, auth.OperatorID(r.Context()))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromFuelPurchase(*updated))
}

// ListPending godoc
//
//	@Summary		List unpaid fuel purchases
//	@Tags			Fuel logs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.FuelPurchaseDTO
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/fuel-logs/pending [get]
func (h *FuelLogHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.fuelService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromFuelPurchases(pending))
}
