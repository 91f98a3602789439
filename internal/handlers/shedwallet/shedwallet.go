package shedwallet

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/dto"
	"github.com/GlebRadaev/shedledger/pkg/auth"
	"github.com/GlebRadaev/shedledger/pkg/utils"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

type Service interface {
	PendingDetails(ctx context.Context) (*domain.PendingDetails, error)
	RecordTransaction(ctx context.Context, in domain.WalletTransactionInput) (*domain.ShedWalletTransaction, error)
	ListTransactions(ctx context.Context, limit int) ([]domain.ShedWalletTransaction, error)
}

type ShedWalletHandler struct {
	walletService Service
}

func New(walletService Service) *ShedWalletHandler {
	return &ShedWalletHandler{
		walletService: walletService,
	}
}

// PendingDetails godoc
//
//	@Summary		What the shed owes
//	@Description	Unpaid fuel and outstanding cash advances, in total and per employee.
//	@Tags			Shed wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PendingDetailsDTO
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/shed-wallet/pending-details [get]
func (h *ShedWalletHandler) PendingDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.walletService.PendingDetails(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromPendingDetails(*details))
}

// RecordTransaction godoc
//
//	@Summary		Record a shed wallet transaction
//	@Description	A payment_sent with settleAggregate (or fuelLogIds) is distributed over the oldest debts first. Other types are only appended.
//	@Tags			Shed wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WalletTransactionRequestDTO	true	"Transaction"
//	@Success		201		{object}	dto.WalletTransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid transaction"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Fuel purchase not pending"
//	@Failure		409		{object}	utils.Response	"Overpayment"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/shed-wallet/transaction [post]
func (h *ShedWalletHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.WalletTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	tx, err := h.walletService.RecordTransaction(r.Context(), req.ToDomain(auth.OperatorID(r.Context())))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromWalletTransaction(*tx))
}

// ListTransactions godoc
//
//	@Summary		Latest shed wallet transactions
//	@Tags			Shed wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"How many, newest first (default 50, at most 500)"
//	@Success		200		{array}		dto.WalletTransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/shed-wallet/transactions [get]
func (h *ShedWalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithDomainError(w, domain.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
		limit = n
	}

	txs, err := h.walletService.ListTransactions(r.Context(), limit)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWalletTransactions(txs))
}
