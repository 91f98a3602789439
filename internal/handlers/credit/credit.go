package credit

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/dto"
	"github.com/GlebRadaev/shedledger/pkg/auth"
	"github.com/GlebRadaev/shedledger/pkg/utils"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

type Service interface {
	RecordPayment(ctx context.Context, in domain.CreditPaymentInput) (*domain.CreditPaymentResult, error)
	DeletePayment(ctx context.Context, id int64) (*domain.CustomerCreditAccount, error)
	Account(ctx context.Context, customerID int64) (*domain.CustomerCreditAccount, error)
	ListPayments(ctx context.Context, customerID int64) ([]domain.CreditPayment, error)
}

type CreditHandler struct {
	creditService Service
}

func New(creditService Service) *CreditHandler {
	return &CreditHandler{
		creditService: creditService,
	}
}

// RecordPayment godoc
//
//	@Summary		Record a customer credit payment
//	@Description	originalCreditAmount is the remaining credit the operator saw. A mismatch is reported as a warning, a payment above the remaining credit is rejected.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditPaymentRequestDTO	true	"Payment"
//	@Success		201		{object}	dto.CreditPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payment"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Failure		409		{object}	utils.Response	"Overpayment"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/credit-payments [post]
func (h *CreditHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreditPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	in, err := req.ToDomain(auth.OperatorID(r.Context()))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	result, err := h.creditService.RecordPayment(r.Context(), in)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromCreditPaymentResult(*result))
}

// ListPayments godoc
//
//	@Summary		Credit payments of a customer
//	@Tags			Credit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			customerId	query		int	true	"Customer id"
//	@Success		200			{array}		dto.CreditPaymentDTO
//	@Failure		400			{object}	utils.Response	"Invalid customer id"
//	@Failure		401			{object}	utils.Response	"Operator not authorized"
//	@Failure		404			{object}	utils.Response	"Customer not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/credit-payments [get]
func (h *CreditHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	customerID, err := utils.QueryID(r, "customerId")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	payments, err := h.creditService.ListPayments(r.Context(), customerID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCreditPayments(payments))
}

// DeletePayment godoc
//
//	@Summary		Delete a credit payment
//	@Description	Returns the customer's account recomputed without the payment.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Credit payment id"
//	@Success		200	{object}	dto.CreditAccountDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/credit-payments/{id} [delete]
func (h *CreditHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	account, err := h.creditService.DeletePayment(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCreditAccount(*account))
}

// Account godoc
//
//	@Summary		Customer credit account
//	@Tags			Credit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Customer id"
//	@Success		200	{object}	dto.CreditAccountDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{id}/credit [get]
func (h *CreditHandler) Account(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	account, err := h.creditService.Account(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCreditAccount(*account))
}
