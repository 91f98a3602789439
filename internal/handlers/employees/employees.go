package employees

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/dto"
	"github.com/GlebRadaev/shedledger/pkg/utils"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

type TripService interface {
	CarryForward(ctx context.Context, employeeID int64, date time.Time) (decimal.Decimal, error)
}

type WalletService interface {
	AdjustWallet(ctx context.Context, id int64, kind domain.EmployeeWalletType, amount decimal.Decimal, description string) (*domain.Employee, error)
	Wallet(ctx context.Context, id int64, asOf time.Time) (*domain.EmployeeWallet, error)
}

type EmployeeHandler struct {
	tripService   TripService
	walletService WalletService
	now           func() time.Time
}

func New(tripService TripService, walletService WalletService) *EmployeeHandler {
	return &EmployeeHandler{
		tripService:   tripService,
		walletService: walletService,
		now:           time.Now,
	}
}

// CarryForward godoc
//
//	@Summary		Employee float entering a day
//	@Description	Recomputed from the vehicle logs before date, not read from the cached balance.
//	@Tags			Employees
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		int		true	"Employee id"
//	@Param			date	query		string	true	"Day, YYYY-MM-DD"
//	@Success		200		{object}	dto.CarryForwardDTO
//	@Failure		400		{object}	utils.Response	"Invalid id or date"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Employee not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/employees/{id}/carry-forward [get]
func (h *EmployeeHandler) CarryForward(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	date, err := validate.Date("date", r.URL.Query().Get("date"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	balance, err := h.tripService.CarryForward(r.Context(), id, date)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CarryForwardDTO{
		EmployeeID:   id,
		Date:         date.Format(validate.DateLayout),
		CarryForward: balance.StringFixed(2),
	})
}

// Wallet godoc
//
//	@Summary		Employee wallet
//	@Description	Pending salary, the float held at the end of date (today by default) and the wallet history.
//	@Tags			Employees
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		int		true	"Employee id"
//	@Param			date	query		string	false	"Day, YYYY-MM-DD"
//	@Success		200		{object}	dto.EmployeeWalletDTO
//	@Failure		400		{object}	utils.Response	"Invalid id or date"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Employee not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/employees/{id}/wallet [get]
func (h *EmployeeHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	asOf, err := validate.Date("date", r.URL.Query().Get("date"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if asOf.IsZero() {
		asOf = h.now()
	}

	wallet, err := h.walletService.Wallet(r.Context(), id, asOf)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromEmployeeWallet(*wallet))
}

// AdjustWallet godoc
//
//	@Summary		Adjust pending salary
//	@Description	salary_accrued adds, salary_deducted subtracts, adjustment is signed. Pending salary never goes below zero.
//	@Tags			Employees
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Employee id"
//	@Param			request	body		dto.WalletAdjustmentRequestDTO	true	"Adjustment"
//	@Success		200		{object}	dto.EmployeeDTO
//	@Failure		400		{object}	utils.Response	"Invalid adjustment"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Employee not found"
//	@Failure		409		{object}	utils.Response	"Pending salary would go negative"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/employees/{id}/wallet [post]
func (h *EmployeeHandler) AdjustWallet(w http.ResponseWriter, r *http.Request) {
	id, err := utils.PathID(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	var req dto.WalletAdjustmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	employee, err := h.walletService.AdjustWallet(r.Context(), id, domain.EmployeeWalletType(req.Type), req.Amount, req.Description)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromEmployee(*employee))
}
