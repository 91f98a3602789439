package vehiclelogs

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/GlebRadaev/shedledger/internal/domain"
	"github.com/GlebRadaev/shedledger/internal/dto"
	"github.com/GlebRadaev/shedledger/pkg/utils"
	"github.com/GlebRadaev/shedledger/pkg/validate"
)

type Service interface {
	SaveTripSheet(ctx context.Context, sheet domain.TripSheet) (*domain.SheetSummary, error)
	ListTrips(ctx context.Context, employeeID int64, from, to time.Time) ([]domain.TripRecord, error)
}

type VehicleLogHandler struct {
	tripService Service
	now         func() time.Time
}

func New(tripService Service) *VehicleLogHandler {
	return &VehicleLogHandler{
		tripService: tripService,
		now:         time.Now,
	}
}

// SaveTripSheet godoc
//
//	@Summary		Save a trip sheet
//	@Description	Store one vehicle log per row of the sheet, settle the salary rows and record embedded supplies. The whole sheet is saved or nothing is.
//	@Tags			Vehicle logs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TripSheetRequestDTO	true	"Trip sheet"
//	@Success		201		{object}	dto.SheetSummaryDTO		"Saved sheet with its figures"
//	@Failure		400		{object}	utils.Response			"Invalid sheet"
//	@Failure		401		{object}	utils.Response			"Operator not authorized"
//	@Failure		404		{object}	utils.Response			"Unknown employee, customer or supplier"
//	@Failure		409		{object}	utils.Response			"Salary cannot be settled"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/vehicle-logs [post]
func (h *VehicleLogHandler) SaveTripSheet(w http.ResponseWriter, r *http.Request) {
	var req dto.TripSheetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	sheet, err := req.ToDomain()
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	summary, err := h.tripService.SaveTripSheet(r.Context(), sheet)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromSheetSummary(*summary))
}

// ListTrips godoc
//
//	@Summary		List vehicle logs
//	@Description	Vehicle logs of one employee between two dates, oldest first. from defaults to the first record, to defaults to today.
//	@Tags			Vehicle logs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			employeeId	query		int		true	"Employee id"
//	@Param			from		query		string	false	"First day, YYYY-MM-DD"
//	@Param			to			query		string	false	"Last day, YYYY-MM-DD"
//	@Success		200			{array}		dto.TripRecordDTO
//	@Failure		400			{object}	utils.Response	"Invalid query"
//	@Failure		401			{object}	utils.Response	"Operator not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/vehicle-logs [get]
func (h *VehicleLogHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	employeeID, err := utils.QueryID(r, "employeeId")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	from, err := validate.Date("from", r.URL.Query().Get("from"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	to, err := validate.Date("to", r.URL.Query().Get("to"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if to.IsZero() {
		to = h.now()
	}

	trips, err := h.tripService.ListTrips(r.Context(), employeeID, from, to)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTripRecords(trips))
}
