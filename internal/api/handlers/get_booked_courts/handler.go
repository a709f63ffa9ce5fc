package get_booked_courts

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/Eclipse-BookingService/internal/api/handlers"
	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	getBookedCourts "github.com/m04kA/Eclipse-BookingService/internal/usecase/get_booked_courts"
)

const (
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
	msgMissingSlot = "either startTime or timeSlotId query parameter is required"
)

type Handler struct {
	useCase GetBookedCourtsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookedCourtsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booked-courts?date=YYYY-MM-DD&timeSlotId=...|startTime=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /booked-courts - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getBookedCourts.Request{
		Date:      date,
		SlotID:    query.Get("timeSlotId"),
		StartTime: query.Get("startTime"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getBookedCourts.ErrInvalidInput):
			h.logger.Warn("GET /booked-courts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSlot)

		default:
			h.logger.Error("GET /booked-courts - Failed to fetch booked courts: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booked-courts - Fetched %d booked courts for date=%s",
		len(result.BookedCourts), query.Get("date"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
