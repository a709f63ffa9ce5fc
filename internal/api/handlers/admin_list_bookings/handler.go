package admin_list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/Eclipse-BookingService/internal/api/handlers"
	"github.com/m04kA/Eclipse-BookingService/internal/service/bookings"
)

const (
	msgInvalidParams = "invalid query parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: date, startDate, endDate, status, courtNumber, phoneNumber,
// includeCancelled (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(
		query.Get("date"),
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("status"),
		query.Get("courtNumber"),
		query.Get("phoneNumber"),
		query.Get("includeCancelled"),
	)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.AdminList(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
