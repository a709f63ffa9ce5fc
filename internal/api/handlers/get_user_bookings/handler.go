package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Eclipse-BookingService/internal/api/handlers"
	"github.com/m04kA/Eclipse-BookingService/internal/service/bookings"
	"github.com/m04kA/Eclipse-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequest = "invalid phone number or status"
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

// Handle GET /api/v1/users/{phoneNumber}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Телефон - естественный ключ клиента
	vars := mux.Vars(r)
	phoneNumber := vars["phoneNumber"]

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	serviceReq := &models.GetUserBookingsRequest{
		PhoneNumber: phoneNumber,
		Status:      statusPtr,
	}

	result, err := h.service.GetUserBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{phoneNumber}/bookings - Invalid request: phone=%s, error=%v",
				phoneNumber, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /users/{phoneNumber}/bookings - Failed to get bookings: phone=%s, error=%v",
				phoneNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{phoneNumber}/bookings - Bookings retrieved: phone=%s, count=%d",
		phoneNumber, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
