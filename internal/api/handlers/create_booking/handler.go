package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Eclipse-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/Eclipse-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgCourtNotFound      = "court not found"
	msgCourtUnavailable   = "court is not available for booking"
	msgSlotAlreadyBooked  = "court is already booked for this time slot"
	msgVerificationFailed = "phone verification failed"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: phone=%s, error=%v", req.PhoneNumber, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court=%d", req.CourtNumber)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCourtUnavailable):
			h.logger.Warn("POST /bookings - Court unavailable: court=%d", req.CourtNumber)
			handlers.RespondError(w, http.StatusConflict, msgCourtUnavailable)

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: court=%d, date=%s, slot=%q",
				req.CourtNumber, req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrVerificationFailed):
			h.logger.Warn("POST /bookings - Verification failed: phone=%s", req.PhoneNumber)
			handlers.RespondForbidden(w, msgVerificationFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: phone=%s, court=%d, error=%v",
				req.PhoneNumber, req.CourtNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, code=%s, court=%d",
		result.ID, result.BookingCode, result.CourtNumber)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
