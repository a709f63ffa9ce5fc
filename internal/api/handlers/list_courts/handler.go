package list_courts

import (
	"net/http"

	"github.com/m04kA/Eclipse-BookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCourts(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courts - Retrieved %d courts", len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
