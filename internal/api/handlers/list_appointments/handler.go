package list_appointments

import (
	"net/http"

	"github.com/NachoLedesma33/ReservationSystem/internal/api/handlers"
	"github.com/NachoLedesma33/ReservationSystem/internal/api/middleware"
)

const msgMissingPrincipal = "требуется аутентификация"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	// Админ видит все записи, обычный пользователь - только свои
	result, err := h.service.List(r.Context(), principal)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: user_id=%d, error=%v",
			principal.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: user_id=%d, count=%d",
		principal.UserID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
