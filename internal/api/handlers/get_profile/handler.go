package get_profile

import (
	"errors"
	"net/http"

	"github.com/NachoLedesma33/ReservationSystem/internal/api/handlers"
	"github.com/NachoLedesma33/ReservationSystem/internal/api/middleware"
	"github.com/NachoLedesma33/ReservationSystem/internal/service/auth"
)

const (
	msgMissingPrincipal = "требуется аутентификация"
	msgUserNotFound     = "пользователь не найден"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/profile - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	result, err := h.service.Profile(r.Context(), principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			h.logger.Warn("GET /auth/profile - User not found: user_id=%d", principal.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /auth/profile - Failed to get profile: user_id=%d, error=%v",
				principal.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /auth/profile - Profile retrieved successfully: user_id=%d", principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
