package get_profile

import (
	"context"

	"github.com/NachoLedesma33/ReservationSystem/internal/service/auth/models"
)

type AuthService interface {
	Profile(ctx context.Context, userID int64) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
