package get_appointment

import (
	"context"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	"github.com/NachoLedesma33/ReservationSystem/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByID(ctx context.Context, id int64, principal domain.Principal) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
