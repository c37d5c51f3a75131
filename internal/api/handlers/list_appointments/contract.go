package list_appointments

import (
	"context"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	"github.com/NachoLedesma33/ReservationSystem/internal/service/appointments/models"
)

type AppointmentService interface {
	List(ctx context.Context, principal domain.Principal) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
