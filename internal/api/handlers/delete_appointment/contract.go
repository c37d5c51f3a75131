package delete_appointment

import (
	"context"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
)

type AppointmentService interface {
	Delete(ctx context.Context, id int64, principal domain.Principal) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
