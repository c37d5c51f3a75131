package appointments

import (
	"context"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// AccessChecker интерфейс проверки прав доступа к бронированиям
type AccessChecker interface {
	CanAccess(principal domain.Principal, appointment *domain.Appointment) bool
	Scope(principal domain.Principal) domain.AppointmentsFilter
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
