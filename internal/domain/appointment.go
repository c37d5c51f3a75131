package domain

import (
	"time"

	"github.com/NachoLedesma33/ReservationSystem/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked appointment in the system
type Appointment struct {
	ID              int64
	UserID          int64 // владелец, неизменяем после создания
	Title           string
	Description     *string
	Date            time.Time // дата без времени
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot.
// Cancelled appointments free the slot and are excluded from conflict checks.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// EndTime returns the exclusive end of the appointment interval
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// Interval returns the half-open [start, end) interval of the appointment
func (a *Appointment) Interval() (types.TimeString, types.TimeString, error) {
	end, err := a.EndTime()
	if err != nil {
		return "", "", err
	}
	return a.StartTime, end, nil
}

// AppointmentsFilter фильтр для выборки бронирований
type AppointmentsFilter struct {
	UserID          *int64     // Фильтр по владельцу (nil - все пользователи)
	Date            *time.Time // Фильтр по дате (nil - без ограничения)
	ExcludeID       *int64     // Исключить бронирование по ID (для проверки конфликтов при обновлении)
	Status          *AppointmentStatus
	IncludeInactive bool // Включать ли отменённые бронирования
}
