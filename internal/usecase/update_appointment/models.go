package update_appointment

import (
	"time"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	"github.com/NachoLedesma33/ReservationSystem/pkg/types"
)

// Request модель запроса на частичное обновление бронирования
// nil-поле означает "не менять"
type Request struct {
	ID        int64
	Principal domain.Principal

	Title           *string
	Description     *string
	Date            *time.Time
	StartTime       *types.TimeString
	DurationMinutes *int
	Status          *domain.AppointmentStatus
}

// ChangesSchedule возвращает true, если запрос затрагивает дату, время или длительность
// Реактивацию отменённого бронирования оценивает сам use case
func (r *Request) ChangesSchedule(current *domain.Appointment) bool {
	if r.Date != nil && !sameDay(*r.Date, current.Date) {
		return true
	}
	if r.StartTime != nil && *r.StartTime != current.StartTime {
		return true
	}
	if r.DurationMinutes != nil && *r.DurationMinutes != current.DurationMinutes {
		return true
	}
	return false
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID              int64
	UserID          int64
	Title           string
	Description     *string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
