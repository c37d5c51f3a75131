package update_appointment

import (
	"fmt"
	"strings"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	"github.com/NachoLedesma33/ReservationSystem/pkg/types"
)

// validateRequest валидирует переданные поля запроса
// Отсутствующие (nil) поля не проверяются - они не меняются
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		if len(*req.Title) > domain.MaxTitleLength {
			return fmt.Errorf("%w: title is too long", ErrInvalidInput)
		}
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be zero", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
		}
		if *req.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: duration must not exceed %d minutes", ErrInvalidInput, domain.MaxDurationMinutes)
		}
	}

	if req.Status != nil {
		if !validStatus(*req.Status) {
			return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
	}

	return nil
}

// validStatus проверяет, что статус допустим
func validStatus(status domain.AppointmentStatus) bool {
	for _, valid := range domain.ValidStatuses {
		if status == valid {
			return true
		}
	}
	return false
}

// applyChanges накладывает переданные поля на текущее состояние бронирования
// Возвращает копию с применёнными изменениями; владелец и ID не меняются
func applyChanges(current *domain.Appointment, req *Request) *domain.Appointment {
	updated := *current

	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Description != nil {
		updated.Description = req.Description
	}
	if req.Date != nil {
		updated.Date = *req.Date
	}
	if req.StartTime != nil {
		updated.StartTime = *req.StartTime
	}
	if req.DurationMinutes != nil {
		updated.DurationMinutes = *req.DurationMinutes
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}

	return &updated
}

// hasConflict проверяет, пересекается ли интервал [start, start+duration)
// хотя бы с одним активным бронированием
// Соприкосновение границ конфликтом НЕ считается: бронирования впритык разрешены
func hasConflict(
	startTime types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
) (bool, error) {
	requestedEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
	}

	for _, appointment := range appointments {
		// Отменённые бронирования слот не занимают
		if !appointment.IsActive() {
			continue
		}

		start, end, err := appointment.Interval()
		if err != nil {
			continue
		}

		if types.Overlaps(startTime, requestedEnd, start, end) {
			return true, nil
		}
	}

	return false, nil
}
