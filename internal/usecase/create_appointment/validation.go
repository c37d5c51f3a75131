package create_appointment

import (
	"fmt"
	"strings"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	"github.com/NachoLedesma33/ReservationSystem/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Длительность проверяется до любых обращений к БД
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must not exceed %d minutes", ErrInvalidInput, domain.MaxDurationMinutes)
	}

	// Интервал не должен выходить за полночь
	if _, err := req.StartTime.AddMinutes(req.DurationMinutes); err != nil {
		return fmt.Errorf("%w: appointment must end by midnight: %v", ErrInvalidInput, err)
	}

	return nil
}

// hasConflict проверяет, пересекается ли запрошенный интервал [start, start+duration)
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
			// Если не можем вычислить интервал бронирования, пропускаем
			continue
		}

		if types.Overlaps(startTime, requestedEnd, start, end) {
			return true, nil
		}
	}

	return false, nil
}
