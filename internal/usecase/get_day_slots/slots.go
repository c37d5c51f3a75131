package get_day_slots

import (
	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	"github.com/NachoLedesma33/ReservationSystem/pkg/types"
)

// generateTimeSlots генерирует полную сетку слотов рабочего дня
// Слоты идут с фиксированным шагом от открытия до закрытия; последний слот
// начинается строго до времени закрытия, даже если его конец выходит за него
func generateTimeSlots(schedule Schedule) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := schedule.OpenTime

	for current.IsBefore(schedule.CloseTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(schedule.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return slots, nil
}

// markAvailability отмечает занятость каждого слота по пересечению
// с активными бронированиями дня
// Слот, частично накрытый длинным бронированием, считается занятым целиком,
// даже если граница бронирования попадает в середину слота
func markAvailability(
	slotStarts []types.TimeString,
	slotDuration int,
	appointments []*domain.Appointment,
) []Slot {
	result := make([]Slot, len(slotStarts))

	for i, slotStart := range slotStarts {
		result[i] = Slot{
			StartTime: slotStart,
			Available: !slotIsOccupied(slotStart, slotDuration, appointments),
		}
	}

	return result
}

// slotIsOccupied проверяет, пересекается ли слот хотя бы с одним активным бронированием
// Пересечение полуоткрытых интервалов: соприкосновение границ пересечением НЕ считается,
// поэтому бронирование, которое заканчивается ровно в начале слота, слот не занимает
func slotIsOccupied(slotStart types.TimeString, slotDuration int, appointments []*domain.Appointment) bool {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		// Если не можем вычислить конец слота, считаем что пересечений нет
		return false
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

		if types.Overlaps(slotStart, slotEnd, start, end) {
			return true
		}
	}

	return false
}
