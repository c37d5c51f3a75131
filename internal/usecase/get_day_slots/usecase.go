package get_day_slots

import (
	"context"
	"fmt"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
)

// UseCase use case получения сетки слотов дня с признаком доступности
// Результат детерминирован для данной даты и набора бронирований и не кэшируется
type UseCase struct {
	appointmentRepo AppointmentRepository
	schedule        Schedule
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	schedule Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		schedule:        schedule,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetDaySlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Генерируем полную сетку слотов рабочего дня
	slotStarts, err := generateTimeSlots(uc.schedule)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования на эту дату (всех пользователей - занятость
	// слота не зависит от того, кто спрашивает)
	filter := domain.AppointmentsFilter{
		Date:            &req.Date,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Отмечаем занятость каждого слота
	slots := markAvailability(slotStarts, uc.schedule.SlotDurationMinutes, appointments)

	uc.logger.Info("GetDaySlots: generated %d slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
