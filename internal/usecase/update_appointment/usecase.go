package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	appointmentRepository "github.com/NachoLedesma33/ReservationSystem/internal/infra/storage/appointment"
)

// UseCase use case частичного обновления бронирования
// Повторная проверка конфликтов выполняется, если запрос меняет дату, время,
// длительность или возвращает отменённое бронирование в активный статус;
// изменение заголовка или описания проверку не запускает
type UseCase struct {
	appointmentRepo AppointmentRepository
	access          AccessChecker
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	access AccessChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		access:          access,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case обновления бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, user=%d", req.ID, req.Principal.UserID)

	// 1. Валидация переданных полей (до любых запросов к БД)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Чтение, проверка конфликтов и запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем текущее состояние бронирования
		current, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepository.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Проверка доступа: чужая запись неотличима от несуществующей
		if !uc.access.CanAccess(req.Principal, current) {
			uc.logger.Warn("UpdateAppointment: user=%d has no access to appointment id=%d",
				req.Principal.UserID, req.ID)
			return ErrAppointmentNotFound
		}

		// 2.3. Применяем изменения к копии текущего состояния
		updated := applyChanges(current, req)

		// 2.4. Интервал после слияния полей не должен выходить за полночь
		// Частичный запрос может быть корректен сам по себе, но ломать текущее расписание
		if _, err := updated.StartTime.AddMinutes(updated.DurationMinutes); err != nil {
			uc.logger.Warn("UpdateAppointment: invalid interval for id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: appointment must end by midnight: %v", ErrInvalidInput, err)
		}

		// Реактивация отменённого бронирования снова занимает слот,
		// поэтому требует той же проверки, что и смена расписания
		needsConflictCheck := req.ChangesSchedule(current) ||
			(!current.IsActive() && updated.IsActive())

		// 2.5. Проверяем конфликты только при смене расписания или реактивации
		// и только если бронирование после обновления остаётся активным
		if needsConflictCheck && updated.IsActive() {
			filter := domain.AppointmentsFilter{
				Date:            &updated.Date,
				ExcludeID:       &req.ID,
				IncludeInactive: false,
			}

			appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to get appointments: %v", err)
				return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
			}

			conflict, err := hasConflict(updated.StartTime, updated.DurationMinutes, appointments)
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to check conflicts: %v", err)
				return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
			}

			if conflict {
				uc.logger.Warn("UpdateAppointment: slot conflict for id=%d, date=%s, time=%s",
					req.ID, updated.Date.Format(domain.DateFormat), updated.StartTime)
				return ErrSlotConflict
			}
		}

		// 2.6. Сохраняем обновлённое бронирование
		saved, err := uc.appointmentRepo.Update(txCtx, updated)
		if err != nil {
			if errors.Is(err, appointmentRepository.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		Title:           result.Title,
		Description:     result.Description,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
