package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	appointmentRepo "github.com/NachoLedesma33/ReservationSystem/internal/infra/storage/appointment"
	"github.com/NachoLedesma33/ReservationSystem/internal/service/appointments/models"
)

// Service сервис чтения и удаления бронирований
// Права доступа проверяются единообразно через AccessChecker:
// недоступная запись во всех операциях выглядит как отсутствующая
type Service struct {
	appointmentRepo AppointmentRepository
	access          AccessChecker
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	appointmentRepo AppointmentRepository,
	access AccessChecker,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		access:          access,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Чужую запись обычный пользователь получить не может - для него она не существует
func (s *Service) GetByID(ctx context.Context, id int64, principal domain.Principal) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, principal.UserID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !s.access.CanAccess(principal, appointment) {
		s.logger.Warn("GetByID: appointment id=%d not visible to user=%d", id, principal.UserID)
		return nil, ErrAppointmentNotFound
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// List получает бронирования, видимые пользователю
// Админ видит все записи, обычный пользователь - только свои
func (s *Service) List(ctx context.Context, principal domain.Principal) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d role=%s", principal.UserID, principal.Role)

	filter := s.access.Scope(principal)

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", principal.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for user=%d", len(appointments), principal.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Delete удаляет бронирование
// Доступно владельцу и админу; для остальных запись выглядит отсутствующей
func (s *Service) Delete(ctx context.Context, id int64, principal domain.Principal) error {
	s.logger.Info("Delete: deleting appointment id=%d by user=%d", id, principal.UserID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !s.access.CanAccess(principal, appointment) {
		s.logger.Warn("Delete: appointment id=%d not visible to user=%d", id, principal.UserID)
		return ErrAppointmentNotFound
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}
