package access

import (
	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
)

// Checker единая точка проверки прав доступа к бронированиям.
// Правило: админ видит и меняет всё, обычный пользователь - только свои записи.
// Заменяет дублирование проверки роли в каждом обработчике.
type Checker struct{}

// NewChecker создает новый экземпляр проверки доступа
func NewChecker() *Checker {
	return &Checker{}
}

// CanAccess возвращает true, если principal может читать и изменять бронирование
func (c *Checker) CanAccess(principal domain.Principal, appointment *domain.Appointment) bool {
	if principal.IsAdmin() {
		return true
	}
	return appointment.UserID == principal.UserID
}

// Scope возвращает фильтр выборки для principal:
// админ получает все записи, обычный пользователь - только свои
func (c *Checker) Scope(principal domain.Principal) domain.AppointmentsFilter {
	if principal.IsAdmin() {
		return domain.AppointmentsFilter{IncludeInactive: true}
	}
	uid := principal.UserID
	return domain.AppointmentsFilter{UserID: &uid, IncludeInactive: true}
}
