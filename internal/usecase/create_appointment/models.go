package create_appointment

import (
	"time"

	"github.com/NachoLedesma33/ReservationSystem/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64            // ID владельца (из JWT, не из тела запроса)
	Title           string           // Название, обязательно
	Description     *string          // Описание (опционально)
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	DurationMinutes int              // Длительность в минутах, > 0
}

// Response модель ответа с созданным бронированием
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
