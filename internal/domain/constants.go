package domain

// Default schedule values
const (
	DefaultOpenTime            = "09:00"
	DefaultCloseTime           = "17:00"
	DefaultSlotDurationMinutes = 30
)

// Business validation constants
const (
	MaxDurationMinutes   = 480 // 8 hours
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// DateFormat формат даты YYYY-MM-DD, используется на всей HTTP-границе
const DateFormat = "2006-01-02"

// InactiveStatuses список статусов, не занимающих слот
// Используется при фильтрации в проверке конфликтов и расчёте доступности
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}
