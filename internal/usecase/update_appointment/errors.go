package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	// либо недоступно текущему пользователю (чужая запись неотличима от несуществующей)
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrSlotConflict возвращается, когда новое расписание пересекается
	// с другим активным бронированием на эту дату
	ErrSlotConflict = errors.New("update_appointment: time slot conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
