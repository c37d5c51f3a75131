package create_appointment

import "errors"

var (
	// ErrSlotConflict возвращается, когда запрошенный интервал пересекается
	// с существующим активным бронированием на эту дату
	ErrSlotConflict = errors.New("create_appointment: time slot conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
