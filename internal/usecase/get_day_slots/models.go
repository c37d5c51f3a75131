package get_day_slots

import (
	"time"

	"github.com/NachoLedesma33/ReservationSystem/pkg/types"
)

// Schedule рабочие часы и ширина слота
// Задается один раз при старте сервиса из конфигурации
type Schedule struct {
	OpenTime            types.TimeString // начало рабочего дня, например "09:00"
	CloseTime           types.TimeString // конец рабочего дня, например "17:00"
	SlotDurationMinutes int              // ширина слота в минутах
}

// Request модель запроса на получение слотов дня
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со слотами дня
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Полная сетка слотов дня с признаком доступности
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Свободен ли слот
}
