package appointment

import (
	"github.com/NachoLedesma33/ReservationSystem/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics,
// чтобы репозиторий одинаково работал с *sql.DB и обёрткой метрик
type DBExecutor = dbmetrics.DBExecutor
