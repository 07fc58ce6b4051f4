package allocation

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// OccupancySource отдаёт интервалы, занятые ресурсом одного вида.
// Для площадок это бронирования площадки, для сотрудников - их назначения.
type OccupancySource interface {
	ListOccupancy(ctx context.Context, resourceID int64, period domain.DateRange, excludeBookingID *int64) ([]domain.Occupancy, error)
}

// MetricsRecorder учитывает найденные конфликты
type MetricsRecorder interface {
	IncConflict(resourceKind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
