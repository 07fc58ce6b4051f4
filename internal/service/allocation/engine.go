package allocation

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Engine проверяет пересечение интервала с бронированиями ресурса.
// Один и тот же алгоритм работает для площадок и сотрудников, различается только источник записей.
type Engine struct {
	sources map[domain.ResourceKind]OccupancySource
	metrics MetricsRecorder
	logger  Logger
}

// NewEngine создает движок. spaces и staff - источники занятости площадок и сотрудников.
func NewEngine(spaces, staff OccupancySource, metrics MetricsRecorder, logger Logger) *Engine {
	return &Engine{
		sources: map[domain.ResourceKind]OccupancySource{
			domain.ResourceSpace: spaces,
			domain.ResourceStaff: staff,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// ListConflicts возвращает активные бронирования ресурса, пересекающиеся с периодом.
// excludeBookingID исключает одно бронирование (используется при его редактировании).
// Для несуществующего ресурса возвращается пустой список.
func (e *Engine) ListConflicts(ctx context.Context, ref domain.ResourceRef, period domain.DateRange, excludeBookingID *int64) ([]domain.Occupancy, error) {
	source, ok := e.sources[ref.Kind]
	if !ok || source == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResourceKind, ref.Kind)
	}

	candidates, err := source.ListOccupancy(ctx, ref.ID, period, excludeBookingID)
	if err != nil {
		e.logger.Error("ListConflicts: failed to load occupancy for %s: %v", ref, err)
		return nil, fmt.Errorf("%w: ListConflicts - load occupancy: %w", ErrInternal, err)
	}

	// Хранилище уже фильтрует по тем же условиям, но правило пересечения проверяется здесь для каждой записи
	conflicts := make([]domain.Occupancy, 0, len(candidates))
	for _, c := range candidates {
		if !c.Status.IsActive() {
			continue
		}
		if excludeBookingID != nil && c.BookingID == *excludeBookingID {
			continue
		}
		if !domain.Overlaps(period.Start, period.End, c.StartDate, c.EndDate) {
			continue
		}
		conflicts = append(conflicts, c)
	}

	if len(conflicts) > 0 {
		e.metrics.IncConflict(string(ref.Kind))
		e.logger.Info("ListConflicts: %s has %d conflicting booking(s) in %s", ref, len(conflicts), period)
	}

	return conflicts, nil
}

// HasConflict сообщает, занят ли ресурс хотя бы в один день периода
func (e *Engine) HasConflict(ctx context.Context, ref domain.ResourceRef, period domain.DateRange, excludeBookingID *int64) (bool, error) {
	conflicts, err := e.ListConflicts(ctx, ref, period, excludeBookingID)
	if err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}
