package list_conflicts

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

type ConflictLister interface {
	ListConflicts(ctx context.Context, ref domain.ResourceRef, period domain.DateRange, excludeBookingID *int64) ([]domain.Occupancy, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
