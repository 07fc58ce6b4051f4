package check_availability

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

type ConflictChecker interface {
	HasConflict(ctx context.Context, ref domain.ResourceRef, period domain.DateRange, excludeBookingID *int64) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
