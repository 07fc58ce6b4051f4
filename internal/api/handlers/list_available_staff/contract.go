package list_available_staff

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

type AvailabilityResolver interface {
	ListAvailableStaff(ctx context.Context, period domain.DateRange, specialization *string, excludeBookingID *int64) ([]*domain.Staff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
