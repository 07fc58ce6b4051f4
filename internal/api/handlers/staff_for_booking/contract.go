package staff_for_booking

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/service/availability"
)

type AvailabilityResolver interface {
	StaffForBooking(ctx context.Context, bookingID int64) ([]availability.StaffForBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
