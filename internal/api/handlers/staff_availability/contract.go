package staff_availability

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/service/availability"
)

type AvailabilityResolver interface {
	Summary(ctx context.Context, staffID int64, period domain.DateRange) (*availability.Summary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
