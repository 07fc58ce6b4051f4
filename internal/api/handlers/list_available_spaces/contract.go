package list_available_spaces

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

type AvailabilityResolver interface {
	ListAvailableSpaces(ctx context.Context, period domain.DateRange, minCapacity *int) ([]*domain.Space, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
