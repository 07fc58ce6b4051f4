package suggest_staff

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

type AvailabilityResolver interface {
	SuggestForBooking(ctx context.Context, bookingID int64, specialization *string) ([]*domain.Staff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
