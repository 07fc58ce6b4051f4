package complete_passed

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

type BookingService interface {
	CompletePassed(ctx context.Context, today types.Date, dryRun bool) (*models.CompletionReport, error)
}

// Clock текущая дата сервиса
type Clock interface {
	Today() types.Date
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
