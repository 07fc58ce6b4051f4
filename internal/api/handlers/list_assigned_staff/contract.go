package list_assigned_staff

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/service/bookings/models"
)

type BookingService interface {
	ListAssignedStaff(ctx context.Context, bookingID int64) (*models.AssignedStaffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
