package unassign_staff

import "context"

type BookingService interface {
	UnassignStaff(ctx context.Context, bookingID, staffID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
