package domain

// Business validation constants
const (
	MaxTitleLength              = 255
	MaxNameLength               = 255
	MaxNotesLength              = 1000
	MaxReasonLength             = 1000
	MaxCancellationReasonLength = 500
	MinReasonLength             = 10
	MaxPhoneLength              = 50
	MaxRoleLength               = 100
	MaxAssignBatchSize          = 50
)

// Time format constants
const (
	TimeFormat = "15:04" // HH:MM
)

// ActiveBookingStatuses statuses that hold a space or staff interval
var ActiveBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
