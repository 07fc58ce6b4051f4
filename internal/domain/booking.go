package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive is false only for cancelled bookings; every other status holds the interval.
func (s BookingStatus) IsActive() bool {
	return s != StatusCancelled
}

// IsTerminal returns true for statuses with no outgoing transitions
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo checks the booking lifecycle:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// ParseBookingStatus converts external input to a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, s)
	}
	return status, nil
}

// Booking represents an event occupying a space for a range of days
type Booking struct {
	ID          int64
	SpaceID     int64
	Title       string
	Description *string

	// Client contact data is stored as given.
	ClientName  string
	ClientEmail string
	ClientPhone *string

	StartDate types.Date
	EndDate   types.Date
	// StartTime and EndTime (HH:MM) are informational; conflicts use dates only.
	StartTime *string
	EndTime   *string

	Status    BookingStatus
	CreatedBy int64
	Notes     *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the booked days
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// IsActive returns true if the booking still holds its interval
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled)
}

// CanBeRescheduled returns true if the dates or the space may still change
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	SpaceID          *int64         // Фильтр по площадке (опционально)
	StaffID          *int64         // Только бронирования, на которые назначен сотрудник
	CreatedBy        *int64         // Бронирования, созданные пользователем
	Range            *DateRange     // Бронирования, пересекающиеся с периодом
	EndsBefore       *types.Date    // Бронирования, закончившиеся раньше даты
	Status           *BookingStatus // Фильтр по статусу
	IncludeCancelled bool           // Включать ли отмененные бронирования
}

// ValidateEventTimes checks optional HH:MM times. On a single-day booking the end
// must be after the start; times never take part in conflict detection.
func ValidateEventTimes(startTime, endTime *string, period DateRange) error {
	var start, end time.Time
	var err error

	if startTime != nil {
		if start, err = time.Parse(TimeFormat, *startTime); err != nil {
			return fmt.Errorf("%w: start time must be in HH:MM format", ErrInvalidInput)
		}
	}
	if endTime != nil {
		if end, err = time.Parse(TimeFormat, *endTime); err != nil {
			return fmt.Errorf("%w: end time must be in HH:MM format", ErrInvalidInput)
		}
	}

	if startTime != nil && endTime != nil && period.Days() == 1 && !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}
	return nil
}
