package update_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

var (
	ErrBookingNotFound = fmt.Errorf("update_booking: booking not found: %w", domain.ErrNotFound)
	ErrSpaceNotFound   = fmt.Errorf("update_booking: space not found: %w", domain.ErrNotFound)

	// ErrCannotReschedule возвращается для завершённых и отменённых бронирований
	ErrCannotReschedule = fmt.Errorf("update_booking: booking can no longer be rescheduled: %w", domain.ErrInvalidStateTransition)

	ErrSpaceInactive    = fmt.Errorf("update_booking: space is not active: %w", domain.ErrConflict)
	ErrSpaceUnavailable = fmt.Errorf("update_booking: space unavailable: %w", domain.ErrConflict)

	// ErrStaffUnavailable возвращается, когда назначенный сотрудник занят в новые даты
	ErrStaffUnavailable = fmt.Errorf("update_booking: assigned staff member unavailable: %w", domain.ErrConflict)

	ErrConcurrentUpdate = fmt.Errorf("update_booking: concurrent update, retry the request: %w", domain.ErrConflict)
	ErrInvalidInput     = fmt.Errorf("update_booking: %w", domain.ErrInvalidInput)
	ErrInternal         = errors.New("update_booking: internal error")
)
