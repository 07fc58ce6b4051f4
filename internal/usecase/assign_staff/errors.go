package assign_staff

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

var (
	ErrBookingNotFound = fmt.Errorf("assign_staff: booking not found: %w", domain.ErrNotFound)
	ErrStaffNotFound   = fmt.Errorf("assign_staff: staff member not found: %w", domain.ErrNotFound)

	// ErrBookingCancelled возвращается при назначении на отменённое бронирование
	ErrBookingCancelled = fmt.Errorf("assign_staff: booking is cancelled: %w", domain.ErrInvalidStateTransition)

	// ErrAlreadyAssigned возвращается, когда сотрудник уже назначен на это бронирование
	ErrAlreadyAssigned = fmt.Errorf("assign_staff: staff member already assigned: %w", domain.ErrDuplicateAssignment)

	// ErrStaffUnavailable возвращается, когда сотрудник выключен или занят в даты бронирования
	ErrStaffUnavailable = fmt.Errorf("assign_staff: staff member unavailable: %w", domain.ErrConflict)

	ErrConcurrentUpdate = fmt.Errorf("assign_staff: concurrent update, retry the request: %w", domain.ErrConflict)
	ErrInvalidInput     = fmt.Errorf("assign_staff: %w", domain.ErrInvalidInput)
	ErrInternal         = errors.New("assign_staff: internal error")
)
