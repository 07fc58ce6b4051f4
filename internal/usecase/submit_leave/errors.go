package submit_leave

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

var (
	ErrStaffNotFound = fmt.Errorf("submit_leave: staff member not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда заявку подаёт не сам сотрудник
	ErrAccessDenied = fmt.Errorf("submit_leave: leave can only be requested by the staff member: %w", domain.ErrAccessDenied)

	ErrInsufficientBalance = fmt.Errorf("submit_leave: %w", domain.ErrInsufficientBalance)
	ErrOverlappingLeave    = fmt.Errorf("submit_leave: %w", domain.ErrOverlappingLeave)

	ErrConcurrentUpdate = fmt.Errorf("submit_leave: concurrent update, retry the request: %w", domain.ErrConflict)
	ErrInvalidInput     = fmt.Errorf("submit_leave: %w", domain.ErrInvalidInput)
	ErrInternal         = errors.New("submit_leave: internal error")
)
