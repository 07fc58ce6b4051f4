package cancel_leave

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

var (
	ErrLeaveRequestNotFound = fmt.Errorf("cancel_leave: leave request not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда заявку отменяет не её владелец
	ErrAccessDenied = fmt.Errorf("cancel_leave: only the requesting staff member can cancel: %w", domain.ErrAccessDenied)

	ErrCannotCancel     = fmt.Errorf("cancel_leave: %w", domain.ErrInvalidStateTransition)
	ErrConcurrentUpdate = fmt.Errorf("cancel_leave: concurrent update, retry the request: %w", domain.ErrConflict)
	ErrInvalidInput     = fmt.Errorf("cancel_leave: %w", domain.ErrInvalidInput)
	ErrInternal         = errors.New("cancel_leave: internal error")
)
