package domain

import "errors"

// Error categories shared by every layer. Package-level errors wrap one of these
// so callers can classify failures with errors.Is.
var (
	ErrConflict               = errors.New("conflict")
	ErrNotFound               = errors.New("not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInsufficientBalance    = errors.New("insufficient leave balance")
	ErrOverlappingLeave       = errors.New("overlapping approved leave")
	ErrDuplicateAssignment    = errors.New("duplicate assignment")
	ErrInvalidInput           = errors.New("invalid input")
	ErrAccessDenied           = errors.New("access denied")
)
