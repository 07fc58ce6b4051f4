package assignment

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда сотрудник не назначен на бронирование
	ErrAssignmentNotFound = errors.New("assignment.repository: assignment not found")

	// ErrAlreadyAssigned возвращается при нарушении уникальности (booking_id, staff_id)
	ErrAlreadyAssigned = errors.New("assignment.repository: staff already assigned to booking")

	// ErrReferenceNotFound возвращается, когда бронирование или сотрудник не существуют
	ErrReferenceNotFound = errors.New("assignment.repository: booking or staff not found")

	ErrBuildQuery = errors.New("assignment.repository: failed to build query")
	ErrExecQuery  = errors.New("assignment.repository: failed to execute query")
	ErrScanRow    = errors.New("assignment.repository: failed to scan row")
)
