package department

import "errors"

var (
	// ErrDepartmentNotFound возвращается, когда пользователь не руководит ни одним отделом
	ErrDepartmentNotFound = errors.New("department.repository: department not found")

	ErrBuildQuery = errors.New("department.repository: failed to build query")
	ErrScanRow    = errors.New("department.repository: failed to scan row")
)
