package space

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда площадка не найдена
	ErrSpaceNotFound = errors.New("space.repository: space not found")

	ErrBuildQuery = errors.New("space.repository: failed to build query")
	ErrExecQuery  = errors.New("space.repository: failed to execute query")
	ErrScanRow    = errors.New("space.repository: failed to scan row")
)
