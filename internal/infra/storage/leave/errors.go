package leave

import "errors"

var (
	// ErrLeaveRequestNotFound возвращается, когда заявка на отпуск не найдена
	ErrLeaveRequestNotFound = errors.New("leave.repository: leave request not found")

	// ErrVersionConflict возвращается, когда заявку изменили после её чтения
	ErrVersionConflict = errors.New("leave.repository: leave request was modified concurrently")

	ErrBuildQuery = errors.New("leave.repository: failed to build query")
	ErrExecQuery  = errors.New("leave.repository: failed to execute query")
	ErrScanRow    = errors.New("leave.repository: failed to scan row")
	ErrEncode     = errors.New("leave.repository: failed to encode conflict snapshot")
)
