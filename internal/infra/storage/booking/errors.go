package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSpaceOverlap возвращается, когда сработало ограничение bookings_no_overlap
	ErrSpaceOverlap = errors.New("booking.repository: space already booked for overlapping dates")

	// ErrSpaceNotFound возвращается при нарушении внешнего ключа на площадку
	ErrSpaceNotFound = errors.New("booking.repository: space not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
