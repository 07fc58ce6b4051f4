package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("bookings: booking not found: %w", domain.ErrNotFound)

	// ErrAssignmentNotFound возвращается, когда сотрудник не назначен на бронирование
	ErrAssignmentNotFound = fmt.Errorf("bookings: assignment not found: %w", domain.ErrNotFound)

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = fmt.Errorf("bookings: booking cannot be cancelled: %w", domain.ErrInvalidStateTransition)

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = fmt.Errorf("bookings: status change not allowed: %w", domain.ErrInvalidStateTransition)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("bookings: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
