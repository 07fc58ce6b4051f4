package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

var (
	ErrStaffNotFound   = fmt.Errorf("availability: staff member not found: %w", domain.ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("availability: booking not found: %w", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
