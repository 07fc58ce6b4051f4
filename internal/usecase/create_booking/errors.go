package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

var (
	// ErrSpaceNotFound возвращается, когда площадка не найдена
	ErrSpaceNotFound = fmt.Errorf("create_booking: space not found: %w", domain.ErrNotFound)

	// ErrSpaceInactive возвращается, когда площадка выключена администратором
	ErrSpaceInactive = fmt.Errorf("create_booking: space is not active: %w", domain.ErrConflict)

	// ErrSpaceUnavailable возвращается, когда площадка занята в выбранные даты
	ErrSpaceUnavailable = fmt.Errorf("create_booking: space unavailable: %w", domain.ErrConflict)

	// ErrStaffNotFound возвращается, когда назначаемый сотрудник не найден
	ErrStaffNotFound = fmt.Errorf("create_booking: staff member not found: %w", domain.ErrNotFound)

	// ErrStaffUnavailable возвращается, когда назначаемый сотрудник недоступен в выбранные даты
	ErrStaffUnavailable = fmt.Errorf("create_booking: staff member unavailable: %w", domain.ErrConflict)

	// ErrConcurrentUpdate возвращается, когда транзакция не смогла сериализоваться; запрос можно повторить
	ErrConcurrentUpdate = fmt.Errorf("create_booking: concurrent update, retry the request: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
