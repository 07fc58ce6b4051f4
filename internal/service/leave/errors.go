package leave

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

var (
	// ErrLeaveRequestNotFound возвращается, когда заявка не найдена
	ErrLeaveRequestNotFound = fmt.Errorf("leave: leave request not found: %w", domain.ErrNotFound)

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = fmt.Errorf("leave: staff member not found: %w", domain.ErrNotFound)

	// ErrDuplicateAdjustment возвращается при повторе ключа идемпотентности корректировки
	ErrDuplicateAdjustment = fmt.Errorf("leave: adjustment already recorded: %w", domain.ErrConflict)

	// ErrConcurrentUpdate возвращается, когда параллельная транзакция изменила журнал сотрудника
	ErrConcurrentUpdate = fmt.Errorf("leave: concurrent update, retry the request: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("leave: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("leave: internal error")
)
