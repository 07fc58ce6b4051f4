package allocation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

var (
	// ErrUnknownResourceKind возвращается для вида ресурса без источника занятости
	ErrUnknownResourceKind = fmt.Errorf("allocation: unknown resource kind: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("allocation: internal error")
)
