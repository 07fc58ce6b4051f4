package update_booking

import (
	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Request изменение площадки, дат или времени бронирования.
// Незаданные поля сохраняют текущие значения.
type Request struct {
	UserID    int64
	BookingID int64
	SpaceID   *int64
	StartDate *types.Date
	EndDate   *types.Date
	StartTime *string
	EndTime   *string
}

func (r *Request) isEmpty() bool {
	return r.SpaceID == nil && r.StartDate == nil && r.EndDate == nil && r.StartTime == nil && r.EndTime == nil
}

// Response обновлённое бронирование и число перепроверенных сотрудников
type Response struct {
	Booking         *domain.Booking
	CheckedStaffIDs []int64
}
