package assign_staff

import "github.com/m04kA/SMC-VenueService/internal/domain"

// Request назначение одного сотрудника на бронирование
type Request struct {
	UserID    int64
	BookingID int64
	StaffID   int64
	Role      *string // Роль на мероприятии (опционально)
	Notes     *string
}

// StaffItem сотрудник в пакетном назначении
type StaffItem struct {
	StaffID int64
	Role    *string
	Notes   *string
}

// MultipleRequest пакетное назначение: либо все сотрудники, либо никто
type MultipleRequest struct {
	UserID    int64
	BookingID int64
	Staff     []StaffItem
}

// Response созданные назначения
type Response struct {
	BookingID   int64
	Assignments []*domain.Assignment
}
