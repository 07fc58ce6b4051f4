package availability

import "github.com/m04kA/SMC-VenueService/internal/domain"

// Summary сводка занятости сотрудника за период
type Summary struct {
	Staff *domain.Staff
	// IsAvailable: флаг доступности включён и конфликтов нет
	IsAvailable bool
	// AvailabilityFlag административный флаг сотрудника без учёта бронирований
	AvailabilityFlag bool
	HasConflicts     bool
	Conflicts        []domain.Occupancy
}

// StaffForBooking доступность сотрудника для конкретного бронирования
type StaffForBooking struct {
	Staff       *domain.Staff
	IsAvailable bool
	IsAssigned  bool
}
