package create_booking

import (
	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      int64      // Кто создаёт бронирование
	SpaceID     int64      // ID площадки
	Title       string     // Название мероприятия
	Description *string    // Описание (опционально)
	ClientName  string     // Имя клиента
	ClientEmail string     // Email клиента
	ClientPhone *string    // Телефон клиента (опционально)
	StartDate   types.Date // Первый день мероприятия
	EndDate     types.Date // Последний день мероприятия (включительно)
	StartTime   *string    // Время начала "HH:MM" (опционально, не влияет на конфликты)
	EndTime     *string    // Время окончания "HH:MM" (опционально)
	Status      *string    // Начальный статус: pending (по умолчанию) или confirmed
	Notes       *string    // Дополнительные заметки (опционально)
	StaffIDs    []int64    // Сотрудники, назначаемые сразу (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking          *domain.Booking
	AssignedStaffIDs []int64
}
