package create_booking

import (
	"github.com/m04kA/SMC-VenueService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-VenueService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SpaceID     int64      `json:"spaceId" validate:"required,gt=0"`
	Title       string     `json:"title" validate:"required,max=255"`
	Description *string    `json:"description,omitempty"`
	ClientName  string     `json:"clientName" validate:"required,max=255"`
	ClientEmail string     `json:"clientEmail" validate:"required,email"`
	ClientPhone *string    `json:"clientPhone,omitempty" validate:"omitempty,max=50"`
	StartDate   types.Date `json:"startDate"` // "2025-06-10"
	EndDate     types.Date `json:"endDate"`   // "2025-06-12", включительно
	StartTime   *string    `json:"startTime,omitempty"`
	EndTime     *string    `json:"endTime,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed"`
	Notes       *string    `json:"notes,omitempty" validate:"omitempty,max=1000"`
	StaffIDs    []int64    `json:"staffIds,omitempty" validate:"omitempty,max=50,dive,gt=0"`
}

// CreateBookingResponse созданное бронирование и назначенные сотрудники
type CreateBookingResponse struct {
	*models.BookingResponse
	AssignedStaffIDs []int64 `json:"assignedStaffIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:      userID,
		SpaceID:     r.SpaceID,
		Title:       r.Title,
		Description: r.Description,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Status:      r.Status,
		Notes:       r.Notes,
		StaffIDs:    r.StaffIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	assigned := resp.AssignedStaffIDs
	if assigned == nil {
		assigned = []int64{}
	}
	return &CreateBookingResponse{
		BookingResponse:  models.FromDomainBooking(resp.Booking),
		AssignedStaffIDs: assigned,
	}
}
