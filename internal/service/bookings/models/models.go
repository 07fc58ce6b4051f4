package models

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	SpaceID          *int64      // Фильтр по площадке (опционально)
	StaffID          *int64      // Только бронирования сотрудника (опционально)
	CreatedBy        *int64      // Только бронирования, созданные пользователем (опционально)
	StartDate        *types.Date // Начало периода (опционально)
	EndDate          *types.Date // Конец периода (опционально)
	Status           *string     // Фильтр по статусу (опционально)
	IncludeCancelled bool        // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр.
// Если указана только одна граница периода, период состоит из одного дня.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		SpaceID:          r.SpaceID,
		StaffID:          r.StaffID,
		CreatedBy:        r.CreatedBy,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.StartDate != nil || r.EndDate != nil {
		start, end := r.StartDate, r.EndDate
		if start == nil {
			start = end
		}
		if end == nil {
			end = start
		}
		period, err := domain.NewDateRange(*start, *end)
		if err != nil {
			return filter, err
		}
		filter.Range = &period
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
		if status == domain.StatusCancelled {
			filter.IncludeCancelled = true
		}
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64
	Status string
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64
	CancellationReason *string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	SpaceID     int64   `json:"spaceId"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`

	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone *string `json:"clientPhone,omitempty"`

	StartDate string  `json:"startDate"` // "2025-06-10"
	EndDate   string  `json:"endDate"`   // "2025-06-12", включительно
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	TotalDays int     `json:"totalDays"`

	Status    string  `json:"status"`
	CreatedBy int64   `json:"createdBy"`
	Notes     *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// AssignedStaffResponse назначенный на бронирование сотрудник
type AssignedStaffResponse struct {
	StaffID    int64     `json:"staffId"`
	Name       string    `json:"name"`
	Position   *string   `json:"position,omitempty"`
	Role       *string   `json:"role,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	AssignedAt time.Time `json:"assignedAt"`
}

// AssignedStaffListResponse ответ со списком назначенных сотрудников
type AssignedStaffListResponse struct {
	BookingID int64                   `json:"bookingId"`
	Staff     []AssignedStaffResponse `json:"staff"`
}

// CompletionReport результат завершения прошедших бронирований
type CompletionReport struct {
	Date       string  `json:"date"`
	DryRun     bool    `json:"dryRun"`
	BookingIDs []int64 `json:"bookingIds"`
}

// Count число завершённых (или подлежащих завершению) бронирований
func (r *CompletionReport) Count() int {
	return len(r.BookingIDs)
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		SpaceID:            b.SpaceID,
		Title:              b.Title,
		Description:        b.Description,
		ClientName:         b.ClientName,
		ClientEmail:        b.ClientEmail,
		ClientPhone:        b.ClientPhone,
		StartDate:          b.StartDate.String(),
		EndDate:            b.EndDate.String(),
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		TotalDays:          b.Range().Days(),
		Status:             string(b.Status),
		CreatedBy:          b.CreatedBy,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainAssignedStaff конвертирует назначения бронирования в DTO
func FromDomainAssignedStaff(bookingID int64, items []*domain.AssignedStaff) *AssignedStaffListResponse {
	resp := &AssignedStaffListResponse{
		BookingID: bookingID,
		Staff:     make([]AssignedStaffResponse, 0, len(items)),
	}

	for _, item := range items {
		entry := AssignedStaffResponse{
			StaffID:    item.StaffID,
			Role:       item.Role,
			Notes:      item.Notes,
			AssignedAt: item.CreatedAt,
		}
		if item.Staff != nil {
			entry.Name = item.Staff.Name
			entry.Position = item.Staff.Position
		}
		resp.Staff = append(resp.Staff, entry)
	}

	return resp
}
