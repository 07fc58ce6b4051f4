package models

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Request модели

// ListLeaveRequestsRequest запрос на получение заявок сотрудника
type ListLeaveRequestsRequest struct {
	StaffID   int64
	Status    *string
	LeaveType *string
	Year      *int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListLeaveRequestsRequest) ToDomainFilter() (domain.LeaveRequestsFilter, error) {
	filter := domain.LeaveRequestsFilter{
		StaffID: &r.StaffID,
		Year:    r.Year,
	}

	if r.Status != nil {
		status, err := domain.ParseLeaveStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.LeaveType != nil {
		leaveType, err := domain.ParseLeaveType(*r.LeaveType)
		if err != nil {
			return filter, err
		}
		filter.LeaveType = &leaveType
	}

	return filter, nil
}

// AdjustBalanceRequest ручная корректировка использованных дней
type AdjustBalanceRequest struct {
	ActorID   int64
	StaffID   int64
	LeaveType string
	// Kind: adjustment (по умолчанию) или opening для переноса остатков
	Kind           string
	Delta          int
	Note           *string
	IdempotencyKey *string
}

// Response модели

// ReviewResponse заполненный слот согласования
type ReviewResponse struct {
	ReviewerID int64     `json:"reviewerId"`
	Outcome    string    `json:"outcome"`
	Notes      *string   `json:"notes,omitempty"`
	ReviewedAt time.Time `json:"reviewedAt"`
}

// ConflictResponse бронирование, на которое был назначен сотрудник в момент подачи заявки
type ConflictResponse struct {
	BookingID int64  `json:"bookingId"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	SpaceName string `json:"spaceName"`
}

// LeaveRequestResponse ответ с данными заявки на отпуск
type LeaveRequestResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	TotalDays int    `json:"totalDays"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`

	HRReview   *ReviewResponse `json:"hrReview,omitempty"`
	HeadReview *ReviewResponse `json:"headReview,omitempty"`
	// AwaitingSecondApproval одна сторона одобрила, вторая ещё не рассмотрела
	AwaitingSecondApproval bool `json:"awaitingSecondApproval"`

	Conflicts []ConflictResponse `json:"conflicts"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledBy        *int64  `json:"cancelledBy,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LeaveRequestListResponse ответ со списком заявок
type LeaveRequestListResponse struct {
	LeaveRequests []LeaveRequestResponse `json:"leaveRequests"`
}

// BalanceItem остаток по одной категории отпуска
type BalanceItem struct {
	LeaveType string `json:"leaveType"`
	Total     int    `json:"total"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}

// BalanceResponse остатки сотрудника по всем категориям
type BalanceResponse struct {
	StaffID  int64         `json:"staffId"`
	Balances []BalanceItem `json:"balances"`
}

// Методы конвертации

func fromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}
	return &ReviewResponse{
		ReviewerID: r.ReviewerID,
		Outcome:    string(r.Outcome),
		Notes:      r.Notes,
		ReviewedAt: r.ReviewedAt,
	}
}

// FromDomainLeaveRequest конвертирует domain модель в DTO
func FromDomainLeaveRequest(r *domain.LeaveRequest) *LeaveRequestResponse {
	if r == nil {
		return nil
	}

	resp := &LeaveRequestResponse{
		ID:                     r.ID,
		StaffID:                r.StaffID,
		LeaveType:              string(r.LeaveType),
		StartDate:              r.StartDate.String(),
		EndDate:                r.EndDate.String(),
		TotalDays:              r.TotalDays,
		Reason:                 r.Reason,
		Status:                 string(r.Status),
		HRReview:               fromDomainReview(r.HRReview),
		HeadReview:             fromDomainReview(r.HeadReview),
		AwaitingSecondApproval: r.IsPendingSecondApproval(),
		Conflicts:              make([]ConflictResponse, 0, len(r.ConflictSnapshot)),
		CancellationReason:     r.CancellationReason,
		CancelledBy:            r.CancelledBy,
		Version:                r.Version,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}

	for _, c := range r.ConflictSnapshot {
		resp.Conflicts = append(resp.Conflicts, ConflictResponse{
			BookingID: c.BookingID,
			Title:     c.Title,
			StartDate: c.StartDate.String(),
			EndDate:   c.EndDate.String(),
			SpaceName: c.SpaceName,
		})
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainLeaveRequestList конвертирует список заявок в DTO
func FromDomainLeaveRequestList(items []*domain.LeaveRequest) *LeaveRequestListResponse {
	resp := &LeaveRequestListResponse{
		LeaveRequests: make([]LeaveRequestResponse, 0, len(items)),
	}
	for _, item := range items {
		if r := FromDomainLeaveRequest(item); r != nil {
			resp.LeaveRequests = append(resp.LeaveRequests, *r)
		}
	}
	return resp
}

// FromDomainBalances конвертирует остатки в DTO
func FromDomainBalances(staffID int64, balances []domain.LeaveBalance) *BalanceResponse {
	resp := &BalanceResponse{
		StaffID:  staffID,
		Balances: make([]BalanceItem, 0, len(balances)),
	}
	for _, b := range balances {
		resp.Balances = append(resp.Balances, BalanceItem{
			LeaveType: string(b.LeaveType),
			Total:     b.Total,
			Used:      b.Used,
			Remaining: b.Remaining(),
		})
	}
	return resp
}
