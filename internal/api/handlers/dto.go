package handlers

import (
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// StaffResponse сотрудник в ответах о доступности
type StaffResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Position        *string  `json:"position,omitempty"`
	DepartmentID    *int64   `json:"departmentId,omitempty"`
	Specializations []string `json:"specializations"`
	IsAvailable     bool     `json:"isAvailable"`
}

// SpaceResponse площадка в ответах о доступности
type SpaceResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
	Capacity int     `json:"capacity"`
	IsActive bool    `json:"isActive"`
}

// ConflictResponse бронирование, пересекающееся с запрошенным периодом
type ConflictResponse struct {
	BookingID int64   `json:"bookingId"`
	SpaceID   int64   `json:"spaceId"`
	SpaceName string  `json:"spaceName"`
	Title     string  `json:"title"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Status    string  `json:"status"`
	Role      *string `json:"role,omitempty"`
}

func FromDomainStaff(s *domain.Staff) StaffResponse {
	specs := s.Specializations
	if specs == nil {
		specs = []string{}
	}
	return StaffResponse{
		ID:              s.ID,
		Name:            s.Name,
		Position:        s.Position,
		DepartmentID:    s.DepartmentID,
		Specializations: specs,
		IsAvailable:     s.IsAvailable,
	}
}

func FromDomainStaffList(items []*domain.Staff) []StaffResponse {
	result := make([]StaffResponse, 0, len(items))
	for _, s := range items {
		result = append(result, FromDomainStaff(s))
	}
	return result
}

func FromDomainSpaceList(items []*domain.Space) []SpaceResponse {
	result := make([]SpaceResponse, 0, len(items))
	for _, s := range items {
		result = append(result, SpaceResponse{
			ID:       s.ID,
			Name:     s.Name,
			Location: s.Location,
			Capacity: s.Capacity,
			IsActive: s.IsActive,
		})
	}
	return result
}

func FromDomainConflicts(items []domain.Occupancy) []ConflictResponse {
	result := make([]ConflictResponse, 0, len(items))
	for _, o := range items {
		result = append(result, ConflictResponse{
			BookingID: o.BookingID,
			SpaceID:   o.SpaceID,
			SpaceName: o.SpaceName,
			Title:     o.Title,
			StartDate: o.StartDate.String(),
			EndDate:   o.EndDate.String(),
			Status:    string(o.Status),
			Role:      o.Role,
		})
	}
	return result
}
