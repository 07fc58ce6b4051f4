package staff_availability

import (
	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/service/availability"
)

// SummaryResponse сводка доступности сотрудника
type SummaryResponse struct {
	Staff            handlers.StaffResponse      `json:"staff"`
	StartDate        string                      `json:"startDate"`
	EndDate          string                      `json:"endDate"`
	IsAvailable      bool                        `json:"isAvailable"`
	AvailabilityFlag bool                        `json:"availabilityFlag"`
	HasConflicts     bool                        `json:"hasConflicts"`
	Conflicts        []handlers.ConflictResponse `json:"conflicts"`
}

func FromSummary(s *availability.Summary, period domain.DateRange) *SummaryResponse {
	return &SummaryResponse{
		Staff:            handlers.FromDomainStaff(s.Staff),
		StartDate:        period.Start.String(),
		EndDate:          period.End.String(),
		IsAvailable:      s.IsAvailable,
		AvailabilityFlag: s.AvailabilityFlag,
		HasConflicts:     s.HasConflicts,
		Conflicts:        handlers.FromDomainConflicts(s.Conflicts),
	}
}
