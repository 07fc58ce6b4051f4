package domain

import "time"

// Default leave allowances per year, in days.
const (
	DefaultAnnualLeaveDays    = 15
	DefaultSickLeaveDays      = 10
	DefaultEmergencyLeaveDays = 5
)

// LeaveAllowance is the per-category total a staff member may use.
type LeaveAllowance struct {
	Annual    int
	Sick      int
	Emergency int
}

// DefaultLeaveAllowance returns the allowance assigned to new staff.
func DefaultLeaveAllowance() LeaveAllowance {
	return LeaveAllowance{
		Annual:    DefaultAnnualLeaveDays,
		Sick:      DefaultSickLeaveDays,
		Emergency: DefaultEmergencyLeaveDays,
	}
}

// For returns the total for the given category.
func (a LeaveAllowance) For(t LeaveType) int {
	switch t {
	case LeaveAnnual:
		return a.Annual
	case LeaveSick:
		return a.Sick
	case LeaveEmergency:
		return a.Emergency
	default:
		return 0
	}
}

// Staff is a person who can be assigned to bookings and request leave.
type Staff struct {
	ID              int64
	UserID          int64
	DepartmentID    *int64
	Name            string
	Email           *string
	Position        *string
	Specializations []string
	IsAvailable     bool
	Notes           *string
	Allowance       LeaveAllowance
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s *Staff) Ref() ResourceRef {
	return ResourceRef{Kind: ResourceStaff, ID: s.ID}
}

func (s *Staff) AvailabilityFlag() bool {
	return s.IsAvailable
}

// HasSpecialization matches the capability tag exactly.
func (s *Staff) HasSpecialization(tag string) bool {
	for _, spec := range s.Specializations {
		if spec == tag {
			return true
		}
	}
	return false
}

// StaffFilter фильтр списка сотрудников
type StaffFilter struct {
	AvailableOnly bool
	DepartmentID  *int64
}
