package domain

import "fmt"

// ResourceKind selects which occupancy records a conflict check scans.
type ResourceKind string

const (
	ResourceSpace ResourceKind = "space"
	ResourceStaff ResourceKind = "staff"
)

func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceSpace, ResourceStaff:
		return true
	default:
		return false
	}
}

// ParseResourceKind converts external input to a ResourceKind.
func ParseResourceKind(s string) (ResourceKind, error) {
	k := ResourceKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, s)
	}
	return k, nil
}

// ResourceRef identifies an allocatable resource.
type ResourceRef struct {
	Kind ResourceKind
	ID   int64
}

func (r ResourceRef) String() string {
	return fmt.Sprintf("%s#%d", r.Kind, r.ID)
}

// Resource is anything that can be allocated to a booking: a space or a staff member.
type Resource interface {
	Ref() ResourceRef
	// AvailabilityFlag is the administrative on/off switch, independent of bookings.
	AvailabilityFlag() bool
}
