package domain

import "time"

// Space is a bookable venue.
type Space struct {
	ID          int64
	Name        string
	Location    *string
	Description *string
	Capacity    int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *Space) Ref() ResourceRef {
	return ResourceRef{Kind: ResourceSpace, ID: s.ID}
}

func (s *Space) AvailabilityFlag() bool {
	return s.IsActive
}

// SpacesFilter фильтр списка площадок
type SpacesFilter struct {
	ActiveOnly  bool
	MinCapacity *int
}
