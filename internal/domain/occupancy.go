package domain

import "github.com/m04kA/SMC-VenueService/pkg/types"

// Occupancy is one booking interval held by a resource: a booking of a space,
// or a staff assignment joined to its booking. Conflict checks return these.
type Occupancy struct {
	BookingID int64
	SpaceID   int64
	SpaceName string
	Title     string
	StartDate types.Date
	EndDate   types.Date
	Status    BookingStatus
	// Role is set for staff occupancy only.
	Role *string
}

func (o Occupancy) Range() DateRange {
	return DateRange{Start: o.StartDate, End: o.EndDate}
}

// ConflictSnapshotItem is the booking data recorded on a leave request at submission.
type ConflictSnapshotItem struct {
	BookingID int64      `json:"bookingId"`
	Title     string     `json:"title"`
	StartDate types.Date `json:"startDate"`
	EndDate   types.Date `json:"endDate"`
	SpaceName string     `json:"spaceName"`
}

// SnapshotOf converts conflicts into their stored form.
func SnapshotOf(conflicts []Occupancy) []ConflictSnapshotItem {
	items := make([]ConflictSnapshotItem, 0, len(conflicts))
	for _, c := range conflicts {
		items = append(items, ConflictSnapshotItem{
			BookingID: c.BookingID,
			Title:     c.Title,
			StartDate: c.StartDate,
			EndDate:   c.EndDate,
			SpaceName: c.SpaceName,
		})
	}
	return items
}
