package domain

import (
	"fmt"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Overlaps reports whether the closed day intervals [aStart, aEnd] and [bStart, bEnd]
// share at least one day. Touching endpoints overlap.
func Overlaps(aStart, aEnd, bStart, bEnd types.Date) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// DateRange is a closed interval of calendar days, Start <= End.
type DateRange struct {
	Start types.Date
	End   types.Date
}

// NewDateRange validates the bounds. A single-day range (start == end) is valid.
func NewDateRange(start, end types.Date) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidInput, end, start)
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps applies the package-level predicate to two ranges.
func (r DateRange) Overlaps(o DateRange) bool {
	return Overlaps(r.Start, r.End, o.Start, o.End)
}

// Days is the inclusive number of days in the range.
func (r DateRange) Days() int {
	return InclusiveDays(r.Start, r.End)
}

func (r DateRange) Contains(d types.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r DateRange) String() string {
	return r.Start.String() + ".." + r.End.String()
}

// InclusiveDays counts both endpoints: the same day gives 1.
func InclusiveDays(start, end types.Date) int {
	return start.DaysUntil(end) + 1
}
