package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

var base = types.MustParseDate("2025-06-01")

func day(n int) types.Date { return base.AddDays(n) }

func TestOverlaps_Cases(t *testing.T) {
	tests := []struct {
		name                 string
		aStart, aEnd, bStart int
		bEnd                 int
		want                 bool
	}{
		{"identical", 10, 12, 10, 12, true},
		{"touching end to start", 10, 12, 12, 14, true},
		{"touching start to end", 12, 14, 10, 12, true},
		{"adjacent days", 10, 12, 13, 15, false},
		{"contained", 10, 20, 12, 13, true},
		{"containing", 12, 13, 10, 20, true},
		{"single day inside", 10, 12, 11, 11, true},
		{"single day equal", 11, 11, 11, 11, true},
		{"single day apart", 11, 11, 12, 12, false},
		{"before", 1, 3, 5, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			assert.Equal(t, tt.want, got)
		})
	}
}

// A pair of ranges overlaps exactly when some day belongs to both.
func TestOverlaps_MatchesDayByDayOracle(t *testing.T) {
	const span = 8
	for aStart := 0; aStart < span; aStart++ {
		for aEnd := aStart; aEnd < span; aEnd++ {
			for bStart := 0; bStart < span; bStart++ {
				for bEnd := bStart; bEnd < span; bEnd++ {
					shared := false
					for d := aStart; d <= aEnd; d++ {
						if d >= bStart && d <= bEnd {
							shared = true
							break
						}
					}

					got := Overlaps(day(aStart), day(aEnd), day(bStart), day(bEnd))
					require.Equal(t, shared, got, "a=[%d,%d] b=[%d,%d]", aStart, aEnd, bStart, bEnd)
					require.Equal(t, got, Overlaps(day(bStart), day(bEnd), day(aStart), day(aEnd)),
						"predicate must be symmetric")
				}
			}
		}
	}
}

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange(day(3), day(3))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Days())
	assert.True(t, r.Contains(day(3)))
	assert.False(t, r.Contains(day(4)))

	r, err = NewDateRange(day(0), day(4))
	require.NoError(t, err)
	assert.Equal(t, 5, r.Days())
	assert.Equal(t, "2025-06-01..2025-06-05", r.String())

	_, err = NewDateRange(day(4), day(0))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewDateRange(types.Date{}, day(0))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInclusiveDays_AcrossMonthBoundary(t *testing.T) {
	assert.Equal(t, 3, InclusiveDays(types.MustParseDate("2025-06-10"), types.MustParseDate("2025-06-12")))
	assert.Equal(t, 4, InclusiveDays(types.MustParseDate("2024-02-28"), types.MustParseDate("2024-03-02")))
}
