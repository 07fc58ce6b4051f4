package allocation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// stubSource возвращает записи как есть, без фильтрации, чтобы проверить правила самого движка
type stubSource struct {
	records []domain.Occupancy
	err     error

	gotID      int64
	gotExclude *int64
}

func (s *stubSource) ListOccupancy(_ context.Context, id int64, _ domain.DateRange, exclude *int64) ([]domain.Occupancy, error) {
	s.gotID = id
	s.gotExclude = exclude
	return s.records, s.err
}

type countingMetrics struct {
	conflicts map[string]int
}

func (m *countingMetrics) IncConflict(kind string) {
	if m.conflicts == nil {
		m.conflicts = map[string]int{}
	}
	m.conflicts[kind]++
}

func date(s string) types.Date { return types.MustParseDate(s) }

func period(start, end string) domain.DateRange {
	return domain.DateRange{Start: date(start), End: date(end)}
}

func occupancy(id int64, start, end string, status domain.BookingStatus) domain.Occupancy {
	return domain.Occupancy{BookingID: id, Title: "event", StartDate: date(start), EndDate: date(end), Status: status}
}

func TestListConflicts_SpaceRules(t *testing.T) {
	spaces := &stubSource{records: []domain.Occupancy{
		occupancy(1, "2025-06-10", "2025-06-12", domain.StatusConfirmed),
		occupancy(2, "2025-06-12", "2025-06-12", domain.StatusCancelled),
		occupancy(3, "2025-06-13", "2025-06-15", domain.StatusPending),
		occupancy(4, "2025-06-01", "2025-06-02", domain.StatusCompleted),
	}}
	engine := NewEngine(spaces, &stubSource{}, &countingMetrics{}, logger.NewNop())

	tests := []struct {
		name    string
		period  domain.DateRange
		exclude *int64
		want    []int64
	}{
		{"touching end day conflicts", period("2025-06-12", "2025-06-12"), nil, []int64{1}},
		{"adjacent day is free", period("2025-06-16", "2025-06-20"), nil, nil},
		{"cancelled never conflicts", period("2025-06-12", "2025-06-12"), ptr.Ptr(int64(1)), nil},
		{"spanning several bookings", period("2025-06-01", "2025-06-30"), nil, []int64{1, 3, 4}},
		{"exclusion drops only that booking", period("2025-06-01", "2025-06-30"), ptr.Ptr(int64(3)), []int64{1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts, err := engine.ListConflicts(context.Background(),
				domain.ResourceRef{Kind: domain.ResourceSpace, ID: 7}, tt.period, tt.exclude)
			require.NoError(t, err)

			var ids []int64
			for _, c := range conflicts {
				ids = append(ids, c.BookingID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, int64(7), spaces.gotID)
			assert.Equal(t, tt.exclude, spaces.gotExclude)
		})
	}
}

func TestHasConflict_StaffUsesStaffSource(t *testing.T) {
	spaces := &stubSource{records: []domain.Occupancy{
		occupancy(1, "2025-06-10", "2025-06-12", domain.StatusConfirmed),
	}}
	staff := &stubSource{records: []domain.Occupancy{
		occupancy(9, "2025-07-01", "2025-07-01", domain.StatusPending),
	}}
	metrics := &countingMetrics{}
	engine := NewEngine(spaces, staff, metrics, logger.NewNop())

	busy, err := engine.HasConflict(context.Background(),
		domain.ResourceRef{Kind: domain.ResourceStaff, ID: 3}, period("2025-06-30", "2025-07-02"), nil)
	require.NoError(t, err)
	assert.True(t, busy)
	assert.Equal(t, int64(3), staff.gotID)
	assert.Equal(t, 1, metrics.conflicts["staff"])

	busy, err = engine.HasConflict(context.Background(),
		domain.ResourceRef{Kind: domain.ResourceStaff, ID: 3}, period("2025-06-10", "2025-06-12"), nil)
	require.NoError(t, err)
	assert.False(t, busy, "space bookings must not leak into staff checks")
}

func TestHasConflict_NoRecordsMeansFree(t *testing.T) {
	engine := NewEngine(&stubSource{}, &stubSource{}, &countingMetrics{}, logger.NewNop())

	busy, err := engine.HasConflict(context.Background(),
		domain.ResourceRef{Kind: domain.ResourceSpace, ID: 404}, period("2025-06-10", "2025-06-10"), nil)
	require.NoError(t, err)
	assert.False(t, busy)
}

func TestListConflicts_Errors(t *testing.T) {
	boom := errors.New("db down")
	engine := NewEngine(&stubSource{err: boom}, &stubSource{}, &countingMetrics{}, logger.NewNop())

	_, err := engine.ListConflicts(context.Background(),
		domain.ResourceRef{Kind: domain.ResourceSpace, ID: 1}, period("2025-06-10", "2025-06-10"), nil)
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, boom)

	_, err = engine.ListConflicts(context.Background(),
		domain.ResourceRef{Kind: "vehicle", ID: 1}, period("2025-06-10", "2025-06-10"), nil)
	assert.ErrorIs(t, err, ErrUnknownResourceKind)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
