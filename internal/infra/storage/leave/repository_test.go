package leave

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

func TestEncodeSnapshot(t *testing.T) {
	empty, err := encodeSnapshot(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)

	encoded, err := encodeSnapshot([]domain.ConflictSnapshotItem{{
		BookingID: 3,
		Title:     "Wedding",
		StartDate: types.MustParseDate("2025-06-10"),
		EndDate:   types.MustParseDate("2025-06-11"),
		SpaceName: "Main Hall",
	}})
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"bookingId":3,"title":"Wedding","startDate":"2025-06-10","endDate":"2025-06-11","spaceName":"Main Hall"}]`,
		encoded)
}

type fakeRow struct {
	values []interface{}
}

// Scan копирует подготовленные значения так же, как это сделал бы database/sql для nullable-колонок
func (f fakeRow) Scan(dest ...interface{}) error {
	for i, d := range dest {
		switch target := d.(type) {
		case *int64:
			*target = f.values[i].(int64)
		case *int:
			*target = f.values[i].(int)
		case *string:
			*target = f.values[i].(string)
		case *domain.LeaveType:
			*target = domain.LeaveType(f.values[i].(string))
		case *domain.LeaveStatus:
			*target = domain.LeaveStatus(f.values[i].(string))
		case *types.Date:
			if err := target.Scan(f.values[i]); err != nil {
				return err
			}
		case *[]byte:
			*target = f.values[i].([]byte)
		case *time.Time:
			*target = f.values[i].(time.Time)
		default:
			if scanner, ok := d.(interface{ Scan(interface{}) error }); ok {
				if err := scanner.Scan(f.values[i]); err != nil {
					return err
				}
				continue
			}
			if p, ok := d.(**string); ok {
				*p = nil
				continue
			}
			if p, ok := d.(**int64); ok {
				*p = nil
				continue
			}
		}
	}
	return nil
}

func TestScanLeaveRequest_ReviewSlots(t *testing.T) {
	reviewedAt := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	created := time.Date(2025, 5, 19, 9, 0, 0, 0, time.UTC)

	row := fakeRow{values: []interface{}{
		int64(11), int64(4), "annual", "2025-06-10", "2025-06-12", 3, "family trip", "pending",
		int64(70), "approved", "ok", reviewedAt,
		nil, nil, nil, nil,
		[]byte(`[{"bookingId":5,"title":"Gala","startDate":"2025-06-11","endDate":"2025-06-11","spaceName":"Hall"}]`),
		nil, nil, nil,
		int64(2), created, created,
	}}

	req, err := scanLeaveRequest(row)
	require.NoError(t, err)

	assert.Equal(t, int64(11), req.ID)
	assert.Equal(t, domain.LeaveAnnual, req.LeaveType)
	assert.Equal(t, 3, req.TotalDays)
	require.NotNil(t, req.HRReview)
	assert.Equal(t, int64(70), req.HRReview.ReviewerID)
	assert.Equal(t, domain.OutcomeApproved, req.HRReview.Outcome)
	assert.Equal(t, "ok", *req.HRReview.Notes)
	assert.Nil(t, req.HeadReview)
	assert.True(t, req.IsPendingSecondApproval())
	require.Len(t, req.ConflictSnapshot, 1)
	assert.Equal(t, "Gala", req.ConflictSnapshot[0].Title)
	assert.Nil(t, req.CancelledAt)
	assert.Equal(t, int64(2), req.Version)
}

func TestReviewColumns(t *testing.T) {
	by, outcome, notes, at := reviewColumns(nil)
	assert.Nil(t, by)
	assert.Nil(t, outcome)
	assert.Nil(t, notes)
	assert.Nil(t, at)

	now := time.Now()
	by, outcome, _, at = reviewColumns(&domain.Review{ReviewerID: 5, Outcome: domain.OutcomeRejected, ReviewedAt: now})
	assert.Equal(t, int64(5), *by)
	assert.Equal(t, "rejected", *outcome)
	assert.Equal(t, now, *at)
}

func TestListQuery_Overlaps(t *testing.T) {
	staffID := int64(4)
	status := domain.LeaveApproved
	period := domain.DateRange{Start: types.MustParseDate("2025-06-10"), End: types.MustParseDate("2025-06-12")}

	query, args, err := listQuery(domain.LeaveRequestsFilter{StaffID: &staffID, Status: &status, Overlaps: &period}).ToSql()

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "SELECT id, staff_id, leave_type,"))
	assert.True(t, strings.HasSuffix(query,
		"FROM leave_requests WHERE staff_id = $1 AND status = $2 AND start_date <= $3 AND end_date >= $4 "+
			"ORDER BY start_date DESC, id DESC"), query)
	assert.Equal(t, []interface{}{int64(4), domain.LeaveApproved, "2025-06-12", "2025-06-10"}, args)
}

func TestListQuery_NoFilter(t *testing.T) {
	query, args, err := listQuery(domain.LeaveRequestsFilter{}).ToSql()

	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestPendingQuery(t *testing.T) {
	tests := []struct {
		stage domain.PendingStage
		where string
	}{
		{domain.PendingAny, "WHERE status = $1 ORDER BY"},
		{domain.PendingAwaitingHR, "WHERE status = $1 AND hr_outcome IS NULL ORDER BY"},
		{domain.PendingAwaitingHead, "WHERE status = $1 AND head_outcome IS NULL ORDER BY"},
		{domain.PendingAwaitingSecond, "WHERE status = $1 AND (hr_outcome IS NULL) <> (head_outcome IS NULL) ORDER BY"},
	}
	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			query, args, err := pendingQuery(tt.stage).ToSql()

			require.NoError(t, err)
			assert.Contains(t, query, tt.where)
			assert.Equal(t, []interface{}{domain.LeavePending}, args)
		})
	}
}
