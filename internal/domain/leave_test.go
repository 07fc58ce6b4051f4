package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewedAt = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

func newPendingRequest() *LeaveRequest {
	return &LeaveRequest{
		ID:        1,
		StaffID:   9,
		LeaveType: LeaveAnnual,
		StartDate: day(9),
		EndDate:   day(11),
		TotalDays: 3,
		Status:    LeavePending,
		Version:   1,
	}
}

func approve(reviewer int64) Review {
	return Review{ReviewerID: reviewer, Outcome: OutcomeApproved, ReviewedAt: reviewedAt}
}

func reject(reviewer int64) Review {
	notes := "busy season"
	return Review{ReviewerID: reviewer, Outcome: OutcomeRejected, Notes: &notes, ReviewedAt: reviewedAt}
}

func TestApplyReview_BothApprovalsInEitherOrder(t *testing.T) {
	orders := [][2]ReviewStage{{StageHR, StageHead}, {StageHead, StageHR}}

	for _, order := range orders {
		t.Run(string(order[0])+"_first", func(t *testing.T) {
			req := newPendingRequest()

			first, err := req.ApplyReview(order[0], approve(100))
			require.NoError(t, err)
			assert.Equal(t, LeavePending, first.To)
			assert.Zero(t, first.BalanceDelta)
			assert.True(t, req.IsPendingSecondApproval())
			assert.True(t, req.AwaitingStage(order[1]))
			assert.False(t, req.AwaitingStage(order[0]))

			second, err := req.ApplyReview(order[1], approve(200))
			require.NoError(t, err)
			assert.Equal(t, LeavePending, second.From)
			assert.Equal(t, LeaveApproved, second.To)
			assert.Equal(t, 3, second.BalanceDelta)
			assert.Equal(t, LeaveApproved, req.Status)
			assert.NotNil(t, req.HRReview)
			assert.NotNil(t, req.HeadReview)
		})
	}
}

func TestApplyReview_RejectAtAnyStage(t *testing.T) {
	req := newPendingRequest()
	tr, err := req.ApplyReview(StageHead, reject(200))
	require.NoError(t, err)
	assert.Equal(t, LeaveRejected, tr.To)
	assert.Zero(t, tr.BalanceDelta)

	req = newPendingRequest()
	_, err = req.ApplyReview(StageHR, approve(100))
	require.NoError(t, err)
	tr, err = req.ApplyReview(StageHead, reject(200))
	require.NoError(t, err)
	assert.Equal(t, LeaveRejected, req.Status)
	assert.Zero(t, tr.BalanceDelta)
}

func TestApplyReview_SameStageTwice(t *testing.T) {
	req := newPendingRequest()
	_, err := req.ApplyReview(StageHR, approve(100))
	require.NoError(t, err)

	_, err = req.ApplyReview(StageHR, approve(101))
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Equal(t, int64(100), req.HRReview.ReviewerID)
	assert.Equal(t, LeavePending, req.Status)
}

func TestApplyReview_NotPending(t *testing.T) {
	for _, status := range []LeaveStatus{LeaveApproved, LeaveRejected, LeaveCancelled} {
		req := newPendingRequest()
		req.Status = status

		_, err := req.ApplyReview(StageHead, approve(200))
		assert.ErrorIs(t, err, ErrInvalidStateTransition, string(status))
		assert.Nil(t, req.HeadReview)
	}
}

func TestApplyReview_InvalidOutcome(t *testing.T) {
	req := newPendingRequest()
	_, err := req.ApplyReview(StageHR, Review{ReviewerID: 1, Outcome: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	reason := "plans changed"

	pending := newPendingRequest()
	tr, err := pending.Cancel(9, &reason, reviewedAt)
	require.NoError(t, err)
	assert.Equal(t, LeaveCancelled, pending.Status)
	assert.Zero(t, tr.BalanceDelta)
	assert.Equal(t, int64(9), *pending.CancelledBy)

	approved := newPendingRequest()
	approved.Status = LeaveApproved
	tr, err = approved.Cancel(9, nil, reviewedAt)
	require.NoError(t, err)
	assert.Equal(t, LeaveApproved, tr.From)
	assert.Equal(t, -3, tr.BalanceDelta)

	for _, status := range []LeaveStatus{LeaveRejected, LeaveCancelled} {
		req := newPendingRequest()
		req.Status = status
		_, err := req.Cancel(9, nil, reviewedAt)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
		assert.Equal(t, status, req.Status)
	}
}

func TestPendingStage_Matches(t *testing.T) {
	fresh := newPendingRequest()

	hrDone := newPendingRequest()
	hrDone.HRReview = &Review{Outcome: OutcomeApproved}

	headDone := newPendingRequest()
	headDone.HeadReview = &Review{Outcome: OutcomeApproved}

	approved := newPendingRequest()
	approved.Status = LeaveApproved

	tests := []struct {
		stage PendingStage
		want  []*LeaveRequest
	}{
		{PendingAny, []*LeaveRequest{fresh, hrDone, headDone}},
		{PendingAwaitingHR, []*LeaveRequest{fresh, headDone}},
		{PendingAwaitingHead, []*LeaveRequest{fresh, hrDone}},
		{PendingAwaitingSecond, []*LeaveRequest{hrDone, headDone}},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			var got []*LeaveRequest
			for _, r := range []*LeaveRequest{fresh, hrDone, headDone, approved} {
				if tt.stage.Matches(r) {
					got = append(got, r)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}

	stage, err := ParsePendingStage("")
	require.NoError(t, err)
	assert.Equal(t, PendingAny, stage)

	_, err = ParsePendingStage("awaiting_ceo")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseLeaveEnums(t *testing.T) {
	lt, err := ParseLeaveType("sick")
	require.NoError(t, err)
	assert.Equal(t, LeaveSick, lt)

	_, err = ParseLeaveType("unpaid")
	assert.ErrorIs(t, err, ErrInvalidInput)

	st, err := ParseLeaveStatus("rejected")
	require.NoError(t, err)
	assert.Equal(t, LeaveRejected, st)

	stage, err := ParseReviewStage("head")
	require.NoError(t, err)
	assert.Equal(t, StageHR, stage.Other())
}
