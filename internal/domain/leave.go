package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// LeaveType is the balance category a request draws from.
type LeaveType string

const (
	LeaveAnnual    LeaveType = "annual"
	LeaveSick      LeaveType = "sick"
	LeaveEmergency LeaveType = "emergency"
)

// LeaveTypes lists every category in display order.
var LeaveTypes = []LeaveType{LeaveAnnual, LeaveSick, LeaveEmergency}

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveAnnual, LeaveSick, LeaveEmergency:
		return true
	default:
		return false
	}
}

func ParseLeaveType(s string) (LeaveType, error) {
	t := LeaveType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown leave type %q", ErrInvalidInput, s)
	}
	return t, nil
}

// LeaveStatus is the lifecycle state of a leave request.
type LeaveStatus string

const (
	LeavePending   LeaveStatus = "pending"
	LeaveApproved  LeaveStatus = "approved"
	LeaveRejected  LeaveStatus = "rejected"
	LeaveCancelled LeaveStatus = "cancelled"
)

func (s LeaveStatus) IsValid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected, LeaveCancelled:
		return true
	default:
		return false
	}
}

func ParseLeaveStatus(s string) (LeaveStatus, error) {
	status := LeaveStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown leave status %q", ErrInvalidInput, s)
	}
	return status, nil
}

// ReviewStage is one of the two independent approval slots.
type ReviewStage string

const (
	StageHR   ReviewStage = "hr"
	StageHead ReviewStage = "head"
)

func (s ReviewStage) IsValid() bool {
	return s == StageHR || s == StageHead
}

// Other returns the opposite slot.
func (s ReviewStage) Other() ReviewStage {
	if s == StageHR {
		return StageHead
	}
	return StageHR
}

func ParseReviewStage(s string) (ReviewStage, error) {
	stage := ReviewStage(s)
	if !stage.IsValid() {
		return "", fmt.Errorf("%w: unknown review stage %q", ErrInvalidInput, s)
	}
	return stage, nil
}

// ReviewOutcome is the decision recorded in a review slot.
type ReviewOutcome string

const (
	OutcomeApproved ReviewOutcome = "approved"
	OutcomeRejected ReviewOutcome = "rejected"
)

func (o ReviewOutcome) IsValid() bool {
	return o == OutcomeApproved || o == OutcomeRejected
}

// Review is a filled approval slot.
type Review struct {
	ReviewerID int64
	Outcome    ReviewOutcome
	Notes      *string
	ReviewedAt time.Time
}

// LeaveRequest is a staff member's request for time off, reviewed independently by HR
// and by the department head.
type LeaveRequest struct {
	ID        int64
	StaffID   int64
	LeaveType LeaveType
	StartDate types.Date
	EndDate   types.Date
	TotalDays int
	Reason    string
	Status    LeaveStatus

	HRReview   *Review
	HeadReview *Review

	// ConflictSnapshot lists bookings the staff member was assigned to when the
	// request was submitted. It is informational and never blocks a transition.
	ConflictSnapshot []ConflictSnapshotItem

	CancellationReason *string
	CancelledBy        *int64
	CancelledAt        *time.Time

	// Version is incremented on every update; writers compare it to detect lost updates.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveTransition describes the effect of a successful state change.
// BalanceDelta is the number of days to add to the used balance (negative on cancellation).
type LeaveTransition struct {
	From         LeaveStatus
	To           LeaveStatus
	BalanceDelta int
}

func (r *LeaveRequest) Range() DateRange {
	return DateRange{Start: r.StartDate, End: r.EndDate}
}

// ReviewFor returns the slot for the stage, nil if it is still empty.
func (r *LeaveRequest) ReviewFor(stage ReviewStage) *Review {
	if stage == StageHR {
		return r.HRReview
	}
	return r.HeadReview
}

func (r *LeaveRequest) setReview(stage ReviewStage, review *Review) {
	if stage == StageHR {
		r.HRReview = review
		return
	}
	r.HeadReview = review
}

// AwaitingStage is true while the request is pending and the stage has not reviewed it.
func (r *LeaveRequest) AwaitingStage(stage ReviewStage) bool {
	return r.Status == LeavePending && r.ReviewFor(stage) == nil
}

// IsPendingSecondApproval is true when exactly one slot has approved and the other is empty.
func (r *LeaveRequest) IsPendingSecondApproval() bool {
	if r.Status != LeavePending {
		return false
	}
	return (r.HRReview != nil) != (r.HeadReview != nil)
}

// ApplyReview fills the stage's slot. A rejection rejects the request. An approval
// approves it only when the other slot already holds an approval, and only then
// reports a positive BalanceDelta, so the balance moves once per request.
func (r *LeaveRequest) ApplyReview(stage ReviewStage, review Review) (LeaveTransition, error) {
	if !stage.IsValid() || !review.Outcome.IsValid() {
		return LeaveTransition{}, fmt.Errorf("%w: invalid review stage or outcome", ErrInvalidInput)
	}
	if r.Status != LeavePending {
		return LeaveTransition{}, fmt.Errorf("%w: only pending leave requests can be reviewed, current status %s",
			ErrInvalidStateTransition, r.Status)
	}
	if r.ReviewFor(stage) != nil {
		return LeaveTransition{}, fmt.Errorf("%w: request has already been reviewed at %s stage",
			ErrInvalidStateTransition, stage)
	}

	from := r.Status
	r.setReview(stage, &review)

	if review.Outcome == OutcomeRejected {
		r.Status = LeaveRejected
		return LeaveTransition{From: from, To: r.Status}, nil
	}

	other := r.ReviewFor(stage.Other())
	if other != nil && other.Outcome == OutcomeApproved {
		r.Status = LeaveApproved
		return LeaveTransition{From: from, To: r.Status, BalanceDelta: r.TotalDays}, nil
	}

	return LeaveTransition{From: from, To: r.Status}, nil
}

// Cancel withdraws a pending or approved request. Cancelling an approved request
// returns its days to the balance.
func (r *LeaveRequest) Cancel(actorID int64, reason *string, at time.Time) (LeaveTransition, error) {
	switch r.Status {
	case LeavePending, LeaveApproved:
	default:
		return LeaveTransition{}, fmt.Errorf("%w: %s leave request cannot be cancelled",
			ErrInvalidStateTransition, r.Status)
	}

	from := r.Status
	r.Status = LeaveCancelled
	r.CancellationReason = reason
	r.CancelledBy = &actorID
	r.CancelledAt = &at

	transition := LeaveTransition{From: from, To: r.Status}
	if from == LeaveApproved {
		transition.BalanceDelta = -r.TotalDays
	}
	return transition, nil
}

// PendingStage selects pending requests by which review is still missing.
type PendingStage string

const (
	PendingAny            PendingStage = "any"
	PendingAwaitingHR     PendingStage = "awaiting_hr"
	PendingAwaitingHead   PendingStage = "awaiting_head"
	PendingAwaitingSecond PendingStage = "awaiting_second"
)

func ParsePendingStage(s string) (PendingStage, error) {
	if s == "" {
		return PendingAny, nil
	}
	stage := PendingStage(s)
	switch stage {
	case PendingAny, PendingAwaitingHR, PendingAwaitingHead, PendingAwaitingSecond:
		return stage, nil
	default:
		return "", fmt.Errorf("%w: unknown pending stage %q", ErrInvalidInput, s)
	}
}

// Matches reports whether a pending request belongs to the stage queue.
func (s PendingStage) Matches(r *LeaveRequest) bool {
	if r.Status != LeavePending {
		return false
	}
	switch s {
	case PendingAwaitingHR:
		return r.HRReview == nil
	case PendingAwaitingHead:
		return r.HeadReview == nil
	case PendingAwaitingSecond:
		return r.IsPendingSecondApproval()
	default:
		return true
	}
}

// LeaveRequestsFilter фильтр списка заявок на отпуск
type LeaveRequestsFilter struct {
	StaffID   *int64
	Status    *LeaveStatus
	LeaveType *LeaveType
	Year      *int       // Заявки, начинающиеся в указанном году
	Overlaps  *DateRange // Заявки, пересекающиеся с периодом
}
