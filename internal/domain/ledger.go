package domain

import (
	"fmt"
	"time"
)

// LedgerEntryKind classifies a leave ledger entry.
type LedgerEntryKind string

const (
	// LedgerOpening imports a used balance recorded elsewhere.
	LedgerOpening      LedgerEntryKind = "opening"
	LedgerApproval     LedgerEntryKind = "approval"
	LedgerCancellation LedgerEntryKind = "cancellation"
	LedgerAdjustment   LedgerEntryKind = "adjustment"
)

func (k LedgerEntryKind) IsValid() bool {
	switch k {
	case LedgerOpening, LedgerApproval, LedgerCancellation, LedgerAdjustment:
		return true
	default:
		return false
	}
}

// LeaveLedgerEntry is an append-only change of used leave days.
type LeaveLedgerEntry struct {
	ID             int64
	StaffID        int64
	LeaveType      LeaveType
	Kind           LedgerEntryKind
	Delta          int
	LeaveRequestID *int64
	// IdempotencyKey is unique across the ledger.
	IdempotencyKey string
	Note           *string
	CreatedBy      *int64
	CreatedAt      time.Time
}

// RequestLedgerKey is the idempotency key of the entry a leave request transition produces.
func RequestLedgerKey(requestID int64, kind LedgerEntryKind) string {
	return fmt.Sprintf("leave-request:%d:%s", requestID, kind)
}

// FoldUsed replays entries in order. The running total never drops below zero,
// so a refund larger than what was used stops at zero.
func FoldUsed(entries []LeaveLedgerEntry) int {
	used := 0
	for _, e := range entries {
		used = max(0, used+e.Delta)
	}
	return used
}

// LeaveBalance is the state of one leave category.
type LeaveBalance struct {
	LeaveType LeaveType
	Total     int
	Used      int
}

// Remaining is never negative.
func (b LeaveBalance) Remaining() int {
	return max(0, b.Total-b.Used)
}

// BuildBalance folds the entries of one category against its allowance.
// Entries of other categories are ignored.
func BuildBalance(t LeaveType, allowance LeaveAllowance, entries []LeaveLedgerEntry) LeaveBalance {
	own := make([]LeaveLedgerEntry, 0, len(entries))
	for _, e := range entries {
		if e.LeaveType == t {
			own = append(own, e)
		}
	}
	return LeaveBalance{
		LeaveType: t,
		Total:     allowance.For(t),
		Used:      FoldUsed(own),
	}
}

// BuildBalances returns one balance per category in LeaveTypes order.
func BuildBalances(allowance LeaveAllowance, entries []LeaveLedgerEntry) []LeaveBalance {
	balances := make([]LeaveBalance, 0, len(LeaveTypes))
	for _, t := range LeaveTypes {
		balances = append(balances, BuildBalance(t, allowance, entries))
	}
	return balances
}
