package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(t LeaveType, kind LedgerEntryKind, delta int) LeaveLedgerEntry {
	return LeaveLedgerEntry{LeaveType: t, Kind: kind, Delta: delta}
}

func TestFoldUsed_FloorsAfterEveryEntry(t *testing.T) {
	tests := []struct {
		name    string
		entries []LeaveLedgerEntry
		want    int
	}{
		{"empty", nil, 0},
		{"approvals add up", []LeaveLedgerEntry{
			entry(LeaveAnnual, LedgerApproval, 3),
			entry(LeaveAnnual, LedgerApproval, 2),
		}, 5},
		{"cancellation returns days", []LeaveLedgerEntry{
			entry(LeaveAnnual, LedgerApproval, 3),
			entry(LeaveAnnual, LedgerApproval, 2),
			entry(LeaveAnnual, LedgerCancellation, -3),
		}, 2},
		{"refund larger than used stops at zero", []LeaveLedgerEntry{
			entry(LeaveAnnual, LedgerOpening, 2),
			entry(LeaveAnnual, LedgerCancellation, -5),
		}, 0},
		{"floor is applied per step, not at the end", []LeaveLedgerEntry{
			entry(LeaveAnnual, LedgerCancellation, -4),
			entry(LeaveAnnual, LedgerApproval, 3),
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldUsed(tt.entries))
		})
	}
}

func TestBuildBalances(t *testing.T) {
	allowance := LeaveAllowance{Annual: 15, Sick: 10, Emergency: 5}
	entries := []LeaveLedgerEntry{
		entry(LeaveAnnual, LedgerApproval, 4),
		entry(LeaveSick, LedgerApproval, 12),
		entry(LeaveAnnual, LedgerAdjustment, 1),
	}

	balances := BuildBalances(allowance, entries)

	assert.Equal(t, []LeaveBalance{
		{LeaveType: LeaveAnnual, Total: 15, Used: 5},
		{LeaveType: LeaveSick, Total: 10, Used: 12},
		{LeaveType: LeaveEmergency, Total: 5, Used: 0},
	}, balances)
	assert.Equal(t, 10, balances[0].Remaining())
	assert.Equal(t, 0, balances[1].Remaining())
	assert.Equal(t, 5, balances[2].Remaining())
}

func TestDefaultLeaveAllowance(t *testing.T) {
	a := DefaultLeaveAllowance()
	assert.Equal(t, 15, a.For(LeaveAnnual))
	assert.Equal(t, 10, a.For(LeaveSick))
	assert.Equal(t, 5, a.For(LeaveEmergency))
	assert.Equal(t, 0, a.For("unpaid"))
}

func TestRequestLedgerKey(t *testing.T) {
	assert.Equal(t, "leave-request:7:approval", RequestLedgerKey(7, LedgerApproval))
}
