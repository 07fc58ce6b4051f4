package domain

import "time"

// Assignment links a staff member to a booking. The (BookingID, StaffID) pair is unique.
type Assignment struct {
	BookingID int64
	StaffID   int64
	Role      *string
	Notes     *string
	CreatedAt time.Time
}

// AssignedStaff is an assignment joined with its staff member.
type AssignedStaff struct {
	Assignment
	Staff *Staff
}
