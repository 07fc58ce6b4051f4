package domain

import "fmt"

// Role is the user role issued by the gateway together with the user ID.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleHead       Role = "head_of_department"
	RoleStaff      Role = "staff"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleHead, RoleStaff:
		return true
	default:
		return false
	}
}

// ParseRole treats an empty value as RoleStaff.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleStaff, nil
	}
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
	return role, nil
}

// CanReviewAsHR reports whether the role may fill the HR slot.
func (r Role) CanReviewAsHR() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Reviewer is the user acting on a leave request.
type Reviewer struct {
	UserID int64
	Role   Role
}

// Department groups staff under one head.
type Department struct {
	ID         int64
	Name       string
	HeadUserID *int64
}
