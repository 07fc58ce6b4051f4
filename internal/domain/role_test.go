package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, role)

	role, err = ParseRole("head_of_department")
	require.NoError(t, err)
	assert.Equal(t, RoleHead, role)

	_, err = ParseRole("root")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRole_CanReviewAsHR(t *testing.T) {
	assert.True(t, RoleAdmin.CanReviewAsHR())
	assert.True(t, RoleSuperAdmin.CanReviewAsHR())
	assert.False(t, RoleHead.CanReviewAsHR())
	assert.False(t, RoleStaff.CanReviewAsHR())
}
