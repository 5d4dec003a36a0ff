package authController

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPermissionsByRole(t *testing.T) {
	learner := getDefaultPermissions("LEARNER")
	require.NotEmpty(t, learner)
	assert.Contains(t, learner, "view-sections")
	assert.Contains(t, learner, "attempt-exercises")
	assert.NotContains(t, learner, "manage-sections")

	instructor := getDefaultPermissions("INSTRUCTOR")
	assert.Contains(t, instructor, "manage-sections")
	assert.Contains(t, instructor, "manage-exercises")
	assert.Contains(t, instructor, "review-results")
	assert.NotContains(t, instructor, "manage-users")

	admin := getDefaultPermissions("ADMIN")
	assert.Contains(t, admin, "manage-users")

	// An unknown role falls back to the learner set, never an empty one
	assert.Equal(t, learner, getDefaultPermissions(""))
}
