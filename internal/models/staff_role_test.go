package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaffRoleLevels(t *testing.T) {
	require.Equal(t, 1, RoleTeachingAssistant.Level())
	require.Equal(t, 2, RoleInstructor.Level())
	require.Equal(t, 3, RoleSeniorInstructor.Level())
	require.Equal(t, 4, RoleAdministrator.Level())
}

func TestStaffRoleHasAccess(t *testing.T) {
	roles := []StaffRole{RoleTeachingAssistant, RoleInstructor, RoleSeniorInstructor, RoleAdministrator}

	for _, held := range roles {
		for _, required := range roles {
			want := held.Level() >= required.Level()
			require.Equal(t, want, held.HasAccess(required),
				"held %s, required %s", held, required)
		}
	}
}

func TestStaffRoleDisplayName(t *testing.T) {
	tests := []struct {
		role StaffRole
		want string
	}{
		{RoleTeachingAssistant, "Teaching Assistant"},
		{RoleInstructor, "Instructor"},
		{RoleSeniorInstructor, "Senior Instructor"},
		{RoleAdministrator, "Administrator"},
		{StaffRole(0), "Unknown"},
		{StaffRole(9), "Unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.role.DisplayName())
		require.Equal(t, tt.want, tt.role.String())
	}
}

func TestStaffRoleValid(t *testing.T) {
	require.True(t, RoleTeachingAssistant.Valid())
	require.True(t, RoleAdministrator.Valid())
	require.False(t, StaffRole(0).Valid())
	require.False(t, StaffRole(5).Valid())
}
