package factory

import (
	"testing"

	"staff-auth-service/internal/config"
	"staff-auth-service/internal/models"

	"github.com/stretchr/testify/require"
)

func TestNewFactoryWithConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Auth.SeedDefaultStaff = true

	f, err := NewFactoryWithConfig(cfg)
	require.NoError(t, err)
	defer f.Close()

	require.Same(t, cfg, f.Config())

	svc := f.AuthService()
	require.NotNil(t, svc)

	// Seeded accounts are usable immediately.
	code := svc.GenerateMFACode("instructor")
	result, err := svc.Authenticate("instructor", "InstructorPass123!", code)
	require.NoError(t, err)
	require.Equal(t, models.RoleInstructor, result.Role)
}

func TestNewFactoryWithConfigRejectsInvalid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Auth.ShardCount = 0

	_, err := NewFactoryWithConfig(cfg)
	require.Error(t, err)
}
