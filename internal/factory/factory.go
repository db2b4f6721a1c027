// Package factory is the composition root: it loads configuration,
// initializes the global logger, and wires up the staff auth service.
package factory

import (
	"fmt"
	"sync"

	"staff-auth-service/internal/config"
	"staff-auth-service/internal/service"
	"staff-auth-service/internal/util"
)

// Factory manages the lifecycle of all application dependencies.
type Factory struct {
	config      *config.Config
	authService *service.StaffAuthService

	closeOnce sync.Once
}

// NewFactory loads configuration from the environment and initializes all
// dependencies.
func NewFactory() (*Factory, error) {
	cfg := config.LoadConfig()
	return NewFactoryWithConfig(cfg)
}

// NewFactoryWithConfig initializes dependencies from an explicit config.
func NewFactoryWithConfig(cfg *config.Config) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := util.Init(cfg.Environment, cfg.Logging.Level, cfg.Logging.Format)

	f := &Factory{
		config:      cfg,
		authService: service.NewStaffAuthService(cfg, logger),
	}

	util.Info("Staff auth service initialized",
		util.String("environment", cfg.Environment),
		util.Duration("session_timeout", cfg.Auth.SessionTimeout),
		util.Int("max_failed_attempts", cfg.Auth.MaxFailedAttempts),
		util.Bool("seed_default_staff", cfg.Auth.SeedDefaultStaff),
	)

	return f, nil
}

// Config returns the loaded configuration.
func (f *Factory) Config() *config.Config {
	return f.config
}

// AuthService returns the credential/session service.
func (f *Factory) AuthService() *service.StaffAuthService {
	return f.authService
}

// Close flushes remaining log output. Safe to call more than once.
func (f *Factory) Close() {
	f.closeOnce.Do(func() {
		util.Sync()
	})
}
