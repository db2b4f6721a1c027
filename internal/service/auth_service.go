package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"iter"
	"time"

	"staff-auth-service/internal/config"
	"staff-auth-service/internal/hashing"
	"staff-auth-service/internal/models"
	"staff-auth-service/internal/store"
	"staff-auth-service/internal/util"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrRateLimited is returned once the failed-attempt threshold is
	// reached; only a successful authentication clears it.
	ErrRateLimited = errors.New("account temporarily locked due to failed attempts")
	// ErrInvalidCredentials covers unknown usernames and wrong passwords
	// with one message so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidMFACode covers wrong, missing, and expired MFA codes.
	ErrInvalidMFACode = errors.New("invalid MFA code")
)

const sessionTokenBytes = 32 // 256 bits of entropy

// AuthResult is returned on successful authentication.
type AuthResult struct {
	SessionToken string           `json:"session_token"`
	Role         models.StaffRole `json:"role"`
	ExpiresAt    time.Time        `json:"expires_at"`
}

// StaffAuthService owns staff credentials, active sessions, failed-attempt
// counters, and the audit log. All methods are synchronous, non-blocking,
// and safe for concurrent use; expiry is evaluated lazily against the
// injected clock, never by background timers.
type StaffAuthService struct {
	cfg         config.AuthConfig
	credentials *store.CredentialStore
	sessions    *store.SessionStore
	attempts    *store.AttemptCounter
	auditLog    *store.AuditLog
	hasher      *hashing.Hasher
	clock       clock.Clock
	logger      *zap.Logger
}

// NewStaffAuthService creates a service running on the wall clock.
func NewStaffAuthService(cfg *config.Config, logger *zap.Logger) *StaffAuthService {
	return NewStaffAuthServiceWithClock(cfg, logger, clock.New())
}

// NewStaffAuthServiceWithClock creates a service with an explicit clock so
// callers can simulate elapsed time deterministically.
func NewStaffAuthServiceWithClock(cfg *config.Config, logger *zap.Logger, clk clock.Clock) *StaffAuthService {
	s := &StaffAuthService{
		cfg:         cfg.Auth,
		credentials: store.NewCredentialStore(cfg.Auth.ShardCount),
		sessions:    store.NewSessionStore(cfg.Auth.ShardCount),
		attempts:    store.NewAttemptCounter(cfg.Auth.ShardCount),
		auditLog:    store.NewAuditLog(),
		hasher:      hashing.NewHasher(hashing.DefaultParams()),
		clock:       clk,
		logger:      logger,
	}

	if cfg.Auth.SeedDefaultStaff {
		s.seedDefaultStaff()
	}

	return s
}

// RegisterStaff stores credentials for a new staff member. It reports false
// and leaves all state untouched when the username is already taken.
func (s *StaffAuthService) RegisterStaff(username, password string, role models.StaffRole, email string) bool {
	hashResult, err := s.hasher.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password during registration",
			util.String("username", username),
			util.ErrorField(err),
		)
		return false
	}

	credential := models.StaffCredential{
		Username:     username,
		PasswordHash: hashResult,
		Role:         role,
		Email:        email,
		CreatedAt:    s.clock.Now(),
		Active:       true,
	}

	if !s.credentials.PutIfAbsent(credential) {
		return false
	}

	s.logAudit(username, models.ActionStaffRegistered,
		fmt.Sprintf("New staff member registered with role: %s", role))

	s.logger.Info("Staff member registered",
		util.String("username", username),
		util.String("role", role.DisplayName()),
	)

	return true
}

// GenerateMFACode issues a fresh numeric code for username, overwriting any
// prior unconsumed code. The code is returned and stored on the credential
// when one exists; the generation is audited either way.
func (s *StaffAuthService) GenerateMFACode(username string) string {
	code := randomDigits(s.cfg.MFACodeLength)

	stored := s.credentials.SetMFACode(username, code, s.clock.Now())

	s.logAudit(username, models.ActionMFACodeGenerated, "New MFA code generated")

	s.logger.Debug("MFA code generated",
		util.String("username", username),
		util.Bool("credential_found", stored),
	)

	return code
}

// Authenticate runs the full authentication sequence: rate limit gate,
// password verification, MFA validation, then session creation. Each
// failure path increments the failed-attempt counter and is audited.
func (s *StaffAuthService) Authenticate(username, password, mfaCode string) (*AuthResult, error) {
	s.logAudit(username, models.ActionAuthenticationAttempt, "User attempted authentication")

	// The rate limit gate precedes credential lookup: locked-out and
	// nonexistent usernames route through the same rejection once
	// attempts accumulate.
	if s.attempts.Get(username) >= s.cfg.MaxFailedAttempts {
		s.logAudit(username, models.ActionAuthenticationBlocked, "Rate limited due to failed attempts")
		s.logger.Warn("Authentication blocked by rate limiting",
			util.String("username", username),
		)
		return nil, ErrRateLimited
	}

	credential, found := s.credentials.Get(username)
	if !found || !s.passwordMatches(password, credential.PasswordHash) {
		s.attempts.Increment(username)
		s.logAudit(username, models.ActionAuthenticationFailed, "Invalid credentials provided")
		return nil, ErrInvalidCredentials
	}

	now := s.clock.Now()
	if credential.CurrentMFACode != mfaCode || !credential.MFACodeLiveAt(now, s.cfg.MFAValidityWindow) {
		s.attempts.Increment(username)
		s.logAudit(username, models.ActionMFAValidationFailed, "Invalid MFA code provided")
		return nil, ErrInvalidMFACode
	}

	session := models.StaffSession{
		Token:        randomToken(),
		Username:     username,
		Role:         credential.Role,
		CreatedAt:    now,
		LastActivity: now,
		ExpiresAt:    now.Add(s.cfg.SessionTimeout),
	}
	s.sessions.Put(session)
	s.attempts.Reset(username)

	s.logAudit(username, models.ActionAuthenticationSuccess,
		fmt.Sprintf("Successfully authenticated with role: %s", credential.Role))

	s.logger.Info("Staff member authenticated",
		util.String("username", username),
		util.String("role", credential.Role.DisplayName()),
		util.Time("expires_at", session.ExpiresAt),
	)

	return &AuthResult{
		SessionToken: session.Token,
		Role:         credential.Role,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// ValidateSession returns the session for token, renewed for another full
// timeout, or nil when the token is unknown or the session has expired.
// Expired sessions are removed here, on first touch after expiry.
func (s *StaffAuthService) ValidateSession(token string) *models.StaffSession {
	session, found := s.sessions.Get(token)
	if !found {
		return nil
	}

	now := s.clock.Now()
	if session.ExpiredAt(now) {
		s.sessions.Delete(token)
		s.logAudit(session.Username, models.ActionSessionExpired, "Session automatically expired")
		s.logger.Debug("Session expired",
			util.String("username", session.Username),
		)
		return nil
	}

	renewed := session.Renewed(now, s.cfg.SessionTimeout)
	s.sessions.Put(renewed)

	return &renewed
}

// ValidateAccess reports whether the session behind token holds a role at
// or above required. The check outcome is audited whenever a live session
// exists, granted or not.
func (s *StaffAuthService) ValidateAccess(token string, required models.StaffRole) bool {
	session := s.ValidateSession(token)
	if session == nil {
		return false
	}

	granted := session.Role.HasAccess(required)

	outcome := "DENIED"
	if granted {
		outcome = "GRANTED"
	}
	s.logAudit(session.Username, models.ActionAccessCheck,
		fmt.Sprintf("Access %s for resource requiring %s", outcome, required))

	return granted
}

// Logout removes the session for token and reports whether one existed.
func (s *StaffAuthService) Logout(token string) bool {
	session, found := s.sessions.Delete(token)
	if !found {
		return false
	}

	s.logAudit(session.Username, models.ActionLogout, "User logged out")
	s.logger.Info("Staff member logged out",
		util.String("username", session.Username),
	)

	return true
}

// AuditEntries returns a lazy, restartable sequence of audit entries
// matching filter, newest first.
func (s *StaffAuthService) AuditEntries(filter store.AuditFilter) iter.Seq[models.AuditLogEntry] {
	return s.auditLog.Query(filter)
}

// ActiveSessionCount returns the number of live-or-unswept sessions.
func (s *StaffAuthService) ActiveSessionCount() int {
	return s.sessions.Len()
}

func (s *StaffAuthService) passwordMatches(password string, stored *hashing.HashResult) bool {
	ok, err := s.hasher.VerifyPassword(password, stored)
	if err != nil {
		s.logger.Error("Password verification failed", util.ErrorField(err))
		return false
	}
	return ok
}

func (s *StaffAuthService) logAudit(username string, action models.AuditAction, details string) {
	s.auditLog.Append(models.AuditLogEntry{
		EntryID:    uuid.NewString(),
		Timestamp:  s.clock.Now(),
		Username:   username,
		Action:     action,
		Details:    details,
		ClientInfo: s.cfg.ClientInfo,
	})
}

// seedDefaultStaff registers the bootstrap accounts for local setups.
func (s *StaffAuthService) seedDefaultStaff() {
	s.RegisterStaff("admin", "AdminPass123!", models.RoleAdministrator, "admin@example.edu")
	s.RegisterStaff("instructor", "InstructorPass123!", models.RoleInstructor, "instructor@example.edu")
	s.RegisterStaff("assistant", "AssistantPass123!", models.RoleTeachingAssistant, "assistant@example.edu")
}

// randomDigits draws length digits uniformly from 0-9; leading zeros are
// allowed. Rejection sampling keeps the distribution unbiased.
func randomDigits(length int) string {
	digits := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(digits) < length {
		if _, err := rand.Read(buf); err != nil {
			util.Fatal("Failed to generate MFA code", util.ErrorField(err))
		}
		for _, b := range buf {
			if b >= 250 {
				continue
			}
			digits = append(digits, '0'+b%10)
			if len(digits) == length {
				break
			}
		}
	}
	return string(digits)
}

// randomToken returns an unguessable session token with 256 bits of entropy.
func randomToken() string {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		util.Fatal("Failed to generate session token", util.ErrorField(err))
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
