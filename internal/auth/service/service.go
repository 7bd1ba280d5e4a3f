package service

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"promohub/internal/platform/middleware"
	"promohub/pkg/domainerrors"
	"promohub/pkg/platform/audit"
)

// Session is the result of a successful admin login.
type Session struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
}

// Service authenticates the configured admin account. The deployment has
// a single operator login; user management is out of scope.
type Service struct {
	username     string
	passwordHash []byte
	tokenTTL     time.Duration
	jwt          *JWTService
	logger       *slog.Logger
	auditor      *audit.Publisher
}

func New(username, passwordHash string, tokenTTL time.Duration, jwt *JWTService, logger *slog.Logger, auditor *audit.Publisher) *Service {
	return &Service{
		username:     username,
		passwordHash: []byte(passwordHash),
		tokenTTL:     tokenTTL,
		jwt:          jwt,
		logger:       logger,
		auditor:      auditor,
	}
}

// Login verifies credentials and issues an access token. Unknown username
// and wrong password produce the same error; the bcrypt compare runs in
// both cases so the two are not distinguishable by timing either.
func (s *Service) Login(ctx context.Context, username, password string, requestID string) (Session, error) {
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	if passwordErr != nil || !usernameMatch {
		s.logger.Warn("admin login failed", "username", username, "request_id", requestID)
		s.auditor.Emit(ctx, audit.Event{
			Action:    audit.ActionAdminLoginFailed,
			Subject:   username,
			Reason:    "invalid credentials",
			RequestID: requestID,
		})
		return Session{}, domainerrors.New(domainerrors.CodeUnauthorized, "invalid credentials")
	}

	token, sessionID, expiresAt, err := s.jwt.GenerateToken(username, s.tokenTTL)
	if err != nil {
		return Session{}, domainerrors.New(domainerrors.CodeInternal, "failed to issue token")
	}

	s.auditor.Emit(ctx, audit.Event{
		Action:    audit.ActionAdminLoginSucceeded,
		Subject:   username,
		RequestID: requestID,
	})
	return Session{Token: token, SessionID: sessionID, ExpiresAt: expiresAt}, nil
}

// Validator exposes the token validator for the auth middleware.
func (s *Service) Validator() middleware.JWTValidator {
	return s.jwt
}
