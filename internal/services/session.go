package services

//go:generate mockgen -source=session.go -destination=session_mock.go -package=services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
)

// DefaultSessionTTL is how long a session lives without logout.
const DefaultSessionTTL = 30 * 24 * time.Hour

// ErrSessionNotFound is returned when a cookie does not resolve to a live session.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps sessions by opaque token.
type SessionStore interface {
	Get(ctx context.Context, token string) (*models.Session, error)                          // Returns nil when absent or expired
	Set(ctx context.Context, token string, session models.Session, ttl time.Duration) error // Stores a session
	Delete(ctx context.Context, token string) error                                         // Removes a session
}

// SessionTokenSigner wraps the opaque token into a tamper-evident cookie value.
type SessionTokenSigner interface {
	Generate(ctx context.Context, sessionID string) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (string, error)
}

// SessionService creates, resolves and destroys cookie sessions.
type SessionService struct {
	store  SessionStore
	signer SessionTokenSigner
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionService creates a new SessionService. A zero ttl means DefaultSessionTTL.
func NewSessionService(store SessionStore, signer SessionTokenSigner, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{store: store, signer: signer, ttl: ttl, now: time.Now}
}

// Create opens a session for user and returns the cookie value.
func (s *SessionService) Create(ctx context.Context, user *models.UserDB) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	session := models.Session{
		UserID:    user.UserID,
		Username:  user.Username,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.store.Set(ctx, token, session, s.ttl); err != nil {
		logger.Log.Errorw("failed to store session", "user_id", user.UserID, "error", err)
		return "", err
	}

	cookie, err := s.signer.Generate(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to sign session", "user_id", user.UserID, "error", err)
		return "", err
	}
	return cookie, nil
}

// Resolve returns the session behind a cookie value. An expired session is
// deleted on access.
func (s *SessionService) Resolve(ctx context.Context, cookie string) (*models.Session, error) {
	token, err := s.signer.GetSessionID(ctx, cookie)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	session, err := s.store.Get(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to load session", "error", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.Expired(s.now()) {
		if err := s.store.Delete(ctx, token); err != nil {
			logger.Log.Warnw("failed to delete expired session", "error", err)
		}
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Destroy deletes the session behind a cookie value. Unknown or tampered
// cookies are ignored.
func (s *SessionService) Destroy(ctx context.Context, cookie string) error {
	token, err := s.signer.GetSessionID(ctx, cookie)
	if err != nil {
		return nil
	}
	return s.store.Delete(ctx, token)
}

func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
