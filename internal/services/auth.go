package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidUsername    = errors.New("username must be 3-20 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrUserAlreadyExists  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

const (
	minUsernameLen = 3
	maxUsernameLen = 20
	minPasswordLen = 6
	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error) // Returns nil when absent
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)          // Returns nil when absent
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error)
}

// SessionManager opens and closes cookie sessions.
type SessionManager interface {
	Create(ctx context.Context, user *models.UserDB) (string, error)
	Destroy(ctx context.Context, cookie string) error
}

// AuthService handles signup, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionManager
	cost     int
}

// NewAuthService creates a new AuthService.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionManager) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		cost:     bcrypt.DefaultCost,
	}
}

func validateSignup(username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return ErrInvalidUsername
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// Signup creates a user and opens a session. It returns the user and the cookie value.
func (svc *AuthService) Signup(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	if err := validateSignup(username, password); err != nil {
		return nil, "", err
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "username", username, "error", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, username, string(hash))
	if err != nil {
		// lost a race against a concurrent signup
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "username", username, "error", err)
		return nil, "", err
	}

	cookie, err := svc.sessions.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, cookie, nil
}

// Login checks credentials and opens a session.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to load user", "username", username, "error", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	cookie, err := svc.sessions.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, cookie, nil
}

// Logout destroys the session behind cookie.
func (svc *AuthService) Logout(ctx context.Context, cookie string) error {
	if cookie == "" {
		return nil
	}
	return svc.sessions.Destroy(ctx, cookie)
}

// Me returns the current state of a session's user.
func (svc *AuthService) Me(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
