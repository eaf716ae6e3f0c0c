package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/middlewares"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, password string) (*models.UserDB, string, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.UserDB, string, error)
}

// Logouter destroys a session.
type Logouter interface {
	Logout(ctx context.Context, cookie string) error
}

// CurrentUserGetter loads the user behind a session.
type CurrentUserGetter interface {
	Me(ctx context.Context, userID int64) (*models.UserDB, error)
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Sign up
// @Description Create an account and open a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup Request"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse "Invalid username or password"
// @Failure 409 {object} models.ErrorResponse "Username already taken"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper, cookies middlewares.CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, cookie, err := svc.Signup(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCredentials):
				writeError(w, http.StatusBadRequest, "Username and password are required")
			case errors.Is(err, services.ErrInvalidUsername):
				writeError(w, http.StatusBadRequest, "Username must be 3-20 characters")
			case errors.Is(err, services.ErrPasswordTooShort):
				writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeError(w, http.StatusBadRequest, "Password must be at most 72 bytes")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username already taken")
			default:
				logger.Log.Errorw("signup failed", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		cookies.Set(w, cookie)
		writeJSON(w, http.StatusOK, models.UserResponse{User: models.NewUser(user)})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Check credentials and open a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse "Username and password are required"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, cookies middlewares.CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, cookie, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCredentials):
				writeError(w, http.StatusBadRequest, "Username and password are required")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
			default:
				logger.Log.Errorw("login failed", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		cookies.Set(w, cookie)
		writeJSON(w, http.StatusOK, models.UserResponse{User: models.NewUser(user)})
	}
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// @Summary Log out
// @Description Delete the session and clear its cookie
// @Tags auth
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter, cookies middlewares.CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookies.Clear(w)

		if err := svc.Logout(r.Context(), middlewares.SessionCookieFromContext(r.Context())); err != nil {
			logger.Log.Errorw("logout failed", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}

// NewMeHandler returns an HTTP handler describing the current user.
// @Summary Current user
// @Description Returns the session's user, or null without a session
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserResponse
// @Router /auth/me [get]
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.SessionFromContext(r.Context())
		if session == nil {
			writeJSON(w, http.StatusOK, models.UserResponse{})
			return
		}

		user, err := svc.Me(r.Context(), session.UserID)
		if err != nil {
			if !errors.Is(err, services.ErrUserNotFound) {
				logger.Log.Errorw("auth check failed", "user_id", session.UserID, "err", err)
			}
			writeJSON(w, http.StatusOK, models.UserResponse{})
			return
		}
		writeJSON(w, http.StatusOK, models.UserResponse{User: models.NewUser(user)})
	}
}
