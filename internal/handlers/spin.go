package handlers

//go:generate mockgen -source=spin.go -destination=spin_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/middlewares"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/services"
	"github.com/sbilibin2017/whitewhale-bridge/internal/spin"
)

// SpinChecker reports whether an attempt may spin.
type SpinChecker interface {
	Check(ctx context.Context, a models.SpinAttempt) (spin.Status, error)
}

// SpinExecutor performs a spin.
type SpinExecutor interface {
	Execute(ctx context.Context, a models.SpinAttempt) (*models.SpinResult, error)
}

// SpinClaimer credits an anonymous spin to a user.
type SpinClaimer interface {
	Claim(ctx context.Context, userID int64, ip string, amount decimal.Decimal) (*models.ClaimResult, error)
}

// spinAttempt builds the attempt from the request. The body is optional and
// an unreadable one counts as no fingerprint.
func spinAttempt(r *http.Request) models.SpinAttempt {
	a := models.SpinAttempt{IP: middlewares.ClientIPFromContext(r.Context())}

	var req models.SpinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Fingerprint != "" {
		a.Fingerprint = &req.Fingerprint
	}
	if session := middlewares.SessionFromContext(r.Context()); session != nil {
		id := session.UserID
		a.UserID = &id
	}
	return a
}

// NewSpinCheckHandler returns an HTTP handler reporting the spin cooldown.
// @Summary Check spin availability
// @Description Checks the IP, user and fingerprint cooldowns
// @Tags spin
// @Accept json
// @Produce json
// @Param request body models.SpinRequest false "Spin Request"
// @Success 200 {object} models.SpinCheckResponse
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /spin/check [post]
func NewSpinCheckHandler(svc SpinChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := svc.Check(r.Context(), spinAttempt(r))
		if err != nil {
			logger.Log.Errorw("spin check failed", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		writeJSON(w, http.StatusOK, models.SpinCheckResponse{
			CanSpin:     status.CanSpin,
			RemainingMs: status.RemainingMs(),
		})
	}
}

// NewSpinExecuteHandler returns an HTTP handler that spins the wheel.
// @Summary Spin the wheel
// @Description Anonymous spins are stored for a later claim
// @Tags spin
// @Accept json
// @Produce json
// @Param request body models.SpinRequest false "Spin Request"
// @Success 200 {object} models.SpinExecuteResponse
// @Failure 429 {object} models.CooldownErrorResponse "Cooldown active"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /spin/execute [post]
func NewSpinExecuteHandler(svc SpinExecutor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Execute(r.Context(), spinAttempt(r))
		if err != nil {
			var cooldown *services.CooldownError
			if errors.As(err, &cooldown) {
				writeJSON(w, http.StatusTooManyRequests, models.CooldownErrorResponse{
					Error:       "Cooldown active",
					RemainingMs: cooldown.Remaining.Milliseconds(),
				})
				return
			}
			logger.Log.Errorw("spin failed", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		resp := models.SpinExecuteResponse{
			Index:      result.Index,
			Value:      result.Value,
			Rarity:     result.Rarity,
			CooldownMs: spin.Window.Milliseconds(),
		}
		if result.Balance != nil {
			balance, _ := result.Balance.Float64()
			resp.Balance = &balance
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewClaimSpinHandler returns an HTTP handler crediting an anonymous spin.
// @Summary Claim an anonymous spin
// @Description Credits the latest unclaimed spin from the caller's IP
// @Tags spin
// @Accept json
// @Produce json
// @Param request body models.ClaimSpinRequest true "Claim Request"
// @Success 200 {object} models.ClaimSpinResponse
// @Failure 400 {object} models.ErrorResponse "Invalid amount"
// @Failure 401 {object} models.ErrorResponse "Not authenticated"
// @Failure 403 {object} models.ErrorResponse "No unclaimed spin found."
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /user/claim-spin [post]
func NewClaimSpinHandler(svc SpinClaimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.SessionFromContext(r.Context())

		var req models.ClaimSpinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		amount := decimal.Zero
		if req.Amount != nil {
			amount = decimal.NewFromFloat(*req.Amount)
		}

		result, err := svc.Claim(r.Context(), session.UserID, middlewares.ClientIPFromContext(r.Context()), amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoUnclaimedSpin):
				writeError(w, http.StatusForbidden, "No unclaimed spin found.")
			case errors.Is(err, services.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, "Invalid amount")
			case errors.Is(err, services.ErrAmountMismatch):
				writeError(w, http.StatusBadRequest, "Amount mismatch")
			default:
				logger.Log.Errorw("claim failed", "user_id", session.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		balance, _ := result.Balance.Float64()
		writeJSON(w, http.StatusOK, models.ClaimSpinResponse{Balance: balance, Claimed: result.Claimed})
	}
}
