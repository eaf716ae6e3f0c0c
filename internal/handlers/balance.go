package handlers

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/middlewares"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/services"
)

// BalanceGetter defines the interface that the balance service must implement.
type BalanceGetter interface {
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
}

// NewBalanceHandler returns an HTTP handler for the current balance.
// @Summary Get user balance
// @Description Returns the token balance of the session's user
// @Tags wallet
// @Produce json
// @Success 200 {object} models.BalanceResponse
// @Failure 401 {object} models.ErrorResponse "Not authenticated"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /user/balance [get]
func NewBalanceHandler(svc BalanceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.SessionFromContext(r.Context())

		balance, err := svc.Balance(r.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to get balance", "user_id", session.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		value, _ := balance.Float64()
		writeJSON(w, http.StatusOK, models.BalanceResponse{Balance: value})
	}
}
