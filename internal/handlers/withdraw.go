package handlers

//go:generate mockgen -source=withdraw.go -destination=withdraw_mock.go -package=handlers

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
)

// Withdrawer defines the interface that the withdraw service must implement.
type Withdrawer interface {
	Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, walletAddress string) (*models.WithdrawalDB, decimal.Decimal, error)
}

// WithdrawalLister lists a user's withdrawals.
type WithdrawalLister interface {
	Withdrawals(ctx context.Context, userID int64) ([]models.WithdrawalDB, error)
}

// NewWithdrawHandler returns an HTTP handler for withdrawal requests.
// @Summary Request a withdrawal
// @Description Debits the balance and queues a payout to a Solana wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} models.WithdrawResponse
// @Failure 400 {object} models.ErrorResponse "Invalid amount or insufficient balance"
// @Failure 401 {object} models.ErrorResponse "Not authenticated"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /user/withdraw [post]
func NewWithdrawHandler(svc Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.SessionFromContext(r.Context())

		var req models.WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Amount == nil || *req.Amount <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid amount")
			return
		}
		if !services.ValidWalletAddress(req.WalletAddress) {
			writeError(w, http.StatusBadRequest, "Invalid Solana wallet address")
			return
		}

		wd, balance, err := svc.Withdraw(r.Context(), session.UserID, decimal.NewFromFloat(*req.Amount), req.WalletAddress)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, "Invalid amount")
			case errors.Is(err, services.ErrInvalidWalletAddress):
				writeError(w, http.StatusBadRequest, "Invalid Solana wallet address")
			case errors.Is(err, services.ErrInsufficientFunds):
				writeError(w, http.StatusBadRequest, "Insufficient balance")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("withdraw failed", "user_id", session.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		amount, _ := wd.Amount.Float64()
		remaining, _ := balance.Float64()
		writeJSON(w, http.StatusOK, models.WithdrawResponse{
			Withdrawal: models.Withdrawal{
				ID:            wd.ID,
				Amount:        amount,
				WalletAddress: wd.WalletAddress,
				Status:        wd.Status,
			},
			Balance: remaining,
		})
	}
}

// NewWithdrawalsHandler returns an HTTP handler listing withdrawals.
// @Summary List withdrawals
// @Description Returns the session user's withdrawals, newest first
// @Tags wallet
// @Produce json
// @Success 200 {object} models.WithdrawalListResponse
// @Failure 401 {object} models.ErrorResponse "Not authenticated"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /user/withdraw [get]
func NewWithdrawalsHandler(svc WithdrawalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.SessionFromContext(r.Context())

		rows, err := svc.Withdrawals(r.Context(), session.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list withdrawals", "user_id", session.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		items := make([]models.WithdrawalListItem, 0, len(rows))
		for _, wd := range rows {
			amount, _ := wd.Amount.Float64()
			items = append(items, models.WithdrawalListItem{
				ID:            wd.ID,
				Amount:        amount,
				WalletAddress: wd.WalletAddress,
				Status:        wd.Status,
				CreatedAt:     wd.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, models.WithdrawalListResponse{Withdrawals: items})
	}
}
