package handlers

//go:generate mockgen -source=fee_log.go -destination=fee_log_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/services"
)

// FeeTopUpLogger appends a treasury fee top-up.
type FeeTopUpLogger interface {
	Log(ctx context.Context, req models.FeeTopUpRequest) (*models.FeeTopUpEntry, error)
}

// FeeTopUpLister reads the treasury fee log.
type FeeTopUpLister interface {
	List(ctx context.Context) ([]models.FeeTopUpEntry, error)
}

// NewLogFeeTopUpHandler returns an HTTP handler appending to the fee log.
// @Summary Log a fee top-up
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body models.FeeTopUpRequest true "Fee Top-up"
// @Success 200 {object} models.FeeTopUpResponse
// @Failure 400 {object} models.ErrorResponse "Missing required fields"
// @Failure 500 {object} models.ErrorResponse "Failed to log fee top-up"
// @Router /exchange/log-fee-topup [post]
func NewLogFeeTopUpHandler(svc FeeTopUpLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.FeeTopUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		entry, err := svc.Log(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrMissingFeeFields) {
				writeError(w, http.StatusBadRequest, "Missing required fields")
				return
			}
			logger.Log.Errorw("failed to log fee top-up", "tx", req.TransactionID, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to log fee top-up")
			return
		}
		writeJSON(w, http.StatusOK, models.FeeTopUpResponse{Success: true, Entry: *entry})
	}
}

// NewFeeTopUpLogHandler returns an HTTP handler listing the fee log.
// @Summary Get the fee top-up log
// @Tags exchange
// @Produce json
// @Success 200 {object} models.FeeTopUpLogResponse
// @Failure 500 {object} models.ErrorResponse "Failed to read fee log"
// @Router /exchange/log-fee-topup [get]
func NewFeeTopUpLogHandler(svc FeeTopUpLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to read fee log", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to read fee log")
			return
		}
		if entries == nil {
			entries = []models.FeeTopUpEntry{}
		}
		writeJSON(w, http.StatusOK, models.FeeTopUpLogResponse{Log: entries})
	}
}
