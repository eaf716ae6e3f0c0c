package handlers

//go:generate mockgen -source=dexscreener.go -destination=dexscreener_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/services"
)

// TokenStatsGetter returns the token market summary.
type TokenStatsGetter interface {
	TokenStats(ctx context.Context) (*models.TokenStats, error)
}

// NewTokenStatsHandler returns an HTTP handler for token pair stats.
// @Summary Get token stats
// @Description DexScreener summary of the WhiteWhale pair
// @Tags token
// @Produce json
// @Success 200 {object} models.TokenStats
// @Failure 404 {object} models.ErrorResponse "No pair data found"
// @Failure 502 {object} models.ErrorResponse "Failed to fetch from DexScreener"
// @Router /dexscreener [get]
func NewTokenStatsHandler(svc TokenStatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.TokenStats(r.Context())
		if err != nil {
			if errors.Is(err, services.ErrNoPairData) {
				writeError(w, http.StatusNotFound, "No pair data found")
				return
			}
			logger.Log.Errorw("dexscreener fetch failed", "err", err)
			writeError(w, http.StatusBadGateway, "Failed to fetch from DexScreener")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
