package handlers

//go:generate mockgen -source=leaderboard.go -destination=leaderboard_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/whitewhale-bridge/internal/facades"
	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
)

// LeaderboardGetter fetches the season ranking or a wallet score.
type LeaderboardGetter interface {
	Get(ctx context.Context, season, wallet string) ([]byte, error)
}

// NewLeaderboardHandler returns an HTTP handler proxying the leaderboard.
// @Summary Get leaderboard
// @Description Season ranking, or the score of one wallet
// @Tags leaderboard
// @Produce json
// @Param season query string false "Season" default(season_two)
// @Param wallet query string false "Wallet address"
// @Success 200 {object} object
// @Failure 502 {object} models.ErrorResponse "Failed to fetch leaderboard data"
// @Router /leaderboard [get]
func NewLeaderboardHandler(svc LeaderboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		data, err := svc.Get(r.Context(), q.Get("season"), q.Get("wallet"))
		if err != nil {
			logger.Log.Errorw("leaderboard fetch failed", "err", err)
			status := http.StatusBadGateway
			var upErr *facades.UpstreamError
			if errors.As(err, &upErr) {
				status = upErr.StatusCode
			}
			writeError(w, status, "Failed to fetch leaderboard data")
			return
		}
		writeRaw(w, http.StatusOK, data)
	}
}
