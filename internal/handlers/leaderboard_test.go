package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/whitewhale-bridge/internal/facades"
)

func TestLeaderboardHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		season       string
		wallet       string
		data         []byte
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "season ranking",
			target:       "/api/leaderboard?season=season_one",
			season:       "season_one",
			data:         []byte(`[{"rank":1}]`),
			expectedCode: http.StatusOK,
			expectedBody: `[{"rank":1}]`,
		},
		{
			name:         "wallet score with default season",
			target:       "/api/leaderboard?wallet=" + testWallet,
			wallet:       testWallet,
			data:         []byte(`{"score":42}`),
			expectedCode: http.StatusOK,
			expectedBody: `{"score":42}`,
		},
		{
			name:         "mirrors upstream status",
			target:       "/api/leaderboard",
			err:          &facades.UpstreamError{Service: "leaderboard", StatusCode: http.StatusNotFound},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Failed to fetch leaderboard data"}`,
		},
		{
			name:         "unreachable upstream",
			target:       "/api/leaderboard",
			err:          fmt.Errorf("leaderboard: %w", facades.ErrUpstreamUnavailable),
			expectedCode: http.StatusBadGateway,
			expectedBody: `{"error":"Failed to fetch leaderboard data"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockLeaderboardGetter(ctrl)
			mockSvc.EXPECT().Get(gomock.Any(), tt.season, tt.wallet).Return(tt.data, tt.err)

			rr := serve(NewLeaderboardHandler(mockSvc), newRequest(http.MethodGet, tt.target, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
