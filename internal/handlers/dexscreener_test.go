package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/services"
)

func TestTokenStatsHandler(t *testing.T) {
	price := "0.0042"

	tests := []struct {
		name         string
		stats        *models.TokenStats
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "success",
			stats:        &models.TokenStats{PriceUsd: &price, PriceChange: map[string]float64{}, Name: "WhiteWhale", Symbol: "WHITEWHALE"},
			expectedCode: http.StatusOK,
			expectedBody: `{"priceUsd":"0.0042","priceNative":null,"priceChange":{},"volume24h":null,"liquidity":null,"marketCap":null,"fdv":null,"name":"WhiteWhale","symbol":"WHITEWHALE","imageUrl":null}`,
		},
		{
			name:         "no pair",
			err:          services.ErrNoPairData,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"No pair data found"}`,
		},
		{
			name:         "upstream failure",
			err:          errors.New("dexscreener: upstream unavailable"),
			expectedCode: http.StatusBadGateway,
			expectedBody: `{"error":"Failed to fetch from DexScreener"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockTokenStatsGetter(ctrl)
			mockSvc.EXPECT().TokenStats(gomock.Any()).Return(tt.stats, tt.err)

			rr := serve(NewTokenStatsHandler(mockSvc), newRequest(http.MethodGet, "/api/dexscreener", ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
