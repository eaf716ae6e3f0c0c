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

func TestLogFeeTopUpHandler(t *testing.T) {
	req := models.FeeTopUpRequest{
		TransactionID: "tx1",
		FromCurrency:  "btc",
		FromAmount:    0.01,
		WalletAddress: testWallet,
	}
	entry := &models.FeeTopUpEntry{
		Timestamp:     "2025-01-01T12:00:00.000Z",
		TransactionID: "tx1",
		FromCurrency:  "btc",
		FromAmount:    0.01,
		WalletAddress: testWallet,
	}
	body := `{"transactionId":"tx1","fromCurrency":"btc","fromAmount":0.01,"walletAddress":"` + testWallet + `"}`

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockFeeTopUpLogger)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: body,
			mockSetup: func(m *MockFeeTopUpLogger) {
				m.EXPECT().Log(gomock.Any(), req).Return(entry, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true,"entry":{"timestamp":"2025-01-01T12:00:00.000Z","transactionId":"tx1","fromCurrency":"btc","fromAmount":0.01,"walletAddress":"` + testWallet + `","changeNowSolAmount":0,"pureMarketSolAmount":0,"treasuryTopUpSol":0}}`,
		},
		{
			name: "missing fields",
			body: `{"transactionId":"tx1"}`,
			mockSetup: func(m *MockFeeTopUpLogger) {
				m.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil, services.ErrMissingFeeFields)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Missing required fields"}`,
		},
		{
			name: "write failure",
			body: body,
			mockSetup: func(m *MockFeeTopUpLogger) {
				m.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Failed to log fee top-up"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockFeeTopUpLogger(ctrl)
			tt.mockSetup(mockSvc)

			rr := serve(NewLogFeeTopUpHandler(mockSvc), newRequest(http.MethodPost, "/api/exchange/log-fee-topup", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestFeeTopUpLogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFeeTopUpLister(ctrl)
	h := NewFeeTopUpLogHandler(mockSvc)

	mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)
	rr := serve(h, newRequest(http.MethodGet, "/api/exchange/log-fee-topup", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"log":[]}`, rr.Body.String())

	mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("corrupt log"))
	rr = serve(h, newRequest(http.MethodGet, "/api/exchange/log-fee-topup", ""))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
