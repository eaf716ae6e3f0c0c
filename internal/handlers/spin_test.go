package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/services"
	"github.com/sbilibin2017/whitewhale-bridge/internal/spin"
)

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }

func TestSpinCheckHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		session      bool
		wantAttempt  models.SpinAttempt
		status       spin.Status
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "anonymous without body",
			wantAttempt:  models.SpinAttempt{IP: "203.0.113.7"},
			status:       spin.Status{CanSpin: true},
			expectedCode: http.StatusOK,
			expectedBody: `{"canSpin":true,"remainingMs":0}`,
		},
		{
			name:         "invalid body means no fingerprint",
			body:         `not json`,
			wantAttempt:  models.SpinAttempt{IP: "203.0.113.7"},
			status:       spin.Status{CanSpin: true},
			expectedCode: http.StatusOK,
			expectedBody: `{"canSpin":true,"remainingMs":0}`,
		},
		{
			name:         "empty fingerprint is ignored",
			body:         `{"fingerprint":""}`,
			wantAttempt:  models.SpinAttempt{IP: "203.0.113.7"},
			status:       spin.Status{CanSpin: true},
			expectedCode: http.StatusOK,
			expectedBody: `{"canSpin":true,"remainingMs":0}`,
		},
		{
			name:         "session and fingerprint in cooldown",
			body:         `{"fingerprint":"fp-1"}`,
			session:      true,
			wantAttempt:  models.SpinAttempt{IP: "203.0.113.7", UserID: int64Ptr(9), Fingerprint: strPtr("fp-1")},
			status:       spin.Status{Remaining: time.Hour, Reason: spin.ReasonUser},
			expectedCode: http.StatusOK,
			expectedBody: `{"canSpin":false,"remainingMs":3600000}`,
		},
		{
			name:         "store failure",
			wantAttempt:  models.SpinAttempt{IP: "203.0.113.7"},
			err:          errors.New("db down"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockSpinChecker(ctrl)
			mockSvc.EXPECT().Check(gomock.Any(), tt.wantAttempt).Return(tt.status, tt.err)

			r := withIP(newRequest(http.MethodPost, "/api/spin/check", tt.body), "203.0.113.7")
			if tt.session {
				r = withSession(r, 9)
			}
			rr := serve(NewSpinCheckHandler(mockSvc), r)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestSpinExecuteHandler(t *testing.T) {
	balance := decimal.NewFromInt(1550)

	tests := []struct {
		name         string
		session      bool
		result       *models.SpinResult
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "anonymous spin",
			result:       &models.SpinResult{Index: 2, Value: 250, Rarity: "common"},
			expectedCode: http.StatusOK,
			expectedBody: `{"index":2,"value":250,"rarity":"common","cooldownMs":43200000}`,
		},
		{
			name:         "authenticated spin carries balance",
			session:      true,
			result:       &models.SpinResult{Index: 7, Value: 1800, Rarity: "legendary", Balance: &balance},
			expectedCode: http.StatusOK,
			expectedBody: `{"index":7,"value":1800,"rarity":"legendary","balance":1550,"cooldownMs":43200000}`,
		},
		{
			name:         "cooldown",
			err:          &services.CooldownError{Remaining: 90 * time.Minute, Reason: spin.ReasonIP},
			expectedCode: http.StatusTooManyRequests,
			expectedBody: `{"error":"Cooldown active","remainingMs":5400000}`,
		},
		{
			name:         "internal error",
			err:          errors.New("tx failed"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockSpinExecutor(ctrl)
			mockSvc.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(tt.result, tt.err)

			r := withIP(newRequest(http.MethodPost, "/api/spin/execute", `{}`), "203.0.113.7")
			if tt.session {
				r = withSession(r, 9)
			}
			rr := serve(NewSpinExecuteHandler(mockSvc), r)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestClaimSpinHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockSpinClaimer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"amount":250}`,
			mockSetup: func(m *MockSpinClaimer) {
				m.EXPECT().Claim(gomock.Any(), int64(9), "203.0.113.7", decimalEq{decimal.NewFromInt(250)}).
					Return(&models.ClaimResult{Balance: decimal.NewFromInt(500), Claimed: 250}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"balance":500,"claimed":250}`,
		},
		{
			name: "missing amount",
			body: `{}`,
			mockSetup: func(m *MockSpinClaimer) {
				m.EXPECT().Claim(gomock.Any(), int64(9), "203.0.113.7", decimalEq{decimal.Zero}).Return(nil, services.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid amount"}`,
		},
		{
			name: "nothing to claim",
			body: `{"amount":250}`,
			mockSetup: func(m *MockSpinClaimer) {
				m.EXPECT().Claim(gomock.Any(), int64(9), "203.0.113.7", gomock.Any()).Return(nil, services.ErrNoUnclaimedSpin)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":"No unclaimed spin found."}`,
		},
		{
			name: "mismatch",
			body: `{"amount":1800}`,
			mockSetup: func(m *MockSpinClaimer) {
				m.EXPECT().Claim(gomock.Any(), int64(9), "203.0.113.7", gomock.Any()).Return(nil, services.ErrAmountMismatch)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Amount mismatch"}`,
		},
		{
			name:         "invalid body",
			body:         `[`,
			mockSetup:    func(m *MockSpinClaimer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockSpinClaimer(ctrl)
			tt.mockSetup(mockSvc)

			r := withSession(withIP(newRequest(http.MethodPost, "/api/user/claim-spin", tt.body), "203.0.113.7"), 9)
			rr := serve(NewClaimSpinHandler(mockSvc), r)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
