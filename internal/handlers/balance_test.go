package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/whitewhale-bridge/internal/services"
)

func TestBalanceHandler(t *testing.T) {
	tests := []struct {
		name         string
		mockSetup    func(m *MockBalanceGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			mockSetup: func(m *MockBalanceGetter) {
				m.EXPECT().Balance(gomock.Any(), int64(3)).Return(decimal.RequireFromString("1250.5"), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"balance":1250.5}`,
		},
		{
			name: "user vanished",
			mockSetup: func(m *MockBalanceGetter) {
				m.EXPECT().Balance(gomock.Any(), int64(3)).Return(decimal.Zero, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"User not found"}`,
		},
		{
			name: "internal error",
			mockSetup: func(m *MockBalanceGetter) {
				m.EXPECT().Balance(gomock.Any(), int64(3)).Return(decimal.Zero, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockBalanceGetter(ctrl)
			tt.mockSetup(mockSvc)

			r := withSession(newRequest(http.MethodGet, "/api/user/balance", ""), 3)
			rr := serve(NewBalanceHandler(mockSvc), r)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
