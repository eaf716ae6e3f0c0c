package handlers

//go:generate mockgen -source=exchange.go -destination=exchange_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/whitewhale-bridge/internal/facades"
	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/sbilibin2017/whitewhale-bridge/internal/services"
)

// CurrencyLister lists exchangeable currencies.
type CurrencyLister interface {
	Currencies(ctx context.Context) ([]byte, error)
}

// TransactionCreator starts a swap.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) ([]byte, error)
}

// TransactionStatusGetter fetches the state of a swap.
type TransactionStatusGetter interface {
	TransactionStatus(ctx context.Context, id string) ([]byte, error)
}

// MinAmountGetter fetches the minimum amount for a pair.
type MinAmountGetter interface {
	MinAmount(ctx context.Context, from, to string) ([]byte, error)
}

// ExchangeAmountGetter fetches the estimated amount received.
type ExchangeAmountGetter interface {
	ExchangeAmount(ctx context.Context, amount, from, to string) ([]byte, error)
}

// MarketPricesGetter returns USD prices keyed by ticker.
type MarketPricesGetter interface {
	MarketPrices(ctx context.Context) (map[string]float64, error)
}

// writeUpstreamError answers a failed ChangeNOW or CoinGecko call. When
// forward is set the upstream message reaches the client.
func writeUpstreamError(w http.ResponseWriter, err error, fallback string, forward bool) {
	if errors.Is(err, facades.ErrAPIKeyNotConfigured) {
		writeError(w, http.StatusInternalServerError, "API key not configured")
		return
	}
	logger.Log.Errorw(fallback, "err", err)

	msg := fallback
	var upErr *facades.UpstreamError
	if forward && errors.As(err, &upErr) {
		if upErr.Message != "" {
			msg = upErr.Message
		} else {
			msg = fmt.Sprintf("ChangeNow API responded with %d", upErr.StatusCode)
		}
	}
	writeError(w, http.StatusBadGateway, msg)
}

// NewCurrenciesHandler returns an HTTP handler listing currencies.
// @Summary Get exchange currencies
// @Description Active ChangeNOW currencies, limited to supported tickers
// @Tags exchange
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} models.ErrorResponse "API key not configured"
// @Failure 502 {object} models.ErrorResponse "Failed to fetch currencies"
// @Router /exchange/get-currencies [get]
func NewCurrenciesHandler(svc CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.Currencies(r.Context())
		if err != nil {
			writeUpstreamError(w, err, "Failed to fetch currencies", false)
			return
		}
		writeRaw(w, http.StatusOK, data)
	}
}

// NewCreateTransactionHandler returns an HTTP handler that starts a swap.
// @Summary Create exchange transaction
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body models.CreateTransactionRequest true "Transaction Request"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse "Missing required fields"
// @Failure 500 {object} models.ErrorResponse "API key not configured"
// @Failure 502 {object} models.ErrorResponse "Upstream error"
// @Router /exchange/create-transaction [post]
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		data, err := svc.CreateTransaction(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrMissingFields) {
				writeError(w, http.StatusBadRequest, "Missing required fields: from, to, amount, address")
				return
			}
			writeUpstreamError(w, err, "Failed to create transaction", true)
			return
		}
		writeRaw(w, http.StatusOK, data)
	}
}

// NewTransactionStatusHandler returns an HTTP handler for swap status.
// @Summary Get transaction status
// @Tags exchange
// @Produce json
// @Param id query string true "Transaction ID"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse "Missing id parameter"
// @Failure 502 {object} models.ErrorResponse "Failed to fetch transaction status"
// @Router /exchange/get-status [get]
func NewTransactionStatusHandler(svc TransactionStatusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, `Missing "id" parameter`)
			return
		}

		data, err := svc.TransactionStatus(r.Context(), id)
		if err != nil {
			writeUpstreamError(w, err, "Failed to fetch transaction status", false)
			return
		}
		writeRaw(w, http.StatusOK, data)
	}
}

// NewMinAmountHandler returns an HTTP handler for the pair minimum.
// @Summary Get minimum exchange amount
// @Tags exchange
// @Produce json
// @Param from query string true "From ticker"
// @Param to query string true "To ticker"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse "Missing from or to parameter"
// @Failure 502 {object} models.ErrorResponse "Failed to fetch minimum amount"
// @Router /exchange/get-min-amount [get]
func NewMinAmountHandler(svc MinAmountGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, to := q.Get("from"), q.Get("to")
		if from == "" || to == "" {
			writeError(w, http.StatusBadRequest, `Missing "from" or "to" parameter`)
			return
		}

		data, err := svc.MinAmount(r.Context(), from, to)
		if err != nil {
			writeUpstreamError(w, err, "Failed to fetch minimum amount", false)
			return
		}
		writeRaw(w, http.StatusOK, data)
	}
}

// NewExchangeAmountHandler returns an HTTP handler for the swap estimate.
// @Summary Get estimated exchange amount
// @Tags exchange
// @Produce json
// @Param from query string true "From ticker"
// @Param to query string true "To ticker"
// @Param amount query string true "Amount to send"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse "Missing parameter"
// @Failure 502 {object} models.ErrorResponse "Upstream error"
// @Router /exchange/get-exchange-amount [get]
func NewExchangeAmountHandler(svc ExchangeAmountGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, to, amount := q.Get("from"), q.Get("to"), q.Get("amount")
		if from == "" || to == "" || amount == "" {
			writeError(w, http.StatusBadRequest, `Missing "from", "to", or "amount" parameter`)
			return
		}

		data, err := svc.ExchangeAmount(r.Context(), amount, from, to)
		if err != nil {
			writeUpstreamError(w, err, "Failed to fetch exchange amount", true)
			return
		}
		writeRaw(w, http.StatusOK, data)
	}
}

// NewMarketPricesHandler returns an HTTP handler for USD prices.
// @Summary Get market prices
// @Description CoinGecko USD prices for the supported tickers
// @Tags exchange
// @Produce json
// @Success 200 {object} models.MarketPricesResponse
// @Failure 502 {object} models.ErrorResponse "Failed to fetch market prices"
// @Router /exchange/get-market-prices [get]
func NewMarketPricesHandler(svc MarketPricesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prices, err := svc.MarketPrices(r.Context())
		if err != nil {
			writeUpstreamError(w, err, "Failed to fetch market prices", false)
			return
		}
		writeJSON(w, http.StatusOK, models.MarketPricesResponse{Prices: prices})
	}
}
