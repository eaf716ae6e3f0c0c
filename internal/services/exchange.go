package services

//go:generate mockgen -source=exchange.go -destination=exchange_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
)

const (
	currenciesCacheTTL = 5 * time.Minute
	pricesCacheTTL     = 60 * time.Second
)

// ErrMissingFields is returned when a create-transaction request lacks from, to, amount or address.
var ErrMissingFields = errors.New("missing required fields: from, to, amount, address")

// AllowedTickers are the currencies offered in the swap widget.
var AllowedTickers = []string{"btc", "eth", "sol", "usdc", "usdt", "bnb", "xrp", "doge", "matic", "ltc"}

// coinGeckoIDs maps tickers to CoinGecko coin ids.
var coinGeckoIDs = map[string]string{
	"btc":   "bitcoin",
	"eth":   "ethereum",
	"sol":   "solana",
	"usdc":  "usd-coin",
	"usdt":  "tether",
	"bnb":   "binancecoin",
	"xrp":   "ripple",
	"doge":  "dogecoin",
	"matic": "matic-network",
	"ltc":   "litecoin",
}

// ChangeNowClient is the ChangeNOW REST API.
type ChangeNowClient interface {
	Currencies(ctx context.Context) ([]byte, error)
	MinAmount(ctx context.Context, from, to string) ([]byte, error)
	ExchangeAmount(ctx context.Context, amount, from, to string) ([]byte, error)
	CreateTransaction(ctx context.Context, tx models.ChangeNowTransaction) ([]byte, error)
	TransactionStatus(ctx context.Context, id string) ([]byte, error)
}

// PriceClient returns spot prices keyed by coin id then quote currency.
type PriceClient interface {
	SimplePrice(ctx context.Context, ids []string, vsCurrency string) (map[string]map[string]float64, error)
}

// ExchangeService proxies the swap widget's upstreams.
type ExchangeService struct {
	changenow ChangeNowClient
	prices    PriceClient
	cache     ResponseCache
}

// NewExchangeService creates a new ExchangeService. cache may be nil.
func NewExchangeService(changenow ChangeNowClient, prices PriceClient, cache ResponseCache) *ExchangeService {
	return &ExchangeService{changenow: changenow, prices: prices, cache: cache}
}

// Currencies returns the active ChangeNOW currencies limited to AllowedTickers
// and excluding fiat. Each element is forwarded as ChangeNOW sent it.
func (svc *ExchangeService) Currencies(ctx context.Context) ([]byte, error) {
	return cached(ctx, svc.cache, "changenow:currencies", currenciesCacheTTL, func(ctx context.Context) ([]byte, error) {
		raw, err := svc.changenow.Currencies(ctx)
		if err != nil {
			logger.Log.Errorw("failed to fetch currencies", "error", err)
			return nil, err
		}
		return filterCurrencies(raw)
	})
}

func filterCurrencies(raw []byte) ([]byte, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode currencies: %w", err)
	}

	filtered := make([]json.RawMessage, 0, len(AllowedTickers))
	for _, item := range items {
		var c models.ChangeNowCurrency
		if err := json.Unmarshal(item, &c); err != nil {
			continue
		}
		if !c.IsFiat && slices.Contains(AllowedTickers, strings.ToLower(c.Ticker)) {
			filtered = append(filtered, item)
		}
	}
	return json.Marshal(filtered)
}

// MinAmount forwards the minimum exchangeable amount for a pair.
func (svc *ExchangeService) MinAmount(ctx context.Context, from, to string) ([]byte, error) {
	return svc.changenow.MinAmount(ctx, from, to)
}

// ExchangeAmount forwards the estimated amount received.
func (svc *ExchangeService) ExchangeAmount(ctx context.Context, amount, from, to string) ([]byte, error) {
	return svc.changenow.ExchangeAmount(ctx, amount, from, to)
}

// CreateTransaction validates and forwards a swap creation.
func (svc *ExchangeService) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) ([]byte, error) {
	if req.From == "" || req.To == "" || req.Amount == "" || req.Address == "" {
		return nil, ErrMissingFields
	}
	amount, err := req.Amount.Float64()
	if err != nil || amount == 0 {
		return nil, ErrMissingFields
	}

	data, err := svc.changenow.CreateTransaction(ctx, models.ChangeNowTransaction{
		From:    req.From,
		To:      req.To,
		Amount:  amount,
		Address: req.Address,
		ExtraID: req.ExtraID,
	})
	if err != nil {
		logger.Log.Errorw("failed to create transaction", "from", req.From, "to", req.To, "error", err)
		return nil, err
	}
	return data, nil
}

// TransactionStatus forwards the state of a swap.
func (svc *ExchangeService) TransactionStatus(ctx context.Context, id string) ([]byte, error) {
	return svc.changenow.TransactionStatus(ctx, id)
}

// MarketPrices returns USD prices keyed by ticker. Coins the upstream does
// not price are left out.
func (svc *ExchangeService) MarketPrices(ctx context.Context) (map[string]float64, error) {
	data, err := cached(ctx, svc.cache, "coingecko:prices", pricesCacheTTL, func(ctx context.Context) ([]byte, error) {
		ids := make([]string, 0, len(AllowedTickers))
		for _, ticker := range AllowedTickers {
			ids = append(ids, coinGeckoIDs[ticker])
		}

		quotes, err := svc.prices.SimplePrice(ctx, ids, "usd")
		if err != nil {
			logger.Log.Errorw("failed to fetch market prices", "error", err)
			return nil, err
		}

		prices := make(map[string]float64, len(coinGeckoIDs))
		for ticker, id := range coinGeckoIDs {
			if usd := quotes[id]["usd"]; usd != 0 {
				prices[ticker] = usd
			}
		}
		return json.Marshal(prices)
	})
	if err != nil {
		return nil, err
	}

	var prices map[string]float64
	if err := json.Unmarshal(data, &prices); err != nil {
		return nil, fmt.Errorf("decode cached prices: %w", err)
	}
	return prices, nil
}
