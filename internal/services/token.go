package services

//go:generate mockgen -source=token.go -destination=token_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
)

const tokenStatsCacheTTL = 30 * time.Second

// ErrNoPairData is returned when the token has no trading pair.
var ErrNoPairData = errors.New("no pair data found")

// TokenPairsClient lists trading pairs of a token.
type TokenPairsClient interface {
	TokenPairs(ctx context.Context, chain, address string) ([]models.DexPair, error)
}

// TokenService reports market stats of the $WHITEWHALE token.
type TokenService struct {
	pairs    TokenPairsClient
	cache    ResponseCache
	chain    string
	contract string
}

// NewTokenService creates a new TokenService for a Solana contract. cache may be nil.
func NewTokenService(pairs TokenPairsClient, cache ResponseCache, contract string) *TokenService {
	return &TokenService{pairs: pairs, cache: cache, chain: "solana", contract: contract}
}

// TokenStats summarizes the first (most liquid) pair of the token.
func (s *TokenService) TokenStats(ctx context.Context) (*models.TokenStats, error) {
	data, err := cached(ctx, s.cache, "dexscreener:"+s.contract, tokenStatsCacheTTL, func(ctx context.Context) ([]byte, error) {
		pairs, err := s.pairs.TokenPairs(ctx, s.chain, s.contract)
		if err != nil {
			logger.Log.Errorw("failed to fetch token pairs", "contract", s.contract, "error", err)
			return nil, err
		}
		if len(pairs) == 0 {
			return nil, ErrNoPairData
		}
		return json.Marshal(models.NewTokenStats(pairs[0]))
	})
	if err != nil {
		return nil, err
	}

	var stats models.TokenStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
