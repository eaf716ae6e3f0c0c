package models

// DexPair is the subset of a DexScreener pair the service reads.
type DexPair struct {
	PriceUsd    *string            `json:"priceUsd"`
	PriceNative *string            `json:"priceNative"`
	PriceChange map[string]float64 `json:"priceChange"`
	Volume      *struct {
		H24 *float64 `json:"h24"`
	} `json:"volume"`
	Liquidity *struct {
		Usd *float64 `json:"usd"`
	} `json:"liquidity"`
	MarketCap *float64 `json:"marketCap"`
	Fdv       *float64 `json:"fdv"`
	BaseToken *struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"baseToken"`
	Info *struct {
		ImageURL *string `json:"imageUrl"`
	} `json:"info"`
}

// TokenStats is the market summary of the token
// swagger:model TokenStats
type TokenStats struct {
	PriceUsd    *string            `json:"priceUsd"`
	PriceNative *string            `json:"priceNative"`
	PriceChange map[string]float64 `json:"priceChange"`
	Volume24h   *float64           `json:"volume24h"`
	Liquidity   *float64           `json:"liquidity"`
	MarketCap   *float64           `json:"marketCap"`
	Fdv         *float64           `json:"fdv"`
	Name        string             `json:"name"`
	Symbol      string             `json:"symbol"`
	ImageURL    *string            `json:"imageUrl"`
}

// NewTokenStats flattens a pair into TokenStats, filling display defaults.
func NewTokenStats(p DexPair) TokenStats {
	stats := TokenStats{
		PriceUsd:    p.PriceUsd,
		PriceNative: p.PriceNative,
		PriceChange: p.PriceChange,
		MarketCap:   p.MarketCap,
		Fdv:         p.Fdv,
		Name:        "WhiteWhale",
		Symbol:      "WHITEWHALE",
	}
	if stats.PriceChange == nil {
		stats.PriceChange = map[string]float64{}
	}
	if p.Volume != nil {
		stats.Volume24h = p.Volume.H24
	}
	if p.Liquidity != nil {
		stats.Liquidity = p.Liquidity.Usd
	}
	if p.BaseToken != nil {
		if p.BaseToken.Name != "" {
			stats.Name = p.BaseToken.Name
		}
		if p.BaseToken.Symbol != "" {
			stats.Symbol = p.BaseToken.Symbol
		}
	}
	if p.Info != nil {
		stats.ImageURL = p.Info.ImageURL
	}
	return stats
}
