package models

import "encoding/json"

// CreateTransactionRequest represents the JSON body for starting a swap
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// required: true
	// example: btc
	From string `json:"from"`
	// required: true
	// example: sol
	To string `json:"to"`
	// required: true
	// example: 0.01
	Amount json.Number `json:"amount"`
	// required: true
	// example: 7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU
	Address string `json:"address"`
	// example: 123456
	ExtraID string `json:"extraId,omitempty"`
}

// ChangeNowTransaction is the payload forwarded to ChangeNOW.
type ChangeNowTransaction struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Amount  float64 `json:"amount"`
	Address string  `json:"address"`
	ExtraID string  `json:"extraId,omitempty"`
}

// ChangeNowCurrency holds the fields used to filter the currency list.
// The full upstream object is forwarded unchanged.
type ChangeNowCurrency struct {
	Ticker string `json:"ticker"`
	IsFiat bool   `json:"isFiat"`
}

// MarketPricesResponse maps tickers to USD prices
// swagger:model MarketPricesResponse
type MarketPricesResponse struct {
	Prices map[string]float64 `json:"prices"`
}
