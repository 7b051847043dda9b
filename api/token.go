package api

// TokenMetadata is the on-chain coin metadata attached to a pool.
type TokenMetadata struct {
	Decimals    int    `json:"decimals"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
	ID          string `json:"id"`
}

// Token is one fun-pool record.
type Token struct {
	Address      string        `json:"token_address"`
	Name         string        `json:"name"`
	Symbol       string        `json:"symbol"`
	Metadata     TokenMetadata `json:"token_metadata"`
	Description  string        `json:"description"`
	MarketCapUSD float64       `json:"market_cap_usd"`
	MarketCapSUI float64       `json:"market_cap_sui"`
	Volume24hUSD float64       `json:"volume_24h_usd"`
	Volume24hSUI float64       `json:"volume_24h_sui"`
	PriceUSD     float64       `json:"token_price_usd"`
	PriceSUI     float64       `json:"token_price_sui"`
	Website      string        `json:"website"`
	Twitter      string        `json:"twitter"`
	Telegram     string        `json:"telegram"`
	CLMMPoolID   string        `json:"clmm_pool_id"`
	Completed    bool          `json:"is_completed"`
}

// DisplayName prefers the metadata name, which is what the pools page shows.
func (t Token) DisplayName() string {
	if t.Metadata.Name != "" {
		return t.Metadata.Name
	}
	return t.Name
}

// DisplaySymbol prefers the metadata symbol.
func (t Token) DisplaySymbol() string {
	if t.Metadata.Symbol != "" {
		return t.Metadata.Symbol
	}
	return t.Symbol
}

// PoolsResponse is the body of GET /fun/pools.
type PoolsResponse struct {
	Total int     `json:"total"`
	Data  []Token `json:"data"`
}
