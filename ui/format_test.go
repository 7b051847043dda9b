package ui

import (
	"errors"
	"testing"

	"github.com/milk9111/suibubbles/api"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345.5, "12,345.5"},
		{1234567.891, "1,234,567.89"},
		{0.126, "0.13"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatAmount(tt.in); got != tt.want {
				t.Fatalf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{0.004, "0.00"},
		{12.3456, "12.35"},
		{3, "3.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatPrice(tt.in); got != tt.want {
				t.Fatalf("formatPrice(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCardContent(t *testing.T) {
	tok := api.Token{
		Address:      "0x1::a::A",
		Name:         "alpha",
		Symbol:       "alp",
		Metadata:     api.TokenMetadata{Name: "Alpha Coin", Symbol: "ALPHA"},
		Description:  "fallback",
		MarketCapUSD: 12345.5,
		MarketCapSUI: 4000,
		PriceUSD:     0.012,
		PriceSUI:     1.5,
		Website:      "https://alpha.example",
	}
	c := newCardContent(tok, -3.456, api.PeriodWeek)

	checks := []struct {
		name, got, want string
	}{
		{"name", c.Name, "Alpha Coin"},
		{"symbol", c.Symbol, "ALPHA"},
		{"description", c.Description, "fallback"},
		{"mcap_usd", c.MarketCapUSD, "Market cap: $12,345.5"},
		{"mcap_sui", c.MarketCapSUI, "Market cap: 4,000 SUI"},
		{"price_usd", c.PriceUSD, "Price: $0.01"},
		{"price_sui", c.PriceSUI, "Price: 1.50 SUI"},
		{"change", c.Change, "Change (Week): -3.46%"},
		{"website", c.Website, "Website: https://alpha.example"},
		{"twitter", c.Twitter, "Twitter: -"},
		{"address", c.Address, "0x1::a::A"},
	}
	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}

	if got := newCardContent(api.Token{}, 0, api.PeriodDay).Description; got != "No description." {
		t.Fatalf("empty description = %q", got)
	}
}

func TestSameTokens(t *testing.T) {
	a := api.Token{Address: "a"}
	b := api.Token{Address: "b"}
	if !sameTokens([]any{a, b}, []api.Token{a, b}) {
		t.Fatalf("identical lists should match")
	}
	if sameTokens([]any{b, a}, []api.Token{a, b}) {
		t.Fatalf("order matters")
	}
	if sameTokens([]any{a}, []api.Token{a, b}) {
		t.Fatalf("length matters")
	}
	if !sameTokens(nil, nil) {
		t.Fatalf("empty lists should match")
	}
}

func TestStatusText(t *testing.T) {
	if got := statusText(true, errors.New("x"), 5); got != "Loading..." {
		t.Fatalf("loading wins, got %q", got)
	}
	if got := statusText(false, errors.New("x"), 5); got != "Offline: showing last data" {
		t.Fatalf("error status = %q", got)
	}
	if got := statusText(false, nil, 1234); got != "1,234 tokens" {
		t.Fatalf("total status = %q", got)
	}
	if got := statusText(false, nil, 0); got != "" {
		t.Fatalf("idle status = %q", got)
	}
}
