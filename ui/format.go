package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/milk9111/suibubbles/api"
	"github.com/shopspring/decimal"
)

// formatAmount renders a market cap with thousands separators and at most
// two fraction digits.
func formatAmount(v float64) string {
	return humanize.Commaf(decimal.NewFromFloat(v).Round(2).InexactFloat64())
}

// formatPrice renders a price with exactly two decimals.
func formatPrice(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func formatChange(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

func formatLink(label, url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		url = "-"
	}
	return label + ": " + url
}

// cardContent is the text of the info card for one token.
type cardContent struct {
	Name         string
	Symbol       string
	Description  string
	MarketCapUSD string
	MarketCapSUI string
	PriceUSD     string
	PriceSUI     string
	Change       string
	Website      string
	Twitter      string
	Telegram     string
	Address      string
}

func newCardContent(t api.Token, change float64, period api.Period) cardContent {
	desc := t.Metadata.Description
	if desc == "" {
		desc = t.Description
	}
	if desc == "" {
		desc = "No description."
	}
	return cardContent{
		Name:         t.DisplayName(),
		Symbol:       t.DisplaySymbol(),
		Description:  desc,
		MarketCapUSD: "Market cap: $" + formatAmount(t.MarketCapUSD),
		MarketCapSUI: "Market cap: " + formatAmount(t.MarketCapSUI) + " SUI",
		PriceUSD:     "Price: $" + formatPrice(t.PriceUSD),
		PriceSUI:     "Price: " + formatPrice(t.PriceSUI) + " SUI",
		Change:       fmt.Sprintf("Change (%s): %s", period, formatChange(change)),
		Website:      formatLink("Website", t.Website),
		Twitter:      formatLink("Twitter", t.Twitter),
		Telegram:     formatLink("Telegram", t.Telegram),
		Address:      t.Address,
	}
}

// sameTokens reports whether entries already lists exactly tokens, in order.
func sameTokens(entries []any, tokens []api.Token) bool {
	if len(entries) != len(tokens) {
		return false
	}
	for i, e := range entries {
		t, ok := e.(api.Token)
		if !ok || t.Address != tokens[i].Address {
			return false
		}
	}
	return true
}

func statusText(loading bool, err error, total int) string {
	switch {
	case loading:
		return "Loading..."
	case err != nil:
		return "Offline: showing last data"
	case total > 0:
		return humanize.Comma(int64(total)) + " tokens"
	}
	return ""
}
