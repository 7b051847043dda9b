package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"sync"
	"time"
)

// ErrNoHistory means too few price samples exist to measure a change.
var ErrNoHistory = errors.New("api: not enough price history")

// ChangeSource reports the percent price change of a token over a period.
type ChangeSource interface {
	Change(ctx context.Context, token Token, period Period) (float64, error)
}

type sample struct {
	at    time.Time
	price float64
}

// History keeps the SUI prices seen by this session per token and derives
// changes from them. It is safe for concurrent use.
type History struct {
	mu      sync.Mutex
	samples map[string][]sample
	// Retain bounds how far back samples are kept.
	Retain time.Duration
	now    func() time.Time
}

func NewHistory(retain time.Duration) *History {
	return &History{
		samples: make(map[string][]sample),
		Retain:  retain,
		now:     time.Now,
	}
}

// Record stores the current price of every token.
func (h *History) Record(at time.Time, tokens []Token) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, t := range tokens {
		if t.Address == "" || t.PriceSUI <= 0 {
			continue
		}
		list := append(h.samples[t.Address], sample{at: at, price: t.PriceSUI})
		if h.Retain > 0 {
			cutoff := at.Add(-h.Retain)
			i := sort.Search(len(list), func(i int) bool { return !list[i].at.Before(cutoff) })
			list = list[i:]
		}
		h.samples[t.Address] = list
	}
}

// Change compares the latest sample with the oldest one inside the period.
func (h *History) Change(_ context.Context, token Token, period Period) (float64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	list := h.samples[token.Address]
	if len(list) < 2 {
		return 0, ErrNoHistory
	}
	latest := list[len(list)-1]
	cutoff := latest.at.Add(-period.Duration())
	i := sort.Search(len(list), func(i int) bool { return !list[i].at.Before(cutoff) })
	if i >= len(list)-1 {
		return 0, ErrNoHistory
	}
	base := list[i].price
	return (latest.price - base) / base * 100, nil
}

// RemoteChange asks an HTTP endpoint for the change. The endpoint receives
// address and period query parameters and answers {"change": <percent>}.
type RemoteChange struct {
	client   *Client
	endpoint string
}

func NewRemoteChange(client *Client, endpoint string) *RemoteChange {
	return &RemoteChange{client: client, endpoint: endpoint}
}

func (r *RemoteChange) Change(ctx context.Context, token Token, period Period) (float64, error) {
	params := url.Values{}
	params.Set("address", token.Address)
	params.Set("period", period.String())

	var body struct {
		Change *float64 `json:"change"`
	}
	if err := r.client.getJSON(ctx, r.endpoint, params, &body); err != nil {
		return 0, fmt.Errorf("api: fetch change for %s: %w", token.Address, err)
	}
	if body.Change == nil {
		return 0, fmt.Errorf("api: fetch change for %s: missing change field", token.Address)
	}
	return *body.Change, nil
}
