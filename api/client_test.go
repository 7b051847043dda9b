package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const poolsBody = `{
  "total": 2,
  "data": [
    {
      "token_address": "0x1::a::A",
      "name": "Alpha",
      "symbol": "ALP",
      "token_metadata": {"decimals": 9, "name": "Alpha Coin", "symbol": "ALPHA", "description": "first", "iconUrl": "https://r.turbos.finance/icon/a.png", "id": "0xmeta"},
      "description": "first token",
      "market_cap_usd": 12345.5,
      "market_cap_sui": 4000,
      "volume_24h_usd": 10,
      "volume_24h_sui": 3,
      "token_price_usd": 0.012,
      "token_price_sui": 0.004,
      "website": "https://alpha.example",
      "twitter": "https://x.com/alpha",
      "telegram": "",
      "clmm_pool_id": "0xpool",
      "is_completed": true
    },
    {"token_address": "0x2::b::B", "name": "Beta", "symbol": "BET", "market_cap_sui": 10}
  ]
}`

func TestFetchPools(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fun/pools" {
			t.Errorf("path = %q, want /fun/pools", r.URL.Path)
		}
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(poolsBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second, nil)
	resp, err := c.FetchPools(context.Background(), Query{
		Search:    "alp",
		Sort:      "market_cap_sui",
		Completed: true,
		PageSize:  100,
		Direction: "desc",
	})
	if err != nil {
		t.Fatalf("FetchPools: %v", err)
	}

	want := map[string]string{
		"search":    "alp",
		"sort":      "market_cap_sui",
		"completed": "true",
		"page":      "1",
		"pageSize":  "100",
		"direction": "desc",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	if resp.Total != 2 || len(resp.Data) != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
	a := resp.Data[0]
	if a.Address != "0x1::a::A" || a.MarketCapSUI != 4000 || a.PriceSUI != 0.004 || !a.Completed {
		t.Errorf("token fields not decoded: %+v", a)
	}
	if a.Metadata.IconURL != "https://r.turbos.finance/icon/a.png" || a.Metadata.Decimals != 9 {
		t.Errorf("metadata not decoded: %+v", a.Metadata)
	}
	if a.DisplayName() != "Alpha Coin" || a.DisplaySymbol() != "ALPHA" {
		t.Errorf("display fields should prefer metadata, got %q %q", a.DisplayName(), a.DisplaySymbol())
	}
	if b := resp.Data[1]; b.DisplayName() != "Beta" || b.DisplaySymbol() != "BET" {
		t.Errorf("display fields should fall back to top-level, got %q %q", b.DisplayName(), b.DisplaySymbol())
	}
}

func TestFetchPoolsErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusBadGateway)
			},
			check: func(t *testing.T, err error) {
				var se *StatusError
				if !errors.As(err, &se) || se.Code != http.StatusBadGateway {
					t.Fatalf("expected StatusError 502, got %v", err)
				}
			},
		},
		{
			name: "bad_json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			},
			check: func(t *testing.T, err error) {
				if err == nil {
					t.Fatalf("expected decode error")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second, nil).FetchPools(context.Background(), Query{})
			tt.check(t, err)
		})
	}
}

func TestFetchPoolsHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewClient(srv.URL, time.Second, nil).FetchPools(ctx, Query{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRemoteChange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("address") {
		case "0xgood":
			if r.URL.Query().Get("period") != "Week" {
				t.Errorf("period = %q, want Week", r.URL.Query().Get("period"))
			}
			_, _ = w.Write([]byte(`{"change": -12.5}`))
		case "0xempty":
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	rc := NewRemoteChange(NewClient(srv.URL, time.Second, nil), srv.URL+"/change")

	got, err := rc.Change(context.Background(), Token{Address: "0xgood"}, PeriodWeek)
	if err != nil || got != -12.5 {
		t.Fatalf("Change = %v, %v; want -12.5", got, err)
	}
	if _, err := rc.Change(context.Background(), Token{Address: "0xempty"}, PeriodWeek); err == nil {
		t.Fatalf("expected error for missing field")
	}
	if _, err := rc.Change(context.Background(), Token{Address: "0xmissing"}, PeriodWeek); err == nil {
		t.Fatalf("expected error for 404")
	}
}
