package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const poolsPath = "/fun/pools"

// Query holds the pools listing parameters.
type Query struct {
	Search    string
	Sort      string
	Completed bool
	Page      int
	PageSize  int
	Direction string
}

func (q Query) values() url.Values {
	v := url.Values{}
	v.Set("search", q.Search)
	v.Set("sort", q.Sort)
	v.Set("completed", strconv.FormatBool(q.Completed))
	page := q.Page
	if page <= 0 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("pageSize", strconv.Itoa(q.PageSize))
	v.Set("direction", q.Direction)
	return v
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Client talks to the pools REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.Named("api"),
	}
}

// FetchPools lists tokens matching q.
func (c *Client) FetchPools(ctx context.Context, q Query) (*PoolsResponse, error) {
	var resp PoolsResponse
	if err := c.getJSON(ctx, c.baseURL+poolsPath, q.values(), &resp); err != nil {
		return nil, fmt.Errorf("api: fetch pools: %w", err)
	}
	c.logger.Debug("fetched pools",
		zap.Int("count", len(resp.Data)),
		zap.Int("total", resp.Total),
		zap.String("search", q.Search),
		zap.Bool("completed", q.Completed),
	)
	return &resp, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return &StatusError{Code: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
