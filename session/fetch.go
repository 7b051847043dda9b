package session

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/milk9111/suibubbles/api"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultChangeConcurrency = 8

type result struct {
	seq    uint64
	period api.Period
	resp   *api.PoolsResponse
	change map[string]float64
	err    error
}

// fetchJob is everything a background refresh needs, copied off the
// session so the goroutine never touches game-loop state.
type fetchJob struct {
	seq     uint64
	query   api.Query
	period  api.Period
	count   int
	limit   int
	pools   PoolSource
	changes api.ChangeSource
	logger  *zap.Logger
	now     func() time.Time
}

// Refresh cancels the fetch in flight and starts a new one. The result is
// applied by a later Update.
func (s *Session) Refresh() {
	if s.deps.Pools == nil {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	s.seq++
	s.loading = true
	s.lastRefresh = s.deps.Now()

	job := fetchJob{
		seq:     s.seq,
		query:   s.query(),
		period:  s.period,
		count:   s.opts.Count,
		limit:   s.opts.ChangeConcurrency,
		pools:   s.deps.Pools,
		changes: s.deps.Changes,
		logger:  s.logger,
		now:     s.deps.Now,
	}
	go func() {
		r := job.run(ctx)
		select {
		case s.results <- r:
		case <-ctx.Done():
		}
	}()
}

// drainResults applies every finished fetch without blocking.
func (s *Session) drainResults() {
	for {
		select {
		case r := <-s.results:
			s.apply(r)
		default:
			return
		}
	}
}

func (j fetchJob) run(ctx context.Context) result {
	r := result{seq: j.seq, period: j.period}
	resp, err := j.pools.FetchPools(ctx, j.query)
	if err != nil {
		r.err = err
		return r
	}
	r.resp = resp

	if rec, ok := j.changes.(PriceRecorder); ok {
		rec.Record(j.now(), resp.Data)
	}
	r.change = j.lookupChanges(ctx, topByMarketCap(resp.Data, j.count))
	return r
}

// lookupChanges asks the change source about every token in parallel. A
// failed lookup counts as no change.
func (j fetchJob) lookupChanges(ctx context.Context, tokens []api.Token) map[string]float64 {
	out := make(map[string]float64, len(tokens))
	if j.changes == nil || len(tokens) == 0 {
		return out
	}

	values := make([]float64, len(tokens))
	limit := j.limit
	if limit <= 0 {
		limit = defaultChangeConcurrency
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, t := range tokens {
		g.Go(func() error {
			v, err := j.changes.Change(gctx, t, j.period)
			if err != nil {
				if !errors.Is(err, api.ErrNoHistory) && !errors.Is(err, context.Canceled) {
					j.logger.Warn("change lookup failed",
						zap.String("address", t.Address),
						zap.Error(err),
					)
				}
				v = 0
			}
			values[i] = v
			return nil
		})
	}
	_ = g.Wait()

	for i, t := range tokens {
		out[t.Address] = values[i]
	}
	return out
}

// topByMarketCap returns up to n tokens with the largest SUI market cap.
// Ties keep API order.
func topByMarketCap(tokens []api.Token, n int) []api.Token {
	sorted := make([]api.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].MarketCapSUI > sorted[b].MarketCapSUI
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
