// Package session owns the dashboard state: filters, the latest token list,
// the selection, and the bubble bodies in the world built from them.
package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/milk9111/suibubbles/api"
	"github.com/milk9111/suibubbles/config"
	"github.com/milk9111/suibubbles/ecs"
	"github.com/milk9111/suibubbles/ecs/component"
	"github.com/milk9111/suibubbles/ecs/system"
	"github.com/milk9111/suibubbles/script"
	"go.uber.org/zap"
)

// PoolSource lists tokens. *api.Client satisfies it.
type PoolSource interface {
	FetchPools(ctx context.Context, q api.Query) (*api.PoolsResponse, error)
}

// PriceRecorder is implemented by change sources that learn from every
// fetched page, such as *api.History.
type PriceRecorder interface {
	Record(at time.Time, tokens []api.Token)
}

// Options are the tunables read from config.
type Options struct {
	Sort              string
	Direction         string
	PageSize          int
	RefreshInterval   time.Duration
	SearchDebounce    time.Duration
	Count             int
	MinSizeRatio      float64
	MaxSpeed          float64
	ChangeConcurrency int
}

// OptionsFromConfig maps the config file onto session options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Sort:              cfg.API.Sort,
		Direction:         cfg.API.Direction,
		PageSize:          cfg.API.PageSize,
		RefreshInterval:   cfg.API.RefreshInterval,
		SearchDebounce:    cfg.SearchDebounce,
		Count:             cfg.Bubbles.Count,
		MinSizeRatio:      cfg.Bubbles.MinSizeRatio,
		MaxSpeed:          cfg.Layout.MaxSpeed,
		ChangeConcurrency: cfg.API.ChangeConcurrency,
	}
}

// Deps are the collaborators of a session. Rand and Now are optional.
type Deps struct {
	Pools   PoolSource
	Changes api.ChangeSource
	Sizer   *script.Sizer
	Logger  *zap.Logger
	Rand    *rand.Rand
	Now     func() time.Time
}

type Session struct {
	world  *ecs.World
	drag   *system.DragState
	deps   Deps
	opts   Options
	logger *zap.Logger

	period api.Period
	dex    bool
	search string

	tokens   []api.Token
	total    int
	change   map[string]float64
	selected string
	err      error

	bubbles map[string]ecs.Entity
	dirty   bool

	ctx         context.Context
	stop        context.CancelFunc
	cancel      context.CancelFunc
	results     chan result
	seq         uint64
	loading     bool
	lastRefresh time.Time
	searchDue   time.Time
	searchWait  bool
}

// New creates a session bound to w. drag is the latch shared with the
// world's drag and layout systems.
func New(w *ecs.World, drag *system.DragState, deps Deps, opts Options) *Session {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Sizer == nil {
		deps.Sizer = script.Default()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5ac1))
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if drag == nil {
		drag = &system.DragState{}
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Session{
		world:   w,
		drag:    drag,
		deps:    deps,
		opts:    opts,
		logger:  deps.Logger.Named("session"),
		period:  api.PeriodDay,
		change:  make(map[string]float64),
		bubbles: make(map[string]ecs.Entity),
		ctx:     ctx,
		stop:    stop,
		results: make(chan result, 1),
	}
}

// Close cancels any fetch in flight.
func (s *Session) Close() {
	s.stop()
}

func (s *Session) World() *ecs.World       { return s.world }
func (s *Session) Drag() *system.DragState { return s.drag }
func (s *Session) Period() api.Period      { return s.period }
func (s *Session) Dex() bool               { return s.dex }
func (s *Session) Search() string          { return s.search }
func (s *Session) Loading() bool           { return s.loading }
func (s *Session) Total() int              { return s.total }

// Err is the error of the last refresh, nil once a refresh succeeds.
func (s *Session) Err() error { return s.err }

// Tokens returns the latest token list as delivered by the API.
func (s *Session) Tokens() []api.Token { return s.tokens }

// Change returns the percent change shown for address.
func (s *Session) Change(address string) float64 { return s.change[address] }

// Update runs once per frame on the game loop. It applies finished fetches,
// starts due refreshes and turns bubble clicks into selections.
func (s *Session) Update() {
	s.drainResults()

	now := s.deps.Now()
	switch {
	case s.searchWait && !now.Before(s.searchDue):
		s.searchWait = false
		s.Refresh()
	case s.opts.RefreshInterval > 0 && !s.loading && !s.lastRefresh.IsZero() &&
		now.Sub(s.lastRefresh) >= s.opts.RefreshInterval:
		s.Refresh()
	}

	s.handleEvents()
}

func (s *Session) handleEvents() {
	for _, evt := range s.world.Events().Drain() {
		if evt.Type != system.EventBubbleSelected {
			continue
		}
		e, ok := evt.Data.(ecs.Entity)
		if !ok {
			continue
		}
		if b, ok := ecs.Get(s.world, e, component.BubbleComponent.Kind()); ok {
			s.Select(b.Address)
		}
	}
}

// SetPeriod switches the change window and refetches.
func (s *Session) SetPeriod(p api.Period) {
	if p == s.period {
		return
	}
	s.period = p
	s.Refresh()
}

// SetDex toggles between bonding-curve tokens and tokens listed on a DEX.
func (s *Session) SetDex(listed bool) {
	if listed == s.dex {
		return
	}
	s.dex = listed
	s.Refresh()
}

// SetSearch stores the query. The refetch waits until typing settles.
func (s *Session) SetSearch(q string) {
	if q == s.search {
		return
	}
	s.search = q
	s.searchWait = true
	s.searchDue = s.deps.Now().Add(s.opts.SearchDebounce)
}

// Filtered returns the tokens whose name contains the search query,
// ignoring case.
func (s *Session) Filtered() []api.Token {
	q := strings.ToLower(strings.TrimSpace(s.search))
	out := make([]api.Token, 0, len(s.tokens))
	for _, t := range s.tokens {
		if strings.Contains(strings.ToLower(t.Metadata.Name), q) {
			out = append(out, t)
		}
	}
	return out
}

// Select marks address as the token shown in the info card.
func (s *Session) Select(address string) bool {
	for _, t := range s.tokens {
		if t.Address == address {
			s.selected = address
			return true
		}
	}
	return false
}

// Choose is a pick from the search dropdown: the query becomes the token's
// name and the token is selected.
func (s *Session) Choose(address string) bool {
	if !s.Select(address) {
		return false
	}
	t, _ := s.Selected()
	s.SetSearch(t.Metadata.Name)
	return true
}

// Selected returns the selected token, if any.
func (s *Session) Selected() (api.Token, bool) {
	if s.selected == "" {
		return api.Token{}, false
	}
	for _, t := range s.tokens {
		if t.Address == s.selected {
			return t, true
		}
	}
	return api.Token{}, false
}

// ClearSelection closes the info card.
func (s *Session) ClearSelection() {
	s.selected = ""
}

// Dismiss closes the info card and empties the search box.
func (s *Session) Dismiss() {
	s.ClearSelection()
	s.SetSearch("")
}

// ApplyConfig swaps in reloaded options. Bubble count and size ratio
// changes rebuild the bodies.
func (s *Session) ApplyConfig(opts Options) {
	rebuild := opts.Count != s.opts.Count || opts.MinSizeRatio != s.opts.MinSizeRatio
	s.opts = opts
	if rebuild {
		s.Rebuild()
	}
}

// SetSizer replaces the size script and resizes every bubble.
func (s *Session) SetSizer(sz *script.Sizer) {
	if sz == nil {
		return
	}
	s.deps.Sizer = sz
	s.Rebuild()
}

func (s *Session) query() api.Query {
	return api.Query{
		Search:    s.search,
		Sort:      s.opts.Sort,
		Completed: s.dex,
		Page:      1,
		PageSize:  s.opts.PageSize,
		Direction: s.opts.Direction,
	}
}

func (s *Session) apply(r result) {
	if r.seq != s.seq {
		return
	}
	s.loading = false
	if r.err != nil {
		if !errors.Is(r.err, context.Canceled) {
			s.logger.Error("refresh failed", zap.Error(r.err))
			s.err = r.err
		}
		return
	}

	s.err = nil
	s.tokens = r.resp.Data
	s.total = r.resp.Total
	s.change = r.change
	s.logger.Debug("refresh applied",
		zap.Int("tokens", len(s.tokens)),
		zap.String("period", r.period.String()),
	)
	s.Rebuild()
}
