// Package script runs the tengo program that maps a token's market cap to
// a bubble diameter.
package script

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

//go:embed size.tengo
var defaultSource []byte

// Input is the set of globals a size script sees.
type Input struct {
	MarketCap    float64
	MaxMarketCap float64
	MinSize      float64
	MaxSize      float64
	Rank         int
	Count        int
}

// Sizer holds one compiled size script. Size may be called from several
// goroutines; runs are serialized.
type Sizer struct {
	mu       sync.Mutex
	compiled *tengo.Compiled
	path     string
}

// Default returns a Sizer running the embedded script.
func Default() *Sizer {
	s, err := Compile(defaultSource)
	if err != nil {
		panic(fmt.Sprintf("script: embedded size script: %v", err))
	}
	return s
}

// Load compiles the script at path. An empty path selects the embedded one.
func Load(path string) (*Sizer, error) {
	if path == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	s, err := Compile(src)
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// Compile builds a Sizer from source.
func Compile(src []byte) (*Sizer, error) {
	sc := tengo.NewScript(src)
	_ = sc.Add("market_cap", 0.0)
	_ = sc.Add("max_market_cap", 0.0)
	_ = sc.Add("min_size", 0.0)
	_ = sc.Add("max_size", 0.0)
	_ = sc.Add("rank", 0)
	_ = sc.Add("count", 0)
	_ = sc.Add("size", 0.0)
	sc.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := sc.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return &Sizer{compiled: compiled}, nil
}

// Path is the file the script was loaded from, empty for the embedded one.
func (s *Sizer) Path() string {
	return s.path
}

// Size runs the script for in. The result is clamped to
// [MinSize, MaxSize]; a failing script yields MinSize with the error.
func (s *Sizer) Size(in Input) (float64, error) {
	v, err := s.run(in)
	if err != nil {
		return in.MinSize, err
	}
	if math.IsNaN(v) {
		return in.MinSize, fmt.Errorf("script: size is NaN")
	}
	if v < in.MinSize {
		v = in.MinSize
	}
	if v > in.MaxSize {
		v = in.MaxSize
	}
	return v, nil
}

func (s *Sizer) run(in Input) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vars := []struct {
		name  string
		value any
	}{
		{"market_cap", in.MarketCap},
		{"max_market_cap", in.MaxMarketCap},
		{"min_size", in.MinSize},
		{"max_size", in.MaxSize},
		{"rank", in.Rank},
		{"count", in.Count},
		{"size", in.MinSize},
	}
	for _, v := range vars {
		if err := s.compiled.Set(v.name, v.value); err != nil {
			return 0, fmt.Errorf("script: set %s: %w", v.name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("script: run: %w", err)
	}

	switch v := s.compiled.Get("size").Value().(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("script: size must be a number, got %T", v)
	}
}

// Bounds returns the diameter range for count bubbles in a w×h container.
func Bounds(w, h float64, count int, minRatio float64) (minSize, maxSize float64) {
	if count <= 0 {
		count = 1
	}
	maxSize = math.Min(w, h) / math.Sqrt(float64(count))
	return maxSize * minRatio, maxSize
}
