// Package config loads the dashboard settings from YAML.
//
// Config file locations (priority order):
//  1. the -config flag
//  2. $SUIBUBBLES_CONFIG
//  3. ./suibubbles.yaml
//  4. ~/.config/suibubbles/config.yaml
//
// A missing file is not an error; defaults are used instead.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/milk9111/suibubbles/common"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	API            APIConfig     `yaml:"api"`
	Layout         LayoutConfig  `yaml:"layout"`
	Bubbles        BubblesConfig `yaml:"bubbles"`
	Window         WindowConfig  `yaml:"window"`
	SearchDebounce time.Duration `yaml:"search_debounce"`
}

type APIConfig struct {
	BaseURL         string        `yaml:"base_url"`
	Sort            string        `yaml:"sort"`
	Direction       string        `yaml:"direction"`
	PageSize        int           `yaml:"page_size"`
	Timeout         time.Duration `yaml:"timeout"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	// ChangeEndpoint serves percent changes per token. When empty the
	// change is measured from prices sampled during the session.
	ChangeEndpoint string `yaml:"change_endpoint"`
	// ChangeConcurrency bounds parallel change lookups per refresh.
	ChangeConcurrency int `yaml:"change_concurrency"`
}

type LayoutConfig struct {
	Tick             time.Duration `yaml:"tick"`
	OverlapTolerance float64       `yaml:"overlap_tolerance"`
	Damping          float64       `yaml:"damping"`
	DragDamping      float64       `yaml:"drag_damping"`
	ClickSlop        float64       `yaml:"click_slop"`
	// MaxSpeed bounds the random initial drift per axis, in pixels per tick.
	MaxSpeed float64 `yaml:"max_speed"`
}

type BubblesConfig struct {
	Count        int     `yaml:"count"`
	MinSizeRatio float64 `yaml:"min_size_ratio"`
	// SizeScript is a tengo script file; empty uses the built-in script.
	SizeScript string `yaml:"size_script"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load finds and loads the config file. explicit wins over the search path.
func Load(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, path, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, path, nil
}

// Parse decodes YAML, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to path.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://api.turbos.finance"
	}
	if c.API.Sort == "" {
		c.API.Sort = "market_cap_sui"
	}
	if c.API.Direction == "" {
		c.API.Direction = "desc"
	}
	if c.API.PageSize == 0 {
		c.API.PageSize = 100
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 10 * time.Second
	}
	if c.API.RefreshInterval == 0 {
		c.API.RefreshInterval = time.Minute
	}
	if c.API.ChangeConcurrency == 0 {
		c.API.ChangeConcurrency = 8
	}

	if c.Layout.Tick == 0 {
		c.Layout.Tick = 48 * time.Millisecond
	}
	if c.Layout.OverlapTolerance == 0 {
		c.Layout.OverlapTolerance = 0.1
	}
	if c.Layout.Damping == 0 {
		c.Layout.Damping = 0.3
	}
	if c.Layout.DragDamping == 0 {
		c.Layout.DragDamping = 0.1
	}
	if c.Layout.MaxSpeed == 0 {
		c.Layout.MaxSpeed = 0.5
	}

	if c.Bubbles.Count == 0 {
		c.Bubbles.Count = 20
	}
	if c.Bubbles.MinSizeRatio == 0 {
		c.Bubbles.MinSizeRatio = 0.6
	}

	if c.Window.Width == 0 {
		c.Window.Width = common.BaseWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = common.BaseHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = "SUI Bubbles"
	}

	if c.SearchDebounce == 0 {
		c.SearchDebounce = 300 * time.Millisecond
	}
}

// Validate rejects settings the layout cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Layout.OverlapTolerance < 0 || c.Layout.OverlapTolerance >= 1:
		return fmt.Errorf("%w: layout.overlap_tolerance %v not in [0,1)", ErrInvalid, c.Layout.OverlapTolerance)
	case c.Layout.Damping < 0 || c.Layout.Damping > 1:
		return fmt.Errorf("%w: layout.damping %v not in [0,1]", ErrInvalid, c.Layout.Damping)
	case c.Layout.DragDamping < 0 || c.Layout.DragDamping > 1:
		return fmt.Errorf("%w: layout.drag_damping %v not in [0,1]", ErrInvalid, c.Layout.DragDamping)
	case c.Layout.Tick < 0:
		return fmt.Errorf("%w: layout.tick must be positive", ErrInvalid)
	case c.Layout.ClickSlop < 0:
		return fmt.Errorf("%w: layout.click_slop must not be negative", ErrInvalid)
	case c.Bubbles.Count < 0:
		return fmt.Errorf("%w: bubbles.count must not be negative", ErrInvalid)
	case c.Bubbles.MinSizeRatio <= 0 || c.Bubbles.MinSizeRatio > 1:
		return fmt.Errorf("%w: bubbles.min_size_ratio %v not in (0,1]", ErrInvalid, c.Bubbles.MinSizeRatio)
	case c.API.PageSize < 0:
		return fmt.Errorf("%w: api.page_size must not be negative", ErrInvalid)
	}
	return nil
}
