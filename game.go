package main

import (
	"bytes"
	"fmt"
	"image/color"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/suibubbles/config"
	"github.com/milk9111/suibubbles/ecs"
	"github.com/milk9111/suibubbles/ecs/system"
	"github.com/milk9111/suibubbles/script"
	"github.com/milk9111/suibubbles/session"
	"github.com/milk9111/suibubbles/ui"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

var backgroundColor = color.RGBA{10, 14, 24, 255}

type Game struct {
	frames int
	debug  bool

	cfg     *config.Config
	cfgPath string
	logger  *zap.Logger
	watcher *config.Watcher

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *system.InputSystem
	drag      *system.DragSystem
	layout    *system.LayoutSystem

	session *session.Session
	ui      *ui.UI
}

func NewGame(cfg *config.Config, cfgPath string, deps session.Deps, debug bool) (*Game, error) {
	logger := deps.Logger

	face, err := labelFace()
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}

	world := ecs.NewWorld()
	dragState := &system.DragState{}
	origin := cp.Vector{X: 0, Y: ui.NavbarHeight}
	frame := time.Second / time.Duration(ebiten.TPS())

	g := &Game{
		debug:   debug,
		cfg:     cfg,
		cfgPath: cfgPath,
		logger:  logger,
		world:   world,
		input:   system.NewInputSystem(origin),
		drag:    system.NewDragSystem(dragState, cfg.Layout.DragDamping, cfg.Layout.ClickSlop),
		layout:  system.NewLayoutSystem(layoutParams(cfg), frame, dragState),
	}
	g.scheduler = ecs.NewScheduler(
		g.input,
		g.drag,
		g.layout,
		system.NewHoverSystem(dragState),
		system.NewRenderSystem(origin, face),
	)

	g.session = session.New(world, dragState, deps, session.OptionsFromConfig(cfg))
	g.ui, err = ui.New(g.session, logger)
	if err != nil {
		return nil, err
	}

	g.watch()
	g.session.Refresh()
	return g, nil
}

func layoutParams(cfg *config.Config) system.LayoutParams {
	return system.LayoutParams{
		Period:           cfg.Layout.Tick,
		OverlapTolerance: cfg.Layout.OverlapTolerance,
		Damping:          cfg.Layout.Damping,
	}
}

func labelFace() (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: s, Size: 12}, nil
}

// watch (re)starts the file watcher on the config file and size script.
func (g *Game) watch() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	scriptPath := g.cfg.SizeScriptPath(g.cfgPath)
	if g.cfgPath == "" && scriptPath == "" {
		return
	}
	w, err := config.NewWatcher(g.cfgPath, scriptPath)
	if err != nil {
		g.logger.Warn("hot reload disabled", zap.Error(err))
		return
	}
	g.watcher = w
}

// applyReloads handles file changes reported since the last frame.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("watch error", zap.Error(err))
			}
		case path, ok := <-g.watcher.Events:
			if !ok {
				return
			}
			g.reload(path)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	scriptPath := g.cfg.SizeScriptPath(g.cfgPath)
	if path != absPath(scriptPath) {
		cfg, _, err := config.LoadFromPath(g.cfgPath)
		if err != nil {
			g.logger.Error("config reload failed", zap.String("path", path), zap.Error(err))
			return
		}
		g.cfg = cfg
		g.layout.Params = layoutParams(cfg)
		g.drag.Damping = cfg.Layout.DragDamping
		g.drag.ClickSlop = cfg.Layout.ClickSlop
		g.session.ApplyConfig(session.OptionsFromConfig(cfg))
		g.logger.Info("config reloaded", zap.String("path", path))

		if next := cfg.SizeScriptPath(g.cfgPath); next != scriptPath {
			scriptPath = next
			g.watch()
		} else {
			return
		}
	}

	sizer, err := script.Load(scriptPath)
	if err != nil {
		g.logger.Error("size script reload failed", zap.String("path", scriptPath), zap.Error(err))
		return
	}
	g.session.SetSizer(sizer)
	g.logger.Info("size script reloaded", zap.String("path", scriptPath))
}

func (g *Game) Update() error {
	g.frames++

	g.applyReloads()
	g.input.Suspended = g.ui.CapturesPointer()
	g.scheduler.Update(g.world)
	g.session.Update()
	g.ui.Update()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.scheduler.Draw(g.world, screen)
	g.ui.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS()), 4, ui.NavbarHeight+4)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.session.SetBounds(outsideWidth, max(outsideHeight-ui.NavbarHeight, 0))
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops background work.
func (g *Game) Close() {
	g.session.Close()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func absPath(p string) string {
	if p == "" {
		return ""
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
