package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/suibubbles/api"
	"github.com/milk9111/suibubbles/assets"
	"github.com/milk9111/suibubbles/config"
	"github.com/milk9111/suibubbles/script"
	"github.com/milk9111/suibubbles/session"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	debug := flag.Bool("debug", false, "enable debug logging and the FPS overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	initConfig := flag.String("init-config", "", "write an example config to this path and exit")
	flag.Parse()

	if *initConfig != "" {
		if err := writeExampleConfig(*initConfig); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", *initConfig)
		return
	}

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, cfgPath, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if cfgPath != "" {
		logger.Info("using config", zap.String("path", cfgPath))
	}

	sizer, err := script.Load(cfg.SizeScriptPath(cfgPath))
	if err != nil {
		logger.Warn("size script failed, using built-in", zap.Error(err))
		sizer = script.Default()
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
	var changes api.ChangeSource = api.NewHistory(api.PeriodYear.Duration())
	if cfg.API.ChangeEndpoint != "" {
		changes = api.NewRemoteChange(client, cfg.API.ChangeEndpoint)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(cfg, cfgPath, session.Deps{
		Pools:   client,
		Changes: changes,
		Sizer:   sizer,
		Logger:  logger,
	}, *debug)
	if err != nil {
		logger.Fatal("start", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func writeExampleConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, assets.ExampleConfig, 0o644)
}
