package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-topdown/internal/assets"
	"github.com/vovakirdan/tui-topdown/internal/config"
	"github.com/vovakirdan/tui-topdown/internal/core"
	"github.com/vovakirdan/tui-topdown/internal/games/topdown"
	"github.com/vovakirdan/tui-topdown/internal/platform/tui"
	"github.com/vovakirdan/tui-topdown/internal/sprite"
)

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	src, err := spriteSource(flagAssets)
	if err != nil {
		return err
	}

	game, err := topdown.New(cfg, src, logger)
	if err != nil {
		logger.Error("could not create game", "err", err)
		return err
	}

	// Get terminal size so the first frame fits before a resize arrives
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
		Seed:     seed,
	}
	opts := tui.Options{
		WorldW:  cfg.Display.Width,
		WorldH:  cfg.Display.Height,
		KeyHold: time.Duration(cfg.Input.KeyHoldMS) * time.Millisecond,
		Logger:  logger,
	}

	if err := tui.Run(game, runtime, opts); err != nil {
		logger.Error("program failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("game finished", "state", game.State(), "kills", game.Kills(), "ticks", game.Tick())
	return nil
}

// loadConfig resolves the effective config from the config file, the
// difficulty preset and the fps flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// spriteSource returns the PNG directory source when dir is set, or the
// embedded sprite sheet otherwise.
func spriteSource(dir string) (sprite.Source, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("assets: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("assets: %s is not a directory", dir)
		}
		return sprite.Dir(dir), nil
	}

	sheet, err := assets.DefaultSheet()
	if err != nil {
		return nil, fmt.Errorf("assets: embedded sheet: %w", err)
	}
	return sheet, nil
}
