package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/food-drop/audio"
	"github.com/lixenwraith/food-drop/config"
	"github.com/lixenwraith/food-drop/render"
	"github.com/lixenwraith/food-drop/session"
	"github.com/lixenwraith/food-drop/status"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if flags.DumpConfig {
		if err := config.Write(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write configuration: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The window leaves the terminal free, so logs go to stderr
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if cfg.Frontend.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = !cfg.Frontend.Mute
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		logger.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()

	s := session.New(cfg.Game, logger)
	if err := s.Restart(); err != nil {
		logger.WithError(err).Fatal("failed to start game")
	}

	if addr := cfg.Frontend.MetricsAddr; addr != "" {
		srv, err := status.NewMetricsServer(addr, "fooddrop", s.Metrics())
		if err != nil {
			logger.WithError(err).Fatal("metrics server")
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.WithError(err).Error("metrics server stopped")
			}
		}()
		defer srv.Close()
	}

	ebiten.SetWindowSize(int(cfg.Game.ArenaWidth), int(cfg.Game.ArenaHeight))
	ebiten.SetWindowTitle(render.Title + " | Loading...")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w := &window{s: s, sound: sound, log: logger, debug: cfg.Frontend.Debug}
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.WithError(err).Error("game loop")
	}
}
