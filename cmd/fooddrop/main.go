package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/food-drop/audio"
	"github.com/lixenwraith/food-drop/config"
	"github.com/lixenwraith/food-drop/parameter"
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

	logger, logFile, err := setupLogging(cfg.Frontend.Debug, cfg.Frontend.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing so the trace stays readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.WithField("panic", r).Error("crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFOOD-DROP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = !cfg.Frontend.Mute
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		logger.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()

	s := session.New(cfg.Game, logger)
	if err := s.Restart(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	if addr := cfg.Frontend.MetricsAddr; addr != "" {
		srv, err := status.NewMetricsServer(addr, "fooddrop", s.Metrics())
		if err != nil {
			logger.WithError(err).Error("metrics server")
		} else {
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.WithError(err).Error("metrics server stopped")
				}
			}()
			defer srv.Close()
			logger.WithField("addr", addr).Info("serving metrics")
		}
	}

	run(screen, s, sound, logger)
}

// run owns the frame loop until the player quits
func run(screen tcell.Screen, s *session.Session, sound *audio.SoundManager, logger logrus.FieldLogger) {
	renderer := render.NewRenderer(screen)

	eventChan := make(chan tcell.Event, 256)
	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	last := time.Now()
	var mouseDown bool

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				if ev.Key() != tcell.KeyRune {
					continue
				}
				switch ev.Rune() {
				case 'q':
					return
				case 'r':
					if err := s.Restart(); err != nil {
						logger.WithError(err).Error("restart failed")
					}
				case 'm':
					logger.WithField("muted", sound.ToggleMute()).Debug("mute toggled")
				}

			case *tcell.EventMouse:
				// Act on the press edge only, holding the button is one click
				pressed := ev.Buttons()&tcell.Button1 != 0
				if pressed && !mouseDown {
					x, y := ev.Position()
					if res, ok := renderer.Click(s.Game(), x, y); ok {
						logger.WithFields(logrus.Fields{"col": x, "row": y, "result": res.String()}).Debug("click")
					}
				}
				mouseDown = pressed

			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()
			}

		case now := <-frameTicker.C:
			dt := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now

			sound.HandleEvents(s.Tick(dt))
			renderer.Draw(s.Game())
		}
	}
}
