// Package session rebuilds games from one configuration for the frontends.
// Every game of a session shares the event queue and the metrics registry, so
// sound and metrics consumers survive restarts.
package session

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/food-drop/engine"
	"github.com/lixenwraith/food-drop/event"
	"github.com/lixenwraith/food-drop/status"
)

type Session struct {
	cfg       engine.Config
	fixedSeed bool
	events    *event.EventQueue
	metrics   *status.Registry
	log       logrus.FieldLogger
	game      *engine.Game
}

// New prepares a session, call Restart to create the first game
func New(cfg engine.Config, logger logrus.FieldLogger) *Session {
	return &Session{
		cfg:       cfg,
		fixedSeed: cfg.Seed != 0,
		events:    event.NewEventQueue(),
		metrics:   status.NewRegistry(),
		log:       logger,
	}
}

// Restart replaces the running game; a zero configured seed draws a new one each time
func (s *Session) Restart() error {
	cfg := s.cfg
	if !s.fixedSeed {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	g, err := engine.New(cfg, engine.Options{
		Events:  s.events,
		Metrics: s.metrics,
		Logger:  s.log,
	})
	if err != nil {
		return err
	}

	s.events.Consume() // Drop cues of the previous game
	s.game = g
	s.log.WithField("seed", cfg.Seed).Info("session restarted")
	return nil
}

// Game returns the running game, nil before the first Restart
func (s *Session) Game() *engine.Game { return s.game }

func (s *Session) Metrics() *status.Registry { return s.metrics }

// Tick advances the running game by dt seconds and returns the events it raised
func (s *Session) Tick(dt time.Duration) []event.GameEvent {
	s.game.Tick(dt.Seconds())
	return s.Drain()
}

// Drain empties the event queue, logging each event
func (s *Session) Drain() []event.GameEvent {
	evs := s.events.Consume()
	for _, ev := range evs {
		s.log.WithFields(logrus.Fields{
			"type":   ev.Type.String(),
			"entity": ev.Entity,
			"x":      ev.Position.X,
			"y":      ev.Position.Y,
			"value":  ev.Value,
		}).Debug("game event")
	}
	return evs
}
