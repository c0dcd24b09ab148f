package engine

import (
	"io"
	"math"
	"sync/atomic"

	"github.com/golang/geo/r2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/food-drop/component"
	"github.com/lixenwraith/food-drop/event"
	"github.com/lixenwraith/food-drop/navigation"
	"github.com/lixenwraith/food-drop/parameter"
	"github.com/lixenwraith/food-drop/status"
	"github.com/lixenwraith/food-drop/vmath"
)

// Options carries the optional collaborators of a Game
// Zero value is valid: no events, a private metrics registry and a discarding logger
type Options struct {
	Events  *event.EventQueue
	Metrics *status.Registry
	Logger  logrus.FieldLogger
}

// Game is the simulation controller: it owns every entity and runs the per-frame pipeline
// Not safe for concurrent use; Tick and HandleClick run on the frontend loop goroutine
type Game struct {
	cfg    Config
	tuning parameter.Tuning
	rng    *vmath.FastRand
	ids    component.IDAllocator

	field    *navigation.Field
	deposits []*component.Node
	bad      []*component.Unit
	good     []*component.Unit

	plane        *component.Unit
	planeVisible bool
	dropping     bool // Plane is on its inbound leg toward a drop point

	badSpec  component.UnitSpec
	goodSpec component.UnitSpec

	size      r2.Point
	dropsLeft int
	score     float64
	ended     bool // Leftover drops were converted
	frames    int64

	events  *event.EventQueue
	log     logrus.FieldLogger
	metrics gameMetrics
}

// gameMetrics caches registry pointers so the tick path never touches the maps
type gameMetrics struct {
	score        *status.AtomicFloat
	dropsLeft    *atomic.Int64
	deposits     *atomic.Int64
	goodAgents   *atomic.Int64
	badAgents    *atomic.Int64
	frames       *atomic.Int64
	gameOver     *atomic.Bool
	planeVisible *atomic.Bool
}

func newGameMetrics(reg *status.Registry) gameMetrics {
	return gameMetrics{
		score:        reg.Floats.Get(status.KeyScore),
		dropsLeft:    reg.Ints.Get(status.KeyDropsLeft),
		deposits:     reg.Ints.Get(status.KeyDeposits),
		goodAgents:   reg.Ints.Get(status.KeyGoodAgents),
		badAgents:    reg.Ints.Get(status.KeyBadAgents),
		frames:       reg.Ints.Get(status.KeyFrames),
		gameOver:     reg.Bools.Get(status.KeyGameOver),
		planeVisible: reg.Bools.Get(status.KeyPlaneVisible),
	}
}

// New validates cfg and builds a fully populated session
// Obstacles are scattered uniformly; agents are placed on random traversable points
func New(cfg Config, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	reg := opts.Metrics
	if reg == nil {
		reg = status.NewRegistry()
	}

	t := cfg.Tuning
	g := &Game{
		cfg:       cfg,
		tuning:    t,
		rng:       vmath.NewFastRand(cfg.Seed),
		field:     navigation.NewField(cfg.ArenaWidth, cfg.ArenaHeight, parameter.ObstacleClear),
		size:      r2.Point{X: cfg.ArenaWidth, Y: cfg.ArenaHeight},
		dropsLeft: cfg.Drops,
		badSpec: component.UnitSpec{
			Speed:       t.BadSpeed,
			BoostFactor: t.BadBoostFactor,
			Size:        parameter.BadSize,
		},
		goodSpec: component.UnitSpec{
			Speed:       t.GoodSpeed,
			BoostFactor: t.GoodBoostFactor,
			Capacity:    t.GoodMaxFood,
			Size:        parameter.GoodSize,
		},
		events:  opts.Events,
		log:     logger,
		metrics: newGameMetrics(reg),
	}

	for range cfg.Obstacles {
		radius := g.rng.Between(parameter.TreeMinSize, parameter.TreeMaxSize)
		pos := vmath.RandomInRect(g.rng, g.size)
		g.field.AddObstacle(component.NewObstacle(g.ids.Next(), pos, radius))
	}

	for range cfg.BadAgents {
		u, err := g.spawnUnit(component.KindBadAgent, g.badSpec)
		if err != nil {
			return nil, err
		}
		g.bad = append(g.bad, u)
	}
	for range cfg.GoodAgents {
		u, err := g.spawnUnit(component.KindGoodAgent, g.goodSpec)
		if err != nil {
			return nil, err
		}
		g.good = append(g.good, u)
	}

	g.plane = component.NewUnit(g.ids.Next(), component.KindPlane, component.UnitSpec{
		Speed:       t.PlaneSpeed,
		BoostFactor: 1,
		Size:        parameter.PlaneSize,
	})
	g.plane.Place(r2.Point{X: -g.size.X/2 - parameter.PlaneSize})

	g.log.WithFields(logrus.Fields{
		"seed":      cfg.Seed,
		"obstacles": cfg.Obstacles,
		"bad":       cfg.BadAgents,
		"good":      cfg.GoodAgents,
		"drops":     cfg.Drops,
	}).Info("game created")

	g.publish()
	return g, nil
}

// spawnUnit places a new unit on a random traversable point with a random heading
func (g *Game) spawnUnit(kind component.Kind, spec component.UnitSpec) (*component.Unit, error) {
	for range parameter.SpawnAttempts {
		p := vmath.RandomInRect(g.rng, g.size)
		if !g.field.Traversable(p) {
			continue
		}
		u := component.NewUnit(g.ids.Next(), kind, spec)
		u.Place(p)
		u.SetHeading(g.rng.Float64() * 2 * math.Pi)
		return u, nil
	}
	return nil, ErrNoSpawnPoint
}

// SetArenaSize updates the bounds used by reachability and plane placement
// Non-positive extents are ignored
func (g *Game) SetArenaSize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	g.size = r2.Point{X: width, Y: height}
	g.field.Resize(width, height)
}

// DepositPosition resolves a deposit handle, satisfying component.DepositLocator
func (g *Game) DepositPosition(id component.ID) (r2.Point, bool) {
	if d := g.deposit(id); d != nil {
		return d.Position(), true
	}
	return r2.Point{}, false
}

func (g *Game) deposit(id component.ID) *component.Node {
	for _, d := range g.deposits {
		if d.ID() == id {
			return d
		}
	}
	return nil
}

// publish mirrors the session state into the metrics registry
func (g *Game) publish() {
	m := g.metrics
	m.score.Set(g.score)
	m.dropsLeft.Store(int64(g.dropsLeft))
	m.deposits.Store(int64(len(g.deposits)))
	m.goodAgents.Store(int64(len(g.good)))
	m.badAgents.Store(int64(len(g.bad)))
	m.frames.Store(g.frames)
	m.gameOver.Store(g.Over())
	m.planeVisible.Store(g.planeVisible)
}
