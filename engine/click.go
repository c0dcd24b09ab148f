package engine

import (
	"github.com/golang/geo/r2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/food-drop/component"
	"github.com/lixenwraith/food-drop/event"
	"github.com/lixenwraith/food-drop/parameter"
)

// ClickResult describes what a click did
type ClickResult int

const (
	// ClickIgnored: nothing hit and no drop possible (no drops left, plane busy, game over)
	ClickIgnored ClickResult = iota
	// ClickBlocked: an obstacle or deposit was hit, or the point is not traversable
	ClickBlocked
	// ClickBoosted: an agent was hit and received a boost
	ClickBoosted
	// ClickDropped: the plane was dispatched toward the point
	ClickDropped
)

func (r ClickResult) String() string {
	switch r {
	case ClickBlocked:
		return "blocked"
	case ClickBoosted:
		return "boosted"
	case ClickDropped:
		return "dropped"
	default:
		return "ignored"
	}
}

// HandleClick applies a click at arena point p
// Hit priority: obstacles, deposits, good agents, bad agents. Callers convert
// window coordinates first (vmath.ScreenToArena)
func (g *Game) HandleClick(p r2.Point) ClickResult {
	if g.Over() {
		return ClickIgnored
	}

	scale := parameter.SelectionScale
	for _, o := range g.field.Obstacles() {
		if o.Selects(p, scale) {
			g.blocked(p, o)
			return ClickBlocked
		}
	}
	for _, d := range g.deposits {
		if d.Selects(p, scale) {
			g.blocked(p, d)
			return ClickBlocked
		}
	}
	for _, group := range [][]*component.Unit{g.good, g.bad} {
		for _, u := range group {
			if u.Selects(p, scale) {
				g.boost(u)
				return ClickBoosted
			}
		}
	}

	if g.dropsLeft == 0 || g.planeVisible {
		return ClickIgnored
	}
	if !g.field.Traversable(p) {
		g.blocked(p, nil)
		return ClickBlocked
	}

	g.planeVisible = true
	g.dropping = true
	g.plane.Place(r2.Point{
		X: -g.size.X/2 - parameter.PlaneSize,
		Y: g.size.Y * g.rng.Centered(),
	})
	g.plane.SetTargetPosition(p)
	g.dropsLeft--

	g.log.WithFields(logrus.Fields{"x": p.X, "y": p.Y, "drops_left": g.dropsLeft}).Debug("drop requested")
	g.events.Emit(event.GameEvent{
		Type:     event.EventDropRequested,
		Entity:   g.plane.ID(),
		Kind:     component.KindPlane,
		Position: p,
		Value:    float64(g.dropsLeft),
	})
	g.publish()
	return ClickDropped
}

// SelectAgent applies a click that a frontend already resolved to the agent id,
// as the terminal renderer does from the glyph under the cursor
// It reports false when the game is over or no live agent has that id
func (g *Game) SelectAgent(id component.ID) bool {
	if g.Over() {
		return false
	}
	for _, group := range [][]*component.Unit{g.good, g.bad} {
		for _, u := range group {
			if u.ID() == id {
				g.boost(u)
				return true
			}
		}
	}
	return false
}

func (g *Game) boost(u *component.Unit) {
	d := g.tuning.SpeedBoostDuration
	u.ApplyBoost(d)

	g.log.WithFields(logrus.Fields{"agent": u.ID(), "kind": u.Kind().String()}).Debug("boost applied")
	g.events.Emit(event.GameEvent{
		Type:     event.EventBoostApplied,
		Entity:   u.ID(),
		Kind:     u.Kind(),
		Position: u.Position(),
		Value:    d,
	})
}

// blocked reports a click that consumed no drop, hit is nil for non-traversable ground
func (g *Game) blocked(p r2.Point, hit component.Entity) {
	ev := event.GameEvent{Type: event.EventDropBlocked, Position: p}
	if hit != nil {
		ev.Entity = hit.ID()
		ev.Kind = hit.Kind()
	}
	g.events.Emit(ev)
}
