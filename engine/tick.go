package engine

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/food-drop/component"
	"github.com/lixenwraith/food-drop/event"
	"github.com/lixenwraith/food-drop/parameter"
	"github.com/lixenwraith/food-drop/vmath"
)

// Tick advances the session by dt seconds
// Order: plane, deposits, bad agents, good agents. Nothing moves once the game is over
func (g *Game) Tick(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	if g.Over() {
		g.finish()
		g.publish()
		return
	}

	g.frames++
	g.tickPlane(dt)
	g.tickDeposits(dt)
	g.tickBadAgents(dt)
	g.tickGoodAgents(dt)
	g.publish()
}

// finish converts unused drops into score, once
func (g *Game) finish() {
	if g.ended {
		return
	}
	g.ended = true

	if g.dropsLeft > 0 {
		g.score += float64(g.dropsLeft) * g.tuning.LeftoverDropScore
		g.dropsLeft = 0
	}

	outcome := g.Outcome()
	g.log.WithFields(logrus.Fields{
		"outcome": outcome.String(),
		"score":   g.score,
		"frames":  g.frames,
	}).Info("game over")
	g.events.Emit(event.GameEvent{Type: event.EventGameOver, Value: g.score})
}

func (g *Game) tickPlane(dt float64) {
	if g.planeVisible && g.plane.AtTarget() {
		if g.dropping {
			g.spawnDeposit(g.plane.Position())
			g.plane.SetTargetPosition(r2.Point{
				X: g.size.X/2 + parameter.PlaneSize,
				Y: g.size.Y * g.rng.Centered(),
			})
			g.dropping = false
		} else {
			g.planeVisible = false
		}
	}

	if g.planeVisible {
		g.plane.Tick(dt, nil)
	}
}

func (g *Game) spawnDeposit(p r2.Point) *component.Node {
	d := component.NewDeposit(g.ids.Next(), p, parameter.FoodSize, g.tuning.FoodPerDrop, g.tuning.FoodRotSpeed)
	g.deposits = append(g.deposits, d)

	g.log.WithFields(logrus.Fields{"deposit": d.ID(), "x": p.X, "y": p.Y}).Debug("deposit spawned")
	g.events.Emit(event.GameEvent{
		Type:     event.EventDepositSpawned,
		Entity:   d.ID(),
		Kind:     component.KindDeposit,
		Position: p,
		Value:    d.Amount(),
	})
	return d
}

func (g *Game) tickDeposits(dt float64) {
	t := g.tuning
	for i := 0; i < len(g.deposits); {
		d := g.deposits[i]
		if d.Depleted() {
			g.removeDeposit(i)
			continue
		}

		for _, u := range g.bad {
			g.target(u, d, t.BadRange)
			if g.feeding(u, d) {
				// Bad agents destroy score
				g.score -= d.Take(t.BadFoodRate * dt)
			}
		}

		for _, u := range g.good {
			g.target(u, d, t.GoodRange)
			if g.feeding(u, d) {
				taken := d.Take(t.GoodFoodRate * dt)
				kept := u.DepositFood(taken)
				g.score += kept
				if rest := taken - kept; rest > 0 {
					d.Give(rest)
				}
			}
		}

		d.Tick(dt)
		i++
	}
}

// removeDeposit swap-removes deposit i and clears every handle pointing at it
func (g *Game) removeDeposit(i int) {
	d := g.deposits[i]
	last := len(g.deposits) - 1
	g.deposits[i] = g.deposits[last]
	g.deposits[last] = nil
	g.deposits = g.deposits[:last]

	for _, group := range [][]*component.Unit{g.bad, g.good} {
		for _, u := range group {
			if id, ok := u.TargetDeposit(); ok && id == d.ID() {
				u.SetTargetDeposit(nil)
			}
		}
	}

	g.log.WithField("deposit", d.ID()).Debug("deposit depleted")
	g.events.Emit(event.GameEvent{
		Type:     event.EventDepositDepleted,
		Entity:   d.ID(),
		Kind:     component.KindDeposit,
		Position: d.Position(),
	})
}

// target applies the greedy targeting rule: a reachable deposit is taken when the
// unit has none, and replaces the current one only when strictly closer
func (g *Game) target(u *component.Unit, d *component.Node, reach float64) {
	if !g.field.CanReach(u.Position(), d.Position(), reach) {
		return
	}

	cur, ok := u.TargetDeposit()
	if !ok {
		u.SetTargetDeposit(d)
		return
	}
	if cur == d.ID() {
		return
	}

	curPos, found := g.DepositPosition(cur)
	if !found || vmath.DistanceSq(u.Position(), d.Position()) < vmath.DistanceSq(u.Position(), curPos) {
		u.SetTargetDeposit(d)
	}
}

// feeding reports whether u is parked on deposit d
func (g *Game) feeding(u *component.Unit, d *component.Node) bool {
	id, ok := u.TargetDeposit()
	return ok && id == d.ID() && u.AtTarget()
}

// wander gives an idle unit a random reachable point within reach
// After WanderAttempts misses the unit stays put and retries next frame
func (g *Game) wander(u *component.Unit, reach float64) {
	if _, ok := u.TargetDeposit(); ok || !u.AtTarget() {
		return
	}

	from := u.Position()
	for range parameter.WanderAttempts {
		p := vmath.RandomInSquare(g.rng, from, reach)
		if g.field.CanReach(from, p, reach) {
			u.SetTargetPosition(p)
			return
		}
	}
}

func (g *Game) tickBadAgents(dt float64) {
	for _, u := range g.bad {
		g.wander(u, g.tuning.BadRange)
		u.Tick(dt, g)
	}
}

func (g *Game) tickGoodAgents(dt float64) {
	for i := 0; i < len(g.good); {
		u := g.good[i]
		if u.Full() {
			g.removeGood(i)
			continue
		}

		g.wander(u, g.tuning.GoodRange)
		u.Tick(dt, g)
		i++
	}
}

// removeGood swap-removes a full good agent and awards the bonus
func (g *Game) removeGood(i int) {
	u := g.good[i]
	last := len(g.good) - 1
	g.good[i] = g.good[last]
	g.good[last] = nil
	g.good = g.good[:last]

	bonus := g.tuning.GoodFullBonusFactor * u.Spec().Capacity
	g.score += bonus

	g.log.WithFields(logrus.Fields{"agent": u.ID(), "bonus": bonus}).Debug("agent fed")
	g.events.Emit(event.GameEvent{
		Type:     event.EventAgentFed,
		Entity:   u.ID(),
		Kind:     component.KindGoodAgent,
		Position: u.Position(),
		Value:    bonus,
	})
}
