package engine

import (
	"iter"
	"slices"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/food-drop/component"
)

// Outcome is the session result as seen by the player
type Outcome int

const (
	OutcomeRunning Outcome = iota
	// OutcomeWon: every good agent was fed
	OutcomeWon
	// OutcomeLost: drops and deposits ran out with good agents still hungry
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "running"
	}
}

// Over reports whether the session ended: no good agents, or nothing left to feed them with
func (g *Game) Over() bool {
	return len(g.good) == 0 || (g.dropsLeft == 0 && len(g.deposits) == 0 && !g.planeVisible)
}

func (g *Game) Outcome() Outcome {
	switch {
	case !g.Over():
		return OutcomeRunning
	case len(g.good) == 0:
		return OutcomeWon
	default:
		return OutcomeLost
	}
}

// Score may be fractional and negative
func (g *Game) Score() float64 { return g.score }
func (g *Game) DropsLeft() int { return g.dropsLeft }
func (g *Game) Frames() int64  { return g.frames }
func (g *Game) Config() Config { return g.cfg }

// Size returns the current arena extents
func (g *Game) Size() r2.Point { return g.size }

func (g *Game) Plane() *component.Unit { return g.plane }
func (g *Game) PlaneVisible() bool     { return g.planeVisible }

func (g *Game) DepositCount() int   { return len(g.deposits) }
func (g *Game) GoodAgentCount() int { return len(g.good) }
func (g *Game) BadAgentCount() int  { return len(g.bad) }

// Obstacles iterates the static obstacles
func (g *Game) Obstacles() iter.Seq[*component.Node] {
	return slices.Values(g.field.Obstacles())
}

// Deposits iterates the live food deposits
func (g *Game) Deposits() iter.Seq[*component.Node] {
	return slices.Values(g.deposits)
}

func (g *Game) BadAgents() iter.Seq[*component.Unit] {
	return slices.Values(g.bad)
}

func (g *Game) GoodAgents() iter.Seq[*component.Unit] {
	return slices.Values(g.good)
}

// Entities iterates every drawable in draw order: obstacles, deposits, good agents,
// bad agents, then the plane while it is visible
func (g *Game) Entities() iter.Seq[component.Entity] {
	return func(yield func(component.Entity) bool) {
		for _, o := range g.field.Obstacles() {
			if !yield(o) {
				return
			}
		}
		for _, d := range g.deposits {
			if !yield(d) {
				return
			}
		}
		for _, u := range g.good {
			if !yield(u) {
				return
			}
		}
		for _, u := range g.bad {
			if !yield(u) {
				return
			}
		}
		if g.planeVisible {
			yield(g.plane)
		}
	}
}
