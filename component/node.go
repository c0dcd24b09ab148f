package component

import (
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/food-drop/vmath"
)

// Node is a circular resource node: a food deposit that rots and shrinks,
// or a static obstacle with no amount
type Node struct {
	id   ID
	kind Kind
	pos  r2.Point

	radius     float64
	initRadius float64

	amount     float64
	initAmount float64
	decayRate  float64 // Amount lost per second
}

// NewDeposit creates a depletable deposit
func NewDeposit(id ID, pos r2.Point, radius, amount, decayRate float64) *Node {
	return &Node{
		id:         id,
		kind:       KindDeposit,
		pos:        pos,
		radius:     radius,
		initRadius: radius,
		amount:     amount,
		initAmount: amount,
		decayRate:  decayRate,
	}
}

// NewObstacle creates a static obstacle, amount and decay are zero
func NewObstacle(id ID, pos r2.Point, radius float64) *Node {
	return &Node{
		id:         id,
		kind:       KindObstacle,
		pos:        pos,
		radius:     radius,
		initRadius: radius,
	}
}

func (n *Node) ID() ID                 { return n.id }
func (n *Node) Kind() Kind             { return n.kind }
func (n *Node) Position() r2.Point     { return n.pos }
func (n *Node) Heading() float64       { return 0 }
func (n *Node) Extent() float64        { return n.radius }
func (n *Node) Radius() float64        { return n.radius }
func (n *Node) InitialRadius() float64 { return n.initRadius }
func (n *Node) Amount() float64        { return n.amount }
func (n *Node) InitialAmount() float64 { return n.initAmount }
func (n *Node) DecayRate() float64     { return n.decayRate }

// Give adds amount with no upper bound; used to return what an agent could not hold
func (n *Node) Give(amount float64) {
	n.amount += amount
}

// Take removes up to amount and returns what was actually removed
func (n *Node) Take(amount float64) float64 {
	if amount > n.amount {
		taken := n.amount
		n.amount = 0
		return taken
	}
	n.amount -= amount
	return amount
}

// Tick applies passive decay and rescales the radius to the remaining amount
func (n *Node) Tick(dt float64) {
	n.Take(dt * n.decayRate)
	if n.initAmount > 0 {
		n.radius = n.initRadius * (n.amount / n.initAmount)
	}
}

// Depleted reports whether the amount is within tolerance of zero
func (n *Node) Depleted() bool {
	return vmath.FloatEqual(n.amount, 0)
}

// Selects reports whether p is inside the disc enlarged by scale
func (n *Node) Selects(p r2.Point, scale float64) bool {
	r := n.radius * scale
	return vmath.DistanceSq(n.pos, p) <= r*r
}
