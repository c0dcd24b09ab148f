package component

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/lixenwraith/food-drop/vmath"
)

// unitShape is the arrow outline in local space, tip at the origin facing +X
// Two triangles sharing the tip and the notch point
var unitShape = [2][3]r2.Point{
	{{X: 0, Y: 0}, {X: -1, Y: 0.5}, {X: -0.75, Y: 0}},
	{{X: 0, Y: 0}, {X: -0.75, Y: 0}, {X: -1, Y: -0.5}},
}

// UnitSpec holds the per-kind movement and carrying parameters
type UnitSpec struct {
	Speed       float64 // World units per second
	BoostFactor float64 // Effective dt multiplier while boosted
	Capacity    float64 // Food needed to be full, zero for non-carrying units
	Size        float64 // Shape length in world units
}

// DepositLocator resolves a deposit handle to its live position
type DepositLocator interface {
	DepositPosition(id ID) (r2.Point, bool)
}

// Unit is a steerable agent: good and bad agents and the delivery plane
type Unit struct {
	id   ID
	kind Kind
	spec UnitSpec

	pos       r2.Point
	targetPos r2.Point
	deposit   ID // Targeted deposit handle, zero when none

	heading       float64
	targetHeading float64

	boostRemaining float64 // Seconds
	carried        float64
}

// NewUnit creates a unit at the origin facing +X
func NewUnit(id ID, kind Kind, spec UnitSpec) *Unit {
	return &Unit{
		id:   id,
		kind: kind,
		spec: spec,
	}
}

func (u *Unit) ID() ID                   { return u.id }
func (u *Unit) Kind() Kind               { return u.kind }
func (u *Unit) Spec() UnitSpec           { return u.spec }
func (u *Unit) Position() r2.Point       { return u.pos }
func (u *Unit) TargetPosition() r2.Point { return u.targetPos }
func (u *Unit) Heading() float64         { return u.heading }
func (u *Unit) TargetHeading() float64   { return u.targetHeading }
func (u *Unit) Extent() float64          { return u.spec.Size }
func (u *Unit) Carried() float64         { return u.carried }
func (u *Unit) BoostRemaining() float64  { return u.boostRemaining }

// Place teleports the unit and makes it arrived there
func (u *Unit) Place(p r2.Point) {
	u.pos = p
	u.targetPos = p
}

// SetHeading sets both current and desired facing
func (u *Unit) SetHeading(h float64) {
	u.heading = vmath.WrapAngle(h)
	u.targetHeading = u.heading
}

// SetTargetPosition drops any deposit target and heads for p
func (u *Unit) SetTargetPosition(p r2.Point) {
	u.deposit = 0
	u.targetPos = p
}

// SetTargetDeposit targets n, or clears the deposit target when n is nil
// Clearing leaves the unit arrived at its own position so it picks a new target next frame
func (u *Unit) SetTargetDeposit(n *Node) {
	if n != nil {
		u.deposit = n.ID()
		u.targetPos = n.Position()
		return
	}
	u.deposit = 0
	u.targetPos = u.pos
}

// TargetDeposit returns the targeted deposit handle
func (u *Unit) TargetDeposit() (ID, bool) {
	return u.deposit, u.deposit != 0
}

// DepositFood stores up to the remaining capacity and returns the accepted amount
func (u *Unit) DepositFood(amount float64) float64 {
	if u.carried+amount > u.spec.Capacity {
		accepted := u.spec.Capacity - u.carried
		u.carried = u.spec.Capacity
		return accepted
	}
	u.carried += amount
	return amount
}

// ApplyBoost starts a boost of duration seconds, replacing any running boost
func (u *Unit) ApplyBoost(duration float64) {
	u.boostRemaining = duration
}

// Boosted reports whether a boost is active
func (u *Unit) Boosted() bool {
	return u.boostRemaining > vmath.Epsilon
}

// AtTarget reports whether the unit sits on its target within tolerance
func (u *Unit) AtTarget() bool {
	return vmath.PointEqual(u.pos, u.targetPos)
}

// Full reports whether carried food reached capacity
func (u *Unit) Full() bool {
	return vmath.FloatEqual(u.carried, u.spec.Capacity)
}

// Tick advances boost, movement and rotation by dt seconds
// locator may be nil for units that never target deposits
func (u *Unit) Tick(dt float64, locator DepositLocator) {
	if u.Boosted() {
		u.boostRemaining = math.Max(u.boostRemaining-dt, 0)
	}
	step := dt
	if u.Boosted() {
		step *= u.spec.BoostFactor
	}

	if u.deposit != 0 && locator != nil {
		if p, ok := locator.DepositPosition(u.deposit); ok {
			u.targetPos = p
		}
	}

	if !u.AtTarget() {
		dir := u.targetPos.Sub(u.pos)
		movement := step * u.spec.Speed
		u.targetHeading = vmath.Heading(dir)

		// Snap instead of stepping past the target
		if dir.Dot(dir) <= movement*movement {
			u.pos = u.targetPos
		} else {
			u.pos = u.pos.Add(dir.Normalize().Mul(movement))
		}
	}

	u.heading = vmath.LerpAngle(u.heading, u.targetHeading, step*2)
}

// Selects reports whether p falls inside the arrow shape enlarged by scale
func (u *Unit) Selects(p r2.Point, scale float64) bool {
	size := u.spec.Size * scale
	if size <= 0 {
		return false
	}
	local := vmath.Rotate(p.Sub(u.pos), -u.heading).Mul(1 / size)
	for _, tri := range unitShape {
		if vmath.InTriangle(local, tri[0], tri[1], tri[2]) {
			return true
		}
	}
	return false
}

// Outline returns the arrow shape in world space for drawing
func (u *Unit) Outline() [2][3]r2.Point {
	var out [2][3]r2.Point
	for i, tri := range unitShape {
		for j, v := range tri {
			out[i][j] = u.pos.Add(vmath.Rotate(v.Mul(u.spec.Size), u.heading))
		}
	}
	return out
}
