package component

import "github.com/golang/geo/r2"

// ID is a stable per-entity identifier, assigned once and never reused
// Zero means "no entity"
type ID uint32

// IDAllocator hands out sequential IDs starting at 1
type IDAllocator struct {
	last ID
}

// Next returns a fresh ID
func (a *IDAllocator) Next() ID {
	a.last++
	return a.last
}

// Kind is the closed set of entity variants
type Kind uint8

const (
	KindObstacle Kind = iota
	KindDeposit
	KindGoodAgent
	KindBadAgent
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindDeposit:
		return "deposit"
	case KindGoodAgent:
		return "good"
	case KindBadAgent:
		return "bad"
	case KindPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// IsAgent reports whether the kind is a roaming agent
func (k Kind) IsAgent() bool {
	return k == KindGoodAgent || k == KindBadAgent
}

// Entity is the positionable, selectable, drawable capability shared by nodes and units
type Entity interface {
	ID() ID
	Kind() Kind
	Position() r2.Point
	// Heading is the facing angle, zero for nodes
	Heading() float64
	// Extent is the radius for nodes and the shape length for units
	Extent() float64
	// Selects reports whether p falls in the enlarged click region
	Selects(p r2.Point, scale float64) bool
}
