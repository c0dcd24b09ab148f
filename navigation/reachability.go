package navigation

import (
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/food-drop/component"
	"github.com/lixenwraith/food-drop/vmath"
)

// Field answers straight-line reachability queries against the arena bounds
// and the obstacle set. Obstacles are inflated by clearance so an agent body
// does not clip them
type Field struct {
	bounds    r2.Rect
	obstacles []*component.Node
	clearance float64
}

// NewField creates a field for an arena of width x height centered on the origin
func NewField(width, height, clearance float64) *Field {
	f := &Field{clearance: clearance}
	f.Resize(width, height)
	return f
}

// Resize updates the arena extents, obstacles are kept
func (f *Field) Resize(width, height float64) {
	f.bounds = r2.RectFromCenterSize(r2.Point{}, r2.Point{X: width, Y: height})
}

// AddObstacle registers a static obstacle
func (f *Field) AddObstacle(n *component.Node) {
	f.obstacles = append(f.obstacles, n)
}

// Obstacles returns the registered obstacles in insertion order
func (f *Field) Obstacles() []*component.Node {
	return f.obstacles
}

// Bounds returns the arena rectangle
func (f *Field) Bounds() r2.Rect {
	return f.bounds
}

// Clearance returns the obstacle inflation distance
func (f *Field) Clearance() float64 {
	return f.clearance
}

// WithinBounds reports whether p lies inside the arena, edges included
func (f *Field) WithinBounds(p r2.Point) bool {
	return f.bounds.ContainsPoint(p)
}

// Traversable reports whether an agent may stand at p
func (f *Field) Traversable(p r2.Point) bool {
	if !f.WithinBounds(p) {
		return false
	}
	for _, o := range f.obstacles {
		if vmath.Distance(p, o.Position()) < o.Radius()+f.clearance {
			return false
		}
	}
	return true
}

// CanReach reports whether an agent at from can walk straight to to within reach
//
// A destination outside the arena is rejected unless from is outside too, so
// agents left outside by a resize can still walk back in
func (f *Field) CanReach(from, to r2.Point, reach float64) bool {
	if !f.WithinBounds(to) && f.WithinBounds(from) {
		return false
	}

	dir := to.Sub(from)
	dist := dir.Norm()
	if dist > reach {
		return false
	}

	for _, o := range f.obstacles {
		center := o.Position()
		minRadius := o.Radius() + f.clearance
		minRadiusSq := minRadius * minRadius

		// Closest approach of the segment interior
		if dist > 0 {
			scalar, at := vmath.Project(from, dir, center.Sub(from))
			if scalar > 0 && scalar < dist && vmath.DistanceSq(center, at) < minRadiusSq {
				return false
			}
		}

		if vmath.DistanceSq(center, to) < minRadiusSq {
			return false
		}
	}
	return true
}
