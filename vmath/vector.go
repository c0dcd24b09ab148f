package vmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// Heading returns the angle of v in (-π, π]
func Heading(v r2.Point) float64 {
	return math.Atan2(v.Y, v.X)
}

// DistanceSq returns squared distance between a and b without sqrt
func DistanceSq(a, b r2.Point) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// Distance returns Euclidean distance between a and b
func Distance(a, b r2.Point) float64 {
	return b.Sub(a).Norm()
}

// PointEqual reports whether both axes are within Epsilon
func PointEqual(a, b r2.Point) bool {
	return FloatEqual(a.X, b.X) && FloatEqual(a.Y, b.Y)
}

// Rotate rotates v counter-clockwise by angle radians
func Rotate(v r2.Point, angle float64) r2.Point {
	sin, cos := math.Sincos(angle)
	return r2.Point{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Project returns the scalar projection of v onto dir and the projected point
// along dir starting at origin; dir must be non-zero
func Project(origin, dir, v r2.Point) (scalar float64, at r2.Point) {
	length := dir.Norm()
	scalar = dir.Dot(v) / length
	return scalar, origin.Add(dir.Mul(scalar / length))
}

// InTriangle reports whether p lies inside or on triangle abc, any winding
func InTriangle(p, a, b, c r2.Point) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// RandomInSquare returns a uniform point in the axis-aligned square of
// half-extent half centered on center
func RandomInSquare(rng *FastRand, center r2.Point, half float64) r2.Point {
	return center.Add(r2.Point{X: rng.Symmetric(), Y: rng.Symmetric()}.Mul(half))
}

// RandomInRect returns a uniform point in the rectangle of the given size
// centered on the origin
func RandomInRect(rng *FastRand, size r2.Point) r2.Point {
	return r2.Point{X: size.X * rng.Centered(), Y: size.Y * rng.Centered()}
}

// ScreenToArena converts window coordinates (origin top-left, y down) into
// arena coordinates (origin center, y up)
func ScreenToArena(screen, size r2.Point) r2.Point {
	return r2.Point{X: screen.X - size.X/2, Y: size.Y/2 - screen.Y}
}

// ArenaToScreen is the inverse of ScreenToArena
func ArenaToScreen(p, size r2.Point) r2.Point {
	return r2.Point{X: p.X + size.X/2, Y: size.Y/2 - p.Y}
}
