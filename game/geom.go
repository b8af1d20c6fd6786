package game

import "math"

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// FallbackDir is used whenever a direction would have zero length
var FallbackDir = Vec2{X: 1, Y: 0}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the length of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the distance between two points
func (v Vec2) DistanceTo(o Vec2) float64 {
	return o.Sub(v).Len()
}

// NormalizeOr returns v scaled to unit length, or fallback if v has zero length
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		return fallback
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle returns the heading of v in radians
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Within reports whether o lies inside the circle of radius r around v (edge inclusive)
func (v Vec2) Within(o Vec2, r float64) bool {
	d := o.Sub(v)
	return d.X*d.X+d.Y*d.Y <= r*r
}

// Bounds is an axis-aligned rectangle anchored at the origin
type Bounds struct {
	Width, Height float64
}

// Contains reports whether p lies inside the bounds grown by margin on every side
func (b Bounds) Contains(p Vec2, margin float64) bool {
	return p.X >= -margin && p.X <= b.Width+margin &&
		p.Y >= -margin && p.Y <= b.Height+margin
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
