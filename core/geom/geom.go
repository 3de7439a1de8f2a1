// Package geom holds the small amount of screen-space geometry shared by the
// editor core and its render surfaces. Everything is float64 so camera scaling
// in a surface never truncates positions handed back to the core.
package geom

import "math"

// Vec2 is a point or an offset in editor space.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Neg() Vec2       { return Vec2{-v.X, -v.Y} }

// Dist returns the euclidean distance to o.
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// IsZero reports whether the vector is exactly the origin.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned rectangle with Min <= Max on both axes.
type Rect struct {
	Min, Max Vec2
}

// R builds a normalized rectangle from any two corners.
func R(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

// RectXYWH builds a rectangle from an origin and a (non-negative) size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{x, y}, Max: Vec2{x + w, y + h}}
}

func (r Rect) W() float64   { return r.Max.X - r.Min.X }
func (r Rect) H() float64   { return r.Max.Y - r.Min.Y }
func (r Rect) Center() Vec2 { return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2} }

// Contains reports whether p lies inside r. Edges count as inside, matching
// how pointer hit-tests behave on exact pixel boundaries.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and o overlap. Touching edges intersect, so a
// box selection that merely grazes a node still picks it up.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Translate returns r shifted by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Expand grows the rectangle by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{Min: Vec2{r.Min.X - m, r.Min.Y - m}, Max: Vec2{r.Max.X + m, r.Max.Y + m}}
}
