// Package geom provides the float32 screen-space primitives the rest of the
// toolkit is built on: positions, vectors and rectangles. Coordinates are in
// logical points, y growing downwards.
package geom

import "math"

type Pos2 struct {
	X, Y float32
}

type Vec2 struct {
	X, Y float32
}

func (p Pos2) Add(v Vec2) Pos2 { return Pos2{p.X + v.X, p.Y + v.Y} }
func (p Pos2) Sub(q Pos2) Vec2 { return Vec2{p.X - q.X, p.Y - q.Y} }

func (p Pos2) Distance(q Pos2) float32 {
	return p.Sub(q).Length()
}

func (v Vec2) Add(w Vec2) Vec2      { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2      { return Vec2{v.X - w.X, v.Y - w.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Lerp interpolates between a and b. t outside [0,1] extrapolates.
func Lerp(a, b, t float32) float32 { return a + (b-a)*t }

func LerpPos(a, b Pos2, t float32) Pos2 {
	return Pos2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

func Clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// Rect is an axis-aligned rectangle from Min (top-left) to Max (bottom-right).
type Rect struct {
	Min, Max Pos2
}

// Nothing is the empty sentinel: a rectangle that contains no point and acts
// as the identity for Union. Comparable with ==.
func Nothing() Rect {
	inf := float32(math.Inf(1))
	return Rect{Min: Pos2{inf, inf}, Max: Pos2{-inf, -inf}}
}

func (r Rect) IsNothing() bool { return r == Nothing() }

func RectFromMinSize(min Pos2, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

func RectFromMinMax(min, max Pos2) Rect {
	return Rect{Min: min, Max: max}
}

func RectFromCenterSize(center Pos2, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.Add(half.Scale(-1)), Max: center.Add(half)}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec2      { return Vec2{r.Width(), r.Height()} }

func (r Rect) Left() float32   { return r.Min.X }
func (r Rect) Right() float32  { return r.Max.X }
func (r Rect) Top() float32    { return r.Min.Y }
func (r Rect) Bottom() float32 { return r.Max.Y }

func (r Rect) Center() Pos2 {
	return Pos2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Contains(p Pos2) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: Pos2{max(r.Min.X, o.Min.X), max(r.Min.Y, o.Min.Y)},
		Max: Pos2{min(r.Max.X, o.Max.X), min(r.Max.Y, o.Max.Y)},
	}
}

func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Pos2{min(r.Min.X, o.Min.X), min(r.Min.Y, o.Min.Y)},
		Max: Pos2{max(r.Max.X, o.Max.X), max(r.Max.Y, o.Max.Y)},
	}
}

// Expand grows the rectangle by d on all sides. Negative d shrinks it.
func (r Rect) Expand(d float32) Rect {
	return r.Expand2(Vec2{d, d})
}

func (r Rect) Expand2(d Vec2) Rect {
	return Rect{
		Min: Pos2{r.Min.X - d.X, r.Min.Y - d.Y},
		Max: Pos2{r.Max.X + d.X, r.Max.Y + d.Y},
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}
