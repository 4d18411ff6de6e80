// pkg/geom/vec.go
package geom

import "math"

// Vec2 is a point or displacement in tile coordinates.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// MoveToward moves from towards to by at most step. It reports the new
// point, the part of step left over after reaching to, and whether to was
// reached. The point never overshoots to.
func MoveToward(from, to Vec2, step float64) (Vec2, float64, bool) {
	d := Dist(from, to)
	if step >= d {
		return to, step - d, true
	}
	return from.Add(to.Sub(from).Scale(step / d)), 0, false
}
