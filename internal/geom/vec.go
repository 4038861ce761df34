package geom

import "math"

// Vec3 is a point or direction in world space. Y is up.
// Value type, passed by value.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Up is the world up axis.
var Up = Vec3{Y: 1}

// V is shorthand for Vec3{x, y, z}.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LenSquared returns squared length (no sqrt).
func (v Vec3) LenSquared() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSquared())
}

// Normalized returns the unit vector in v's direction, or the zero vector
// when v is too short to have a direction.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l < epsilon {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 {
	v.Y = 0
	return v
}

// IsZero reports whether v is shorter than epsilon.
func (v Vec3) IsZero() bool {
	return v.LenSquared() < epsilon*epsilon
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// MoveTowards steps from cur toward target by at most maxStep and never overshoots.
func MoveTowards(cur, target Vec3, maxStep float64) Vec3 {
	delta := target.Sub(cur)
	dist := delta.Len()
	if dist <= maxStep || dist < epsilon {
		return target
	}
	return cur.Add(delta.Scale(maxStep / dist))
}

// AngleDeg returns the unsigned angle between a and b in degrees (0..180).
// Zero-length inputs yield 0.
func AngleDeg(a, b Vec3) float64 {
	denom := math.Sqrt(a.LenSquared() * b.LenSquared())
	if denom < epsilon*epsilon {
		return 0
	}
	cos := a.Dot(b) / denom
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * radToDeg
}

const (
	epsilon  = 1e-9
	radToDeg = 180 / math.Pi
	degToRad = math.Pi / 180
)
