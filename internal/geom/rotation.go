package geom

import "math"

// Rotation is a look orientation: Yaw around the up axis (0 faces +Z,
// 90 faces +X) and Pitch above the horizon, both in degrees.
type Rotation struct {
	Yaw   float64
	Pitch float64
}

// LookRotation returns the rotation that faces along dir.
// A zero dir yields the identity rotation.
func LookRotation(dir Vec3) Rotation {
	if dir.IsZero() {
		return Rotation{}
	}
	return Rotation{
		Yaw:   math.Atan2(dir.X, dir.Z) * radToDeg,
		Pitch: math.Atan2(dir.Y, math.Hypot(dir.X, dir.Z)) * radToDeg,
	}
}

// Forward returns the unit vector the rotation faces.
func (r Rotation) Forward() Vec3 {
	yaw := r.Yaw * degToRad
	pitch := r.Pitch * degToRad
	cp := math.Cos(pitch)
	return Vec3{
		X: math.Sin(yaw) * cp,
		Y: math.Sin(pitch),
		Z: math.Cos(yaw) * cp,
	}
}

// Slerp turns from a toward b by fraction t (clamped to 0..1), taking
// the short way around for yaw.
func Slerp(a, b Rotation, t float64) Rotation {
	t = math.Max(0, math.Min(1, t))
	return Rotation{
		Yaw:   wrapDeg(a.Yaw + wrapDeg(b.Yaw-a.Yaw)*t),
		Pitch: a.Pitch + (b.Pitch-a.Pitch)*t,
	}
}

// wrapDeg wraps an angle to (-180, 180].
func wrapDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}
