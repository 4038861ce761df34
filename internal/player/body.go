package player

import (
	"github.com/udisondev/nightveil/internal/geom"
)

// Body is the player's position and look direction.
// When driven as a ticker it walks a looping route.
type Body struct {
	pos    geom.Vec3
	facing geom.Rotation

	route []geom.Vec3
	next  int
	speed float64
}

// NewBody creates a body at pos facing along +Z.
func NewBody(pos geom.Vec3) *Body {
	return &Body{pos: pos}
}

// Position returns the feet position.
func (b *Body) Position() geom.Vec3 { return b.pos }

// Forward returns the unit look direction.
func (b *Body) Forward() geom.Vec3 { return b.facing.Forward() }

// Facing returns the look rotation.
func (b *Body) Facing() geom.Rotation { return b.facing }

// SetFacing turns the player. Used by the chaser's capture.
func (b *Body) SetFacing(r geom.Rotation) { b.facing = r }

// Teleport moves the body without walking.
func (b *Body) Teleport(pos geom.Vec3) { b.pos = pos }

// SetRoute makes Tick walk the points in order, looping, at speed.
// An empty route or a non-positive speed leaves the body standing.
func (b *Body) SetRoute(points []geom.Vec3, speed float64) {
	b.route = append([]geom.Vec3(nil), points...)
	b.next = 0
	b.speed = speed
}

// Tick walks toward the next route point and looks where it is going.
func (b *Body) Tick(dt float64) {
	if len(b.route) == 0 || !(b.speed > 0) || !(dt > 0) {
		return
	}

	goal := b.route[b.next]
	if dir := goal.Sub(b.pos).Flat(); !dir.IsZero() {
		b.facing = geom.LookRotation(dir)
	}

	b.pos = geom.MoveTowards(b.pos, goal, b.speed*dt)
	if b.pos == goal {
		b.next = (b.next + 1) % len(b.route)
	}
}
