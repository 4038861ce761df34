package sim

import (
	"github.com/udisondev/nightveil/internal/geom"
)

// Agent is a kinematic enemy body. It walks straight at its destination;
// route planning around walls is out of scope here.
// Satisfies ai.Navigator and ai.Body.
type Agent struct {
	grid *Grid

	pos      geom.Vec3
	rot      geom.Rotation
	velocity geom.Vec3

	dest    geom.Vec3
	hasDest bool
	speed   float64
	stopped bool
}

// NewAgent creates an agent at pos. grid may be nil (everything walkable).
func NewAgent(grid *Grid, pos geom.Vec3) *Agent {
	return &Agent{grid: grid, pos: pos}
}

func (a *Agent) SetDestination(pos geom.Vec3) {
	a.dest = pos
	a.hasDest = true
}

func (a *Agent) Stop()              { a.stopped = true }
func (a *Agent) Resume()            { a.stopped = false }
func (a *Agent) SetSpeed(v float64) { a.speed = v }
func (a *Agent) IsStopped() bool    { return a.stopped }
func (a *Agent) Speed() float64     { return a.speed }

// Warp teleports and drops the current destination.
func (a *Agent) Warp(pos geom.Vec3) {
	a.pos = pos
	a.hasDest = false
	a.velocity = geom.Vec3{}
}

// RemainingDistanceBelow is true with no destination, like an agent without a path.
func (a *Agent) RemainingDistanceBelow(threshold float64) bool {
	if !a.hasDest {
		return true
	}
	return geom.Distance(a.pos, a.dest) < threshold
}

// PathPending is always false: straight-line paths are immediate.
func (a *Agent) PathPending() bool { return false }

func (a *Agent) IsOnWalkableSurface() bool {
	if a.grid == nil {
		return true
	}
	return a.grid.IsWalkable(a.pos)
}

func (a *Agent) SampleNearestWalkable(pos geom.Vec3, maxRadius float64) (geom.Vec3, bool) {
	if a.grid == nil {
		return pos, true
	}
	return a.grid.NearestWalkable(pos, maxRadius)
}

func (a *Agent) Position() geom.Vec3         { return a.pos }
func (a *Agent) Forward() geom.Vec3          { return a.rot.Forward() }
func (a *Agent) Velocity() geom.Vec3         { return a.velocity }
func (a *Agent) ClearVelocity()              { a.velocity = geom.Vec3{} }
func (a *Agent) Rotation() geom.Rotation     { return a.rot }
func (a *Agent) SetRotation(r geom.Rotation) { a.rot = r }

// LookAt turns on the horizontal plane toward pos.
func (a *Agent) LookAt(pos geom.Vec3) {
	if dir := pos.Sub(a.pos).Flat(); !dir.IsZero() {
		a.rot = geom.LookRotation(dir)
	}
}

// Tick moves toward the destination at the current speed.
func (a *Agent) Tick(dt float64) {
	if a.stopped || !a.hasDest || !(dt > 0) || !(a.speed > 0) {
		a.velocity = geom.Vec3{}
		return
	}

	next := geom.MoveTowards(a.pos, a.dest, a.speed*dt)
	a.velocity = next.Sub(a.pos).Scale(1 / dt)
	a.LookAt(a.dest)
	a.pos = next
}
