package ai

import "github.com/udisondev/nightveil/internal/geom"

// LayerMask selects obstacle layers for line-of-sight queries.
type LayerMask uint32

// LayerAll matches every obstacle layer.
const LayerAll LayerMask = ^LayerMask(0)

// Navigator is the move service driving an enemy body.
// Pathfinding itself happens behind this interface.
type Navigator interface {
	SetDestination(pos geom.Vec3)
	Stop()
	Resume()
	SetSpeed(v float64)
	Warp(pos geom.Vec3)
	RemainingDistanceBelow(threshold float64) bool
	PathPending() bool
	IsOnWalkableSurface() bool
	SampleNearestWalkable(pos geom.Vec3, maxRadius float64) (geom.Vec3, bool)

	Position() geom.Vec3
	Forward() geom.Vec3
	Velocity() geom.Vec3
	ClearVelocity()
	LookAt(pos geom.Vec3)
}

// LineOfSight answers obstacle queries between two points.
type LineOfSight interface {
	IsObstructed(from, to geom.Vec3, mask LayerMask) bool
}

// Target is the tracked player.
type Target interface {
	Position() geom.Vec3
	Forward() geom.Vec3
	SetFacing(r geom.Rotation)
}

// StealthSource exposes whether the target is currently undetectable.
// *mask.Controller satisfies it.
type StealthSource interface {
	IsActive() bool
}

// Anim is the locomotion animation an enemy should play.
type Anim int32

const (
	AnimIdle Anim = iota
	AnimWalk
	AnimChase
)

// String returns human-readable animation name
func (a Anim) String() string {
	switch a {
	case AnimIdle:
		return "IDLE"
	case AnimWalk:
		return "WALK"
	case AnimChase:
		return "CHASE"
	default:
		return "UNKNOWN"
	}
}

// Effects receives fire-and-forget side effects (audio, UI, animation).
type Effects interface {
	AlertShown()
	AlertHidden()
	Footstep()
	JumpscareShown()
	JumpscareHidden()
	Animation(a Anim)
}

// CatchFunc is invoked once when a capture starts.
// Injected by the world to apply contact damage without an import cycle.
type CatchFunc func(target Target, damage int)

// KillFunc is invoked when a stalker reaches an unmasked target.
type KillFunc func(target Target)

// nopEffects is used when no sink is supplied.
type nopEffects struct{}

func (nopEffects) AlertShown()      {}
func (nopEffects) AlertHidden()     {}
func (nopEffects) Footstep()        {}
func (nopEffects) JumpscareShown()  {}
func (nopEffects) JumpscareHidden() {}
func (nopEffects) Animation(Anim)   {}
