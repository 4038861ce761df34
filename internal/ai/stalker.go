package ai

import (
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/udisondev/nightveil/internal/geom"
)

// Body is a teleporting enemy body without navigation.
type Body interface {
	Position() geom.Vec3
	Warp(pos geom.Vec3)
	Rotation() geom.Rotation
	SetRotation(r geom.Rotation)
}

// Watcher reports whether the player is currently looking at a position.
type Watcher interface {
	IsWatched(pos geom.Vec3) bool
}

// Stalker implements AI for the enemy that only moves while unobserved.
// It jumps toward the target the moment the player looks away, creeps on a
// timer while the player is masked, and kills on reach.
type Stalker struct {
	objectID  uint32
	cfg       StalkerConfig
	isRunning atomic.Bool

	body    Body
	watcher Watcher
	target  Target
	stealth StealthSource

	killFunc KillFunc

	maskedTimer float64
	wasWatched  bool
	killed      bool
}

// NewStalker creates a stalker. A missing watcher counts as "always watched",
// so only the masked creep moves it.
func NewStalker(objectID uint32, cfg StalkerConfig, body Body, watcher Watcher) *Stalker {
	return &Stalker{
		objectID:   objectID,
		cfg:        cfg,
		body:       body,
		watcher:    watcher,
		wasWatched: true,
	}
}

// SetTarget sets the tracked player and its stealth source.
func (s *Stalker) SetTarget(target Target, stealth StealthSource) {
	s.target = target
	s.stealth = stealth
}

// SetKillFunc sets the reach callback.
func (s *Stalker) SetKillFunc(fn KillFunc) {
	s.killFunc = fn
}

// ObjectID returns the stalker's identifier.
func (s *Stalker) ObjectID() uint32 { return s.objectID }

// Start starts AI controller
func (s *Stalker) Start() {
	s.isRunning.Store(true)
	s.wasWatched = true
	s.maskedTimer = 0
	s.killed = false
}

// Stop stops AI controller
func (s *Stalker) Stop() {
	s.isRunning.Store(false)
}

// Tick performs one simulation step of dt seconds.
func (s *Stalker) Tick(dt float64) {
	if !s.isRunning.Load() || s.body == nil || s.target == nil {
		return
	}

	dt = sanitizeDelta(dt)

	pos := s.body.Position()
	dist := geom.Distance(pos, s.target.Position())
	masked := s.stealth != nil && s.stealth.IsActive()

	if dist <= s.cfg.KillRange && !masked {
		s.kill()
		return
	}

	inRange := dist < s.cfg.DetectionRange
	if inRange {
		s.facePlayer(dt)
	}

	watched := s.isWatched(pos)

	if inRange {
		if !masked {
			s.maskedTimer = 0
			if !watched && s.wasWatched {
				s.jump(dist)
			}
		} else {
			s.maskedTimer += dt
			if reached(s.maskedTimer, s.cfg.MaskedJumpInterval) {
				s.jump(dist)
				s.maskedTimer = 0
			}
		}
	}

	s.wasWatched = watched
}

func (s *Stalker) isWatched(pos geom.Vec3) bool {
	if s.watcher == nil {
		return true
	}
	return s.watcher.IsWatched(pos)
}

// kill fires the reach callback once per Start.
func (s *Stalker) kill() {
	if s.killed {
		return
	}
	s.killed = true

	slog.Info("stalker reached target", "objectID", s.objectID)

	if s.killFunc != nil {
		s.killFunc(s.target)
	}
}

// facePlayer turns toward the target on the horizontal plane.
func (s *Stalker) facePlayer(dt float64) {
	dir := s.target.Position().Sub(s.body.Position()).Flat()
	if dir.IsZero() {
		return
	}

	want := geom.LookRotation(dir)
	s.body.SetRotation(geom.Slerp(s.body.Rotation(), want, dt*s.cfg.RotationSpeed))
}

// jump teleports toward the target, stopping StopDistance short.
func (s *Stalker) jump(dist float64) {
	if dist <= s.cfg.StopDistance {
		return
	}

	step := math.Min(s.cfg.JumpDistance, dist-s.cfg.StopDistance)
	pos := s.body.Position()
	dir := s.target.Position().Sub(pos).Normalized()
	dest := pos.Add(dir.Scale(step))

	s.body.Warp(dest)

	if IsDebugEnabled() {
		slog.Debug("stalker jumped",
			"objectID", s.objectID,
			"step", step,
			"position", dest)
	}
}
