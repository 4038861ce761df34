package ai

import (
	"log/slog"

	"github.com/udisondev/nightveil/internal/geom"
)

// OnContact handles the collision system reporting that target touched the
// chaser. Starts the capture sequence unless one is already running or the
// tracked target is masked.
func (c *Chaser) OnContact(target Target) {
	if !c.isRunning.Load() || c.nav == nil || target == nil {
		return
	}

	if _, ok := c.state.(*Capturing); ok {
		return
	}

	if c.targetStealthed() {
		return
	}

	c.startCapture(target)
}

func (c *Chaser) startCapture(target Target) {
	c.hideAlert()
	c.setState(&Capturing{})
	c.captured = target

	c.nav.Stop()
	c.nav.ClearVelocity()
	c.setAnim(AnimIdle)

	if c.cfg.Disorient {
		c.disorient(target)
	}

	c.fx.JumpscareShown()

	if c.catchFunc != nil {
		c.catchFunc(target, c.cfg.ContactDamage)
	}

	slog.Info("chaser captured target",
		"objectID", c.objectID,
		"position", c.nav.Position(),
		"damage", c.cfg.ContactDamage)
}

// disorient appears right in front of the target and turns the target to
// face the chaser. Runs in the same tick the capture starts.
func (c *Chaser) disorient(target Target) {
	tp := target.Position()
	front := tp.Add(target.Forward().Scale(c.cfg.FrontDistance))

	dest := tp
	if p, ok := c.nav.SampleNearestWalkable(front, c.cfg.FrontSampleRadius); ok {
		dest = p
	}

	c.nav.Warp(dest)
	c.nav.LookAt(tp)

	face := c.nav.Position().Add(geom.Up.Scale(c.cfg.FaceHeight))
	target.SetFacing(geom.LookRotation(face.Sub(tp)))
}

func (c *Chaser) tickCapture(s *Capturing, dt float64) {
	s.Elapsed += dt
	if !reached(s.Elapsed, c.cfg.CaptureDuration) {
		return
	}

	c.fx.JumpscareHidden()
	c.retreat()
	c.beginBlindness()
}

// retreat teleports to the waypoint farthest from the captured target.
func (c *Chaser) retreat() {
	if c.route.Len() == 0 || c.captured == nil {
		return
	}

	idx := c.route.Farthest(c.captured.Position())
	dest := c.route.Point(idx)
	if p, ok := c.nav.SampleNearestWalkable(dest, c.cfg.RetreatSampleRadius); ok {
		dest = p
	}

	c.nav.Warp(dest)

	if IsDebugEnabled() {
		slog.Debug("chaser retreated",
			"objectID", c.objectID,
			"waypoint", idx,
			"position", dest)
	}
}

// beginBlindness ends the capture: senses go dark for BlindnessDuration
// while the chaser walks off to another waypoint.
func (c *Chaser) beginBlindness() {
	c.captured = nil
	c.blindRemaining = c.cfg.BlindnessDuration

	c.setState(&Patrol{WaypointIndex: c.waypoint})
	c.resumePatrol()
	c.goToNextWaypoint()

	if IsDebugEnabled() {
		slog.Debug("chaser blinded",
			"objectID", c.objectID,
			"duration", c.cfg.BlindnessDuration)
	}
}
