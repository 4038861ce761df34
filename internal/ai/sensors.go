package ai

import (
	"log/slog"

	"github.com/udisondev/nightveil/internal/geom"
)

// HearingRadius returns the effective hearing radius (0 while blind).
func (c *Chaser) HearingRadius() float64 {
	if c.IsBlind() {
		return 0
	}
	return c.cfg.Sensors.HearingRadius
}

// VisionRadius returns the effective vision radius (0 while blind).
func (c *Chaser) VisionRadius() float64 {
	if c.IsBlind() {
		return 0
	}
	return c.cfg.Sensors.VisionRadius
}

// detect combines both senses. Callers check the target and stealth first.
func (c *Chaser) detect() bool {
	return c.canHear() || c.canSee()
}

// canHear is omnidirectional and ignores obstacles.
func (c *Chaser) canHear() bool {
	return c.distanceToTarget() < c.HearingRadius()
}

// canSee requires range, the view cone and a clear line between eye and target.
func (c *Chaser) canSee() bool {
	radius := c.VisionRadius()
	if radius <= 0 {
		return false
	}

	self := c.nav.Position()
	tgt := c.target.Position()

	if geom.Distance(self, tgt) > radius {
		return false
	}

	if geom.AngleDeg(c.nav.Forward(), tgt.Sub(self)) > c.cfg.Sensors.VisionHalfAngleDegrees {
		return false
	}

	// No obstacle data, assume clear LOS
	if c.los == nil {
		return true
	}

	eye := self.Add(geom.Up.Scale(c.cfg.Sensors.EyeHeightOffset))
	aim := tgt.Add(geom.Up.Scale(c.cfg.Sensors.TargetHeightOffset))
	return !c.los.IsObstructed(eye, aim, c.cfg.Sensors.ObstacleMask)
}

func (c *Chaser) tickBlindness(dt float64) {
	if c.blindRemaining <= 0 {
		return
	}

	c.blindRemaining -= dt
	if expired(c.blindRemaining) {
		c.blindRemaining = 0
		if IsDebugEnabled() {
			slog.Debug("chaser senses restored", "objectID", c.objectID)
		}
	}
}
