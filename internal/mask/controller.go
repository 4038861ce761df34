package mask

import (
	"log/slog"
	"math"
)

// epsilon absorbs rounding drift from summing tick deltas such as 0.1.
const epsilon = 1e-9

// Sink receives mask side effects. Calls are fire-and-forget.
type Sink interface {
	// MaskAnimating fires when a put-on (on=true) or take-off animation starts.
	MaskAnimating(on bool)
	// MaskVisible shows or hides the mask visual.
	MaskVisible(visible bool)
}

// State is a consistent copy of the controller taken between ticks.
type State struct {
	Charge              float64
	Active              bool
	Transitioning       bool
	EmptySinceDepletion bool
}

// Controller owns a depletable stealth charge.
// Not safe for concurrent use: Tick, RequestToggle and the readers must all
// run on the simulation tick goroutine.
type Controller struct {
	cfg  Config
	sink Sink

	charge        float64
	active        bool
	transitioning bool
	transitionAt  float64 // elapsed seconds of the in-flight transition

	emptySinceDepletion bool

	// regenArmed gates regeneration. Set by depletion (and by manual take-off
	// under ManualDeactivationDelay), cleared when the charge is full again.
	regenArmed bool
	regenWait  float64 // remaining delay before regen starts
}

// NewController creates a controller with a full charge. sink may be nil.
func NewController(cfg Config, sink Sink) *Controller {
	return &Controller{
		cfg:    cfg,
		sink:   sink,
		charge: cfg.MaxCharge,
	}
}

// IsActive reports whether stealth is engaged.
func (c *Controller) IsActive() bool { return c.active }

// IsTransitioning reports whether an animation is in flight.
func (c *Controller) IsTransitioning() bool { return c.transitioning }

// Charge returns the current reserve.
func (c *Controller) Charge() float64 { return c.charge }

// MaxCharge returns the capacity.
func (c *Controller) MaxCharge() float64 { return c.cfg.MaxCharge }

// EmptySinceDepletion reports whether the charge hit zero and has not yet
// regenerated to full.
func (c *Controller) EmptySinceDepletion() bool { return c.emptySinceDepletion }

// Snapshot returns a copy of the observable state.
func (c *Controller) Snapshot() State {
	return State{
		Charge:              c.charge,
		Active:              c.active,
		Transitioning:       c.transitioning,
		EmptySinceDepletion: c.emptySinceDepletion,
	}
}

// RequestToggle puts the mask on or takes it off.
// Ignored while a transition is in flight, and when putting on an empty mask.
func (c *Controller) RequestToggle() {
	if c.transitioning {
		slog.Debug("mask toggle ignored", "reason", "transitioning")
		return
	}

	if !c.active && c.charge <= 0 {
		slog.Debug("mask toggle ignored", "reason", "empty")
		return
	}

	if c.active {
		c.beginTransition(false)
		if c.cfg.ManualDeactivationDelay && c.charge < c.cfg.MaxCharge {
			c.armRegen()
		}
		return
	}

	c.beginTransition(true)
}

// Tick advances timers, drains or regenerates charge. Runs every frame,
// including mid-transition.
func (c *Controller) Tick(dt float64) {
	if !(dt > 0) {
		dt = 0
	}

	if c.transitioning {
		c.transitionAt += dt
		if c.transitionAt+epsilon >= c.cfg.TransitionDuration {
			c.commitTransition()
		}
	}

	if c.active {
		c.drain(dt)
		return
	}

	c.regen(dt)
}

func (c *Controller) drain(dt float64) {
	c.charge -= c.cfg.DrainRate * dt
	if c.charge > epsilon {
		return
	}

	c.charge = 0
	c.emptySinceDepletion = true
	c.armRegen()

	// Depletion pre-empts an unfinished put-on animation.
	c.beginTransition(false)

	slog.Debug("mask depleted", "regenDelay", c.cfg.RegenDelay)
}

func (c *Controller) regen(dt float64) {
	if !c.regenArmed {
		return
	}

	if c.regenWait > epsilon {
		c.regenWait -= dt
		return
	}

	c.charge = math.Min(c.cfg.MaxCharge, c.charge+c.cfg.RegenRate*dt)
	if c.charge+epsilon >= c.cfg.MaxCharge {
		c.charge = c.cfg.MaxCharge
		c.regenArmed = false
		c.emptySinceDepletion = false
		slog.Debug("mask recharged")
	}
}

func (c *Controller) armRegen() {
	c.regenArmed = true
	c.regenWait = c.cfg.RegenDelay
}

func (c *Controller) beginTransition(on bool) {
	c.active = on
	c.transitioning = true
	c.transitionAt = 0

	if c.sink != nil {
		c.sink.MaskAnimating(on)
		if on {
			c.sink.MaskVisible(true)
		}
	}
}

func (c *Controller) commitTransition() {
	c.transitioning = false
	c.transitionAt = 0

	if !c.active && c.sink != nil {
		c.sink.MaskVisible(false)
	}

	slog.Debug("mask transition committed", "active", c.active, "charge", c.charge)
}
