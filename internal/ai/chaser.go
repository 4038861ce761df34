package ai

import (
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/udisondev/nightveil/internal/geom"
)

// Chaser implements AI for the patrolling enemy that hears, sees and chases
// the player, unless the player is masked.
// State machine: PATROL → ALERTING (hesitate) → CHASING, plus the exclusive
// CAPTURING sequence started by OnContact (jumpscare → retreat → blindness).
//
// All methods must be called from the simulation tick goroutine.
type Chaser struct {
	objectID  uint32
	cfg       ChaserConfig
	isRunning atomic.Bool

	nav     Navigator
	los     LineOfSight
	route   *PatrolRoute
	target  Target
	stealth StealthSource
	fx      Effects
	rng     *rand.Rand

	catchFunc CatchFunc

	state    State
	waypoint int    // last route index picked
	captured Target // target of the running capture

	alertVisible   bool
	alertRemaining float64

	blindRemaining float64

	now        float64 // simulated seconds since Start
	nextStepAt float64
	speed      float64 // last commanded speed
	anim       Anim
	animSet    bool
}

// NewChaser creates a chaser. nav is required for anything to happen;
// los, route and the target may be absent and only disable what depends on them.
func NewChaser(objectID uint32, cfg ChaserConfig, nav Navigator, los LineOfSight, route *PatrolRoute) *Chaser {
	if nav == nil {
		slog.Warn("chaser has no navigator, it will stay inert", "objectID", objectID)
	}

	return &Chaser{
		objectID: objectID,
		cfg:      cfg,
		nav:      nav,
		los:      los,
		route:    route,
		fx:       nopEffects{},
		rng:      rand.New(rand.NewPCG(uint64(objectID), uint64(time.Now().UnixNano()))),
		state:    &Patrol{WaypointIndex: -1},
		waypoint: -1,
	}
}

// SetTarget sets the tracked player and its stealth source. Either may be nil.
func (c *Chaser) SetTarget(target Target, stealth StealthSource) {
	c.target = target
	c.stealth = stealth
}

// SetEffects sets the side-effect sink. nil restores the no-op sink.
func (c *Chaser) SetEffects(fx Effects) {
	if fx == nil {
		fx = nopEffects{}
	}
	c.fx = fx
}

// SetCatchFunc sets the capture callback.
func (c *Chaser) SetCatchFunc(fn CatchFunc) {
	c.catchFunc = fn
}

// SetRand replaces the waypoint picker's random source.
func (c *Chaser) SetRand(rng *rand.Rand) {
	c.rng = rng
}

// ObjectID returns the chaser's identifier.
func (c *Chaser) ObjectID() uint32 { return c.objectID }

// State returns the active state. The payload must not be modified.
func (c *Chaser) State() State { return c.state }

// Kind returns the active state kind.
func (c *Chaser) Kind() StateKind { return c.state.Kind() }

// IsBlind reports whether post-capture blindness is in effect.
func (c *Chaser) IsBlind() bool { return c.blindRemaining > 0 }

// IsAlertVisible reports whether the alert UI is currently shown.
func (c *Chaser) IsAlertVisible() bool { return c.alertVisible }

// Start snaps the body onto the walkable surface and begins patrolling.
func (c *Chaser) Start() {
	c.isRunning.Store(true)
	if c.nav == nil {
		return
	}

	if pos, ok := c.nav.SampleNearestWalkable(c.nav.Position(), c.cfg.SpawnSampleRadius); ok {
		c.nav.Warp(pos)
	}

	c.setState(&Patrol{WaypointIndex: c.waypoint})
	c.resumePatrol()
	c.goToNextWaypoint()

	if IsDebugEnabled() {
		slog.Debug("chaser AI started",
			"objectID", c.objectID,
			"waypoints", c.route.Len(),
			"hearing", c.cfg.Sensors.HearingRadius,
			"vision", c.cfg.Sensors.VisionRadius)
	}
}

// Stop halts the chaser. A running capture is abandoned with its jumpscare
// hidden, and any post-capture blindness is cleared.
func (c *Chaser) Stop() {
	c.isRunning.Store(false)
	c.hideAlert()

	if _, ok := c.state.(*Capturing); ok {
		c.fx.JumpscareHidden()
	}
	c.captured = nil
	c.blindRemaining = 0
	c.state = &Patrol{WaypointIndex: c.waypoint}

	if c.nav != nil {
		c.nav.Stop()
		c.nav.ClearVelocity()
	}

	if IsDebugEnabled() {
		slog.Debug("chaser AI stopped", "objectID", c.objectID)
	}
}

// Tick performs one simulation step of dt seconds.
func (c *Chaser) Tick(dt float64) {
	if !c.isRunning.Load() || c.nav == nil {
		return
	}

	dt = sanitizeDelta(dt)
	c.now += dt

	if s, ok := c.state.(*Capturing); ok {
		c.tickCapture(s, dt)
		return
	}

	c.tickBlindness(dt)
	c.tickAlertUI(dt)
	c.think(dt)
	c.tickFootsteps()
}

// think runs the perception gate and the PATROL/ALERTING/CHASING transitions.
func (c *Chaser) think(dt float64) {
	if c.target == nil || c.targetStealthed() || !c.detect() {
		c.enterPatrol()
		c.tickPatrol(dt)
		return
	}

	switch s := c.state.(type) {
	case *Patrol:
		c.enterAlerting()
	case *Alerting:
		s.Elapsed += dt
		if reached(s.Elapsed, c.cfg.ChaseStartDelay) {
			c.enterChasing()
		}
	case *Chasing:
		c.nav.SetDestination(c.target.Position())
	}
}

func (c *Chaser) targetStealthed() bool {
	return c.stealth != nil && c.stealth.IsActive()
}

func (c *Chaser) enterAlerting() {
	c.setState(&Alerting{})
	c.nav.Stop()
	c.setAnim(AnimIdle)
	c.showAlert()
}

func (c *Chaser) enterChasing() {
	c.setState(&Chasing{})
	c.nav.Resume()
	c.setSpeed(c.cfg.ChaseSpeed)
	c.nav.SetDestination(c.target.Position())
	c.setAnim(AnimChase)
}

// enterPatrol drops ALERTING/CHASING. The current destination is kept, so the
// chaser first walks to where it was last heading.
func (c *Chaser) enterPatrol() {
	if _, ok := c.state.(*Patrol); ok {
		return
	}

	c.hideAlert()
	c.setState(&Patrol{WaypointIndex: c.waypoint})
	c.resumePatrol()
}

// resumePatrol restarts walking, or parks the body when there is no route.
func (c *Chaser) resumePatrol() {
	if c.route.Len() == 0 {
		c.nav.Stop()
		c.setAnim(AnimIdle)
		return
	}

	c.nav.Resume()
	c.setSpeed(c.cfg.WalkSpeed)
	c.setAnim(AnimWalk)
}

func (c *Chaser) tickPatrol(dt float64) {
	p, ok := c.state.(*Patrol)
	if !ok || c.route.Len() == 0 {
		return
	}

	if p.Waiting {
		p.WaitRemaining -= dt
		if expired(p.WaitRemaining) {
			p.Waiting = false
			p.WaitRemaining = 0
			c.goToNextWaypoint()
		}
		return
	}

	if !c.nav.PathPending() && c.nav.RemainingDistanceBelow(c.cfg.ArrivalTolerance) {
		p.Waiting = true
		p.WaitRemaining = c.cfg.IdleWaitTime
		c.nav.Stop()
		c.nav.ClearVelocity()
		c.setAnim(AnimIdle)
		return
	}

	c.setAnim(AnimWalk)
}

// goToNextWaypoint heads for a random waypoint other than the current one.
func (c *Chaser) goToNextWaypoint() {
	if c.route.Len() == 0 || !c.nav.IsOnWalkableSurface() {
		return
	}

	c.waypoint = c.route.Next(c.waypoint, c.rng)
	if p, ok := c.state.(*Patrol); ok {
		p.WaypointIndex = c.waypoint
		p.Waiting = false
	}

	c.nav.Resume()
	c.setSpeed(c.cfg.WalkSpeed)
	c.nav.SetDestination(c.route.Point(c.waypoint))
	c.setAnim(AnimWalk)
}

func (c *Chaser) showAlert() {
	c.fx.AlertShown()
	c.alertVisible = true
	c.alertRemaining = c.cfg.AlertDuration
}

func (c *Chaser) hideAlert() {
	if !c.alertVisible {
		return
	}
	c.alertVisible = false
	c.alertRemaining = 0
	c.fx.AlertHidden()
}

func (c *Chaser) tickAlertUI(dt float64) {
	if !c.alertVisible {
		return
	}
	c.alertRemaining -= dt
	if expired(c.alertRemaining) {
		c.hideAlert()
	}
}

// tickFootsteps emits steps while the body is actually moving.
func (c *Chaser) tickFootsteps() {
	if p, ok := c.state.(*Patrol); ok && p.Waiting {
		return
	}
	if c.nav.Velocity().Len() <= c.cfg.MinStepVelocity {
		return
	}
	if !reached(c.now, c.nextStepAt) {
		return
	}

	c.fx.Footstep()

	interval := c.cfg.WalkStepInterval
	if c.speed > c.cfg.RunSpeedThreshold {
		interval = c.cfg.RunStepInterval
	}
	c.nextStepAt = c.now + interval
}

func (c *Chaser) setSpeed(v float64) {
	c.speed = v
	c.nav.SetSpeed(v)
}

func (c *Chaser) setAnim(a Anim) {
	if c.animSet && c.anim == a {
		return
	}
	c.anim = a
	c.animSet = true
	c.fx.Animation(a)
}

func (c *Chaser) setState(s State) {
	from := c.state.Kind()
	c.state = s

	if from != s.Kind() && IsDebugEnabled() {
		slog.Debug("chaser state changed",
			"objectID", c.objectID,
			"from", from,
			"to", s.Kind())
	}
}

// distanceToTarget returns distance between the body and the tracked target.
func (c *Chaser) distanceToTarget() float64 {
	return geom.Distance(c.nav.Position(), c.target.Position())
}
