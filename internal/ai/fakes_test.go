package ai

import (
	"math/rand/v2"

	"github.com/udisondev/nightveil/internal/geom"
)

// fakeNav is a teleporting Navigator that records commands.
type fakeNav struct {
	pos      geom.Vec3
	forward  geom.Vec3
	velocity geom.Vec3
	dest     geom.Vec3
	hasDest  bool
	speed    float64
	stopped  bool
	pending  bool

	offSurface bool
	sample     func(pos geom.Vec3, radius float64) (geom.Vec3, bool)

	warps        []geom.Vec3
	destinations []geom.Vec3
	lookedAt     []geom.Vec3
}

func newFakeNav(pos geom.Vec3) *fakeNav {
	return &fakeNav{pos: pos, forward: geom.V(0, 0, 1)}
}

func (n *fakeNav) SetDestination(pos geom.Vec3) {
	n.dest = pos
	n.hasDest = true
	n.destinations = append(n.destinations, pos)
}
func (n *fakeNav) Stop()              { n.stopped = true }
func (n *fakeNav) Resume()            { n.stopped = false }
func (n *fakeNav) SetSpeed(v float64) { n.speed = v }
func (n *fakeNav) Warp(pos geom.Vec3) {
	n.pos = pos
	n.warps = append(n.warps, pos)
}
func (n *fakeNav) RemainingDistanceBelow(threshold float64) bool {
	return n.hasDest && geom.Distance(n.pos, n.dest) < threshold
}
func (n *fakeNav) PathPending() bool         { return n.pending }
func (n *fakeNav) IsOnWalkableSurface() bool { return !n.offSurface }
func (n *fakeNav) SampleNearestWalkable(pos geom.Vec3, radius float64) (geom.Vec3, bool) {
	if n.sample != nil {
		return n.sample(pos, radius)
	}
	return pos, true
}
func (n *fakeNav) Position() geom.Vec3 { return n.pos }
func (n *fakeNav) Forward() geom.Vec3  { return n.forward }
func (n *fakeNav) Velocity() geom.Vec3 { return n.velocity }
func (n *fakeNav) ClearVelocity()      { n.velocity = geom.Vec3{} }
func (n *fakeNav) LookAt(pos geom.Vec3) {
	n.lookedAt = append(n.lookedAt, pos)
	if dir := pos.Sub(n.pos).Flat(); !dir.IsZero() {
		n.forward = dir.Normalized()
	}
}

// arrive moves the body onto its destination.
func (n *fakeNav) arrive() { n.pos = n.dest }

type fakeLOS struct {
	blocked bool
	queries int
}

func (l *fakeLOS) IsObstructed(from, to geom.Vec3, mask LayerMask) bool {
	l.queries++
	return l.blocked
}

type fakeTarget struct {
	pos     geom.Vec3
	forward geom.Vec3
	facing  *geom.Rotation
}

func newFakeTarget(pos geom.Vec3) *fakeTarget {
	return &fakeTarget{pos: pos, forward: geom.V(0, 0, 1)}
}

func (t *fakeTarget) Position() geom.Vec3 { return t.pos }
func (t *fakeTarget) Forward() geom.Vec3  { return t.forward }
func (t *fakeTarget) SetFacing(r geom.Rotation) {
	t.facing = &r
	t.forward = r.Forward()
}

type fakeStealth struct{ active bool }

func (s *fakeStealth) IsActive() bool { return s.active }

type recordingEffects struct {
	alertsShown     int
	alertsHidden    int
	footsteps       int
	jumpscareShown  int
	jumpscareHidden int
	anims           []Anim
}

func (e *recordingEffects) AlertShown()      { e.alertsShown++ }
func (e *recordingEffects) AlertHidden()     { e.alertsHidden++ }
func (e *recordingEffects) Footstep()        { e.footsteps++ }
func (e *recordingEffects) JumpscareShown()  { e.jumpscareShown++ }
func (e *recordingEffects) JumpscareHidden() { e.jumpscareHidden++ }
func (e *recordingEffects) Animation(a Anim) { e.anims = append(e.anims, a) }

// chaserFixture wires a chaser at the origin facing +Z.
type chaserFixture struct {
	chaser  *Chaser
	nav     *fakeNav
	los     *fakeLOS
	target  *fakeTarget
	stealth *fakeStealth
	fx      *recordingEffects
}

func testChaserConfig() ChaserConfig {
	cfg := DefaultChaserConfig()
	cfg.Sensors.HearingRadius = 5
	cfg.Sensors.VisionRadius = 15
	cfg.Sensors.VisionHalfAngleDegrees = 45
	return cfg
}

// newChaserFixture places the target far away (undetected) by default.
func newChaserFixture(cfg ChaserConfig, waypoints []geom.Vec3) *chaserFixture {
	f := &chaserFixture{
		nav:     newFakeNav(geom.V(0, 0, 0)),
		los:     &fakeLOS{},
		target:  newFakeTarget(geom.V(100, 0, 100)),
		stealth: &fakeStealth{},
		fx:      &recordingEffects{},
	}

	f.chaser = NewChaser(1, cfg, f.nav, f.los, NewPatrolRoute(waypoints))
	f.chaser.SetTarget(f.target, f.stealth)
	f.chaser.SetEffects(f.fx)
	f.chaser.SetRand(rand.New(rand.NewPCG(1, 2)))
	return f
}

func defaultWaypoints() []geom.Vec3 {
	return []geom.Vec3{geom.V(-30, 0, 0), geom.V(30, 0, 0), geom.V(0, 0, -30)}
}
