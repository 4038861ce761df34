package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/nightveil/internal/geom"
)

type fakeBody struct {
	pos   geom.Vec3
	rot   geom.Rotation
	warps int
}

func (b *fakeBody) Position() geom.Vec3         { return b.pos }
func (b *fakeBody) Warp(pos geom.Vec3)          { b.pos = pos; b.warps++ }
func (b *fakeBody) Rotation() geom.Rotation     { return b.rot }
func (b *fakeBody) SetRotation(r geom.Rotation) { b.rot = r }

type fakeWatcher struct{ watched bool }

func (w *fakeWatcher) IsWatched(geom.Vec3) bool { return w.watched }

type stalkerFixture struct {
	stalker *Stalker
	body    *fakeBody
	watcher *fakeWatcher
	target  *fakeTarget
	stealth *fakeStealth
	kills   int
}

func newStalkerFixture(bodyPos geom.Vec3) *stalkerFixture {
	f := &stalkerFixture{
		body:    &fakeBody{pos: bodyPos},
		watcher: &fakeWatcher{watched: true},
		target:  newFakeTarget(geom.V(0, 0, 0)),
		stealth: &fakeStealth{},
	}

	f.stalker = NewStalker(2, DefaultStalkerConfig(), f.body, f.watcher)
	f.stalker.SetTarget(f.target, f.stealth)
	f.stalker.SetKillFunc(func(Target) { f.kills++ })
	f.stalker.Start()
	return f
}

func TestStalker_JumpsWhenPlayerLooksAway(t *testing.T) {
	f := newStalkerFixture(geom.V(0, 0, 15))

	f.stalker.Tick(0.1)
	assert.Equal(t, 0, f.body.warps, "watched: frozen")

	f.watcher.watched = false
	f.stalker.Tick(0.1)
	require.Equal(t, 1, f.body.warps)
	assert.InDelta(t, 11.0, f.body.pos.Z, 1e-9)

	// Still unwatched: only the moment of looking away triggers a jump
	f.stalker.Tick(0.1)
	assert.Equal(t, 1, f.body.warps)
}

func TestStalker_JumpStopsShort(t *testing.T) {
	f := newStalkerFixture(geom.V(0, 0, 5))

	f.watcher.watched = false
	f.stalker.Tick(0.1)

	assert.InDelta(t, 3.0, f.body.pos.Z, 1e-9, "never closer than StopDistance")
}

func TestStalker_IgnoresTargetOutOfRange(t *testing.T) {
	f := newStalkerFixture(geom.V(0, 0, 25))

	f.watcher.watched = false
	f.stalker.Tick(0.1)

	assert.Equal(t, 0, f.body.warps)
	assert.Equal(t, geom.Rotation{}, f.body.rot)
}

func TestStalker_CreepsWhileMasked(t *testing.T) {
	f := newStalkerFixture(geom.V(0, 0, 15))
	f.stealth.active = true

	for range 4 {
		f.stalker.Tick(0.5)
	}
	assert.Equal(t, 0, f.body.warps)

	f.stalker.Tick(0.5)
	assert.Equal(t, 1, f.body.warps, "jumps every MaskedJumpInterval even while watched")
}

func TestStalker_KillsOnceWhenUnmasked(t *testing.T) {
	f := newStalkerFixture(geom.V(0, 0, 1.5))

	f.stalker.Tick(0.1)
	f.stalker.Tick(0.1)

	assert.Equal(t, 1, f.kills)
}

func TestStalker_NoKillWhileMasked(t *testing.T) {
	f := newStalkerFixture(geom.V(0, 0, 1.5))
	f.stealth.active = true

	f.stalker.Tick(0.1)

	assert.Equal(t, 0, f.kills)
}

func TestStalker_TurnsTowardTarget(t *testing.T) {
	f := newStalkerFixture(geom.V(10, 0, 0))

	f.stalker.Tick(1)

	// Facing -X, the direction of the target
	assert.InDelta(t, -90.0, f.body.rot.Yaw, 1e-9)
	assert.InDelta(t, 0.0, f.body.rot.Pitch, 1e-9)
}

func TestStalker_NilTargetNoop(t *testing.T) {
	f := newStalkerFixture(geom.V(0, 0, 1))
	f.stalker.SetTarget(nil, nil)

	f.stalker.Tick(1)

	assert.Equal(t, 0, f.kills)
	assert.Equal(t, 0, f.body.warps)
}

func TestStalker_MaskedCreepOnTimeWithTenthSecondTicks(t *testing.T) {
	f := newStalkerFixture(geom.V(0, 0, 15))
	f.stealth.active = true

	for i := range 24 {
		f.stalker.Tick(0.1)
		require.Equal(t, 0, f.body.warps, "tick %d", i)
	}

	f.stalker.Tick(0.1)
	assert.Equal(t, 1, f.body.warps, "jumps after 2.5s")
}
