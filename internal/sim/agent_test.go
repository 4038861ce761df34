package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/nightveil/internal/ai"
	"github.com/udisondev/nightveil/internal/geom"
)

var (
	_ ai.Navigator = (*Agent)(nil)
	_ ai.Body      = (*Agent)(nil)
	_ ai.Watcher   = (*LookWatcher)(nil)
	_ ai.Effects   = (*LogEffects)(nil)
	_ ai.Clock     = (*WallClock)(nil)
	_ ai.Clock     = FixedClock{}
)

func TestAgent_MovesTowardDestination(t *testing.T) {
	a := NewAgent(nil, geom.V(0, 0, 0))
	a.SetSpeed(2)
	a.SetDestination(geom.V(10, 0, 0))

	a.Tick(1)

	assert.Equal(t, geom.V(2, 0, 0), a.Position())
	assert.InDelta(t, 2.0, a.Velocity().Len(), 1e-9)
	assert.InDelta(t, 1.0, a.Forward().X, 1e-9)
	assert.False(t, a.RemainingDistanceBelow(0.5))

	for range 4 {
		a.Tick(1)
	}
	assert.Equal(t, geom.V(10, 0, 0), a.Position())
	assert.True(t, a.RemainingDistanceBelow(0.5))
}

func TestAgent_StoppedDoesNotMove(t *testing.T) {
	a := NewAgent(nil, geom.V(0, 0, 0))
	a.SetSpeed(2)
	a.SetDestination(geom.V(10, 0, 0))
	a.Stop()

	a.Tick(1)
	assert.Equal(t, geom.V(0, 0, 0), a.Position())
	assert.True(t, a.Velocity().IsZero())

	a.Resume()
	a.Tick(1)
	assert.Equal(t, geom.V(2, 0, 0), a.Position())
}

func TestAgent_WarpDropsDestination(t *testing.T) {
	a := NewAgent(nil, geom.V(0, 0, 0))
	a.SetSpeed(2)
	a.SetDestination(geom.V(10, 0, 0))

	a.Warp(geom.V(5, 0, 5))
	a.Tick(1)

	assert.Equal(t, geom.V(5, 0, 5), a.Position())
	assert.True(t, a.RemainingDistanceBelow(0.1))
}

func TestAgent_WalkableQueriesUseGrid(t *testing.T) {
	g := wallGrid()
	a := NewAgent(g, geom.V(10.5, 0, 3.5))

	assert.False(t, a.IsOnWalkableSurface())

	p, ok := a.SampleNearestWalkable(a.Position(), 2)
	assert.True(t, ok)
	assert.True(t, g.IsWalkable(p))
}

func TestContactSensor_FiresOnEnterOnly(t *testing.T) {
	body := NewAgent(nil, geom.V(0, 0, 0))
	target := &stubTarget{pos: geom.V(5, 0, 0)}

	fired := 0
	s := NewContactSensor(body, target, 1, func(ai.Target) { fired++ })

	s.Tick(0.1)
	assert.Equal(t, 0, fired)

	target.pos = geom.V(0.5, 0, 0)
	s.Tick(0.1)
	s.Tick(0.1)
	assert.Equal(t, 1, fired, "staying inside does not re-fire")

	target.pos = geom.V(5, 0, 0)
	s.Tick(0.1)
	target.pos = geom.V(0, 0, 0.5)
	s.Tick(0.1)
	assert.Equal(t, 2, fired)
}

func TestLookWatcher(t *testing.T) {
	g := wallGrid()
	viewer := &stubTarget{pos: geom.V(5.5, 0, 5.5), forward: geom.V(1, 0, 0)}
	w := NewLookWatcher(viewer, g, 90, 30, 1.6)

	assert.True(t, w.IsWatched(geom.V(8.5, 0, 5.5)), "in front")
	assert.False(t, w.IsWatched(geom.V(2.5, 0, 5.5)), "behind")
	assert.False(t, w.IsWatched(geom.V(15.5, 0, 5.5)), "behind a wall")

	viewer.forward = geom.V(0, 0, 1)
	assert.False(t, w.IsWatched(geom.V(8.5, 0, 5.5)), "outside cone")
}

func TestWallClock_Clamps(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	c := newWallClock(0.1, func() time.Time { return now })

	now = base.Add(50 * time.Millisecond)
	assert.InDelta(t, 0.05, c.DeltaTimeSeconds(), 1e-9)

	now = now.Add(5 * time.Second)
	assert.InDelta(t, 0.1, c.DeltaTimeSeconds(), 1e-9)

	now = now.Add(-time.Second)
	assert.Equal(t, 0.0, c.DeltaTimeSeconds())
}

type stubTarget struct {
	pos     geom.Vec3
	forward geom.Vec3
}

func (s *stubTarget) Position() geom.Vec3     { return s.pos }
func (s *stubTarget) Forward() geom.Vec3      { return s.forward }
func (s *stubTarget) SetFacing(geom.Rotation) {}
