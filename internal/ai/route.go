package ai

import (
	"math/rand/v2"

	"github.com/udisondev/nightveil/internal/geom"
)

// PatrolRoute is a set of waypoints visited in random order.
type PatrolRoute struct {
	points []geom.Vec3
}

// NewPatrolRoute copies points into a route. An empty route is valid.
func NewPatrolRoute(points []geom.Vec3) *PatrolRoute {
	return &PatrolRoute{points: append([]geom.Vec3(nil), points...)}
}

// Len returns number of waypoints. Safe on a nil route.
func (r *PatrolRoute) Len() int {
	if r == nil {
		return 0
	}
	return len(r.points)
}

// Point returns waypoint i.
func (r *PatrolRoute) Point(i int) geom.Vec3 {
	return r.points[i]
}

// Next picks a uniformly random index different from current.
// A single-point route always yields 0; an empty route yields -1.
func (r *PatrolRoute) Next(current int, rng *rand.Rand) int {
	n := r.Len()
	switch {
	case n == 0:
		return -1
	case n == 1:
		return 0
	}

	if current < 0 || current >= n {
		return rng.IntN(n)
	}

	// Draw from the n-1 other indices and skip over current.
	idx := rng.IntN(n - 1)
	if idx >= current {
		idx++
	}
	return idx
}

// Farthest returns the index of the waypoint strictly farthest from pos.
// Ties keep the first one in route order. Returns -1 for an empty route.
func (r *PatrolRoute) Farthest(pos geom.Vec3) int {
	best := -1
	bestDist := -1.0

	for i := range r.Len() {
		d := geom.Distance(pos, r.points[i])
		if d > bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}
