package sim

import (
	"github.com/udisondev/nightveil/internal/ai"
	"github.com/udisondev/nightveil/internal/geom"
)

// LookWatcher answers whether the viewer is looking at a position:
// inside the view cone, within range and not hidden behind a wall.
type LookWatcher struct {
	viewer    ai.Target
	los       ai.LineOfSight
	fov       float64 // full cone angle, degrees
	viewRange float64
	eyeHeight float64
}

// NewLookWatcher creates a watcher for viewer. los may be nil.
func NewLookWatcher(viewer ai.Target, los ai.LineOfSight, fov, viewRange, eyeHeight float64) *LookWatcher {
	return &LookWatcher{
		viewer:    viewer,
		los:       los,
		fov:       fov,
		viewRange: viewRange,
		eyeHeight: eyeHeight,
	}
}

// IsWatched implements ai.Watcher.
func (w *LookWatcher) IsWatched(pos geom.Vec3) bool {
	eye := w.viewer.Position().Add(geom.Up.Scale(w.eyeHeight))
	aim := pos.Add(geom.Up.Scale(w.eyeHeight))
	dir := aim.Sub(eye)

	if dir.Len() > w.viewRange {
		return false
	}
	if geom.AngleDeg(w.viewer.Forward(), dir) > w.fov/2 {
		return false
	}
	if w.los == nil {
		return true
	}
	return !w.los.IsObstructed(eye, aim, ai.LayerAll)
}
