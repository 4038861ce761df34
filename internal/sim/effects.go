package sim

import (
	"log/slog"

	"github.com/udisondev/nightveil/internal/ai"
)

// LogEffects writes enemy and mask side effects to slog.
// Stands in for audio, UI and animation playback.
type LogEffects struct {
	source string
	id     uint32
}

// NewLogEffects creates a sink tagging records with source and id.
func NewLogEffects(source string, id uint32) *LogEffects {
	return &LogEffects{source: source, id: id}
}

func (e *LogEffects) AlertShown()  { e.info("alert shown") }
func (e *LogEffects) AlertHidden() { e.debug("alert hidden") }
func (e *LogEffects) Footstep()    { e.debug("footstep") }

func (e *LogEffects) JumpscareShown()  { e.info("jumpscare shown") }
func (e *LogEffects) JumpscareHidden() { e.debug("jumpscare hidden") }

func (e *LogEffects) Animation(a ai.Anim) {
	if ai.IsDebugEnabled() {
		slog.Debug("animation", "source", e.source, "objectID", e.id, "anim", a)
	}
}

// MaskAnimating implements mask.Sink.
func (e *LogEffects) MaskAnimating(on bool) {
	slog.Info("mask animating", "source", e.source, "objectID", e.id, "on", on)
}

// MaskVisible implements mask.Sink.
func (e *LogEffects) MaskVisible(visible bool) {
	e.debugKV("mask visibility", "visible", visible)
}

func (e *LogEffects) info(msg string) {
	slog.Info(msg, "source", e.source, "objectID", e.id)
}

func (e *LogEffects) debug(msg string) {
	if ai.IsDebugEnabled() {
		slog.Debug(msg, "source", e.source, "objectID", e.id)
	}
}

func (e *LogEffects) debugKV(msg, key string, value any) {
	if ai.IsDebugEnabled() {
		slog.Debug(msg, "source", e.source, "objectID", e.id, key, value)
	}
}
