package player

import "log/slog"

// Health tracks player hit points.
type Health struct {
	max     int
	current int
	dead    bool

	// OnChanged fires after every damage or reset.
	OnChanged func(current, maxHP int)
	// OnDied fires once when hit points first reach zero.
	OnDied func()
}

// NewHealth creates full health. maxHP below 1 is raised to 1.
func NewHealth(maxHP int) *Health {
	maxHP = max(maxHP, 1)
	return &Health{max: maxHP, current: maxHP}
}

// Current returns remaining hit points.
func (h *Health) Current() int { return h.current }

// Max returns hit point capacity.
func (h *Health) Max() int { return h.max }

// IsDead reports whether hit points reached zero.
func (h *Health) IsDead() bool { return h.dead }

// TakeDamage removes n hit points, never below zero. Non-positive n is ignored.
func (h *Health) TakeDamage(n int) {
	if n <= 0 || h.dead {
		return
	}

	h.current = max(0, h.current-n)
	if h.OnChanged != nil {
		h.OnChanged(h.current, h.max)
	}

	if h.current == 0 {
		h.dead = true
		slog.Info("player died")
		if h.OnDied != nil {
			h.OnDied()
		}
	}
}

// Reset restores full health.
func (h *Health) Reset() {
	h.current = h.max
	h.dead = false
	if h.OnChanged != nil {
		h.OnChanged(h.current, h.max)
	}
}
