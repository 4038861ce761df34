package sim

import (
	"github.com/udisondev/nightveil/internal/ai"
	"github.com/udisondev/nightveil/internal/geom"
)

type positioned interface {
	Position() geom.Vec3
}

// ContactSensor raises onContact when target enters radius around body.
// Only the entering tick fires; staying inside does not re-fire.
type ContactSensor struct {
	body      positioned
	target    ai.Target
	radius    float64
	onContact func(ai.Target)
	touching  bool
}

// NewContactSensor creates a proximity trigger.
func NewContactSensor(body positioned, target ai.Target, radius float64, onContact func(ai.Target)) *ContactSensor {
	return &ContactSensor{
		body:      body,
		target:    target,
		radius:    radius,
		onContact: onContact,
	}
}

// Tick checks overlap.
func (s *ContactSensor) Tick(float64) {
	if s.body == nil || s.target == nil {
		return
	}

	inside := geom.Distance(s.body.Position(), s.target.Position()) <= s.radius
	if inside && !s.touching && s.onContact != nil {
		s.onContact(s.target)
	}
	s.touching = inside
}
