package main

import (
	"github.com/udisondev/nightveil/internal/ai"
	"github.com/udisondev/nightveil/internal/config"
	"github.com/udisondev/nightveil/internal/geom"
	"github.com/udisondev/nightveil/internal/mask"
	"github.com/udisondev/nightveil/internal/sim"
)

// worldConfig converts file configuration into a level description.
func worldConfig(cfg config.Config) sim.WorldConfig {
	l := cfg.Level

	wc := sim.WorldConfig{
		Width:         l.Width,
		Depth:         l.Depth,
		CellSize:      l.CellSize,
		PlayerStart:   point(l.Player.Start),
		PlayerRoute:   points(l.Player.Route),
		PlayerSpeed:   l.Player.Speed,
		PlayerHP:      l.Player.HP,
		ViewFOV:       l.Player.ViewFOV,
		ViewRange:     l.Player.ViewRange,
		EyeHeight:     l.Player.EyeHeight,
		AutoMask:      l.Player.AutoMask,
		Mask:          maskConfig(cfg.Mask),
		ContactRadius: l.ContactRadius,
		Seed:          cfg.Simulation.Seed,
	}

	for _, w := range l.Walls {
		wc.Walls = append(wc.Walls, sim.Wall{X: w.X, Z: w.Z, Height: w.Height, Layer: ai.LayerMask(w.Layer)})
	}

	chaser := chaserConfig(cfg.Chaser)
	for _, s := range l.Chasers {
		wc.Chasers = append(wc.Chasers, sim.ChaserSpawn{
			Position:  point(s.Position),
			Waypoints: points(s.Waypoints),
			Config:    chaser,
		})
	}

	stalker := stalkerConfig(cfg.Stalker)
	for _, s := range l.Stalkers {
		wc.Stalkers = append(wc.Stalkers, sim.StalkerSpawn{
			Position: point(s.Position),
			Config:   stalker,
		})
	}

	return wc
}

func maskConfig(m config.Mask) mask.Config {
	mc := mask.DefaultConfig()
	mc.MaxCharge = m.MaxCharge
	mc.DrainRate = m.DrainRate
	mc.RegenRate = m.RegenRate
	mc.RegenDelay = m.RegenDelay
	mc.TransitionDuration = m.TransitionDuration
	mc.ManualDeactivationDelay = m.ManualDeactivationDelay
	return mc
}

func chaserConfig(c config.Chaser) ai.ChaserConfig {
	cc := ai.DefaultChaserConfig()
	cc.Sensors.HearingRadius = c.HearingRadius
	cc.Sensors.VisionRadius = c.VisionRadius
	cc.Sensors.VisionHalfAngleDegrees = c.VisionHalfAngleDegrees
	cc.Sensors.EyeHeightOffset = c.EyeHeightOffset
	cc.Sensors.TargetHeightOffset = c.TargetHeightOffset
	cc.Sensors.ObstacleMask = ai.LayerAll
	if c.ObstacleMask != 0 {
		cc.Sensors.ObstacleMask = ai.LayerMask(c.ObstacleMask)
	}
	cc.AlertDuration = c.AlertDuration
	cc.ChaseStartDelay = c.ChaseStartDelay
	cc.WalkSpeed = c.WalkSpeed
	cc.ChaseSpeed = c.ChaseSpeed
	cc.IdleWaitTime = c.IdleWaitTime
	cc.ArrivalTolerance = c.ArrivalTolerance
	cc.CaptureDuration = c.CaptureDuration
	cc.BlindnessDuration = c.BlindnessDuration
	cc.Disorient = c.Disorient
	cc.FrontDistance = c.FrontDistance
	cc.FaceHeight = c.FaceHeight
	cc.ContactDamage = c.ContactDamage
	cc.FrontSampleRadius = c.FrontSampleRadius
	cc.RetreatSampleRadius = c.RetreatSampleRadius
	cc.SpawnSampleRadius = c.SpawnSampleRadius
	cc.WalkStepInterval = c.WalkStepInterval
	cc.RunStepInterval = c.RunStepInterval
	cc.RunSpeedThreshold = c.RunSpeedThreshold
	cc.MinStepVelocity = c.MinStepVelocity
	return cc
}

func stalkerConfig(s config.Stalker) ai.StalkerConfig {
	return ai.StalkerConfig{
		JumpDistance:       s.JumpDistance,
		DetectionRange:     s.DetectionRange,
		StopDistance:       s.StopDistance,
		MaskedJumpInterval: s.MaskedJumpInterval,
		KillRange:          s.KillRange,
		RotationSpeed:      s.RotationSpeed,
	}
}

func point(p config.Point) geom.Vec3 {
	return geom.V(p.X, p.Y, p.Z)
}

func points(ps []config.Point) []geom.Vec3 {
	out := make([]geom.Vec3, 0, len(ps))
	for _, p := range ps {
		out = append(out, point(p))
	}
	return out
}
