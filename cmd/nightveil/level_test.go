package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/nightveil/internal/ai"
	"github.com/udisondev/nightveil/internal/config"
	"github.com/udisondev/nightveil/internal/geom"
	"github.com/udisondev/nightveil/internal/mask"
	"github.com/udisondev/nightveil/internal/sim"
)

func TestWorldConfig_Defaults(t *testing.T) {
	cfg := config.Default()
	wc := worldConfig(cfg)

	assert.Equal(t, cfg.Level.Width, wc.Width)
	assert.Equal(t, mask.DefaultConfig(), wc.Mask)
	assert.Equal(t, geom.V(5, 0, 5), wc.PlayerStart)
	assert.Len(t, wc.PlayerRoute, len(cfg.Level.Player.Route))
	assert.Len(t, wc.Walls, len(cfg.Level.Walls))

	require.Len(t, wc.Chasers, 1)
	assert.Equal(t, ai.DefaultChaserConfig(), wc.Chasers[0].Config)
	require.Len(t, wc.Stalkers, 1)
	assert.Equal(t, ai.DefaultStalkerConfig(), wc.Stalkers[0].Config)
}

func TestWorldConfig_Overrides(t *testing.T) {
	cfg := config.Default()
	cfg.Chaser.HearingRadius = 3
	cfg.Mask.ManualDeactivationDelay = true
	cfg.Level.Walls = []config.Wall{{X: 1, Z: 2, Height: 4, Layer: 2}}

	wc := worldConfig(cfg)

	assert.Equal(t, 3.0, wc.Chasers[0].Config.Sensors.HearingRadius)
	assert.True(t, wc.Mask.ManualDeactivationDelay)
	assert.Equal(t, []sim.Wall{{X: 1, Z: 2, Height: 4, Layer: 2}}, wc.Walls)
}

func TestWorldConfig_ChaserTuningFromFile(t *testing.T) {
	cfg := config.Default()
	cfg.Chaser.ObstacleMask = 4
	cfg.Chaser.FaceHeight = 1.8
	cfg.Chaser.FrontSampleRadius = 1
	cfg.Chaser.RetreatSampleRadius = 7
	cfg.Chaser.SpawnSampleRadius = 9
	cfg.Chaser.RunSpeedThreshold = 5
	cfg.Chaser.MinStepVelocity = 0.1

	cc := worldConfig(cfg).Chasers[0].Config

	assert.Equal(t, ai.LayerMask(4), cc.Sensors.ObstacleMask)
	assert.Equal(t, 1.8, cc.FaceHeight)
	assert.Equal(t, 1.0, cc.FrontSampleRadius)
	assert.Equal(t, 7.0, cc.RetreatSampleRadius)
	assert.Equal(t, 9.0, cc.SpawnSampleRadius)
	assert.Equal(t, 5.0, cc.RunSpeedThreshold)
	assert.Equal(t, 0.1, cc.MinStepVelocity)
}

func TestWorldConfig_ZeroObstacleMaskMeansAllLayers(t *testing.T) {
	cfg := config.Default()
	cfg.Chaser.ObstacleMask = 0

	assert.Equal(t, ai.LayerAll, worldConfig(cfg).Chasers[0].Config.Sensors.ObstacleMask)
}

func TestDefaultLevelRuns(t *testing.T) {
	cfg := config.Default()
	w := sim.NewWorld(worldConfig(cfg))

	mgr := ai.NewTickManager(cfg.Simulation.TickInterval, sim.FixedClock{Step: 0.05})
	require.NoError(t, w.Register(mgr))
	require.NoError(t, mgr.Register(statusTickerID, ai.PhaseContact, newStatusReporter(w, cfg.Simulation.StatusInterval)))

	for range 600 {
		mgr.Step(0.05)
	}

	assert.Equal(t, int64(600), mgr.Ticks())
	st := w.Status()
	assert.GreaterOrEqual(t, st.MaskCharge, 0.0)
	assert.LessOrEqual(t, st.MaskCharge, cfg.Mask.MaxCharge)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
