package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/nightveil/internal/ai"
	"github.com/udisondev/nightveil/internal/config"
	"github.com/udisondev/nightveil/internal/sim"
)

const (
	ConfigPath = "config/nightveil.yaml"

	statusTickerID uint32 = 900
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("NIGHTVEIL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// Hot-path AI logs are gated separately from the handler level
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("nightveil starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"tick_interval", cfg.Simulation.TickInterval,
		"duration", cfg.Simulation.Duration)

	world := sim.NewWorld(worldConfig(cfg))

	var clock ai.Clock = sim.NewWallClock(cfg.Simulation.MaxDelta.Seconds())
	if cfg.Simulation.FixedStep {
		clock = sim.FixedClock{Step: cfg.Simulation.TickInterval.Seconds()}
	}

	mgr := ai.NewTickManager(cfg.Simulation.TickInterval, clock)
	if err := world.Register(mgr); err != nil {
		return fmt.Errorf("registering world: %w", err)
	}

	if cfg.Simulation.StatusInterval > 0 {
		reporter := newStatusReporter(world, cfg.Simulation.StatusInterval)
		if err := mgr.Register(statusTickerID, ai.PhaseContact, reporter); err != nil {
			return fmt.Errorf("registering status reporter: %w", err)
		}
	}

	if d := cfg.Simulation.Duration; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting tick manager", "interval", cfg.Simulation.TickInterval)
		if err := mgr.Start(gctx); err != nil && !isShutdown(err) {
			return fmt.Errorf("tick manager: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	// Tick goroutine has exited; reading world state is safe now.
	st := world.Status()
	slog.Info("nightveil stopped",
		"ticks", mgr.Ticks(),
		"player_hp", st.PlayerHP,
		"deaths", st.Deaths,
		"mask_charge", st.MaskCharge)
	return nil
}

func isShutdown(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// statusReporter logs a world summary every interval of simulated time.
// Runs inside the tick loop so it reads the world without locking.
type statusReporter struct {
	world    *sim.World
	interval float64
	elapsed  float64
}

func newStatusReporter(world *sim.World, interval time.Duration) *statusReporter {
	return &statusReporter{world: world, interval: interval.Seconds()}
}

func (r *statusReporter) Tick(dt float64) {
	r.elapsed += dt
	if r.elapsed < r.interval {
		return
	}
	r.elapsed = 0

	st := r.world.Status()
	slog.Info("status",
		"player_hp", st.PlayerHP,
		"deaths", st.Deaths,
		"mask_active", st.MaskActive,
		"mask_charge", fmt.Sprintf("%.1f", st.MaskCharge),
		"chasers", st.ChaserStates)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
