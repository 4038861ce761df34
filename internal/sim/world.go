package sim

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/udisondev/nightveil/internal/ai"
	"github.com/udisondev/nightveil/internal/geom"
	"github.com/udisondev/nightveil/internal/mask"
	"github.com/udisondev/nightveil/internal/player"
)

// Object ID ranges used when registering with the tick manager.
const (
	playerID     uint32 = 1
	autoMaskID   uint32 = 2
	maskID       uint32 = 10
	chaserBaseID uint32 = 100
	agentBaseID  uint32 = 200
	stalkerBase  uint32 = 300
	contactBase  uint32 = 400
)

// ChaserSpawn places one chaser.
type ChaserSpawn struct {
	Position  geom.Vec3
	Waypoints []geom.Vec3
	Config    ai.ChaserConfig
}

// StalkerSpawn places one stalker.
type StalkerSpawn struct {
	Position geom.Vec3
	Config   ai.StalkerConfig
}

// WorldConfig describes a playable level.
type WorldConfig struct {
	Width, Depth int
	CellSize     float64
	Walls        []Wall

	PlayerStart geom.Vec3
	PlayerRoute []geom.Vec3
	PlayerSpeed float64
	PlayerHP    int
	ViewFOV     float64
	ViewRange   float64
	EyeHeight   float64

	// AutoMask puts the mask on as soon as any chaser is alerted.
	AutoMask bool

	Mask          mask.Config
	ContactRadius float64

	// Seed makes patrol choices reproducible. 0 keeps each chaser's own source.
	Seed uint64
	Chasers       []ChaserSpawn
	Stalkers      []StalkerSpawn
}

// World owns one level's entities and wires them together.
type World struct {
	Grid     *Grid
	Player   *player.Body
	Health   *player.Health
	Mask     *mask.Controller
	Chasers  []*ai.Chaser
	Agents   []*Agent
	Stalkers []*ai.Stalker

	StalkerBodies []*Agent

	contacts []*ContactSensor
	autoMask bool
	deaths   int
}

// NewWorld builds entities from cfg. Nothing ticks until Register.
func NewWorld(cfg WorldConfig) *World {
	w := &World{
		Grid:     NewGrid(cfg.Width, cfg.Depth, cfg.CellSize, cfg.Walls),
		Player:   player.NewBody(cfg.PlayerStart),
		Health:   player.NewHealth(cfg.PlayerHP),
		autoMask: cfg.AutoMask,
	}

	w.Player.SetRoute(cfg.PlayerRoute, cfg.PlayerSpeed)
	w.Mask = mask.NewController(cfg.Mask, NewLogEffects("mask", maskID))
	w.Health.OnDied = func() { w.deaths++ }

	catch := func(target ai.Target, damage int) {
		w.Health.TakeDamage(damage)
	}

	for i, spawn := range cfg.Chasers {
		id := chaserBaseID + uint32(i)
		agent := NewAgent(w.Grid, spawn.Position)

		c := ai.NewChaser(id, spawn.Config, agent, w.Grid, ai.NewPatrolRoute(spawn.Waypoints))
		c.SetTarget(w.Player, w.Mask)
		c.SetEffects(NewLogEffects("chaser", id))
		c.SetCatchFunc(catch)
		if cfg.Seed != 0 {
			c.SetRand(rand.New(rand.NewPCG(cfg.Seed, uint64(id))))
		}

		w.Chasers = append(w.Chasers, c)
		w.Agents = append(w.Agents, agent)
		w.contacts = append(w.contacts, NewContactSensor(agent, w.Player, cfg.ContactRadius, c.OnContact))
	}

	watcher := NewLookWatcher(w.Player, w.Grid, cfg.ViewFOV, cfg.ViewRange, cfg.EyeHeight)
	for i, spawn := range cfg.Stalkers {
		id := stalkerBase + uint32(i)
		body := NewAgent(w.Grid, spawn.Position)

		s := ai.NewStalker(id, spawn.Config, body, watcher)
		s.SetTarget(w.Player, w.Mask)
		s.SetKillFunc(func(ai.Target) {
			w.Health.TakeDamage(w.Health.Current())
		})

		w.Stalkers = append(w.Stalkers, s)
		w.StalkerBodies = append(w.StalkerBodies, body)
	}

	return w
}

// Register adds every entity to mgr in tick order: input, mask, enemies, contacts.
func (w *World) Register(mgr *ai.TickManager) error {
	reg := func(id uint32, phase ai.Phase, t ai.Ticker) error {
		if err := mgr.Register(id, phase, t); err != nil {
			return fmt.Errorf("registering world entity %d: %w", id, err)
		}
		return nil
	}

	if err := reg(playerID, ai.PhaseInput, w.Player); err != nil {
		return err
	}
	if w.autoMask {
		if err := reg(autoMaskID, ai.PhaseInput, ai.TickerFunc(w.tickAutoMask)); err != nil {
			return err
		}
	}
	if err := reg(maskID, ai.PhaseResource, w.Mask); err != nil {
		return err
	}

	for i, c := range w.Chasers {
		if err := reg(c.ObjectID(), ai.PhasePerception, c); err != nil {
			return err
		}
		if err := reg(agentBaseID+uint32(i), ai.PhasePerception, w.Agents[i]); err != nil {
			return err
		}
		if err := reg(contactBase+uint32(i), ai.PhaseContact, w.contacts[i]); err != nil {
			return err
		}
	}

	for _, s := range w.Stalkers {
		if err := reg(s.ObjectID(), ai.PhasePerception, s); err != nil {
			return err
		}
	}

	slog.Info("world registered",
		"chasers", len(w.Chasers),
		"stalkers", len(w.Stalkers),
		"tickers", mgr.Count())
	return nil
}

// tickAutoMask is a scripted player reflex: mask on when spotted.
func (w *World) tickAutoMask(float64) {
	if w.Mask.IsActive() || w.Mask.IsTransitioning() {
		return
	}

	for _, c := range w.Chasers {
		if k := c.Kind(); k == ai.StateAlerting || k == ai.StateChasing {
			w.Mask.RequestToggle()
			return
		}
	}
}

// Status is a point-in-time summary for reporting.
type Status struct {
	PlayerHP     int
	Deaths       int
	MaskCharge   float64
	MaskActive   bool
	ChaserStates []ai.StateKind
}

// Status returns the current summary. Call from the tick goroutine or after it stopped.
func (w *World) Status() Status {
	s := Status{
		PlayerHP:   w.Health.Current(),
		Deaths:     w.deaths,
		MaskCharge: w.Mask.Charge(),
		MaskActive: w.Mask.IsActive(),
	}
	for _, c := range w.Chasers {
		s.ChaserStates = append(s.ChaserStates, c.Kind())
	}
	return s
}
