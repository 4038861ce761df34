package ai

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Phase orders tickers within one simulation tick.
type Phase int32

const (
	// PhaseInput - player movement and scripted input
	PhaseInput Phase = iota
	// PhaseResource - stealth masks; always before perception reads them
	PhaseResource
	// PhasePerception - enemy AI
	PhasePerception
	// PhaseContact - collision checks raising OnContact
	PhaseContact

	phaseCount
)

// String returns human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "INPUT"
	case PhaseResource:
		return "RESOURCE"
	case PhasePerception:
		return "PERCEPTION"
	case PhaseContact:
		return "CONTACT"
	default:
		return "UNKNOWN"
	}
}

type entry struct {
	id     uint32
	phase  Phase
	ticker Ticker
}

// TickManager drives every registered ticker from one goroutine, phase by phase.
type TickManager struct {
	mu      sync.Mutex
	entries map[uint32]*entry
	order   [phaseCount][]*entry // per-phase tick order, rebuilt on change
	dirty   bool

	interval time.Duration
	clock    Clock
	stopCh   chan struct{}
	stopOnce sync.Once

	tickerCount atomic.Int32 // cached count of tickers (O(1) access)
	ticks       atomic.Int64
}

// NewTickManager creates a tick manager firing every interval with dt taken from clock.
func NewTickManager(interval time.Duration, clock Clock) *TickManager {
	return &TickManager{
		entries:  make(map[uint32]*entry),
		interval: interval,
		clock:    clock,
		stopCh:   make(chan struct{}),
	}
}

// Register adds a ticker under objectID in phase. Controllers are started.
// Re-registering an ID replaces the previous ticker.
func (m *TickManager) Register(objectID uint32, phase Phase, t Ticker) error {
	if phase < 0 || phase >= phaseCount {
		return fmt.Errorf("registering %d: invalid phase %d", objectID, phase)
	}

	m.mu.Lock()
	old, replaced := m.entries[objectID]
	m.entries[objectID] = &entry{id: objectID, phase: phase, ticker: t}
	m.dirty = true
	m.mu.Unlock()

	if replaced {
		stopIfController(old.ticker)
	} else {
		m.tickerCount.Add(1)
	}

	if c, ok := t.(Controller); ok {
		c.Start()
	}

	slog.Debug("ticker registered", "objectID", objectID, "phase", phase)
	return nil
}

// Unregister removes a ticker and stops it if it is a Controller.
func (m *TickManager) Unregister(objectID uint32) {
	m.mu.Lock()
	e, ok := m.entries[objectID]
	if ok {
		delete(m.entries, objectID)
		m.dirty = true
	}
	m.mu.Unlock()

	if !ok {
		return
	}

	m.tickerCount.Add(-1)
	stopIfController(e.ticker)

	slog.Debug("ticker unregistered", "objectID", objectID)
}

// Get returns the ticker registered under objectID.
func (m *TickManager) Get(objectID uint32) (Ticker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[objectID]
	if !ok {
		return nil, fmt.Errorf("ticker not found for objectID %d", objectID)
	}
	return e.ticker, nil
}

// Count returns number of registered tickers (O(1) cached count)
func (m *TickManager) Count() int {
	return int(m.tickerCount.Load())
}

// Ticks returns how many ticks have run.
func (m *TickManager) Ticks() int64 {
	return m.ticks.Load()
}

// Start runs the tick loop (blocks until context is canceled or Stop is called).
func (m *TickManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	slog.Info("tick manager started", "interval", m.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("tick manager stopping")
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("tick manager stopped")
			return nil

		case <-ticker.C:
			m.Step(m.clock.DeltaTimeSeconds())
		}
	}
}

// Stop stops the tick loop. Safe to call more than once.
func (m *TickManager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// Step runs one tick of dt seconds: every phase in order, tickers within a
// phase by ascending objectID.
func (m *TickManager) Step(dt float64) {
	dt = sanitizeDelta(dt)

	for _, phase := range m.snapshot() {
		for _, e := range phase {
			e.ticker.Tick(dt)
		}
	}

	n := m.ticks.Add(1)
	if IsDebugEnabled() && n%100 == 0 {
		slog.Debug("tick completed", "tick", n, "tickers", m.Count(), "dt", dt)
	}
}

// snapshot returns the per-phase order, rebuilding it after registry changes.
func (m *TickManager) snapshot() [phaseCount][]*entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.dirty {
		return m.order
	}

	var order [phaseCount][]*entry
	for _, e := range m.entries {
		order[e.phase] = append(order[e.phase], e)
	}
	for p := range order {
		slices.SortFunc(order[p], func(a, b *entry) int {
			return cmp.Compare(a.id, b.id)
		})
	}

	m.order = order
	m.dirty = false
	return order
}

func stopIfController(t Ticker) {
	if c, ok := t.(Controller); ok {
		c.Stop()
	}
}
