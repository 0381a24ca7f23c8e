package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
	"github.com/TheoKim/llm-pokemon-trainer/internal/dex"
)

// AdvisorFactory builds a fresh advisor for a new battle. Each battle gets
// its own so conversational memory never leaks between battles.
type AdvisorFactory func() Advisor

// Manager owns one Decider per live battle, keyed by battle ID. All methods
// are safe for concurrent use.
type Manager struct {
	log     *zap.Logger
	factory AdvisorFactory
	catalog *dex.Catalog
	src     Source
	opts    DeciderOptions

	mu       sync.RWMutex
	deciders map[uuid.UUID]*Decider
}

// NewManager constructs a Manager.
//
// Precondition: log, factory, and catalog are non-nil.
func NewManager(log *zap.Logger, factory AdvisorFactory, catalog *dex.Catalog, opts DeciderOptions) *Manager {
	if log == nil {
		panic("engine: NewManager requires a logger")
	}
	if factory == nil {
		panic("engine: NewManager requires an advisor factory")
	}
	if catalog == nil {
		panic("engine: NewManager requires a catalog")
	}
	return &Manager{
		log:      log,
		factory:  factory,
		catalog:  catalog,
		src:      NewCryptoSource(),
		opts:     opts,
		deciders: make(map[uuid.UUID]*Decider),
	}
}

// Ensure returns the Decider for the battle, creating one on first sight.
func (m *Manager) Ensure(id uuid.UUID) *Decider {
	m.mu.RLock()
	d, ok := m.deciders[id]
	m.mu.RUnlock()
	if ok {
		return d
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := m.deciders[id]; ok {
		return d
	}
	d = NewDecider(m.log.With(zap.String("battle", id.String())), m.factory(), m.catalog, m.src, m.opts)
	m.deciders[id] = d
	m.log.Info("battle registered", zap.String("battle", id.String()))
	return d
}

// Decider returns the Decider for the battle, if one exists.
func (m *Manager) Decider(id uuid.UUID) (*Decider, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.deciders[id]
	return d, ok
}

// Remove forgets a finished battle.
func (m *Manager) Remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.deciders[id]; ok {
		delete(m.deciders, id)
		m.log.Info("battle removed", zap.String("battle", id.String()))
	}
}

// Count returns the number of live battles.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.deciders)
}

// AwaitActions polls fetch until it yields a snapshot with at least one
// legal action or a forced switch, or until the deadline passes. It guards
// against deciding on a stale snapshot taken mid-update.
func AwaitActions(ctx context.Context, fetch func() *battle.Snapshot, interval, max time.Duration) (*battle.Snapshot, error) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	if max <= 0 {
		max = 5 * time.Second
	}
	deadline := time.Now().Add(max)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if snap := fetch(); snap != nil &&
			(snap.ForceSwitch || len(snap.AvailableMoves) > 0 || len(snap.AvailableSwitches) > 0) {
			return snap, nil
		}
		if time.Now().After(deadline) {
			return nil, context.DeadlineExceeded
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
