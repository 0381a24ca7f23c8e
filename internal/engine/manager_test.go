package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
	"github.com/TheoKim/llm-pokemon-trainer/internal/dex"
)

func newTestManager() *Manager {
	factory := func() Advisor { return &scriptedAdvisor{} }
	return NewManager(zap.NewNop(), factory, dex.DefaultCatalog(), DeciderOptions{})
}

func TestManagerEnsureIsIdempotent(t *testing.T) {
	m := newTestManager()
	id := uuid.New()

	first := m.Ensure(id)
	second := m.Ensure(id)
	assert.Same(t, first, second)
	assert.Equal(t, 1, m.Count())
}

func TestManagerSeparateBattles(t *testing.T) {
	m := newTestManager()
	a := m.Ensure(uuid.New())
	b := m.Ensure(uuid.New())
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, m.Count())
}

func TestManagerRemove(t *testing.T) {
	m := newTestManager()
	id := uuid.New()
	m.Ensure(id)
	m.Remove(id)

	_, ok := m.Decider(id)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Count())

	// Removing twice is harmless.
	m.Remove(id)
}

func TestManagerConcurrentEnsure(t *testing.T) {
	m := newTestManager()
	id := uuid.New()

	var wg sync.WaitGroup
	deciders := make([]*Decider, 16)
	for i := range deciders {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			deciders[i] = m.Ensure(id)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, m.Count())
	for _, d := range deciders {
		assert.Same(t, deciders[0], d)
	}
}

func TestAwaitActionsImmediate(t *testing.T) {
	want := &battle.Snapshot{
		AvailableMoves: []battle.Move{{ID: "tackle"}},
	}
	got, err := AwaitActions(context.Background(), func() *battle.Snapshot { return want },
		time.Millisecond, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestAwaitActionsForceSwitchCounts(t *testing.T) {
	want := &battle.Snapshot{ForceSwitch: true}
	got, err := AwaitActions(context.Background(), func() *battle.Snapshot { return want },
		time.Millisecond, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestAwaitActionsEventualSnapshot(t *testing.T) {
	var mu sync.Mutex
	var snap *battle.Snapshot
	go func() {
		time.Sleep(10 * time.Millisecond)
		mu.Lock()
		snap = &battle.Snapshot{AvailableSwitches: []battle.Pokemon{{Species: "swampert"}}}
		mu.Unlock()
	}()

	got, err := AwaitActions(context.Background(), func() *battle.Snapshot {
		mu.Lock()
		defer mu.Unlock()
		return snap
	}, time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestAwaitActionsDeadline(t *testing.T) {
	_, err := AwaitActions(context.Background(), func() *battle.Snapshot { return nil },
		time.Millisecond, 20*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAwaitActionsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := AwaitActions(ctx, func() *battle.Snapshot { return nil },
		time.Millisecond, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
