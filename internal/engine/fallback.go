package engine

import (
	"crypto/rand"
	"math/big"

	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
)

// Source produces random integers for the fallback's switch selection.
// A local interface keeps the selector deterministic under test.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// cryptoSource implements Source using crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: every value returned by Intn is uniform in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "engine: Intn called with n <= 0" otherwise.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("engine: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("engine: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// Fallback deterministically picks one action when the external
// decision-maker is unavailable or keeps returning invalid choices.
type Fallback struct {
	src Source
}

// NewFallback constructs a Fallback.
//
// Precondition: src must not be nil.
func NewFallback(src Source) *Fallback {
	if src == nil {
		panic("engine.NewFallback: src must not be nil")
	}
	return &Fallback{src: src}
}

// Select picks one action without external input:
//
//  1. the move with strictly greatest expected damage, ties broken by
//     first-seen order in AvailableMoves;
//  2. with no damaging move, a uniformly random legal switch;
//  3. with no switches either, the first-seen status move (all expected
//     damages are zero in this degenerate case, so first-seen order is the
//     explicit tie-break);
//  4. with no legal actions at all, ok is false and the caller must commit
//     the pass/forfeit signal.
func (f *Fallback) Select(snap *battle.Snapshot, damage map[string]battle.DamageEstimate) (action battle.Action, ok bool) {
	best := ""
	bestDamage := 0.0
	for _, move := range snap.AvailableMoves {
		if est, found := damage[move.ID]; found && est.ExpectedDamage > bestDamage {
			best = move.ID
			bestDamage = est.ExpectedDamage
		}
	}
	if best != "" {
		return battle.MoveAction(best), true
	}

	if n := len(snap.AvailableSwitches); n > 0 {
		pick := snap.AvailableSwitches[f.src.Intn(n)]
		return battle.SwitchAction(pick.Species), true
	}

	if len(snap.AvailableMoves) > 0 {
		return battle.MoveAction(snap.AvailableMoves[0].ID), true
	}

	return battle.Action{}, false
}
