// Package engine implements the per-turn decision core: damage estimation,
// turn-order resolution, the tactical action filter pipeline, the fallback
// selector, and the per-battle decider that ties them to the external
// decision-maker.
//
// Everything except the decider's advisor call is a pure, synchronous
// function over the current snapshot; no computation here blocks.
package engine

import (
	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
	"github.com/TheoKim/llm-pokemon-trainer/internal/dex"
)

// Side identifies one of the two battle sides.
// The zero value (SideUnknown) is intentionally invalid.
type Side int

const (
	SideUnknown Side = iota // zero value; intentionally invalid
	SideSelf
	SideOpponent
)

// String returns the human-readable name of the Side.
func (s Side) String() string {
	switch s {
	case SideSelf:
		return "self"
	case SideOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// TurnOrder is the turn-order resolver's output for one turn.
type TurnOrder struct {
	// FasterSide is the side predicted to act first this turn.
	FasterSide Side
	// SelfSpeed and OpponentSpeed are the effective speeds used for the
	// prediction.
	SelfSpeed     float64
	OpponentSpeed float64
}

// SelfMovesFirst reports whether the own side is predicted to act first.
func (o TurnOrder) SelfMovesFirst() bool {
	return o.FasterSide == SideSelf
}

// ResolveOrder predicts this turn's move order from effective speeds,
// ignoring move priority. Under Trick Room the slower side acts first.
//
// Exact speed ties resolve to the opponent: the engine never assumes it wins
// a tie, so speed-gated overrides only fire when strictly faster.
//
// Postcondition: FasterSide is SideSelf or SideOpponent, never SideUnknown.
func ResolveOrder(snap *battle.Snapshot) TurnOrder {
	order := TurnOrder{
		SelfSpeed:     effectiveSpeed(snap, snap.ActiveSelf, snap.SideSelf),
		OpponentSpeed: effectiveSpeed(snap, snap.ActiveOpponent, snap.SideOpponent),
	}

	selfFirst := order.SelfSpeed > order.OpponentSpeed
	if snap.HasField(battle.FieldTrickRoom) {
		selfFirst = order.SelfSpeed < order.OpponentSpeed
	}

	if selfFirst {
		order.FasterSide = SideSelf
	} else {
		order.FasterSide = SideOpponent
	}
	return order
}

// effectiveSpeed computes one side's effective speed:
// base × boost stage factor × ability multiplier × status multiplier ×
// tailwind multiplier.
func effectiveSpeed(snap *battle.Snapshot, p battle.Pokemon, side map[battle.SideCondition]int) float64 {
	speed := float64(p.Stats[battle.StatSpeed])

	if stage := clampStage(p.Boost(battle.StatSpeed)); stage > 0 {
		speed *= float64(2+stage) / 2
	} else if stage < 0 {
		speed *= 2 / float64(2-stage)
	}

	speed *= dex.SpeedAbilityMultiplier(p.Ability, snap.Weather, p.TurnsActive)

	if p.Status == battle.StatusParalysis {
		if snap.Generation >= 7 {
			speed *= 0.5
		} else {
			speed *= 0.25
		}
	}

	if side[battle.SideTailwind] > 0 {
		speed *= 2
	}

	return speed
}

// clampStage clamps a boost stage to the legal [-6, 6] range.
func clampStage(stage int) int {
	if stage > battle.MaxBoost {
		return battle.MaxBoost
	}
	if stage < -battle.MaxBoost {
		return -battle.MaxBoost
	}
	return stage
}
