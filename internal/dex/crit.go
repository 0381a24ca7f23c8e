package dex

import "github.com/TheoKim/llm-pokemon-trainer/internal/battle"

// critChanceModern is the stage → probability table for generation 7+.
var critChanceModern = map[int]float64{0: 1.0 / 24, 1: 1.0 / 8, 2: 1.0 / 2}

// critChanceGen6 is the stage → probability table for generation 6.
var critChanceGen6 = map[int]float64{0: 1.0 / 16, 1: 1.0 / 8, 2: 1.0 / 2}

// critChanceClassic is the stage → probability table for generations before 6.
var critChanceClassic = map[int]float64{0: 1.0 / 16, 1: 1.0 / 8, 2: 1.0 / 4, 3: 1.0 / 3, 4: 1.0 / 2}

// CritStage returns a move's effective critical-hit stage for the given
// attacker, raised by the super-luck-style ability and the scope-lens-style
// item.
func CritStage(move battle.Move, attacker battle.Pokemon) int {
	stage := move.CritRatio
	if attacker.Ability == "superluck" {
		stage++
	}
	if attacker.Item == "scopelens" {
		stage++
	}
	return stage
}

// CritChance returns the probability of a critical hit at the given stage
// under the given generation's table. Stages above the table cap to the
// generation's maximum chance.
//
// Postcondition: Returns a value in (0, 1].
func CritChance(generation, stage int) float64 {
	switch {
	case generation >= 7:
		if p, ok := critChanceModern[stage]; ok {
			return p
		}
		return 1.0
	case generation == 6:
		if p, ok := critChanceGen6[stage]; ok {
			return p
		}
		return 1.0
	default:
		if p, ok := critChanceClassic[stage]; ok {
			return p
		}
		return 0.5
	}
}

// CritMultiplier returns the damage multiplier of a critical hit for the
// attacker's ability and generation. The sniper-style ability amplifies it.
func CritMultiplier(generation int, ability string) float64 {
	if ability == "sniper" {
		if generation >= 6 {
			return 2.25
		}
		return 3
	}
	if generation >= 6 {
		return 1.5
	}
	return 2
}
