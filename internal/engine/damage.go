package engine

import (
	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
	"github.com/TheoKim/llm-pokemon-trainer/internal/dex"
)

// EstimateDamage computes an expected-damage figure and classification
// metadata for every move in snap.AvailableMoves. lastMove is the id of the
// move committed on the previous turn (empty on the first turn after a
// switch); it only feeds the analytic-style repeat bonus.
//
// Pure function of the snapshot and the static tables: no side effects, no
// hidden state, never fails. Moves with no special formula fall back to
// their base power unchanged.
//
// Postcondition: the result has exactly one entry per available move id;
// every ExpectedDamage is >= 0.
func EstimateDamage(snap *battle.Snapshot, lastMove string) map[string]battle.DamageEstimate {
	estimates := make(map[string]battle.DamageEstimate, len(snap.AvailableMoves))
	attacker := snap.ActiveSelf
	defender := snap.ActiveOpponent

	for _, move := range snap.AvailableMoves {
		moveType := resolveMoveType(snap, move)

		// Type chart first, then ability adjustment: immunities force the
		// multiplier to 0 and win over any multiplicative modifier. With an
		// unknown defending ability, assume the most damage-reducing of the
		// possible abilities.
		effectiveness := dex.Effectiveness(moveType, defender.Types)
		defCtx := dex.DefenseContext{
			Move:           move,
			MoveType:       moveType,
			Effectiveness:  effectiveness,
			DefenderFullHP: defender.HPFraction >= 1,
		}
		effectiveness *= dex.WorstCaseDefensiveModifier(defender.Abilities(), defCtx)

		// A tinted-lens style attacker doubles into resistances, applied
		// after all defensive adjustments and only while still resisted.
		if attacker.Ability == "tintedlens" && effectiveness < 1 {
			effectiveness *= 2
		}

		isStab := attacker.HasType(moveType)

		// Status moves and immune targets short-circuit: zero damage, but
		// the metadata is still recorded for the filter rules.
		if move.Category == battle.CategoryStatus || effectiveness == 0 {
			estimates[move.ID] = battle.DamageEstimate{
				ExpectedDamage: 0,
				STAB:           isStab,
				Multiplier:     effectiveness,
				Priority:       move.Priority,
			}
			continue
		}

		// Power is rebuilt from the resolved base: STAB stacking depends on
		// the attacker's ability (an adaptability-style doubling replaces
		// the standard 1.5× bonus, never stacks with it).
		power := float64(EffectivePower(snap, move))
		if isStab {
			if attacker.Ability == "adaptability" {
				power *= 2.0
			} else {
				power *= 1.5
			}
		}

		power *= dex.OffensivePowerModifier(attacker.Ability, dex.OffenseContext{
			Move:         move,
			MoveType:     moveType,
			HPFraction:   attacker.HPFraction,
			Status:       attacker.Status,
			Weather:      snap.Weather,
			RepeatedMove: snap.Turn > 1 && lastMove == move.ID,
		})

		power *= weatherPowerModifier(snap.Weather, moveType)
		power *= terrainPowerModifier(snap, attacker, moveType)

		finalModifier := defensiveStageModifier(snap, attacker, move)

		// A freeze-dry style override recomputes effectiveness from the
		// defender's actual types, ignoring the move's nominal typing.
		if move.ID == "freezedry" {
			effectiveness = freezeDryEffectiveness(defender.Types)
		}

		baseDamage := power * effectiveness * finalModifier

		critChance := dex.CritChance(snap.Generation, dex.CritStage(move, attacker))
		critMultiplier := dex.CritMultiplier(snap.Generation, attacker.Ability)
		critModifier := 1 + critChance*(critMultiplier-1)

		estimates[move.ID] = battle.DamageEstimate{
			ExpectedDamage: move.HitChance() * baseDamage * critModifier,
			STAB:           isStab,
			Multiplier:     effectiveness,
			Priority:       move.Priority,
		}
	}

	return estimates
}

// resolveMoveType handles variable-type moves before any other step. Only
// the weather-ball style substitution changes typing; everything else keeps
// the nominal type.
func resolveMoveType(snap *battle.Snapshot, move battle.Move) battle.Type {
	if move.ID != "weatherball" {
		return move.Type
	}
	switch {
	case snap.Weather.SunActive():
		return battle.TypeFire
	case snap.Weather.RainActive():
		return battle.TypeWater
	case snap.Weather == battle.WeatherSandstorm:
		return battle.TypeRock
	case snap.Weather == battle.WeatherSnow:
		return battle.TypeIce
	}
	return move.Type
}

// EffectivePower resolves a move's variable base power: weather-ball power,
// full-loyalty fixed power, and the weight-ratio tiers. Unknown weights fall
// back to a fixed default tier rather than dividing by zero.
func EffectivePower(snap *battle.Snapshot, move battle.Move) int {
	switch move.ID {
	case "weatherball":
		if snap.Weather.SunActive() || snap.Weather.RainActive() ||
			snap.Weather == battle.WeatherSandstorm || snap.Weather == battle.WeatherSnow {
			return 100
		}
	case "return", "frustration":
		// Assume maximum happiness or frustration.
		return 102
	case "heavyslam", "heatcrash":
		atkWeight := snap.ActiveSelf.WeightKg
		defWeight := snap.ActiveOpponent.WeightKg
		if atkWeight <= 0 || defWeight <= 0 {
			return 100
		}
		ratio := defWeight / atkWeight
		switch {
		case ratio < 0.2:
			return 120
		case ratio < 0.25:
			return 100
		case ratio < 1.0/3.0:
			return 80
		case ratio < 0.5:
			return 60
		default:
			return 40
		}
	}
	return move.BasePower
}

// weatherPowerModifier returns the weather power multiplier for the move type.
func weatherPowerModifier(w battle.Weather, moveType battle.Type) float64 {
	mod := 1.0
	if w.SunActive() {
		if moveType == battle.TypeFire {
			mod *= 1.5
		}
		if moveType == battle.TypeWater {
			mod *= 0.5
		}
	}
	if w.RainActive() {
		if moveType == battle.TypeWater {
			mod *= 1.5
		}
		if moveType == battle.TypeFire {
			mod *= 0.5
		}
	}
	return mod
}

// terrainPowerModifier returns the terrain multiplier; terrains only boost
// grounded attackers.
func terrainPowerModifier(snap *battle.Snapshot, attacker battle.Pokemon, moveType battle.Type) float64 {
	grounded := !attacker.HasType(battle.TypeFlying) && attacker.Ability != "levitate"
	if !grounded {
		return 1
	}
	switch {
	case snap.HasField(battle.FieldElectricTerrain) && moveType == battle.TypeElectric:
		return 1.3
	case snap.HasField(battle.FieldGrassyTerrain) && moveType == battle.TypeGrass:
		return 1.3
	case snap.HasField(battle.FieldPsychicTerrain) && moveType == battle.TypePsychic:
		return 1.3
	}
	return 1
}

// defensiveStageModifier is the final multiplicative stage: burn penalty,
// screen halving, and weather-driven defensive stat boosts.
func defensiveStageModifier(snap *battle.Snapshot, attacker battle.Pokemon, move battle.Move) float64 {
	mod := 1.0
	if attacker.Status == battle.StatusBurn && move.Category == battle.CategoryPhysical && attacker.Ability != "guts" {
		mod *= 0.5
	}
	if snap.SideOpponent[battle.SideReflect] > 0 && move.Category == battle.CategoryPhysical {
		mod *= 0.5
	}
	if snap.SideOpponent[battle.SideLightScreen] > 0 && move.Category == battle.CategorySpecial {
		mod *= 0.5
	}
	if snap.Weather == battle.WeatherSandstorm && snap.ActiveOpponent.HasType(battle.TypeRock) &&
		move.Category == battle.CategorySpecial && snap.Generation >= 4 {
		mod *= 1 / 1.5
	}
	if snap.Weather == battle.WeatherSnow && snap.ActiveOpponent.HasType(battle.TypeIce) &&
		move.Category == battle.CategoryPhysical && snap.Generation >= 9 {
		mod *= 1 / 1.5
	}
	return mod
}

// freezeDryEffectiveness computes the hard-coded override: ice-type chart
// against the defender's actual types, except water is always weak to it.
func freezeDryEffectiveness(defender []battle.Type) float64 {
	mult := 1.0
	for _, t := range defender {
		if t == "" {
			continue
		}
		if t == battle.TypeWater {
			mult *= 2
		} else {
			mult *= dex.Matchup(battle.TypeIce, t)
		}
	}
	return mult
}
