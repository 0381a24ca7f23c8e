// Package dex holds the static battle data the decision engine consults:
// the type-effectiveness chart, ability modifier rules, critical-hit tables,
// and the tactical move catalogue.
//
// Everything here is immutable after load; all lookups are pure functions.
package dex

import "github.com/TheoKim/llm-pokemon-trainer/internal/battle"

// typeChart lists the non-neutral matchups for the generation 6+ chart,
// attacking type → defending type → multiplier. Absent entries are 1.
var typeChart = map[battle.Type]map[battle.Type]float64{
	battle.TypeNormal: {
		battle.TypeRock: 0.5, battle.TypeGhost: 0, battle.TypeSteel: 0.5,
	},
	battle.TypeFire: {
		battle.TypeFire: 0.5, battle.TypeWater: 0.5, battle.TypeGrass: 2,
		battle.TypeIce: 2, battle.TypeBug: 2, battle.TypeRock: 0.5,
		battle.TypeDragon: 0.5, battle.TypeSteel: 2,
	},
	battle.TypeWater: {
		battle.TypeFire: 2, battle.TypeWater: 0.5, battle.TypeGrass: 0.5,
		battle.TypeGround: 2, battle.TypeRock: 2, battle.TypeDragon: 0.5,
	},
	battle.TypeElectric: {
		battle.TypeWater: 2, battle.TypeElectric: 0.5, battle.TypeGrass: 0.5,
		battle.TypeGround: 0, battle.TypeFlying: 2, battle.TypeDragon: 0.5,
	},
	battle.TypeGrass: {
		battle.TypeFire: 0.5, battle.TypeWater: 2, battle.TypeGrass: 0.5,
		battle.TypePoison: 0.5, battle.TypeGround: 2, battle.TypeFlying: 0.5,
		battle.TypeBug: 0.5, battle.TypeRock: 2, battle.TypeDragon: 0.5,
		battle.TypeSteel: 0.5,
	},
	battle.TypeIce: {
		battle.TypeFire: 0.5, battle.TypeWater: 0.5, battle.TypeGrass: 2,
		battle.TypeIce: 0.5, battle.TypeGround: 2, battle.TypeFlying: 2,
		battle.TypeDragon: 2, battle.TypeSteel: 0.5,
	},
	battle.TypeFighting: {
		battle.TypeNormal: 2, battle.TypeIce: 2, battle.TypePoison: 0.5,
		battle.TypeFlying: 0.5, battle.TypePsychic: 0.5, battle.TypeBug: 0.5,
		battle.TypeRock: 2, battle.TypeGhost: 0, battle.TypeDark: 2,
		battle.TypeSteel: 2, battle.TypeFairy: 0.5,
	},
	battle.TypePoison: {
		battle.TypeGrass: 2, battle.TypePoison: 0.5, battle.TypeGround: 0.5,
		battle.TypeRock: 0.5, battle.TypeGhost: 0.5, battle.TypeSteel: 0,
		battle.TypeFairy: 2,
	},
	battle.TypeGround: {
		battle.TypeFire: 2, battle.TypeElectric: 2, battle.TypeGrass: 0.5,
		battle.TypePoison: 2, battle.TypeFlying: 0, battle.TypeBug: 0.5,
		battle.TypeRock: 2, battle.TypeSteel: 2,
	},
	battle.TypeFlying: {
		battle.TypeElectric: 0.5, battle.TypeGrass: 2, battle.TypeFighting: 2,
		battle.TypeBug: 2, battle.TypeRock: 0.5, battle.TypeSteel: 0.5,
	},
	battle.TypePsychic: {
		battle.TypeFighting: 2, battle.TypePoison: 2, battle.TypePsychic: 0.5,
		battle.TypeDark: 0, battle.TypeSteel: 0.5,
	},
	battle.TypeBug: {
		battle.TypeFire: 0.5, battle.TypeGrass: 2, battle.TypeFighting: 0.5,
		battle.TypePoison: 0.5, battle.TypeFlying: 0.5, battle.TypePsychic: 2,
		battle.TypeGhost: 0.5, battle.TypeDark: 2, battle.TypeSteel: 0.5,
		battle.TypeFairy: 0.5,
	},
	battle.TypeRock: {
		battle.TypeFire: 2, battle.TypeIce: 2, battle.TypeFighting: 0.5,
		battle.TypeGround: 0.5, battle.TypeFlying: 2, battle.TypeBug: 2,
		battle.TypeSteel: 0.5,
	},
	battle.TypeGhost: {
		battle.TypeNormal: 0, battle.TypePsychic: 2, battle.TypeGhost: 2,
		battle.TypeDark: 0.5,
	},
	battle.TypeDragon: {
		battle.TypeDragon: 2, battle.TypeSteel: 0.5, battle.TypeFairy: 0,
	},
	battle.TypeDark: {
		battle.TypeFighting: 0.5, battle.TypePsychic: 2, battle.TypeGhost: 2,
		battle.TypeDark: 0.5, battle.TypeFairy: 0.5,
	},
	battle.TypeSteel: {
		battle.TypeFire: 0.5, battle.TypeWater: 0.5, battle.TypeElectric: 0.5,
		battle.TypeIce: 2, battle.TypeRock: 2, battle.TypeSteel: 0.5,
		battle.TypeFairy: 2,
	},
	battle.TypeFairy: {
		battle.TypeFire: 0.5, battle.TypeFighting: 2, battle.TypePoison: 0.5,
		battle.TypeDragon: 2, battle.TypeDark: 2, battle.TypeSteel: 0.5,
	},
}

// Matchup returns the single-type multiplier for attacking type vs defending
// type.
//
// Postcondition: Returns one of 0, 0.5, 1, or 2.
func Matchup(attacking, defending battle.Type) float64 {
	if row, ok := typeChart[attacking]; ok {
		if mult, ok := row[defending]; ok {
			return mult
		}
	}
	return 1
}

// Effectiveness returns the combined multiplier for a move type against a
// defender's full type pair.
//
// Postcondition: Returns a product of single-type multipliers; for a dual
// type the result is in {0, 0.25, 0.5, 1, 2, 4}.
func Effectiveness(attacking battle.Type, defender []battle.Type) float64 {
	mult := 1.0
	for _, dt := range defender {
		if dt == "" {
			continue
		}
		mult *= Matchup(attacking, dt)
	}
	return mult
}
