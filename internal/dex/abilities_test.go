package dex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
)

func fireCtx() DefenseContext {
	return DefenseContext{
		Move:          battle.Move{ID: "flamethrower", Category: battle.CategorySpecial},
		MoveType:      battle.TypeFire,
		Effectiveness: 1,
	}
}

func TestDefensiveImmunities(t *testing.T) {
	assert.Equal(t, 0.0, DefensiveAbilityModifier("flashfire", fireCtx()))

	waterCtx := DefenseContext{
		Move:          battle.Move{ID: "surf", Category: battle.CategorySpecial},
		MoveType:      battle.TypeWater,
		Effectiveness: 1,
	}
	assert.Equal(t, 0.0, DefensiveAbilityModifier("waterabsorb", waterCtx))
	assert.Equal(t, 0.0, DefensiveAbilityModifier("dryskin", waterCtx))

	groundCtx := DefenseContext{
		Move:          battle.Move{ID: "earthquake", Category: battle.CategoryPhysical},
		MoveType:      battle.TypeGround,
		Effectiveness: 1,
	}
	assert.Equal(t, 0.0, DefensiveAbilityModifier("levitate", groundCtx))
}

func TestDefensiveReductions(t *testing.T) {
	ctx := fireCtx()
	ctx.Effectiveness = 2
	assert.Equal(t, 0.75, DefensiveAbilityModifier("filter", ctx))
	assert.Equal(t, 0.75, DefensiveAbilityModifier("solidrock", ctx))

	// Filter does nothing against neutral hits.
	assert.Equal(t, 1.0, DefensiveAbilityModifier("filter", fireCtx()))

	// Thick fat halves fire.
	assert.Equal(t, 0.5, DefensiveAbilityModifier("thickfat", fireCtx()))

	// Multiscale only at full HP.
	full := fireCtx()
	full.DefenderFullHP = true
	assert.Equal(t, 0.5, DefensiveAbilityModifier("multiscale", full))
	assert.Equal(t, 1.0, DefensiveAbilityModifier("multiscale", fireCtx()))
}

func TestDryskinAmplifiesFire(t *testing.T) {
	assert.Equal(t, 1.25, DefensiveAbilityModifier("dryskin", fireCtx()))
}

func TestWorstCaseDefensiveModifierPicksMinimum(t *testing.T) {
	// With the ability unknown, assume the most damage-reducing candidate.
	mod := WorstCaseDefensiveModifier([]string{"intimidate", "flashfire"}, fireCtx())
	assert.Equal(t, 0.0, mod)

	mod = WorstCaseDefensiveModifier([]string{"thickfat", "intimidate"}, fireCtx())
	assert.Equal(t, 0.5, mod)
}

func TestWorstCaseDefensiveModifierEmptySet(t *testing.T) {
	assert.Equal(t, 1.0, WorstCaseDefensiveModifier(nil, fireCtx()))
}

func TestOffensivePinchAbilities(t *testing.T) {
	ctx := OffenseContext{
		Move:       battle.Move{ID: "flamethrower", BasePower: 90, Category: battle.CategorySpecial},
		MoveType:   battle.TypeFire,
		HPFraction: 0.2,
	}
	assert.Equal(t, 1.5, OffensivePowerModifier("blaze", ctx))

	ctx.HPFraction = 0.8
	assert.Equal(t, 1.0, OffensivePowerModifier("blaze", ctx))
}

func TestOffensiveTechnician(t *testing.T) {
	weak := OffenseContext{
		Move:     battle.Move{ID: "bulletpunch", BasePower: 40, Category: battle.CategoryPhysical},
		MoveType: battle.TypeSteel,
	}
	assert.Equal(t, 1.5, OffensivePowerModifier("technician", weak))

	strong := weak
	strong.Move.BasePower = 90
	assert.Equal(t, 1.0, OffensivePowerModifier("technician", strong))
}

func TestOffensiveGuts(t *testing.T) {
	ctx := OffenseContext{
		Move:     battle.Move{ID: "facade", BasePower: 70, Category: battle.CategoryPhysical},
		MoveType: battle.TypeNormal,
		Status:   battle.StatusBurn,
	}
	assert.Equal(t, 1.5, OffensivePowerModifier("guts", ctx))
}

func TestSpeedAbilityMultiplier(t *testing.T) {
	assert.Equal(t, 2.0, SpeedAbilityMultiplier("swiftswim", battle.WeatherRain, 10))
	assert.Equal(t, 1.0, SpeedAbilityMultiplier("swiftswim", battle.WeatherNone, 10))
	assert.Equal(t, 2.0, SpeedAbilityMultiplier("chlorophyll", battle.WeatherSun, 10))
	assert.Equal(t, 2.0, SpeedAbilityMultiplier("slushrush", battle.WeatherSnow, 10))

	// Slow start halves speed for the first five turns.
	assert.Equal(t, 0.5, SpeedAbilityMultiplier("slowstart", battle.WeatherNone, 2))
	assert.Equal(t, 1.0, SpeedAbilityMultiplier("slowstart", battle.WeatherNone, 6))
}
