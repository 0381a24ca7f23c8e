package dex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
)

func TestMatchupKnownValues(t *testing.T) {
	assert.Equal(t, 2.0, Matchup(battle.TypeWater, battle.TypeFire))
	assert.Equal(t, 0.5, Matchup(battle.TypeFire, battle.TypeWater))
	assert.Equal(t, 0.0, Matchup(battle.TypeNormal, battle.TypeGhost))
	assert.Equal(t, 0.0, Matchup(battle.TypeGround, battle.TypeFlying))
	assert.Equal(t, 1.0, Matchup(battle.TypeNormal, battle.TypeWater))
}

func TestEffectivenessDualType(t *testing.T) {
	// Grass hits Water/Ground quad effective.
	assert.Equal(t, 4.0, Effectiveness(battle.TypeGrass, []battle.Type{battle.TypeWater, battle.TypeGround}))
	// Electric into Water/Ground is nullified by the Ground half.
	assert.Equal(t, 0.0, Effectiveness(battle.TypeElectric, []battle.Type{battle.TypeWater, battle.TypeGround}))
	// Ice into Water/Dragon: resisted once, doubled once.
	assert.Equal(t, 1.0, Effectiveness(battle.TypeIce, []battle.Type{battle.TypeWater, battle.TypeDragon}))
}

func TestEffectivenessIgnoresEmptyTypeSlot(t *testing.T) {
	assert.Equal(t, 2.0, Effectiveness(battle.TypeWater, []battle.Type{battle.TypeFire, ""}))
}

func TestFairyDragonInteraction(t *testing.T) {
	assert.Equal(t, 2.0, Matchup(battle.TypeFairy, battle.TypeDragon))
	assert.Equal(t, 0.0, Matchup(battle.TypeDragon, battle.TypeFairy))
}

func TestPropertyEffectivenessDomain(t *testing.T) {
	types := []battle.Type{
		battle.TypeNormal, battle.TypeFire, battle.TypeWater, battle.TypeElectric,
		battle.TypeGrass, battle.TypeIce, battle.TypeFighting, battle.TypePoison,
		battle.TypeGround, battle.TypeFlying, battle.TypePsychic, battle.TypeBug,
		battle.TypeRock, battle.TypeGhost, battle.TypeDragon, battle.TypeDark,
		battle.TypeSteel, battle.TypeFairy,
	}
	valid := map[float64]bool{0: true, 0.25: true, 0.5: true, 1: true, 2: true, 4: true}

	rapid.Check(t, func(t *rapid.T) {
		att := rapid.SampledFrom(types).Draw(t, "att")
		def1 := rapid.SampledFrom(types).Draw(t, "def1")
		def2 := rapid.SampledFrom(types).Draw(t, "def2")

		mult := Effectiveness(att, []battle.Type{def1, def2})
		if !valid[mult] {
			t.Fatalf("%s into %s/%s yielded %v, outside the multiplier domain", att, def1, def2, mult)
		}
	})
}
