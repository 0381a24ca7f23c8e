package dex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
)

func TestCritStage(t *testing.T) {
	move := battle.Move{ID: "slash", CritRatio: 1}
	assert.Equal(t, 1, CritStage(move, battle.Pokemon{}))
	assert.Equal(t, 2, CritStage(move, battle.Pokemon{Ability: "superluck"}))
	assert.Equal(t, 3, CritStage(move, battle.Pokemon{Ability: "superluck", Item: "scopelens"}))
}

func TestCritChanceByGeneration(t *testing.T) {
	assert.InDelta(t, 1.0/24, CritChance(9, 0), 1e-9)
	assert.InDelta(t, 1.0/16, CritChance(6, 0), 1e-9)
	assert.InDelta(t, 1.0/16, CritChance(3, 0), 1e-9)
	assert.InDelta(t, 1.0/3, CritChance(3, 3), 1e-9)
}

func TestCritChanceCapsAboveTable(t *testing.T) {
	assert.Equal(t, 1.0, CritChance(9, 5))
	assert.Equal(t, 1.0, CritChance(6, 3))
	assert.Equal(t, 0.5, CritChance(3, 10))
}

func TestCritMultiplier(t *testing.T) {
	assert.Equal(t, 1.5, CritMultiplier(9, ""))
	assert.Equal(t, 2.0, CritMultiplier(5, ""))
	assert.Equal(t, 2.25, CritMultiplier(9, "sniper"))
	assert.Equal(t, 3.0, CritMultiplier(5, "sniper"))
}
