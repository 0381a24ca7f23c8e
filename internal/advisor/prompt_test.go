package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
)

func promptSnapshot() *battle.Snapshot {
	return &battle.Snapshot{
		Turn:       4,
		Generation: 9,
		ActiveSelf: battle.Pokemon{
			Species:    "garchomp",
			HPFraction: 0.75,
			Types:      []battle.Type{battle.TypeDragon, battle.TypeGround},
		},
		ActiveOpponent: battle.Pokemon{
			Species:    "heatran",
			HPFraction: 0.5,
			Status:     battle.StatusBurn,
			Types:      []battle.Type{battle.TypeFire, battle.TypeSteel},
		},
	}
}

func TestBuildTurnPromptAnnotatesDamage(t *testing.T) {
	snap := promptSnapshot()
	candidates := []battle.Action{
		battle.MoveAction("earthquake"),
		battle.SwitchAction("swampert"),
	}
	damage := map[string]battle.DamageEstimate{
		"earthquake": {ExpectedDamage: 612.5, STAB: true, Multiplier: 4},
	}

	prompt := BuildTurnPrompt(snap, candidates, damage, "")
	assert.Contains(t, prompt, "earthquake (Expected Damage: 612.5, STAB, 4.0x Super Effective)")
	assert.Contains(t, prompt, "switch-swampert")
	assert.Contains(t, prompt, "This is the first turn for this Pokémon.")
	assert.Contains(t, prompt, "garchomp (HP: 75.0%)")
	assert.Contains(t, prompt, "heatran (HP: 50.0%)")
	assert.Contains(t, prompt, "Status: brn")
}

func TestBuildTurnPromptLastMoveReminder(t *testing.T) {
	prompt := BuildTurnPrompt(promptSnapshot(), []battle.Action{battle.MoveAction("earthquake")}, nil, "protect")
	assert.Contains(t, prompt, "Last turn you used 'protect'.")
	assert.NotContains(t, prompt, "first turn")
}

func TestBuildTurnPromptQualitativeMarkers(t *testing.T) {
	snap := promptSnapshot()
	candidates := []battle.Action{
		battle.MoveAction("icebeam"),
		battle.MoveAction("thunderbolt"),
		battle.MoveAction("aquajet"),
	}
	damage := map[string]battle.DamageEstimate{
		"icebeam":     {ExpectedDamage: 20, Multiplier: 0.25},
		"thunderbolt": {ExpectedDamage: 0, Multiplier: 0},
		"aquajet":     {ExpectedDamage: 60, Multiplier: 1, Priority: 1},
	}

	prompt := BuildTurnPrompt(snap, candidates, damage, "")
	assert.Contains(t, prompt, "0.2x Not Very Effective")
	assert.Contains(t, prompt, "No Effect")
	assert.Contains(t, prompt, "Priority")
}

func TestBuildTurnPromptConditionsSummary(t *testing.T) {
	snap := promptSnapshot()
	snap.Weather = battle.WeatherSandstorm
	snap.Fields = []battle.FieldEffect{battle.FieldTrickRoom}
	snap.SideSelf = map[battle.SideCondition]int{battle.SideReflect: 1}
	snap.SideOpponent = map[battle.SideCondition]int{battle.SideSpikes: 2}

	prompt := BuildTurnPrompt(snap, nil, nil, "")
	assert.Contains(t, prompt, "Weather: sandstorm")
	assert.Contains(t, prompt, "Field Effects: trickroom")
	assert.Contains(t, prompt, "Your Side: reflect")
	assert.Contains(t, prompt, "Opponent's Side: spikes (x2)")
}

func TestBuildTurnPromptEmptyConditions(t *testing.T) {
	prompt := BuildTurnPrompt(promptSnapshot(), nil, nil, "")
	assert.Contains(t, prompt, "Weather: None")
	assert.Contains(t, prompt, "Your Side: None")
}

func TestBuildReplacementPrompt(t *testing.T) {
	snap := promptSnapshot()
	candidates := []battle.Action{
		battle.SwitchAction("swampert"),
		battle.SwitchAction("ferrothorn"),
	}

	prompt := BuildReplacementPrompt(snap, candidates)
	assert.Contains(t, prompt, "MUST choose a replacement")
	assert.Contains(t, prompt, "switch-swampert, switch-ferrothorn")
	assert.Contains(t, prompt, "heatran")
}

func TestStatusStringHealthy(t *testing.T) {
	assert.Equal(t, "Healthy", statusString(battle.Pokemon{}))
	assert.Equal(t, "par", statusString(battle.Pokemon{Status: battle.StatusParalysis}))
}
