package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
	"github.com/TheoKim/llm-pokemon-trainer/internal/dex"
)

// scriptedAdvisor returns canned answers in order and records its calls.
type scriptedAdvisor struct {
	answers []string
	err     error
	calls   int
	resets  int
	prompts []string
}

func (s *scriptedAdvisor) Choose(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if len(s.answers) == 0 {
		return "", errors.New("script exhausted")
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedAdvisor) Reset() { s.resets++ }

func newTestDecider(adv Advisor) *Decider {
	return NewDecider(zap.NewNop(), adv, dex.DefaultCatalog(), &fixedSrc{}, DeciderOptions{})
}

func deciderSnapshot() *battle.Snapshot {
	snap := ruleSnapshot()
	snap.ActiveSelf.HPFraction = 1
	return snap
}

func TestDecideCommitsValidAdvisorChoice(t *testing.T) {
	adv := &scriptedAdvisor{answers: []string{"earthquake"}}
	d := newTestDecider(adv)

	decision, err := d.Decide(context.Background(), deciderSnapshot())
	require.NoError(t, err)
	assert.False(t, decision.Pass)
	assert.Equal(t, battle.MoveAction("earthquake"), decision.Action)
	assert.Equal(t, "earthquake", d.Memory().LastMove)
}

func TestDecideSanitizesAdvisorAnswer(t *testing.T) {
	adv := &scriptedAdvisor{answers: []string{"  Earthquake!\n"}}
	d := newTestDecider(adv)

	decision, err := d.Decide(context.Background(), deciderSnapshot())
	require.NoError(t, err)
	assert.Equal(t, battle.MoveAction("earthquake"), decision.Action)
}

func TestDecideRetriesThenFallsBack(t *testing.T) {
	// Three invalid answers exhaust the budget; the fallback commits the
	// best-damage move.
	adv := &scriptedAdvisor{answers: []string{"splash", "nonsense", "flamethrower"}}
	d := newTestDecider(adv)

	decision, err := d.Decide(context.Background(), deciderSnapshot())
	require.NoError(t, err)
	assert.Equal(t, 3, adv.calls)
	assert.Equal(t, battle.MoveAction("earthquake"), decision.Action)
	assert.Equal(t, "earthquake", d.Memory().LastMove)
}

func TestDecideAdvisorErrorFallsBack(t *testing.T) {
	adv := &scriptedAdvisor{err: errors.New("api unavailable")}
	d := newTestDecider(adv)

	decision, err := d.Decide(context.Background(), deciderSnapshot())
	require.NoError(t, err)
	assert.False(t, decision.Pass)
	assert.Equal(t, battle.MoveAction("earthquake"), decision.Action)
}

func TestDecideSwitchCommitResetsMemory(t *testing.T) {
	adv := &scriptedAdvisor{answers: []string{"switch-swampert"}}
	d := newTestDecider(adv)

	decision, err := d.Decide(context.Background(), deciderSnapshot())
	require.NoError(t, err)
	assert.Equal(t, battle.SwitchAction("swampert"), decision.Action)
	assert.Empty(t, d.Memory().LastMove)
	assert.True(t, d.Memory().JustSwitched)
	assert.Equal(t, 1, adv.resets)
}

func TestDecideSuppressesSwitchesAfterSwitch(t *testing.T) {
	adv := &scriptedAdvisor{answers: []string{"switch-swampert", "switch-swampert", "earthquake"}}
	d := newTestDecider(adv)

	_, err := d.Decide(context.Background(), deciderSnapshot())
	require.NoError(t, err)

	// Next turn the switch is no longer a candidate; the advisor's switch
	// answer is invalid and it must answer again.
	decision, err := d.Decide(context.Background(), deciderSnapshot())
	require.NoError(t, err)
	assert.Equal(t, battle.MoveAction("earthquake"), decision.Action)
	assert.False(t, d.Memory().JustSwitched)
}

func TestDecideRechargeTurnPasses(t *testing.T) {
	adv := &scriptedAdvisor{}
	d := newTestDecider(adv)
	snap := deciderSnapshot()
	snap.ActiveSelf.MustRecharge = true

	decision, err := d.Decide(context.Background(), snap)
	require.NoError(t, err)
	assert.True(t, decision.Pass)
	assert.Zero(t, adv.calls)
}

func TestDecideForcedSwitchConsultsAdvisor(t *testing.T) {
	adv := &scriptedAdvisor{answers: []string{"switch-swampert"}}
	d := newTestDecider(adv)
	snap := deciderSnapshot()
	snap.ForceSwitch = true
	snap.AvailableMoves = nil

	decision, err := d.Decide(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, battle.SwitchAction("swampert"), decision.Action)
	// Reset before the prompt and again on commit.
	assert.Equal(t, 2, adv.resets)
}

func TestDecideForcedSwitchRandomFallback(t *testing.T) {
	adv := &scriptedAdvisor{err: errors.New("down")}
	d := newTestDecider(adv)
	snap := deciderSnapshot()
	snap.ForceSwitch = true
	snap.AvailableMoves = nil

	decision, err := d.Decide(context.Background(), snap)
	require.NoError(t, err)
	assert.True(t, decision.Action.IsSwitch())
}

func TestDecideForcedSwitchEmptyBenchPasses(t *testing.T) {
	adv := &scriptedAdvisor{}
	d := newTestDecider(adv)
	snap := deciderSnapshot()
	snap.ForceSwitch = true
	snap.AvailableMoves = nil
	snap.AvailableSwitches = nil

	decision, err := d.Decide(context.Background(), snap)
	require.NoError(t, err)
	assert.True(t, decision.Pass)
}

func TestDecideNoActionsAtAllPasses(t *testing.T) {
	adv := &scriptedAdvisor{}
	d := newTestDecider(adv)
	snap := deciderSnapshot()
	snap.AvailableMoves = nil
	snap.AvailableSwitches = nil

	decision, err := d.Decide(context.Background(), snap)
	require.NoError(t, err)
	assert.True(t, decision.Pass)
}

func TestMatchCandidateAcceptsBareSpecies(t *testing.T) {
	candidates := []battle.Action{battle.SwitchAction("swampert")}
	act, ok := matchCandidate(candidates, "swampert")
	require.True(t, ok)
	assert.Equal(t, battle.SwitchAction("swampert"), act)
}

func TestMatchCandidateRejectsEmpty(t *testing.T) {
	_, ok := matchCandidate([]battle.Action{battle.MoveAction("tackle")}, "")
	assert.False(t, ok)
}

func TestSanitizeChoice(t *testing.T) {
	assert.Equal(t, "earthquake", sanitizeChoice(" Earthquake. "))
	assert.Equal(t, "switch-swampert", sanitizeChoice("SWITCH-Swampert!"))
	assert.Equal(t, "u-turn", sanitizeChoice("U-Turn 123"))
}

func TestMemoryCommitCycle(t *testing.T) {
	var m Memory
	m.CommitMove("surf")
	assert.Equal(t, "surf", m.LastMove)
	assert.False(t, m.JustSwitched)

	m.CommitSwitch()
	assert.Empty(t, m.LastMove)
	assert.True(t, m.JustSwitched)

	m.ClearSwitchFlag()
	assert.False(t, m.JustSwitched)
}
