// Package advisor holds the language-model consultation layer: prompt
// construction from battle snapshots and the Anthropic-backed adapter.
package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
)

// SystemPrompt frames every conversation with the advisor.
const SystemPrompt = "You are a master Pokémon battler. Win the current battle by making smart decisions."

// BuildTurnPrompt renders the per-turn prompt: the previous move reminder,
// both active Pokémon, the annotated candidate list, and the field summary.
// Candidates are annotated with the estimator's expected damage and
// qualitative markers so the advisor does not have to infer them.
func BuildTurnPrompt(snap *battle.Snapshot, candidates []battle.Action, damage map[string]battle.DamageEstimate, lastMove string) string {
	self := snap.ActiveSelf
	opp := snap.ActiveOpponent

	var b strings.Builder
	if lastMove != "" {
		fmt.Fprintf(&b, "Last turn you used '%s'.\n", lastMove)
		fmt.Fprintf(&b, "DO NOT repeatedly use the move %s UNLESS it is the optimal move to use.\n", lastMove)
	} else {
		b.WriteString("This is the first turn for this Pokémon.\n")
	}
	fmt.Fprintf(&b, "Your active Pokémon: %s (HP: %.1f%%) (Status: %s)\n",
		self.Species, self.HPFraction*100, statusString(self))
	fmt.Fprintf(&b, "Opponent's active Pokémon: %s (HP: %.1f%%) (Status: %s)\n",
		opp.Species, opp.HPFraction*100, statusString(opp))
	b.WriteString("Choose a MOVE or a tactical SWITCH.\n")
	fmt.Fprintf(&b, "Switch if your moves against %s are not very effective AND they have super effective moves against your %s.\n",
		opp.Species, self.Species)
	b.WriteString("To switch to a different Pokémon, choose an action starting with 'switch-'.\n")
	fmt.Fprintf(&b, "Your ONLY available actions are: %s\n", strings.Join(formatActions(candidates, damage), ", "))
	b.WriteString("If selecting a damaging move, PRIORITIZE moves that are Super Effective and have STAB.\n")
	b.WriteString("Any other action not in the list is invalid. Your response must be a single, exact, lowercase name from the list.\n")
	b.WriteString(conditionsSummary(snap))
	return b.String()
}

// BuildReplacementPrompt renders the forced-switch prompt.
func BuildReplacementPrompt(snap *battle.Snapshot, candidates []battle.Action) string {
	opp := snap.ActiveOpponent

	names := make([]string, 0, len(candidates))
	for _, a := range candidates {
		names = append(names, a.String())
	}

	var b strings.Builder
	b.WriteString("You MUST choose a replacement from ONLY the list below.\n")
	fmt.Fprintf(&b, "Opponent's active Pokémon: %s (HP: %.1f%%) (Status: %s)\n",
		opp.Species, opp.HPFraction*100, statusString(opp))
	fmt.Fprintf(&b, "Your ONLY available team members are: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "Switch to a Pokémon that has super effective moves against %s or that resists its attacks.\n", opp.Species)
	b.WriteString("Any other Pokémon not in the list has fainted or is unavailable. Respond with a single name from the list.\n")
	b.WriteString(conditionsSummary(snap))
	return b.String()
}

func formatActions(candidates []battle.Action, damage map[string]battle.DamageEstimate) []string {
	out := make([]string, 0, len(candidates))
	for _, a := range candidates {
		if a.IsSwitch() {
			out = append(out, a.String())
			continue
		}
		info, ok := damage[a.ID]
		if !ok {
			out = append(out, a.ID)
			continue
		}
		var details []string
		if info.ExpectedDamage > 0 {
			details = append(details, fmt.Sprintf("Expected Damage: %.1f", info.ExpectedDamage))
		}
		if info.STAB {
			details = append(details, "STAB")
		}
		switch {
		case info.Multiplier > 1:
			details = append(details, fmt.Sprintf("%.1fx Super Effective", info.Multiplier))
		case info.Multiplier == 0:
			details = append(details, "No Effect")
		case info.Multiplier < 1:
			details = append(details, fmt.Sprintf("%.1fx Not Very Effective", info.Multiplier))
		}
		if info.Priority > 0 {
			details = append(details, "Priority")
		}
		if len(details) == 0 {
			out = append(out, a.ID)
			continue
		}
		out = append(out, fmt.Sprintf("%s (%s)", a.ID, strings.Join(details, ", ")))
	}
	return out
}

func statusString(p battle.Pokemon) string {
	if p.Status == battle.StatusNone {
		return "Healthy"
	}
	return string(p.Status)
}

func conditionsSummary(snap *battle.Snapshot) string {
	var b strings.Builder
	b.WriteString("--- Battle State ---\n")
	weather := "None"
	if snap.Weather != battle.WeatherNone {
		weather = string(snap.Weather)
	}
	fmt.Fprintf(&b, "Weather: %s\n", weather)

	fields := "None"
	if len(snap.Fields) > 0 {
		names := make([]string, 0, len(snap.Fields))
		for _, f := range snap.Fields {
			names = append(names, string(f))
		}
		fields = strings.Join(names, ", ")
	}
	fmt.Fprintf(&b, "Field Effects: %s\n", fields)
	fmt.Fprintf(&b, "Your Side: %s\n", sideConditionsString(snap.SideSelf))
	fmt.Fprintf(&b, "Opponent's Side: %s\n", sideConditionsString(snap.SideOpponent))
	return b.String()
}

// sideConditionsString renders active side conditions with stack counts for
// the stackable hazards, sorted for a stable prompt.
func sideConditionsString(conditions map[battle.SideCondition]int) string {
	var parts []string
	for cond, count := range conditions {
		if count <= 0 {
			continue
		}
		if cond == battle.SideSpikes || cond == battle.SideToxicSpikes {
			parts = append(parts, fmt.Sprintf("%s (x%d)", cond, count))
		} else {
			parts = append(parts, string(cond))
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
