package engine

import (
	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
	"github.com/TheoKim/llm-pokemon-trainer/internal/dex"
)

// ViableSwitches narrows a switch candidate list to the Pokémon not expected
// to be immediately countered. With revealed opposing moves, a candidate is
// dropped when any revealed damaging move is super effective against it;
// without revealed moves, the opponent's own types stand in as a STAB proxy.
//
// Postcondition: never returns an empty list when candidates is non-empty —
// if every candidate would be dropped, the original list is returned
// unfiltered so the caller always has at least one legal switch.
func ViableSwitches(snap *battle.Snapshot, candidates []battle.Pokemon) []battle.Action {
	if len(candidates) == 0 {
		return nil
	}

	revealed := revealedDamagingMoves(snap.ActiveOpponent)

	var viable []battle.Action
	for _, candidate := range candidates {
		if switchAtRisk(candidate, snap.ActiveOpponent, revealed) {
			continue
		}
		viable = append(viable, battle.SwitchAction(candidate.Species))
	}

	if len(viable) == 0 {
		// Every bench option looked bad; presenting none would strand the
		// caller, so fall back to the unfiltered list.
		all := make([]battle.Action, 0, len(candidates))
		for _, candidate := range candidates {
			all = append(all, battle.SwitchAction(candidate.Species))
		}
		return all
	}
	return viable
}

// switchAtRisk reports whether a candidate switch-in is super-effectively
// threatened by the opponent's revealed moves, or by its types when no moves
// are revealed.
func switchAtRisk(candidate, opponent battle.Pokemon, revealed []battle.Move) bool {
	if len(revealed) > 0 {
		for _, move := range revealed {
			if dex.Effectiveness(move.Type, candidate.Types) > 1 {
				return true
			}
		}
		return false
	}
	for _, t := range opponent.Types {
		if t == "" {
			continue
		}
		if dex.Effectiveness(t, candidate.Types) > 1 {
			return true
		}
	}
	return false
}

// revealedDamagingMoves returns the opponent's known non-status moves.
func revealedDamagingMoves(opponent battle.Pokemon) []battle.Move {
	var out []battle.Move
	for _, m := range opponent.Moves {
		if m.Category != battle.CategoryStatus {
			out = append(out, m)
		}
	}
	return out
}
