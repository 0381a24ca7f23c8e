package engine

import (
	"go.uber.org/zap"

	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
	"github.com/TheoKim/llm-pokemon-trainer/internal/dex"
)

// TurnContext bundles the read-only inputs every filter rule sees for one
// turn. Rules never mutate it.
type TurnContext struct {
	// Snapshot is the current turn's battle state.
	Snapshot *battle.Snapshot
	// Damage is the estimator's output for this turn's available moves.
	Damage map[string]battle.DamageEstimate
	// Order is the turn-order resolver's prediction.
	Order TurnOrder
	// Memory is a copy of the persistent per-battle memory.
	Memory Memory
	// Catalog is the tactical move catalogue.
	Catalog *dex.Catalog
}

// Verdict is one rule's judgement: a set of removals, or a terminal override
// that replaces the whole candidate set.
type Verdict struct {
	// Remove lists candidates to subtract from the current set.
	Remove []battle.Action
	// Override, valid when IsOverride is set, replaces the candidate set
	// outright; no later rule runs.
	Override   []battle.Action
	IsOverride bool
	// Reason is a short log tag for why the rule fired.
	Reason string
}

// Keep is the verdict of a rule that does not apply this turn.
func Keep() Verdict {
	return Verdict{}
}

// RemoveActions builds a removal verdict.
func RemoveActions(reason string, actions ...battle.Action) Verdict {
	return Verdict{Remove: actions, Reason: reason}
}

// RemoveMoveIDs builds a removal verdict over move ids.
func RemoveMoveIDs(reason string, ids ...string) Verdict {
	actions := make([]battle.Action, 0, len(ids))
	for _, id := range ids {
		actions = append(actions, battle.MoveAction(id))
	}
	return Verdict{Remove: actions, Reason: reason}
}

// Override builds a terminal verdict replacing the candidate set.
func Override(reason string, actions []battle.Action) Verdict {
	return Verdict{Override: actions, IsOverride: true, Reason: reason}
}

// Rule is one independently testable stage of the filter pipeline.
//
// Non-override rules must be commutative removals: their relative order never
// changes the final result. Override rules are terminal and their position in
// the pipeline is semantically load-bearing.
type Rule struct {
	// Name identifies the rule in logs.
	Name string
	// Apply judges the current candidate set. current is read-only.
	Apply func(ctx *TurnContext, current []battle.Action) Verdict
}

// Pipeline is an ordered sequence of filter rules.
//
// Invariant: the pipeline itself cannot fail; an empty result is the
// caller's signal to fall through to the Fallback selector.
type Pipeline struct {
	rules []Rule
	log   *zap.Logger
}

// NewPipeline builds a pipeline over the given rules.
//
// Precondition: log must not be nil (use zap.NewNop() to discard).
func NewPipeline(rules []Rule, log *zap.Logger) *Pipeline {
	if log == nil {
		panic("engine.NewPipeline: log must not be nil")
	}
	return &Pipeline{rules: rules, log: log}
}

// Run applies every rule left-to-right over the candidate set and returns
// the surviving candidates. The input slice is never mutated; each removal
// produces a fresh slice preserving the caller's ranking order. An override
// returns immediately with the overriding set.
func (p *Pipeline) Run(ctx *TurnContext, candidates []battle.Action) []battle.Action {
	current := candidates
	for _, rule := range p.rules {
		verdict := rule.Apply(ctx, current)

		if verdict.IsOverride {
			p.log.Debug("filter override",
				zap.String("rule", rule.Name),
				zap.String("reason", verdict.Reason),
				zap.Int("candidates", len(verdict.Override)),
			)
			return verdict.Override
		}

		if len(verdict.Remove) == 0 {
			continue
		}
		next := subtract(current, verdict.Remove)
		if removed := len(current) - len(next); removed > 0 {
			p.log.Debug("filter removal",
				zap.String("rule", rule.Name),
				zap.String("reason", verdict.Reason),
				zap.Int("removed", removed),
				zap.Int("remaining", len(next)),
			)
		}
		current = next
	}
	return current
}

// subtract returns current minus removals, preserving order. Always copies
// so the caller's slice stays intact.
func subtract(current, removals []battle.Action) []battle.Action {
	drop := make(map[battle.Action]struct{}, len(removals))
	for _, a := range removals {
		drop[a] = struct{}{}
	}
	out := make([]battle.Action, 0, len(current))
	for _, a := range current {
		if _, gone := drop[a]; !gone {
			out = append(out, a)
		}
	}
	return out
}

// containsAction reports whether the candidate set holds the action.
func containsAction(set []battle.Action, a battle.Action) bool {
	for _, c := range set {
		if c == a {
			return true
		}
	}
	return false
}

// switchesIn returns the switch candidates present in the set, in order.
func switchesIn(set []battle.Action) []battle.Action {
	var out []battle.Action
	for _, a := range set {
		if a.IsSwitch() {
			out = append(out, a)
		}
	}
	return out
}
