package engine

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TheoKim/llm-pokemon-trainer/internal/advisor"
	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
	"github.com/TheoKim/llm-pokemon-trainer/internal/dex"
)

// Advisor is the port the decider consults for the final pick among the
// surviving candidates. Implementations are free to be remote and slow; the
// decider bounds every call with its own timeout.
type Advisor interface {
	// Choose returns the advisor's raw answer to the prompt. The decider
	// sanitizes and validates it; an unusable answer costs one retry.
	Choose(ctx context.Context, prompt string) (string, error)
	// Reset discards any conversational memory the advisor holds.
	Reset()
}

// Decision is the outcome of a single turn.
type Decision struct {
	Action battle.Action `json:"action"`
	// Pass reports that no action could be taken this turn (recharging, or
	// a fully empty candidate set).
	Pass bool `json:"pass"`
}

// DeciderOptions bound the advisor consultation.
type DeciderOptions struct {
	// AdvisorTimeout caps a single advisor call. Zero means 30 seconds.
	AdvisorTimeout time.Duration
	// MaxRetries is the advisor attempt budget per turn. Zero means 3.
	MaxRetries int
}

const (
	defaultAdvisorTimeout = 30 * time.Second
	defaultMaxRetries     = 3
)

// Decider runs the full per-turn flow: damage estimation, turn-order
// prediction, the filter pipeline, advisor consultation, and the
// deterministic fallback. It is not safe for concurrent use; the Manager
// serializes access per battle.
type Decider struct {
	log      *zap.Logger
	advisor  Advisor
	pipeline *Pipeline
	fallback *Fallback
	catalog  *dex.Catalog
	src      Source
	timeout  time.Duration
	retries  int
	mem      Memory
}

// NewDecider constructs a Decider with the default rule catalogue.
//
// Precondition: log, adv, catalog, and src are non-nil.
func NewDecider(log *zap.Logger, adv Advisor, catalog *dex.Catalog, src Source, opts DeciderOptions) *Decider {
	if log == nil {
		panic("engine: NewDecider requires a logger")
	}
	if adv == nil {
		panic("engine: NewDecider requires an advisor")
	}
	if catalog == nil {
		panic("engine: NewDecider requires a catalog")
	}
	if src == nil {
		panic("engine: NewDecider requires a randomness source")
	}
	timeout := opts.AdvisorTimeout
	if timeout <= 0 {
		timeout = defaultAdvisorTimeout
	}
	retries := opts.MaxRetries
	if retries <= 0 {
		retries = defaultMaxRetries
	}
	return &Decider{
		log:      log,
		advisor:  adv,
		pipeline: NewPipeline(DefaultRules(), log),
		fallback: NewFallback(src),
		catalog:  catalog,
		src:      src,
		timeout:  timeout,
		retries:  retries,
	}
}

// Memory exposes a copy of the per-battle memory, mainly for tests.
func (d *Decider) Memory() Memory {
	return d.mem
}

// Decide produces the action for one turn of the battle.
//
// Precondition: snap is non-nil.
// Postcondition: on a non-pass decision the returned action is a member of
// the snapshot's legal actions, and the memory reflects the commitment.
func (d *Decider) Decide(ctx context.Context, snap *battle.Snapshot) (Decision, error) {
	if snap == nil {
		panic("engine: Decide requires a snapshot")
	}

	if snap.ForceSwitch {
		return d.decideReplacement(ctx, snap), nil
	}

	if snap.ActiveSelf.MustRecharge {
		d.log.Debug("recharging, passing the turn", zap.Int("turn", snap.Turn))
		d.mem.CommitMove("")
		return Decision{Pass: true}, nil
	}

	damage := EstimateDamage(snap, d.mem.LastMove)
	order := ResolveOrder(snap)

	// Snapshot the memory for the rules before consuming the one-turn
	// switch suppression.
	mem := d.mem
	includeSwitches := true
	if d.mem.JustSwitched {
		includeSwitches = false
		d.mem.ClearSwitchFlag()
	}

	candidates := make([]battle.Action, 0, len(snap.AvailableMoves)+len(snap.AvailableSwitches))
	for _, m := range snap.AvailableMoves {
		candidates = append(candidates, battle.MoveAction(m.ID))
	}
	if includeSwitches {
		candidates = append(candidates, ViableSwitches(snap, snap.AvailableSwitches)...)
	}

	tctx := &TurnContext{
		Snapshot: snap,
		Damage:   damage,
		Order:    order,
		Memory:   mem,
		Catalog:  d.catalog,
	}
	survivors := d.pipeline.Run(tctx, candidates)

	if len(survivors) == 0 {
		d.log.Debug("filter removed every candidate, falling back",
			zap.Int("turn", snap.Turn))
		return d.commitFallback(snap, damage), nil
	}

	// A switch-only survivor set means the filters already decided to leave;
	// whatever conversation led here no longer applies to the next Pokémon.
	if allSwitches(survivors) {
		d.advisor.Reset()
	}

	prompt := advisor.BuildTurnPrompt(snap, survivors, damage, d.mem.LastMove)
	if act, ok := d.consult(ctx, snap, prompt, survivors); ok {
		d.commit(act)
		return Decision{Action: act}, nil
	}

	return d.commitFallback(snap, damage), nil
}

// decideReplacement handles the forced-switch flow after a faint or a
// dragging move. The advisor's memory is cleared first: the conversation so
// far concerns a Pokémon that is no longer on the field.
func (d *Decider) decideReplacement(ctx context.Context, snap *battle.Snapshot) Decision {
	candidates := ViableSwitches(snap, snap.AvailableSwitches)
	if len(candidates) == 0 {
		d.log.Warn("forced to switch with an empty bench", zap.Int("turn", snap.Turn))
		return Decision{Pass: true}
	}

	d.advisor.Reset()

	prompt := advisor.BuildReplacementPrompt(snap, candidates)
	if act, ok := d.consult(ctx, snap, prompt, candidates); ok {
		d.commit(act)
		return Decision{Action: act}
	}

	act := candidates[d.src.Intn(len(candidates))]
	d.log.Debug("advisor budget exhausted, random replacement",
		zap.Int("turn", snap.Turn), zap.String("action", act.String()))
	d.commit(act)
	return Decision{Action: act}
}

// consult runs the bounded advisor retry loop. It returns false once the
// retry budget is spent without a valid answer.
func (d *Decider) consult(ctx context.Context, snap *battle.Snapshot, prompt string, candidates []battle.Action) (battle.Action, bool) {
	for attempt := 1; attempt <= d.retries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, d.timeout)
		raw, err := d.advisor.Choose(callCtx, prompt)
		cancel()
		if err != nil {
			d.log.Warn("advisor call failed",
				zap.Int("turn", snap.Turn), zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		choice := sanitizeChoice(raw)
		act, ok := matchCandidate(candidates, choice)
		if !ok {
			d.log.Warn("advisor answered outside the candidate set",
				zap.Int("turn", snap.Turn), zap.Int("attempt", attempt), zap.String("choice", choice))
			continue
		}
		d.log.Debug("advisor chose",
			zap.Int("turn", snap.Turn), zap.Int("attempt", attempt), zap.String("action", act.String()))
		return act, true
	}
	return battle.Action{}, false
}

// commitFallback runs the deterministic selector over the snapshot's legal
// actions and commits its pick.
func (d *Decider) commitFallback(snap *battle.Snapshot, damage map[string]battle.DamageEstimate) Decision {
	act, ok := d.fallback.Select(snap, damage)
	if !ok {
		d.log.Warn("no candidate left to fall back on", zap.Int("turn", snap.Turn))
		return Decision{Pass: true}
	}
	d.log.Debug("fallback selected",
		zap.Int("turn", snap.Turn), zap.String("action", act.String()))
	d.commit(act)
	return Decision{Action: act}
}

// commit updates the per-battle memory for the chosen action. Switching
// also clears the advisor's conversation: its reasoning was about the
// outgoing Pokémon.
func (d *Decider) commit(act battle.Action) {
	if act.IsSwitch() {
		d.mem.CommitSwitch()
		d.advisor.Reset()
		return
	}
	d.mem.CommitMove(act.ID)
}

// choicePattern keeps lowercase letters and hyphens, the alphabet of move
// identifiers and switch directives.
var choicePattern = regexp.MustCompile(`[^a-z-]`)

// sanitizeChoice normalizes a raw advisor answer for candidate matching.
func sanitizeChoice(raw string) string {
	return choicePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "")
}

// matchCandidate resolves a sanitized choice against the candidate set. A
// bare species name is accepted for a switch candidate.
func matchCandidate(candidates []battle.Action, choice string) (battle.Action, bool) {
	if choice == "" {
		return battle.Action{}, false
	}
	for _, a := range candidates {
		if a.String() == choice {
			return a, true
		}
		if a.IsSwitch() && a.ID == choice {
			return a, true
		}
	}
	return battle.Action{}, false
}

func allSwitches(set []battle.Action) bool {
	if len(set) == 0 {
		return false
	}
	for _, a := range set {
		if !a.IsSwitch() {
			return false
		}
	}
	return true
}
