package engine

import (
	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
	"github.com/TheoKim/llm-pokemon-trainer/internal/dex"
)

// Tactical thresholds shared by the filter rules. Damage thresholds are in
// the estimator's power scale.
const (
	// healHPThreshold is the HP fraction at which self-healing is redundant.
	healHPThreshold = 0.66
	// lowDamageThreshold is the expected damage at or below which an attack
	// is considered useless.
	lowDamageThreshold = 0.5
	// secureKOThreshold is the expected damage treated as lethal against a
	// weakened opponent.
	secureKOThreshold = 2.5
	// perilKOThreshold is the expected damage treated as a counter-knockout
	// while under threat ourselves.
	perilKOThreshold = 2.0
	// selfKOMaxOwnHP / selfKOMinOppHP gate self-knockout moves to favorable
	// trades only.
	selfKOMaxOwnHP = 0.34
	selfKOMinOppHP = 0.66
	// offenseDropStage is the boost stage at or below which the dominant
	// attacking stat is considered crippled.
	offenseDropStage = -2
	// singleSetupStage / multiSetupStage are the stages at which single- and
	// multi-stat setup moves stop being worth a turn.
	singleSetupStage = 2
	multiSetupStage  = 1
	// compoundSetupStage blocks compound setup moves near the stage cap.
	compoundSetupStage = 2
)

// DefaultRules returns the full filter catalogue in pipeline order. The
// relative order of the override rules is load-bearing; the removal rules
// are commutative and ordered only for log reproducibility.
func DefaultRules() []Rule {
	return []Rule{
		ruleMortalPeril(),
		ruleSecureKO(),
		ruleRedundantRecovery(),
		ruleSaturatedFieldControl(),
		ruleUselessHazardClear(),
		ruleSaturatedSetup(),
		ruleLockedIneffective(),
		ruleIneffectiveAttacks(),
		ruleSleepClause(),
		ruleRedundantVolatiles(),
		ruleSleepHandling(),
		ruleItemSwap(),
		ruleOneShotRepeats(),
		ruleStatusRedundancy(),
		rulePainSplit(),
		ruleLoweredOffense(),
		ruleLastPokemonPivot(),
		ruleWeatherGated(),
		ruleKnockOff(),
		ruleSubstitute(),
		ruleAbilityGates(),
		ruleRecharge(),
		ruleForcedContinuation(),
		ruleSpecialWall(),
		ruleSelfSacrifice(),
		ruleCleric(),
	}
}

// ruleMortalPeril restricts the candidate set when the opponent plausibly
// holds a one-shot-class threat: a revealed quad-effective attack, or — with
// nothing revealed — a super-effective same-type option. Slower, or faster
// without a counter-knockout, means switches only; faster with a
// counter-knockout means those moves only.
func ruleMortalPeril() Rule {
	return Rule{Name: "mortal-peril", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		self := snap.ActiveSelf
		opp := snap.ActiveOpponent

		threat := false
		if revealed := revealedDamagingMoves(opp); len(revealed) > 0 {
			for _, m := range revealed {
				if dex.Effectiveness(m.Type, self.Types) == 4 {
					threat = true
					break
				}
			}
		} else {
			for _, t := range opp.Types {
				if t != "" && dex.Effectiveness(t, self.Types) > 1 {
					threat = true
					break
				}
			}
		}
		if !threat {
			return Keep()
		}

		viable := ViableSwitches(snap, snap.AvailableSwitches)

		if !ctx.Order.SelfMovesFirst() {
			if len(viable) == 0 {
				// No bench at all: stand and fight.
				return Keep()
			}
			return Override("slower and facing a knockout threat", viable)
		}

		var ko []battle.Action
		for _, m := range snap.AvailableMoves {
			if ctx.Damage[m.ID].ExpectedDamage >= perilKOThreshold {
				ko = append(ko, battle.MoveAction(m.ID))
			}
		}
		if len(ko) == 0 {
			if len(viable) == 0 {
				return Keep()
			}
			return Override("faster but lacking a counter-knockout", viable)
		}
		return Override("faster with a counter-knockout", ko)
	}}
}

// ruleSecureKO restricts to lethal-threshold moves when the opponent is
// below half HP and the own side acts first.
func ruleSecureKO() Rule {
	return Rule{Name: "secure-ko", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		if snap.ActiveOpponent.HPFraction >= 0.5 || !ctx.Order.SelfMovesFirst() {
			return Keep()
		}
		var ko []battle.Action
		for _, m := range snap.AvailableMoves {
			if ctx.Damage[m.ID].ExpectedDamage >= secureKOThreshold {
				ko = append(ko, battle.MoveAction(m.ID))
			}
		}
		if len(ko) == 0 {
			return Keep()
		}
		return Override("opponent weakened and we act first", ko)
	}}
}

// ruleRedundantRecovery drops self-healing once HP is high.
func ruleRedundantRecovery() Rule {
	return Rule{Name: "redundant-recovery", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		if ctx.Snapshot.ActiveSelf.HPFraction < healHPThreshold {
			return Keep()
		}
		return RemoveMoveIDs("HP high enough", ctx.Catalog.Healing...)
	}}
}

// ruleSaturatedFieldControl drops hazard and screen setters whose condition
// is already active or at its stack cap, and Trick Room while it is up.
func ruleSaturatedFieldControl() Rule {
	return Rule{Name: "saturated-field-control", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		var remove []string
		for cond, move := range ctx.Catalog.HazardSetters {
			cap := ctx.Catalog.HazardStackCaps[cond]
			if cap == 0 {
				cap = 1
			}
			if snap.SideOpponent[cond] >= cap {
				remove = append(remove, move)
			}
		}
		for cond, move := range ctx.Catalog.SideSetters {
			if snap.SideSelf[cond] > 0 {
				remove = append(remove, move)
			}
		}
		if snap.HasField(battle.FieldTrickRoom) {
			remove = append(remove, "trickroom")
		}
		if len(remove) == 0 {
			return Keep()
		}
		return RemoveMoveIDs("condition already active", remove...)
	}}
}

// ruleUselessHazardClear drops hazard-clearing moves with nothing to clear.
// Dual-purpose clearers are only dropped when neither side has any
// qualifying condition.
func ruleUselessHazardClear() Rule {
	return Rule{Name: "useless-hazard-clear", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		for _, hazard := range battle.EntryHazards {
			if snap.SideSelf[hazard] > 0 {
				return Keep()
			}
		}

		remove := append([]string(nil), ctx.Catalog.HazardClearers...)

		opponentClear := true
		for _, count := range snap.SideOpponent {
			if count > 0 {
				opponentClear = false
				break
			}
		}
		if opponentClear {
			remove = append(remove, ctx.Catalog.DualClearers...)
		}
		return RemoveMoveIDs("no hazards to clear", remove...)
	}}
}

// ruleSaturatedSetup drops setup moves whose every raised stat already sits
// at or above the useful stage, plus the compound special cases.
func ruleSaturatedSetup() Rule {
	return Rule{Name: "saturated-setup", Apply: func(ctx *TurnContext, current []battle.Action) Verdict {
		self := ctx.Snapshot.ActiveSelf
		var remove []string

		for move, boosts := range ctx.Catalog.Setup {
			threshold := multiSetupStage
			if len(boosts) == 1 {
				threshold = singleSetupStage
			}
			saturated := true
			for stat := range boosts {
				if self.Boost(stat) < threshold {
					saturated = false
					break
				}
			}
			if saturated {
				remove = append(remove, move)
			}
		}

		// Shell Smash trades defenses for a compound boost; once the
		// offensive stat and speed are near the cap it is a wasted turn.
		if (self.Boost(battle.StatAttack) >= compoundSetupStage || self.Boost(battle.StatSpecialAttack) >= compoundSetupStage) &&
			self.Boost(battle.StatSpeed) >= compoundSetupStage {
			remove = append(remove, "shellsmash")
		}

		// Curse only acts as setup for non-Ghost users.
		if !self.HasType(battle.TypeGhost) &&
			self.Boost(battle.StatAttack) >= multiSetupStage && self.Boost(battle.StatDefense) >= multiSetupStage {
			remove = append(remove, "curse")
		}

		if len(remove) == 0 {
			return Keep()
		}
		return RemoveMoveIDs("stats already boosted", remove...)
	}}
}

// ruleLockedIneffective forces a switch when locked into a single move that
// is not very effective, provided a viable switch exists.
func ruleLockedIneffective() Rule {
	return Rule{Name: "locked-ineffective", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		if len(snap.AvailableMoves) != 1 {
			return Keep()
		}
		locked := snap.AvailableMoves[0]
		if dex.Effectiveness(locked.Type, snap.ActiveOpponent.Types) >= 1 {
			return Keep()
		}
		viable := ViableSwitches(snap, snap.AvailableSwitches)
		if len(viable) == 0 {
			// No bench: the locked move stands.
			return Keep()
		}
		return Override("locked into an ineffective move", viable)
	}}
}

// ruleIneffectiveAttacks drops damaging moves whose expected damage is at or
// below the uselessness threshold (which covers outright immunities).
func ruleIneffectiveAttacks() Rule {
	return Rule{Name: "ineffective-attacks", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		var remove []string
		for _, m := range ctx.Snapshot.AvailableMoves {
			if m.Category == battle.CategoryStatus {
				continue
			}
			if ctx.Damage[m.ID].ExpectedDamage <= lowDamageThreshold {
				remove = append(remove, m.ID)
			}
		}
		if len(remove) == 0 {
			return Keep()
		}
		return RemoveMoveIDs("expected damage too low", remove...)
	}}
}

// ruleSleepClause drops sleep-inducing moves while any opposing team member
// is already asleep (one sleep at a time).
func ruleSleepClause() Rule {
	return Rule{Name: "sleep-clause", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		asleep := false
		for _, p := range ctx.Snapshot.TeamOpponent {
			if p.Status == battle.StatusSleep {
				asleep = true
				break
			}
		}
		if !asleep {
			return Keep()
		}
		return RemoveMoveIDs("an opposing Pokémon is already asleep", ctx.Catalog.SleepInducers...)
	}}
}

// ruleRedundantVolatiles drops moves that reapply a volatile condition the
// opponent already carries.
func ruleRedundantVolatiles() Rule {
	return Rule{Name: "redundant-volatiles", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		opp := ctx.Snapshot.ActiveOpponent
		var remove []string
		if opp.HasEffect(battle.EffectTaunt) {
			remove = append(remove, "taunt")
		}
		if opp.HasEffect(battle.EffectEncore) {
			remove = append(remove, "encore")
		}
		if opp.HasEffect(battle.EffectLeechSeed) {
			remove = append(remove, "leechseed")
		}
		for _, e := range battle.TrappingEffects {
			if opp.HasEffect(e) {
				remove = append(remove, ctx.Catalog.TrappingMoves...)
				break
			}
		}
		if len(remove) == 0 {
			return Keep()
		}
		return RemoveMoveIDs("volatile already applied", remove...)
	}}
}

// ruleSleepHandling restricts an asleep Pokémon to its wake-up-compatible
// move plus switches when it is about to wake, forces a switch otherwise,
// and drops the wake-up-only move from awake Pokémon.
func ruleSleepHandling() Rule {
	return Rule{Name: "sleep-handling", Apply: func(ctx *TurnContext, current []battle.Action) Verdict {
		self := ctx.Snapshot.ActiveSelf
		if self.Status != battle.StatusSleep {
			return RemoveMoveIDs("not asleep", "sleeptalk")
		}
		sleepTalk := battle.MoveAction("sleeptalk")
		if self.StatusCounter <= 1 && containsAction(current, sleepTalk) {
			return Override("asleep with sleep talk available",
				append([]battle.Action{sleepTalk}, switchesIn(current)...))
		}
		return Override("asleep", switchesIn(current))
	}}
}

// ruleItemSwap drops item-swapping moves without an item to give, or against
// a sticky-hold style opponent.
func ruleItemSwap() Rule {
	return Rule{Name: "item-swap", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		opp := snap.ActiveOpponent
		immune := opp.Ability == "stickyhold" || opp.Ability == "sticky-hold"
		if snap.ActiveSelf.Item != "" && !immune {
			return Keep()
		}
		return RemoveMoveIDs("no item or opponent keeps its item", ctx.Catalog.ItemSwapMoves...)
	}}
}

// ruleOneShotRepeats drops moves that only have value once per cycle when
// they were used on the immediately preceding turn.
func ruleOneShotRepeats() Rule {
	return Rule{Name: "one-shot-repeats", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		last := ctx.Memory.LastMove
		if last == "" {
			return Keep()
		}
		var remove []string
		switch last {
		case "wish", "yawn", "trickroom":
			remove = append(remove, last)
		}
		if dex.Contains(ctx.Catalog.ProtectFamily, last) {
			remove = append(remove, ctx.Catalog.ProtectFamily...)
		}
		if len(remove) == 0 {
			return Keep()
		}
		return RemoveMoveIDs("used last turn", remove...)
	}}
}

// ruleStatusRedundancy drops status-inflicting moves the opponent's current
// status, typing, or (possible) ability renders pointless.
func ruleStatusRedundancy() Rule {
	return Rule{Name: "status-redundancy", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		opp := snap.ActiveOpponent
		cat := ctx.Catalog
		var remove []string

		if opp.Status != battle.StatusNone {
			remove = append(remove, cat.StatusInflictors...)
		}

		// Type-based immunities.
		if opp.HasType(battle.TypeElectric) && snap.Generation >= 6 {
			remove = append(remove, "thunderwave")
		}
		if opp.HasType(battle.TypeFire) {
			remove = append(remove, cat.BurnMoves...)
		}
		if (opp.HasType(battle.TypePoison) || opp.HasType(battle.TypeSteel)) && snap.ActiveSelf.Ability != "corrosion" {
			remove = append(remove, cat.PoisonMoves...)
		}
		if opp.HasType(battle.TypeGrass) {
			remove = append(remove, "leechseed")
		}

		// Ability-based immunities, over the full possible set when the
		// ability is unknown.
		abilities := opp.Abilities()
		has := func(names ...string) bool {
			for _, a := range abilities {
				for _, n := range names {
					if a == n {
						return true
					}
				}
			}
			return false
		}
		if has("overcoat") || (opp.HasType(battle.TypeGrass) && snap.Generation >= 6) {
			remove = append(remove, cat.PowderMoves...)
		}
		if has("insomnia", "vitalspirit") {
			remove = append(remove, cat.SleepInducers...)
		}
		if has("waterveil") {
			remove = append(remove, cat.BurnMoves...)
		}
		if has("limber") || (opp.HasType(battle.TypeElectric) && snap.Generation >= 6) {
			remove = append(remove, cat.ParalysisMoves...)
		}
		if has("oblivious") && snap.Generation >= 6 {
			remove = append(remove, "taunt")
		}

		if len(remove) == 0 {
			return Keep()
		}
		return RemoveMoveIDs("status cannot land or is redundant", remove...)
	}}
}

// rulePainSplit drops the HP-averaging move when it would help the opponent.
func rulePainSplit() Rule {
	return Rule{Name: "pain-split", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		if snap.ActiveSelf.HPFraction < snap.ActiveOpponent.HPFraction {
			return Keep()
		}
		return RemoveMoveIDs("own HP not below opponent's", "painsplit")
	}}
}

// ruleLoweredOffense forces a viable switch when the dominant attacking stat
// has been dropped to the point of uselessness.
func ruleLoweredOffense() Rule {
	return Rule{Name: "lowered-offense", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		self := snap.ActiveSelf

		physical, special := 0, 0
		for _, m := range snap.AvailableMoves {
			switch m.Category {
			case battle.CategoryPhysical:
				physical++
			case battle.CategorySpecial:
				special++
			}
		}

		atk := self.Boost(battle.StatAttack)
		spa := self.Boost(battle.StatSpecialAttack)
		crippled := false
		switch {
		case physical > special:
			crippled = atk <= offenseDropStage
		case special > physical:
			crippled = spa <= offenseDropStage
		case physical == special && physical > 0:
			crippled = atk <= offenseDropStage || spa <= offenseDropStage
		}
		if !crippled {
			return Keep()
		}

		viable := ViableSwitches(snap, snap.AvailableSwitches)
		if len(viable) == 0 {
			return Keep()
		}
		return Override("attacking stat crippled", viable)
	}}
}

// ruleLastPokemonPivot drops self-switching moves when there is no bench
// left to pivot into.
func ruleLastPokemonPivot() Rule {
	return Rule{Name: "last-pokemon-pivot", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		if len(ctx.Snapshot.AvailableSwitches) > 0 {
			return Keep()
		}
		return RemoveMoveIDs("no bench to pivot into", ctx.Catalog.PivotMoves...)
	}}
}

// ruleWeatherGated drops moves that need a weather that is not up, healing
// weakened by the current weather, and the weather-dependent ball with no
// weather at all.
func ruleWeatherGated() Rule {
	return Rule{Name: "weather-gated", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		w := ctx.Snapshot.Weather
		cat := ctx.Catalog
		var remove []string
		if !w.SunActive() {
			remove = append(remove, cat.SunMoves...)
		}
		if !w.RainActive() {
			remove = append(remove, cat.RainMoves...)
		}
		if !w.HailActive() {
			remove = append(remove, cat.HailMoves...)
		}
		if w != battle.WeatherNone && !w.SunActive() {
			remove = append(remove, cat.WeatherHealing...)
		}
		if w == battle.WeatherNone {
			remove = append(remove, "weatherball")
		}
		if len(remove) == 0 {
			return Keep()
		}
		return RemoveMoveIDs("weather does not support the move", remove...)
	}}
}

// ruleKnockOff drops the item-removal attack when the opponent holds nothing
// and the hit is not super effective.
func ruleKnockOff() Rule {
	return Rule{Name: "knock-off", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		if ctx.Snapshot.ActiveOpponent.Item != "" {
			return Keep()
		}
		if ctx.Damage["knockoff"].Multiplier > 1 {
			return Keep()
		}
		return RemoveMoveIDs("no item to knock off", "knockoff")
	}}
}

// ruleSubstitute drops status moves into a damage-absorbing decoy, and the
// decoy move itself while one is already up.
func ruleSubstitute() Rule {
	return Rule{Name: "substitute", Apply: func(ctx *TurnContext, current []battle.Action) Verdict {
		snap := ctx.Snapshot
		var remove []battle.Action
		if snap.ActiveOpponent.HasEffect(battle.EffectSubstitute) {
			remove = append(remove, statusMovesIn(snap, current)...)
		}
		if snap.ActiveSelf.HasEffect(battle.EffectSubstitute) {
			remove = append(remove, battle.MoveAction("substitute"))
		}
		if len(remove) == 0 {
			return Keep()
		}
		return RemoveActions("blocked by a substitute", remove...)
	}}
}

// ruleAbilityGates covers ability-conditioned pruning: priority-granting
// status moves into a dark-type nullifier, and the loafing-turn forced
// switch.
func ruleAbilityGates() Rule {
	return Rule{Name: "ability-gates", Apply: func(ctx *TurnContext, current []battle.Action) Verdict {
		snap := ctx.Snapshot
		self := snap.ActiveSelf

		if self.Ability == "truant" && self.MustRecharge {
			if switches := switchesIn(current); len(switches) > 0 {
				return Override("loafing turn, do not give a free turn", switches)
			}
			return Keep()
		}

		if self.Ability == "prankster" && snap.Generation >= 7 && snap.ActiveOpponent.HasType(battle.TypeDark) {
			if remove := statusMovesIn(snap, current); len(remove) > 0 {
				return RemoveActions("priority status nullified by dark type", remove...)
			}
		}
		return Keep()
	}}
}

// ruleRecharge unconditionally drops moves with a mandatory recovery turn.
func ruleRecharge() Rule {
	return Rule{Name: "recharge-cost", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		return RemoveMoveIDs("mandatory recharge turn", ctx.Catalog.RechargeMoves...)
	}}
}

// ruleForcedContinuation evaluates a switch when an external lock forces a
// now-useless move: an ineffective encored attack, maxed-out encored setup,
// an already-satisfied encored field move, or a taunt lock onto nothing but
// sub-par attacks.
func ruleForcedContinuation() Rule {
	return Rule{Name: "forced-continuation", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		self := snap.ActiveSelf

		if self.HasEffect(battle.EffectEncore) && len(snap.AvailableMoves) == 1 {
			locked := snap.AvailableMoves[0]
			useless := false

			if locked.Category != battle.CategoryStatus {
				useless = ctx.Damage[locked.ID].Multiplier < 1
			} else {
				if len(locked.Boosts) > 0 {
					useless = true
					for stat := range locked.Boosts {
						if self.Boost(stat) < battle.MaxBoost {
							useless = false
							break
						}
					}
				}
				for cond, move := range ctx.Catalog.HazardSetters {
					if move != locked.ID {
						continue
					}
					cap := ctx.Catalog.HazardStackCaps[cond]
					if cap == 0 {
						cap = 1
					}
					if snap.SideOpponent[cond] >= cap {
						useless = true
					}
				}
			}

			if useless {
				if viable := ViableSwitches(snap, snap.AvailableSwitches); len(viable) > 0 {
					return Override("encored into a useless move", viable)
				}
			}
		}

		if self.HasEffect(battle.EffectTaunt) {
			if len(snap.AvailableMoves) == 0 {
				return Override("taunted with no attacks", ViableSwitches(snap, snap.AvailableSwitches))
			}
			allBad := true
			for _, m := range snap.AvailableMoves {
				if ctx.Damage[m.ID].Multiplier >= 1 {
					allBad = false
					break
				}
			}
			if allBad {
				if viable := ViableSwitches(snap, snap.AvailableSwitches); len(viable) > 0 {
					return Override("taunted with only resisted attacks", viable)
				}
			}
		}

		return Keep()
	}}
}

// ruleSpecialWall evaluates a switch when facing a designated
// special-defense specialist without any physical option.
func ruleSpecialWall() Rule {
	return Rule{Name: "special-wall", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		if !dex.Contains(ctx.Catalog.SpecialWalls, snap.ActiveOpponent.Species) {
			return Keep()
		}
		for _, m := range snap.AvailableMoves {
			if m.Category == battle.CategoryPhysical {
				return Keep()
			}
		}
		viable := ViableSwitches(snap, snap.AvailableSwitches)
		if len(viable) == 0 {
			return Keep()
		}
		return Override("special wall and no physical attacks", viable)
	}}
}

// ruleSelfSacrifice gates self-knockout moves to favorable trades: own side
// nearly down, opponent near full.
func ruleSelfSacrifice() Rule {
	return Rule{Name: "self-sacrifice", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		if snap.ActiveSelf.HPFraction < selfKOMaxOwnHP && snap.ActiveOpponent.HPFraction > selfKOMinOppHP {
			return Keep()
		}
		return RemoveMoveIDs("not a favorable trade", ctx.Catalog.SelfKOMoves...)
	}}
}

// ruleCleric drops team-wide status cures while no living teammate carries a
// status condition.
func ruleCleric() Rule {
	return Rule{Name: "cleric", Apply: func(ctx *TurnContext, _ []battle.Action) Verdict {
		snap := ctx.Snapshot
		if snap.ActiveSelf.Status != battle.StatusNone {
			return Keep()
		}
		for _, p := range snap.TeamSelf {
			if !p.Fainted && p.Status != battle.StatusNone {
				return Keep()
			}
		}
		return RemoveMoveIDs("nobody to cure", ctx.Catalog.ClericMoves...)
	}}
}

// statusMovesIn returns the status-category move candidates in the set.
func statusMovesIn(snap *battle.Snapshot, set []battle.Action) []battle.Action {
	var out []battle.Action
	for _, a := range set {
		if a.IsSwitch() {
			continue
		}
		if m, ok := snap.MoveByID(a.ID); ok && m.Category == battle.CategoryStatus {
			out = append(out, a)
		}
	}
	return out
}
