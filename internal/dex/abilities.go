package dex

import "github.com/TheoKim/llm-pokemon-trainer/internal/battle"

// DefenseContext carries everything the defensive ability rules look at for
// one move against one defender.
type DefenseContext struct {
	// Move is the incoming move.
	Move battle.Move
	// MoveType is the move's resolved type (after weather-ball style
	// substitutions), which may differ from Move.Type.
	MoveType battle.Type
	// Effectiveness is the raw type-chart multiplier before ability rules.
	Effectiveness float64
	// DefenderFullHP is set when the defender is at full HP.
	DefenderFullHP bool
}

// DefensiveAbilityModifier returns the multiplier a single defending ability
// applies to the incoming move.
//
// Immunity abilities return exactly 0 and take precedence over any
// multiplicative rule: once an immunity matches, no reduction or increase is
// considered.
//
// Postcondition: Returns 0 for an immunity, otherwise a product of the
// matching reduction/increase multipliers (1 when nothing matches).
func DefensiveAbilityModifier(ability string, ctx DefenseContext) float64 {
	// Immunities first.
	switch {
	case ability == "dryskin" && ctx.MoveType == battle.TypeWater:
		return 0
	case ability == "flashfire" && ctx.MoveType == battle.TypeFire:
		return 0
	case ability == "levitate" && ctx.MoveType == battle.TypeGround:
		return 0
	case (ability == "lightningrod" || ability == "motordrive" || ability == "voltabsorb") && ctx.MoveType == battle.TypeElectric:
		return 0
	case ability == "sapsipper" && ctx.MoveType == battle.TypeGrass:
		return 0
	case (ability == "stormdrain" || ability == "waterabsorb") && ctx.MoveType == battle.TypeWater:
		return 0
	}

	mod := 1.0

	// Damage reduction.
	if (ability == "filter" || ability == "solidrock" || ability == "prismarmor") && ctx.Effectiveness > 1 {
		mod *= 0.75
	}
	if ability == "fluffy" && ctx.Move.HasFlag("contact") {
		mod *= 0.5
	}
	if ability == "furcoat" && ctx.Move.Category == battle.CategoryPhysical {
		mod *= 0.5
	}
	if ability == "heatproof" && ctx.MoveType == battle.TypeFire {
		mod *= 0.5
	}
	if ability == "icescales" && ctx.Move.Category == battle.CategorySpecial {
		mod *= 0.5
	}
	if ability == "multiscale" && ctx.DefenderFullHP {
		mod *= 0.5
	}
	if ability == "punkrock" && ctx.Move.HasFlag("sound") {
		mod *= 0.5
	}
	if ability == "purifyingsalt" && ctx.MoveType == battle.TypeGhost {
		mod *= 0.5
	}
	if ability == "thickfat" && (ctx.MoveType == battle.TypeFire || ctx.MoveType == battle.TypeIce) {
		mod *= 0.5
	}
	if ability == "waterbubble" && ctx.MoveType == battle.TypeFire {
		mod *= 0.5
	}

	// Damage increase.
	if ability == "dryskin" && ctx.MoveType == battle.TypeFire {
		mod *= 1.25
	}
	if ability == "fluffy" && ctx.MoveType == battle.TypeFire {
		mod *= 2.0
	}

	return mod
}

// WorstCaseDefensiveModifier reduces a set of possible abilities to the
// single most damage-reducing modifier. Used when the defender's ability is
// unknown: the estimator assumes the defender has the best defensive option.
//
// Postcondition: Returns 1 for an empty set; otherwise the minimum modifier
// across abilities (0 if any possible ability grants an immunity).
func WorstCaseDefensiveModifier(abilities []string, ctx DefenseContext) float64 {
	worst := 1.0
	for _, ability := range abilities {
		if mod := DefensiveAbilityModifier(ability, ctx); mod < worst {
			worst = mod
		}
	}
	return worst
}

// OffenseContext carries the attacker-side state the power boost rules need.
type OffenseContext struct {
	// Move is the outgoing move; MoveType its resolved type.
	Move     battle.Move
	MoveType battle.Type
	// HPFraction is the attacker's current HP fraction.
	HPFraction float64
	// Status is the attacker's status condition.
	Status battle.Status
	// Weather is the active weather.
	Weather battle.Weather
	// RepeatedMove is set when the attacker used this same move last turn
	// (past turn 1), for the analytic-style boost.
	RepeatedMove bool
}

// OffensivePowerModifier returns the power multiplier from the attacker's
// ability. The rules are mutually exclusive: a single ability matches at
// most one branch.
//
// Postcondition: Returns a multiplier >= 1, or exactly 1 when no rule matches.
func OffensivePowerModifier(ability string, ctx OffenseContext) float64 {
	pinch := ctx.HPFraction <= 1.0/3.0
	switch {
	case ability == "aerilate" && ctx.MoveType == battle.TypeNormal:
		return 1.2
	case ability == "analytic" && ctx.RepeatedMove:
		return 1.3
	case ability == "blaze" && pinch && ctx.MoveType == battle.TypeFire:
		return 1.5
	case ability == "darkaura" || ability == "fairyaura":
		return 1.33
	case ability == "flareboost" && ctx.Status == battle.StatusBurn && ctx.Move.Category == battle.CategorySpecial:
		return 1.5
	case ability == "guts" && ctx.Status != battle.StatusNone && ctx.Move.Category == battle.CategoryPhysical:
		return 1.5
	case ability == "ironfist" && ctx.Move.HasFlag("punch"):
		return 1.2
	case ability == "megalauncher" && ctx.Move.HasFlag("pulse"):
		return 1.5
	case ability == "overgrow" && pinch && ctx.MoveType == battle.TypeGrass:
		return 1.5
	case ability == "pixilate" && ctx.MoveType == battle.TypeNormal:
		return 1.2
	case ability == "punkrock" && ctx.Move.HasFlag("sound"):
		return 1.3
	case ability == "reckless" && ctx.Move.Recoil > 0:
		return 1.2
	case ability == "refrigerate" && ctx.MoveType == battle.TypeNormal:
		return 1.2
	case ability == "sandforce" && ctx.Weather == battle.WeatherSandstorm &&
		(ctx.MoveType == battle.TypeRock || ctx.MoveType == battle.TypeGround || ctx.MoveType == battle.TypeSteel):
		return 1.3
	case ability == "solarpower" && ctx.Weather.SunActive() && ctx.Move.Category == battle.CategorySpecial:
		return 1.5
	case (ability == "steelworker" || ability == "steelyspirit") && ctx.MoveType == battle.TypeSteel:
		return 1.5
	case ability == "strongjaw" && ctx.Move.HasFlag("bite"):
		return 1.5
	case ability == "swarm" && pinch && ctx.MoveType == battle.TypeBug:
		return 1.5
	case ability == "technician" && ctx.Move.BasePower <= 60:
		return 1.5
	case ability == "torrent" && pinch && ctx.MoveType == battle.TypeWater:
		return 1.5
	case ability == "toughclaws" && ctx.Move.HasFlag("contact"):
		return 1.3
	case ability == "toxicboost" && (ctx.Status == battle.StatusPoison || ctx.Status == battle.StatusToxic) &&
		ctx.Move.Category == battle.CategoryPhysical:
		return 1.5
	case ability == "transistor" && ctx.MoveType == battle.TypeElectric:
		return 1.3
	case ability == "waterbubble" && ctx.MoveType == battle.TypeWater:
		return 2.0
	}
	return 1
}

// SpeedAbilityMultiplier returns the speed multiplier from an ability under
// the current weather, including the slow-start penalty for a Pokémon that
// has been out fewer than five turns.
func SpeedAbilityMultiplier(ability string, weather battle.Weather, turnsActive int) float64 {
	switch {
	case ability == "slushrush" && weather.HailActive():
		return 2
	case ability == "swiftswim" && weather.RainActive():
		return 2
	case ability == "chlorophyll" && weather.SunActive():
		return 2
	case ability == "slowstart" && turnsActive < 5:
		return 0.5
	}
	return 1
}
