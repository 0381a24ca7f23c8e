package battle

// Move is the view of one move as reported by the battle parser.
type Move struct {
	// ID is the lowercase move identifier (e.g. "flamethrower").
	ID string `json:"id"`
	// BasePower is the nominal base power; 0 for status moves.
	BasePower int `json:"base_power"`
	// Type is the move's nominal type; variable-type moves are resolved by
	// the damage estimator.
	Type Type `json:"type"`
	// Category is physical, special, or status.
	Category Category `json:"category"`
	// Accuracy is the hit chance in percent, ignored when AlwaysHits is set.
	Accuracy int `json:"accuracy"`
	// AlwaysHits marks moves that bypass accuracy checks.
	AlwaysHits bool `json:"always_hits"`
	// Priority is the move's priority tier (positive acts earlier).
	Priority int `json:"priority"`
	// CritRatio is the move's critical-hit stage before ability/item bonuses.
	CritRatio int `json:"crit_ratio"`
	// Flags holds move flags such as "contact", "sound", "punch", "bite", "pulse".
	Flags []string `json:"flags,omitempty"`
	// Boosts is the stat-stage table the move applies to its user, if any.
	Boosts map[Stat]int `json:"boosts,omitempty"`
	// Recoil is the recoil fraction; 0 for recoil-free moves.
	Recoil float64 `json:"recoil"`
}

// HasFlag reports whether the move carries the named flag.
func (m Move) HasFlag(flag string) bool {
	for _, f := range m.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// HitChance returns the move's chance to hit in [0, 1].
func (m Move) HitChance() float64 {
	if m.AlwaysHits {
		return 1
	}
	return float64(m.Accuracy) / 100.0
}

// Pokemon is the view of one Pokémon, own or opposing. For opposing Pokémon
// only revealed information is populated; Ability may be empty while
// PossibleAbilities lists the candidates.
type Pokemon struct {
	// Species is the lowercase species identifier.
	Species string `json:"species"`
	// HPFraction is current HP as a fraction of max HP in [0, 1].
	HPFraction float64 `json:"hp_fraction"`
	// Stats holds the computed stat values (before boosts).
	Stats map[Stat]int `json:"stats,omitempty"`
	// Boosts holds the current stat stages in [-6, 6].
	Boosts map[Stat]int `json:"boosts,omitempty"`
	// Status is the non-volatile status condition, if any.
	Status Status `json:"status,omitempty"`
	// StatusCounter is the remaining-duration counter for Status where the
	// parser tracks one (sleep turns remaining).
	StatusCounter int `json:"status_counter,omitempty"`
	// Ability is the revealed ability, or empty when unknown.
	Ability string `json:"ability,omitempty"`
	// PossibleAbilities lists the species' legal abilities, used when
	// Ability is unknown.
	PossibleAbilities []string `json:"possible_abilities,omitempty"`
	// Item is the held item, or empty when none or unknown.
	Item string `json:"item,omitempty"`
	// Types is the Pokémon's current type pair (one or two entries).
	Types []Type `json:"types"`
	// Moves holds the revealed moves (opposing Pokémon only).
	Moves []Move `json:"moves,omitempty"`
	// Effects holds the active volatile effects.
	Effects []Effect `json:"effects,omitempty"`
	// WeightKg is the body weight in kilograms; 0 when unknown.
	WeightKg float64 `json:"weight_kg,omitempty"`
	// TurnsActive counts turns since this Pokémon entered the field.
	TurnsActive int `json:"turns_active,omitempty"`
	// MustRecharge is set when the previous move forces a recharge turn.
	MustRecharge bool `json:"must_recharge,omitempty"`
	// Fainted is set once the Pokémon has been knocked out.
	Fainted bool `json:"fainted,omitempty"`
}

// HasType reports whether t is one of the Pokémon's types.
func (p Pokemon) HasType(t Type) bool {
	for _, pt := range p.Types {
		if pt == t {
			return true
		}
	}
	return false
}

// Boost returns the current stage for stat, defaulting to 0.
func (p Pokemon) Boost(stat Stat) int {
	return p.Boosts[stat]
}

// HasEffect reports whether the volatile effect e is active.
func (p Pokemon) HasEffect(e Effect) bool {
	for _, pe := range p.Effects {
		if pe == e {
			return true
		}
	}
	return false
}

// Abilities returns the ability set to reason over: the revealed ability
// alone when known, otherwise every possible ability.
func (p Pokemon) Abilities() []string {
	if p.Ability != "" {
		return []string{p.Ability}
	}
	return p.PossibleAbilities
}

// Snapshot is the read-only view of one turn. It is owned by the caller for
// the turn's lifetime; the engine never mutates it and never keeps a
// reference past the turn.
type Snapshot struct {
	// Turn is the current turn number, starting at 1.
	Turn int `json:"turn"`
	// Generation is the game generation the battle runs under.
	Generation int `json:"generation"`
	// ActiveSelf and ActiveOpponent are the two on-field Pokémon.
	ActiveSelf     Pokemon `json:"active_self"`
	ActiveOpponent Pokemon `json:"active_opponent"`
	// TeamSelf and TeamOpponent map species to their current views.
	TeamSelf     map[string]Pokemon `json:"team_self,omitempty"`
	TeamOpponent map[string]Pokemon `json:"team_opponent,omitempty"`
	// Weather is the active weather, if any.
	Weather Weather `json:"weather,omitempty"`
	// Fields holds the active field-wide effects.
	Fields []FieldEffect `json:"fields,omitempty"`
	// SideSelf and SideOpponent map side conditions to stack counts
	// (1 for non-stacking conditions).
	SideSelf     map[SideCondition]int `json:"side_self,omitempty"`
	SideOpponent map[SideCondition]int `json:"side_opponent,omitempty"`
	// AvailableMoves is the ordered legal move list for this turn.
	AvailableMoves []Move `json:"available_moves,omitempty"`
	// AvailableSwitches is the ordered legal switch list for this turn.
	AvailableSwitches []Pokemon `json:"available_switches,omitempty"`
	// ForceSwitch is set when the server demands a replacement (faint or
	// phazing) instead of a normal turn choice.
	ForceSwitch bool `json:"force_switch,omitempty"`
}

// HasField reports whether the field-wide effect f is active.
func (s *Snapshot) HasField(f FieldEffect) bool {
	for _, sf := range s.Fields {
		if sf == f {
			return true
		}
	}
	return false
}

// MoveByID returns the available move with the given id, or false.
func (s *Snapshot) MoveByID(id string) (Move, bool) {
	for _, m := range s.AvailableMoves {
		if m.ID == id {
			return m, true
		}
	}
	return Move{}, false
}

// SwitchBySpecies returns the available switch with the given species, or false.
func (s *Snapshot) SwitchBySpecies(species string) (Pokemon, bool) {
	for _, p := range s.AvailableSwitches {
		if p.Species == species {
			return p, true
		}
	}
	return Pokemon{}, false
}

// DamageEstimate is the per-move output of the damage estimator, recomputed
// from scratch every turn and never persisted.
type DamageEstimate struct {
	// ExpectedDamage is accuracy-weighted expected damage, >= 0. The unit is
	// the estimator's internal power scale, not HP.
	ExpectedDamage float64
	// STAB reports whether the move's resolved type matches a user type.
	STAB bool
	// Multiplier is the type-effectiveness multiplier after ability
	// adjustments, >= 0.
	Multiplier float64
	// Priority is the move's priority tier.
	Priority int
}
