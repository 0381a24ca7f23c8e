package battle

import "strings"

// ActionKind identifies what an Action does.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionKind int

const (
	ActionUnknown ActionKind = iota // zero value; intentionally invalid
	ActionMove
	ActionSwitch
)

// Action is one candidate choice for a turn: use a move, or switch to a
// bench Pokémon. Uniqueness is by (Kind, ID).
type Action struct {
	Kind ActionKind
	// ID is the move id for ActionMove, or the normalized species id for
	// ActionSwitch.
	ID string
}

// MoveAction returns a move candidate for the given move id.
func MoveAction(id string) Action {
	return Action{Kind: ActionMove, ID: id}
}

// SwitchAction returns a switch candidate for the given species. The species
// is normalized to its lowercase hyphenated id form.
func SwitchAction(species string) Action {
	return Action{Kind: ActionSwitch, ID: NormalizeSpecies(species)}
}

// IsSwitch reports whether the action is a switch.
func (a Action) IsSwitch() bool {
	return a.Kind == ActionSwitch
}

// String returns the wire form of the action: the move id, or the species id
// prefixed with "switch-".
func (a Action) String() string {
	if a.Kind == ActionSwitch {
		return "switch-" + a.ID
	}
	return a.ID
}

// ParseAction converts an identifier in wire form back into an Action.
func ParseAction(s string) Action {
	if rest, ok := strings.CutPrefix(s, "switch-"); ok {
		return Action{Kind: ActionSwitch, ID: rest}
	}
	return Action{Kind: ActionMove, ID: s}
}

// NormalizeSpecies lowercases a species name and replaces spaces with
// hyphens, matching the identifier form used in action lists.
func NormalizeSpecies(species string) string {
	return strings.ReplaceAll(strings.ToLower(species), " ", "-")
}
