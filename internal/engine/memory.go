package engine

// Memory is the per-battle state the decider carries between turns. It is
// deliberately small: the filter rules only need to know what was just done,
// not the whole battle history.
type Memory struct {
	// LastMove is the move committed on the previous turn, empty after a
	// switch or at battle start.
	LastMove string
	// JustSwitched reports that the previous committed action was a switch,
	// which suppresses tactical switches for one turn.
	JustSwitched bool
}

// CommitMove records a committed move action.
//
// Postcondition: LastMove is id and JustSwitched is false.
func (m *Memory) CommitMove(id string) {
	m.LastMove = id
	m.JustSwitched = false
}

// CommitSwitch records a committed switch action.
//
// Postcondition: LastMove is cleared and JustSwitched is true.
func (m *Memory) CommitSwitch() {
	m.LastMove = ""
	m.JustSwitched = true
}

// ClearSwitchFlag consumes the one-turn switch suppression.
func (m *Memory) ClearSwitchFlag() {
	m.JustSwitched = false
}
