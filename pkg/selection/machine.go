package selection

import (
	"github.com/chazu/whorl/pkg/taxonomy"
)

// State enumerates how deep the current drill-down has progressed.
type State int

const (
	Empty          State = iota // nothing chosen
	CoreChosen                  // core set, primary/tertiary clear
	PrimaryChosen               // core+primary set, tertiary clear
	TertiaryChosen              // full path; terminal, result emitted
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case CoreChosen:
		return "core-chosen"
	case PrimaryChosen:
		return "primary-chosen"
	case TertiaryChosen:
		return "tertiary-chosen"
	default:
		return "unknown"
	}
}

// Path is the in-progress or completed {core, primary, tertiary} choice.
// An empty string means the level is unset. Invariant: Primary is set only
// when Core is set and names a child of Core; Tertiary is set only when
// Primary is set and names a child of that primary.
type Path struct {
	Core     string `json:"core"`
	Primary  string `json:"primary"`
	Tertiary string `json:"tertiary"`
}

// IsZero reports whether nothing has been chosen.
func (p Path) IsZero() bool {
	return p == Path{}
}

// CompleteFunc receives the finalized path. It fires exactly once per
// completed drill-down and never with a partially specified path.
type CompleteFunc func(Path)

// Machine is the drill-down state machine. Transitions that reference a
// name that is not a child of the current parent are silent no-ops: they
// are a caller defect, not a runtime condition to surface to the user, and
// must never corrupt the path invariant.
//
// Machine is not safe for concurrent use; all mutation happens inside
// discrete UI event handlers on a single goroutine.
type Machine struct {
	tree       *taxonomy.Tree
	path       Path
	state      State
	onComplete CompleteFunc
}

// NewMachine creates a machine in the Empty state over the given taxonomy.
// onComplete may be nil when the caller only polls Path().
func NewMachine(tree *taxonomy.Tree, onComplete CompleteFunc) *Machine {
	return &Machine{tree: tree, onComplete: onComplete}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Path returns a copy of the current path.
func (m *Machine) Path() Path {
	return m.path
}

// SelectCore chooses a core category. Valid from any state; choosing a core
// clears any deeper selection. Returns true if the transition was applied.
func (m *Machine) SelectCore(name string) bool {
	if m.tree.FindCore(name) == nil {
		return false
	}
	m.path = Path{Core: name}
	m.state = CoreChosen
	return true
}

// SelectPrimary chooses a subcategory of the current core. A no-op unless a
// core is chosen and name is one of its children. Clears any tertiary.
func (m *Machine) SelectPrimary(name string) bool {
	if m.path.Core == "" {
		return false
	}
	if m.tree.FindPrimary(m.path.Core, name) == nil {
		return false
	}
	m.path.Primary = name
	m.path.Tertiary = ""
	m.state = PrimaryChosen
	return true
}

// SelectTertiary chooses a leaf under the current primary. On success the
// machine enters TertiaryChosen and the completion callback fires with the
// full triple. The machine never auto-advances past this; what happens next
// (closing the wheel, resetting) is the caller's decision.
func (m *Machine) SelectTertiary(name string) bool {
	if m.path.Primary == "" {
		return false
	}
	if m.tree.FindTertiary(m.path.Core, m.path.Primary, name) == nil {
		return false
	}
	m.path.Tertiary = name
	m.state = TertiaryChosen
	if m.onComplete != nil {
		m.onComplete(m.path)
	}
	return true
}

// Back steps exactly one level up, clearing only the most specific field.
// Valid from PrimaryChosen and TertiaryChosen; a no-op otherwise. Stepping
// all the way out of a drill-down is Reset's job.
func (m *Machine) Back() {
	switch m.state {
	case TertiaryChosen:
		m.path.Tertiary = ""
		m.state = PrimaryChosen
	case PrimaryChosen:
		m.path.Primary = ""
		m.state = CoreChosen
	}
}

// Reset returns to Empty with an all-clear path, from any state.
func (m *Machine) Reset() {
	m.path = Path{}
	m.state = Empty
}

// Terminal reports whether the current path ends at a node with no further
// children, so no deeper ring can be offered. A shallower-than-three-level
// terminal never fires the completion callback; callers read Path() if they
// want the partial value.
func (m *Machine) Terminal() bool {
	switch m.state {
	case TertiaryChosen:
		return true
	case PrimaryChosen:
		p := m.tree.FindPrimary(m.path.Core, m.path.Primary)
		return p != nil && p.IsLeaf()
	case CoreChosen:
		c := m.tree.FindCore(m.path.Core)
		return c != nil && c.IsLeaf()
	}
	return false
}
