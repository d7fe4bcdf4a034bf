package domain

import (
	"iter"
	"maps"
	"slices"
)

// WatchList is an ordered list of watched paths. A nil list watches nothing.
type WatchList []Path

// Side names the structure a watch list is scoped to.
type Side uint8

const (
	// SideProps is the externally supplied structure.
	SideProps Side = iota
	// SideState is the component-owned structure.
	SideState
)

// String returns the lowercase side name.
func (s Side) String() string {
	if s == SideState {
		return "state"
	}
	return "props"
}

// Mode selects how before and after values are compared.
type Mode uint8

const (
	// ModeDeep compares values by structure.
	ModeDeep Mode = iota
	// ModeShallow compares values by identity.
	ModeShallow
)

// ModeOf maps the shallow flag onto a Mode.
func ModeOf(shallow bool) Mode {
	if shallow {
		return ModeShallow
	}
	return ModeDeep
}

// String returns the lowercase mode name.
func (m Mode) String() string {
	if m == ModeShallow {
		return "shallow"
	}
	return "deep"
}

// Watch pairs a watch list with the before and after values it is resolved against.
type Watch struct {
	Side   Side
	Paths  WatchList
	Before any
	After  any
}

// Component is anything exposing its current props and state.
// Hooks read both at call time, never at creation time.
type Component interface {
	Props() any
	State() any
}

// Snapshot is a Component frozen at one point in time.
type Snapshot struct {
	props any
	state any
}

// NewSnapshot creates a Snapshot holding props and state.
func NewSnapshot(props, state any) Snapshot {
	return Snapshot{props: props, state: state}
}

// Props returns the captured props.
func (s Snapshot) Props() any { return s.props }

// State returns the captured state.
func (s Snapshot) State() any { return s.state }

// Dependencies is the configuration captured once by a binder.
type Dependencies struct {
	Props WatchList
	State WatchList
	Mode  Mode
	// Extra is forwarded verbatim to every detector call and never interpreted.
	Extra map[string]any
}

// NewDependencies copies the given lists and options so later mutation by the
// caller cannot leak into the bound configuration.
func NewDependencies(props, state WatchList, mode Mode, extra map[string]any) Dependencies {
	return Dependencies{
		Props: slices.Clone(props),
		State: slices.Clone(state),
		Mode:  mode,
		Extra: maps.Clone(extra),
	}
}

// Input is the full argument set of one update decision.
type Input struct {
	Props       WatchList
	State       WatchList
	BeforeProps any
	AfterProps  any
	BeforeState any
	AfterState  any
	Mode        Mode
	Extra       map[string]any
}

// Watches yields the props watch followed by the state watch.
func (in Input) Watches() iter.Seq[Watch] {
	return func(yield func(Watch) bool) {
		if !yield(Watch{Side: SideProps, Paths: in.Props, Before: in.BeforeProps, After: in.AfterProps}) {
			return
		}
		yield(Watch{Side: SideState, Paths: in.State, Before: in.BeforeState, After: in.AfterState})
	}
}

// Change describes the first watched path found to differ.
type Change struct {
	Side          Side
	Path          Path
	Before        any
	After         any
	BeforePresent bool
	AfterPresent  bool
}
