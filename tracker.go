package mdtype

import "strings"

// StyleApplication asks the applier to restyle the span between an opening
// delimiter at Start and a closing delimiter typed at End.
type StyleApplication struct {
	Kind  Kind
	Start int
	End   int
}

// Action is the outcome of one edit attempt.
type Action struct {
	// Allow tells the host to commit the edit. False suppresses it.
	Allow bool
	// Apply is non-nil when a delimiter span was closed.
	Apply *StyleApplication
}

// Transition computes the next state and action for a single edit attempt.
//
// inserted is the replacement text (empty for deletions, otherwise usually a
// single character), editStart is the offset where the edit begins and
// replaced holds the characters being removed. replaced is only consulted for
// deletions.
//
// A delimiter of a different kind typed while another is open passes through
// without changing state; only one span can be in flight.
func Transition(state PendingStyle, inserted string, editStart int, replaced string) (PendingStyle, Action) {
	if inserted == "" {
		if strings.ContainsAny(replaced, delimiterSet) {
			return None(), Action{Allow: true}
		}
		return state, Action{Allow: true}
	}
	kind, ok := KindForDelimiter(inserted)
	if !ok {
		return state, Action{Allow: true}
	}
	switch {
	case state.IsOpen() && state.Kind() == kind:
		return None(), Action{Apply: &StyleApplication{Kind: kind, Start: state.Start(), End: editStart}}
	case !state.IsOpen():
		return Open(kind, editStart), Action{Allow: true}
	default:
		return state, Action{Allow: true}
	}
}

// Tracker owns the pending style of one editing surface.
type Tracker struct {
	state PendingStyle
}

// HandleEdit applies Transition to the tracker state in place.
func (t *Tracker) HandleEdit(inserted string, editStart int, replaced string) Action {
	next, action := Transition(t.state, inserted, editStart, replaced)
	t.state = next
	return action
}

// State returns the current pending style.
func (t *Tracker) State() PendingStyle { return t.state }

// Reset returns the tracker to None.
func (t *Tracker) Reset() { t.state = None() }
