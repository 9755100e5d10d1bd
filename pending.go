package mdtype

import "strconv"

// PendingStyle is the tracker state: either no delimiter is open, or exactly
// one delimiter of a kind was typed at a start offset and awaits its close.
// The zero value is None.
type PendingStyle struct {
	open  bool
	kind  Kind
	start int
}

// None returns the neutral state.
func None() PendingStyle {
	return PendingStyle{}
}

// Open returns the state for an unterminated delimiter of kind typed at start.
func Open(kind Kind, start int) PendingStyle {
	return PendingStyle{open: true, kind: kind, start: start}
}

// IsOpen reports whether a delimiter is awaiting its close.
func (p PendingStyle) IsOpen() bool { return p.open }

// Kind returns the open kind. Only meaningful when IsOpen is true.
func (p PendingStyle) Kind() Kind { return p.kind }

// Start returns the offset of the opening delimiter. Only meaningful when
// IsOpen is true.
func (p PendingStyle) Start() int { return p.start }

// String returns the status description: empty for None, otherwise
// "<Kind> starting <offset>".
func (p PendingStyle) String() string {
	if !p.open {
		return ""
	}
	return p.kind.String() + " starting " + strconv.Itoa(p.start)
}
