package mdtype

import (
	"fmt"
	"unicode/utf8"
)

// StatusFunc receives the pending-style description after every edit.
type StatusFunc func(status string)

// EditEvent describes one edit attempt after it was handled.
type EditEvent struct {
	Range    Range
	Text     string
	Replaced string
	Allowed  bool
	Applied  *StyleApplication
	State    PendingStyle
}

// EditorOption configures an Editor.
type EditorOption func(*editorConfig)

type editorConfig struct {
	trailing TrailingPolicy
	status   StatusFunc
	observer func(EditEvent)
}

// WithTrailingPolicy selects what happens to text after a closing delimiter.
func WithTrailingPolicy(policy TrailingPolicy) EditorOption {
	return func(cfg *editorConfig) {
		cfg.trailing = policy
	}
}

// WithStatus registers the status indicator.
func WithStatus(fn StatusFunc) EditorOption {
	return func(cfg *editorConfig) {
		cfg.status = fn
	}
}

// WithEditObserver registers a callback invoked after every edit attempt.
func WithEditObserver(fn func(EditEvent)) EditorOption {
	return func(cfg *editorConfig) {
		cfg.observer = fn
	}
}

// Editor connects a host buffer to the style tracker and applier. Hosts call
// ShouldChangeText before committing every edit.
type Editor struct {
	buf     Buffer
	tracker Tracker
	applier Applier
	status  string
	cfg     editorConfig
}

// NewEditor returns an Editor over buf.
func NewEditor(buf Buffer, opts ...EditorOption) *Editor {
	cfg := editorConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Editor{
		buf:     buf,
		applier: Applier{Trailing: cfg.trailing},
		cfg:     cfg,
	}
}

// ShouldChangeText handles an edit replacing r with replacement and reports
// whether the host should commit it. A closing delimiter is consumed: the
// span is restyled and false is returned.
func (e *Editor) ShouldChangeText(r Range, replacement string) bool {
	action, _ := e.handle(r, replacement)
	return action.Allow
}

func (e *Editor) handle(r Range, replacement string) (Action, bool) {
	var replaced string
	if replacement == "" {
		replaced = e.buf.Substring(r).String()
	}
	action := e.tracker.HandleEdit(replacement, r.Location, replaced)
	applied := false
	if action.Apply != nil {
		applied = e.applier.Apply(e.buf, *action.Apply)
	}
	state := e.tracker.State()
	e.status = state.String()
	if e.cfg.status != nil {
		e.cfg.status(e.status)
	}
	if e.cfg.observer != nil {
		ev := EditEvent{Range: r, Text: replacement, Replaced: replaced, Allowed: action.Allow, State: state}
		if applied {
			app := *action.Apply
			ev.Applied = &app
		}
		e.cfg.observer(ev)
	}
	return action, applied
}

// State returns the pending style.
func (e *Editor) State() PendingStyle { return e.tracker.State() }

// Status returns the last published status description.
func (e *Editor) Status() string { return e.status }

// Session is an in-memory editing surface: a MemoryBuffer, an Editor and a
// cursor. Typed characters go through the edit callback before they are
// committed.
type Session struct {
	buf    *MemoryBuffer
	editor *Editor
	cursor int
}

// NewSession returns a session over text with the cursor at its end.
func NewSession(text string, opts ...EditorOption) *Session {
	buf := NewMemoryBuffer(text)
	return &Session{
		buf:    buf,
		editor: NewEditor(buf, opts...),
		cursor: buf.Len(),
	}
}

// Edit replaces r with text, as if the host received that edit from the
// user. It reports whether the edit was committed.
func (s *Session) Edit(r Range, text string) (bool, error) {
	if err := ValidateText(text); err != nil {
		return false, fmt.Errorf("edit: %w", err)
	}
	if r.Location < 0 || r.Length < 0 || r.End() > s.buf.Len() {
		return false, fmt.Errorf("edit %d+%d in %d chars: %w", r.Location, r.Length, s.buf.Len(), ErrRangeOutOfBounds)
	}
	before := s.buf.Len()
	action, applied := s.editor.handle(r, text)
	if applied {
		s.cursor = min(action.Apply.End, before) - 1
	}
	if !action.Allow {
		s.cursor = clamp(s.cursor, 0, s.buf.Len())
		return false, nil
	}
	if err := s.buf.Commit(r, text); err != nil {
		return false, err
	}
	s.cursor = r.Location + utf8.RuneCountInString(text)
	return true, nil
}

// Type types text one character at a time at the cursor.
func (s *Session) Type(text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("type: %w", ErrInvalidUTF8)
	}
	for _, r := range text {
		if _, err := s.Edit(Range{Location: s.cursor}, string(r)); err != nil {
			return err
		}
	}
	return nil
}

// Backspace deletes the character before the cursor.
func (s *Session) Backspace() error {
	if s.cursor == 0 {
		return nil
	}
	_, err := s.Edit(Range{Location: s.cursor - 1, Length: 1}, "")
	return err
}

// Delete deletes the character at the cursor.
func (s *Session) Delete() error {
	if s.cursor >= s.buf.Len() {
		return nil
	}
	_, err := s.Edit(Range{Location: s.cursor, Length: 1}, "")
	return err
}

// MoveTo places the cursor at offset, clamped to the document.
func (s *Session) MoveTo(offset int) {
	s.cursor = clamp(offset, 0, s.buf.Len())
}

// Cursor returns the cursor offset.
func (s *Session) Cursor() int { return s.cursor }

// Len returns the document length in characters.
func (s *Session) Len() int { return s.buf.Len() }

// Text returns a copy of the document.
func (s *Session) Text() RichText { return s.buf.Text() }

// TypingAttributes returns the attributes the next typed character receives.
func (s *Session) TypingAttributes() Attributes { return s.buf.TypingAttributes() }

// State returns the pending style.
func (s *Session) State() PendingStyle { return s.editor.State() }

// Status returns the status description.
func (s *Session) Status() string { return s.editor.Status() }
