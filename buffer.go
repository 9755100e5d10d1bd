package mdtype

import "fmt"

// Range is a span of a buffer in rune offsets.
type Range struct {
	Location int
	Length   int
}

// End returns the exclusive end offset.
func (r Range) End() int { return r.Location + r.Length }

// Buffer is the host-owned rich-text document. The core reads ranges from it
// and replaces it wholesale; it never keeps a reference across calls.
type Buffer interface {
	Substring(r Range) RichText
	Text() RichText
	ReplaceAll(text RichText)
	TypingAttributes() Attributes
	SetTypingAttributes(attrs Attributes)
}

// MemoryBuffer is an in-memory Buffer for hosts without their own text store.
type MemoryBuffer struct {
	text   RichText
	typing Attributes
}

// NewMemoryBuffer returns a buffer holding text with plain attributes.
func NewMemoryBuffer(text string) *MemoryBuffer {
	return &MemoryBuffer{text: NewRichText(text, Plain())}
}

// Substring returns a copy of r, clamped to the buffer.
func (b *MemoryBuffer) Substring(r Range) RichText {
	return b.text.Slice(r.Location, r.End())
}

// Text returns a copy of the whole document.
func (b *MemoryBuffer) Text() RichText { return b.text.Clone() }

// ReplaceAll swaps in text as the whole document.
func (b *MemoryBuffer) ReplaceAll(text RichText) { b.text = text.Clone() }

// TypingAttributes returns the attributes for the next inserted character.
func (b *MemoryBuffer) TypingAttributes() Attributes { return b.typing }

// SetTypingAttributes sets the attributes for the next inserted character.
func (b *MemoryBuffer) SetTypingAttributes(attrs Attributes) { b.typing = attrs }

// Len returns the number of characters in the document.
func (b *MemoryBuffer) Len() int { return len(b.text) }

// String returns the document text without attributes.
func (b *MemoryBuffer) String() string { return b.text.String() }

// Commit performs a host-side edit: r is removed and replacement is inserted
// in its place carrying the typing attributes.
func (b *MemoryBuffer) Commit(r Range, replacement string) error {
	if r.Location < 0 || r.Length < 0 || r.End() > len(b.text) {
		return fmt.Errorf("commit %d+%d in %d chars: %w", r.Location, r.Length, len(b.text), ErrRangeOutOfBounds)
	}
	b.text = b.text.Slice(0, r.Location).Append(
		NewRichText(replacement, b.typing),
		b.text.Slice(r.End(), len(b.text)),
	)
	return nil
}
