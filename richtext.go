package mdtype

import "strings"

// Cell is one character of a rich-text document with its attributes.
type Cell struct {
	Rune  rune
	Attrs Attributes
}

// RichText is an ordered sequence of attributed characters. Offsets into a
// RichText are rune offsets.
type RichText []Cell

// Run is a maximal span of characters sharing the same attributes.
type Run struct {
	Text  string
	Attrs Attributes
}

// NewRichText returns text with every character carrying attrs.
func NewRichText(text string, attrs Attributes) RichText {
	out := make(RichText, 0, len(text))
	for _, r := range text {
		out = append(out, Cell{Rune: r, Attrs: attrs})
	}
	return out
}

// Len returns the number of characters.
func (t RichText) Len() int { return len(t) }

// String returns the characters without attributes.
func (t RichText) String() string {
	var b strings.Builder
	b.Grow(len(t))
	for _, c := range t {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// Slice returns a copy of [start, end), clamped to the text bounds.
func (t RichText) Slice(start, end int) RichText {
	start = clamp(start, 0, len(t))
	end = clamp(end, start, len(t))
	out := make(RichText, end-start)
	copy(out, t[start:end])
	return out
}

// Append returns t followed by more. t is not modified.
func (t RichText) Append(more ...RichText) RichText {
	n := len(t)
	for _, m := range more {
		n += len(m)
	}
	out := make(RichText, 0, n)
	out = append(out, t...)
	for _, m := range more {
		out = append(out, m...)
	}
	return out
}

// Clone returns an independent copy of t.
func (t RichText) Clone() RichText {
	if t == nil {
		return nil
	}
	out := make(RichText, len(t))
	copy(out, t)
	return out
}

// Restyle returns the characters of t carrying attrs instead of their own.
func (t RichText) Restyle(attrs Attributes) RichText {
	out := make(RichText, len(t))
	for i, c := range t {
		out[i] = Cell{Rune: c.Rune, Attrs: attrs}
	}
	return out
}

// Runs groups t into maximal same-attribute runs.
func (t RichText) Runs() []Run {
	if len(t) == 0 {
		return nil
	}
	var runs []Run
	var b strings.Builder
	cur := t[0].Attrs
	for _, c := range t {
		if c.Attrs != cur {
			runs = append(runs, Run{Text: b.String(), Attrs: cur})
			b.Reset()
			cur = c.Attrs
		}
		b.WriteRune(c.Rune)
	}
	return append(runs, Run{Text: b.String(), Attrs: cur})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
