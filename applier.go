package mdtype

// TrailingPolicy decides what happens to text after the closing delimiter
// position when a span is restyled.
type TrailingPolicy uint8

const (
	// TrailingPreserve keeps the text after the closing delimiter position.
	TrailingPreserve TrailingPolicy = iota
	// TrailingDrop rebuilds the document as prefix plus restyled span only,
	// discarding anything after the closing delimiter position.
	TrailingDrop
)

func (p TrailingPolicy) String() string {
	switch p {
	case TrailingPreserve:
		return "preserve"
	case TrailingDrop:
		return "drop"
	}
	return "unknown"
}

// ParseTrailingPolicy parses "preserve" or "drop".
func ParseTrailingPolicy(s string) (TrailingPolicy, bool) {
	switch s {
	case "preserve", "":
		return TrailingPreserve, true
	case "drop":
		return TrailingDrop, true
	}
	return 0, false
}

// Applier rewrites a buffer when a delimiter span closes.
type Applier struct {
	Trailing TrailingPolicy
}

// Apply restyles the characters strictly between the opening delimiter at
// app.Start and the closing position app.End, removes the opening delimiter
// and resets the typing attributes to Plain. The closing delimiter never
// entered the buffer. It reports false and leaves buf untouched when the span
// is malformed.
func (a Applier) Apply(buf Buffer, app StyleApplication) bool {
	text := buf.Text()
	if app.Start < 0 || app.End <= app.Start || app.Start >= len(text) {
		return false
	}
	end := min(app.End, len(text))
	out := text.Slice(0, app.Start).Append(text.Slice(app.Start+1, end).Restyle(AttributesFor(app.Kind)))
	if a.Trailing == TrailingPreserve {
		out = out.Append(text.Slice(end, len(text)))
	}
	buf.ReplaceAll(out)
	buf.SetTypingAttributes(Plain())
	return true
}
