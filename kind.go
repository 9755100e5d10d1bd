package mdtype

// Kind is the style bound to a delimiter.
type Kind uint8

const (
	// Bold is bound to '*'.
	Bold Kind = iota
	// Italic is bound to '_'.
	Italic
	// Strikethrough is bound to '~'.
	Strikethrough
)

const delimiterSet = "*_~"

var kindNames = [...]string{
	Bold:          "Bold",
	Italic:        "Italics",
	Strikethrough: "StrikeThrough",
}

var kindDelimiters = [...]rune{
	Bold:          '*',
	Italic:        '_',
	Strikethrough: '~',
}

// Kinds returns every style kind in delimiter order.
func Kinds() []Kind {
	return []Kind{Bold, Italic, Strikethrough}
}

// String returns the label used in status descriptions.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Delimiter returns the character that opens and closes k.
func (k Kind) Delimiter() rune {
	if int(k) < len(kindDelimiters) {
		return kindDelimiters[k]
	}
	return 0
}

// KindForDelimiter reports the kind bound to text when text is exactly one
// delimiter character.
func KindForDelimiter(text string) (Kind, bool) {
	switch text {
	case "*":
		return Bold, true
	case "_":
		return Italic, true
	case "~":
		return Strikethrough, true
	}
	return 0, false
}

// IsDelimiter reports whether r is one of the delimiter characters.
func IsDelimiter(r rune) bool {
	switch r {
	case '*', '_', '~':
		return true
	}
	return false
}
