package mdtype

// Weight is the font-weight attribute.
type Weight uint8

const (
	WeightNormal Weight = iota
	WeightBold
)

// Slant is the font-slant attribute.
type Slant uint8

const (
	SlantNone Slant = iota
	SlantItalic
)

// Attributes is the attribute set carried by every character. The key set is
// fixed: font weight, font slant and the strikethrough flag.
type Attributes struct {
	Weight        Weight
	Slant         Slant
	Strikethrough bool
}

// Plain returns the default attribute set.
func Plain() Attributes {
	return Attributes{}
}

// IsPlain reports whether a carries no styling.
func (a Attributes) IsPlain() bool {
	return a == Attributes{}
}

var kindAttributes = map[Kind]func() Attributes{
	Bold:          func() Attributes { return Attributes{Weight: WeightBold} },
	Italic:        func() Attributes { return Attributes{Slant: SlantItalic} },
	Strikethrough: func() Attributes { return Attributes{Strikethrough: true} },
}

// AttributesFor returns the attribute set a restyled span of kind receives:
// the kind's attribute over Plain.
func AttributesFor(kind Kind) Attributes {
	if build, ok := kindAttributes[kind]; ok {
		return build()
	}
	return Plain()
}
