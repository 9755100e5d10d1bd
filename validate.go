package mdtype

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrControlInput reports a control character other than newline or tab.
	ErrControlInput = errors.New("control character in input")
	// ErrRangeOutOfBounds reports an edit range outside the document.
	ErrRangeOutOfBounds = errors.New("range out of bounds")
	// ErrUnknownFormat reports an unsupported replay format.
	ErrUnknownFormat = errors.New("unknown replay format")
)

// ValidateText returns an error if text is not valid UTF-8 or carries control
// characters the document cannot hold.
func ValidateText(text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	for _, r := range text {
		if isControlRune(r) {
			return ErrControlInput
		}
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	if r < 0x20 || r == 0x7F {
		return true
	}
	return false
}
