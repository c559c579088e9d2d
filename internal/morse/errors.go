package morse

import (
	"errors"
	"fmt"
	"strings"
)

// Reason classifies why an input could not be converted.
type Reason string

const (
	ReasonEmptyInput           Reason = "EMPTY_INPUT"
	ReasonUnsupportedCharacter Reason = "UNSUPPORTED_CHARACTER"
)

// Sentinels for errors.Is matching against a *ConversionError.
var (
	ErrEmptyInput           = errors.New("input cannot be empty")
	ErrUnsupportedCharacter = errors.New("input contains unsupported characters")
)

// ConversionError is returned by Validate and Translate.
type ConversionError struct {
	Reason Reason
	// Characters holds each distinct offending character in order of first
	// appearance. Empty for ReasonEmptyInput.
	Characters []rune
}

func (e *ConversionError) Error() string {
	switch e.Reason {
	case ReasonEmptyInput:
		return fmt.Sprintf("%s: %s", e.Reason, ErrEmptyInput)
	case ReasonUnsupportedCharacter:
		return fmt.Sprintf("%s: %s: %s", e.Reason, ErrUnsupportedCharacter, QuoteCharacters(e.Characters))
	default:
		return string(e.Reason)
	}
}

func (e *ConversionError) Is(target error) bool {
	switch target {
	case ErrEmptyInput:
		return e.Reason == ReasonEmptyInput
	case ErrUnsupportedCharacter:
		return e.Reason == ReasonUnsupportedCharacter
	}
	return false
}

// ReasonOf extracts the Reason from err if it wraps a *ConversionError.
func ReasonOf(err error) (Reason, bool) {
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		return convErr.Reason, true
	}
	return "", false
}

// QuoteCharacters renders runes as a comma separated list of quoted
// characters, e.g. '#', '\n'.
func QuoteCharacters(chars []rune) string {
	quoted := make([]string, len(chars))
	for i, c := range chars {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return strings.Join(quoted, ", ")
}

func newEmptyInput() *ConversionError {
	return &ConversionError{Reason: ReasonEmptyInput}
}

func newUnsupported(chars []rune) *ConversionError {
	return &ConversionError{Reason: ReasonUnsupportedCharacter, Characters: chars}
}
