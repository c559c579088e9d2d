package morse

import (
	"strings"
	"unicode"
)

// Separator joins adjacent codes in the output.
const Separator = " "

// Translate converts text to Morse, one code per character joined by
// Separator. A space contributes its own blank code, so words end up three
// spaces apart. Translation is all-or-nothing: any unsupported character
// fails the whole call.
func Translate(text string) (string, error) {
	codes := make([]string, 0, len(text))
	for _, c := range text {
		code, ok := table[unicode.ToUpper(c)]
		if !ok {
			return "", newUnsupported(unsupported(text))
		}
		codes = append(codes, code)
	}
	return strings.Join(codes, Separator), nil
}

// Convert validates raw and translates it.
func Convert(raw string) (string, error) {
	text, err := Validate(raw)
	if err != nil {
		return "", err
	}
	return Translate(text)
}
