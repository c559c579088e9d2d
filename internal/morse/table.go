package morse

import (
	"sort"
	"unicode"
)

// Space is the code emitted for the space character.
const Space = " "

var table = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",

	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",

	' ': Space,

	'.': ".-.-.-", ',': "--..--", '?': "..--..", '!': "-.-.--", '@': ".--.-.",
}

// Lookup returns the code for c. Letters must already be uppercase.
func Lookup(c rune) (string, bool) {
	code, ok := table[c]
	return code, ok
}

// Supported reports whether c, in either case, has a code.
func Supported(c rune) bool {
	_, ok := table[unicode.ToUpper(c)]
	return ok
}

// Symbols returns every supported character in ascending order.
func Symbols() []rune {
	symbols := make([]rune, 0, len(table))
	for c := range table {
		symbols = append(symbols, c)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}
