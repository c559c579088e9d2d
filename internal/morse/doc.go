// Package morse converts text to International Morse code.
//
// The symbol table is fixed: the 26 Latin letters, the ten digits, space
// and the punctuation . , ? ! @. Letters are matched case-insensitively.
// Every function is pure and safe for concurrent use.
package morse
