package textspn

import (
	"fmt"

	"SPNBox"
)

// Alphabet is the fixed 26-symbol domain of the text engine. Letter i of
// this string is the bijective image of symbol value i; it is never
// mutated.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	AlphabetSize = 26
	bigramSpace  = AlphabetSize * AlphabetSize
)

// padSymbol is the fixed ECB filler, the letter 'X'.
const padSymbol = byte('X' - 'A')

type InvalidSymbolError byte

func (e InvalidSymbolError) Error() string {
	return fmt.Sprintf("textspn: symbol %q outside the cipher alphabet", byte(e))
}

// toSymbols maps a string of alphabet letters to symbol values 0..25.
// Characters outside the alphabet are rejected rather than silently
// mapped, which would corrupt the numeric state irreversibly.
func toSymbols(text string) (SPNBox.Block, error) {
	symbols := make(SPNBox.Block, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 'A' || c > 'Z' {
			return nil, InvalidSymbolError(c)
		}
		symbols[i] = c - 'A'
	}
	return symbols, nil
}

// toLetters is the inverse of toSymbols. Symbols are trusted to be in
// range; the engine never produces values outside [0,26).
func toLetters(symbols SPNBox.Block) string {
	letters := make([]byte, len(symbols))
	for i, v := range symbols {
		letters[i] = Alphabet[v]
	}
	return string(letters)
}
