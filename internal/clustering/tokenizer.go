package clustering

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLength is the shortest token kept, in runes. Shorter tokens
// (articles, prepositions, stray digits) carry no clustering signal.
const minTokenLength = 3

// Tokenize lower-cases text, replaces every character that is not a
// letter or digit in any script with a space, splits on whitespace and
// drops tokens shorter than three runes.
//
// Tokenizing already-tokenized text (lower-case, punctuation-free,
// space-joined) yields the same token list.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
