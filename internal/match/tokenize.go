package match

import (
	"strings"
	"unicode"
)

// Tokenize splits mixed-script clause text into comparable tokens.
// ASCII/Latin word and digit runs become lowercase tokens; contiguous CJK runs
// are emitted as character bigrams (a single char when the run has length 1),
// which keeps overlap meaningful without a dictionary segmenter. Punctuation
// and whitespace are dropped.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	var cjk []rune

	flushWord := func() {
		if word.Len() > 0 {
			tokens = append(tokens, strings.ToLower(word.String()))
			word.Reset()
		}
	}
	flushCJK := func() {
		switch {
		case len(cjk) == 1:
			tokens = append(tokens, string(cjk[0]))
		case len(cjk) > 1:
			for i := 0; i+1 < len(cjk); i++ {
				tokens = append(tokens, string(cjk[i:i+2]))
			}
		}
		cjk = cjk[:0]
	}

	for _, r := range text {
		switch {
		case isCJK(r):
			flushWord()
			cjk = append(cjk, r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			flushCJK()
			word.WriteRune(r)
		default:
			flushWord()
			flushCJK()
		}
	}
	flushWord()
	flushCJK()
	return tokens
}

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r)
}
