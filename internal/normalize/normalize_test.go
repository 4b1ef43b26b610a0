package normalize

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCollapsesWhitespaceRuns(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces", "a   b", "a b"},
		{"tabs and spaces", "a \t  b", "a b"},
		{"newline dominates spaces", "a \n b", "a\nb"},
		{"crlf", "a\r\nb", "a\nb"},
		{"form feed dominates newline", "a\n\f\nb", "a\fb"},
		{"leading trimmed", "  \n a", "a"},
		{"trailing trimmed", "a \n  ", "a"},
		{"empty", "", ""},
		{"whitespace only", " \n\t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeFullWidthPunctuation(t *testing.T) {
	assert.Equal(t, "a,b.c;d:e(f)", Normalize("a，b。c；d：e（f）"))
	// unmapped full-width characters pass through
	assert.Equal(t, "一、条款", Normalize("一、条款"))
}

func TestNormalizeDropsControlCharacters(t *testing.T) {
	assert.Equal(t, "ab", Normalize("a\x00\x07b"))
	// a control char inside a whitespace run must not split it
	assert.Equal(t, "a b", Normalize("a \x00 b"))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"第一条  甲方应当\n\n按时付款。\f第二条 乙方交货。",
		"  mixed   English 和中文\t text ",
		"a，b。c\r\n\r\nd",
	}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeNoConsecutiveWhitespace(t *testing.T) {
	out := Normalize("a \n b\t\tc\f\f d \r\n\r\n e")
	prevSpace := false
	for _, r := range out {
		if unicode.IsSpace(r) {
			require.False(t, prevSpace, "consecutive whitespace in %q", out)
			prevSpace = true
		} else {
			prevSpace = false
		}
	}
	assert.False(t, strings.HasPrefix(out, " "))
	assert.False(t, strings.HasSuffix(out, " "))
}
