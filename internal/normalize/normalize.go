// Package normalize cleans raw extracted text before segmentation.
package normalize

import (
	"strings"
	"unicode"
)

// fullWidthMap covers the punctuation marks the segmenter anchors on.
// Only this fixed set is mapped; other full-width characters pass through.
var fullWidthMap = map[rune]rune{
	'，': ',',
	'。': '.',
	'；': ';',
	'：': ':',
	'（': '(',
	'）': ')',
}

// Normalize collapses each whitespace run to a single character (a newline if
// the run contained one, a space otherwise), strips control characters,
// converts the mapped full-width punctuation to half-width, and trims.
// Total and idempotent: Normalize(Normalize(x)) == Normalize(x).
//
// Form feeds ("\f") are page-break markers from extraction and survive as a
// run of their own; the segmenter's stitching pass depends on them.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))

	// pending is the collapsed representative of the current whitespace run:
	// 0 = none, ' ' = spaces only, '\n' = run contained a newline,
	// '\f' = run contained a page break.
	var pending rune

	flush := func() {
		if pending != 0 && b.Len() > 0 {
			b.WriteRune(pending)
		}
		pending = 0
	}

	for _, r := range raw {
		switch {
		case r == '\f':
			pending = '\f'
		case r == '\n' || r == '\r':
			if pending != '\f' {
				pending = '\n'
			}
		case unicode.IsSpace(r):
			if pending == 0 {
				pending = ' '
			}
		case unicode.IsControl(r):
			// drop, does not break the whitespace run
		default:
			flush()
			if half, ok := fullWidthMap[r]; ok {
				r = half
			}
			b.WriteRune(r)
		}
	}
	// trailing whitespace is dropped (trim)

	return b.String()
}
