package segment

import (
	"regexp"
	"strings"
)

// A markerFamily is one numbering convention the segmenter can anchor on.
// Families are tried in priority order: the more specific the token, the less
// likely a match inside body text is a false positive.
type markerFamily struct {
	name string
	// re matches an anchor prefix plus the marker token in group 1. Markers
	// are only accepted at a line start or after a sentence terminator so
	// cross-references like "见第三条" inside a body do not open a clause.
	re *regexp.Regexp
	// canon reduces the raw marker token to its canonical label.
	canon func(marker string) string
	// loose families are skipped at PrecisionStrict because bare numbers
	// and letters match too eagerly in prose.
	loose bool
}

const cjkNumerals = "一二三四五六七八九十百千零两"

// anchored wraps a marker pattern so it matches at a line start or right
// after a sentence terminator. Group 1 is the marker token itself.
func anchored(marker string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)(?:^|[.;!?。；？！…])[ ]*(` + marker + `)[ ]*`)
}

var families = []markerFamily{
	{
		name:  "tiao", // 第一条
		re:    anchored(`第[` + cjkNumerals + `]+条`),
		canon: func(m string) string { return trimAffixes(m, "第", "条") },
	},
	{
		name:  "kuan", // 第一款
		re:    anchored(`第[` + cjkNumerals + `]+款`),
		canon: func(m string) string { return trimAffixes(m, "第", "款") },
	},
	{
		name:  "cjk-enum", // 一、 (the 、 is not in the half-width map)
		re:    anchored(`[` + cjkNumerals + `]+、`),
		canon: func(m string) string { return strings.TrimSuffix(m, "、") },
	},
	{
		name:  "cjk-paren", // （一）, normalized to (一)
		re:    anchored(`\([` + cjkNumerals + `]+\)`),
		canon: func(m string) string { return trimAffixes(m, "(", ")") },
	},
	{
		name:  "decimal-tree", // 1.1 / 1.1.1
		re:    anchored(`\d+(?:\.\d+)+`),
		canon: func(m string) string { return m },
	},
	{
		name:  "arabic-dot", // 1.
		re:    anchored(`\d+\.[ ]`),
		canon: func(m string) string { return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m), ".")) },
	},
	{
		name:  "arabic-paren", // (1)
		re:    anchored(`\(\d+\)`),
		canon: func(m string) string { return trimAffixes(m, "(", ")") },
	},
	{
		name:  "arabic-half-paren", // 1)
		re:    anchored(`\d+\)`),
		canon: func(m string) string { return strings.TrimSuffix(m, ")") },
		loose: true,
	},
	{
		name:  "letter", // A. / a)
		re:    anchored(`[A-Za-z][.)][ ]`),
		canon: func(m string) string { return strings.ToLower(string([]rune(strings.TrimSpace(m))[0])) },
		loose: true,
	},
}

func trimAffixes(s, prefix, suffix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, prefix), suffix)
}
