package ocr

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reTiao    = regexp.MustCompile(`第[一二三四五六七八九十百千零]+[条款]`)
	reNumber  = regexp.MustCompile(`(?m)^\s*(?:\d+[.)]|\(\d+\)|[一二三四五六七八九十]+、)`)
	reParties = regexp.MustCompile(`甲方|乙方|party a|party b|the vendor|the supplier|the client`)
)

// naive heuristic confidence based on extracted text characteristics
func heuristicConfidence(txt string) float32 {
	// boost if we see common contract artifacts: clause markers, numbered
	// lines, party references, and enough content overall.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if reTiao.MatchString(txt) {
		score += 0.25
	}
	if len(reNumber.FindAllString(txt, 4)) >= 3 {
		score += 0.2
	}
	if reParties.MatchString(txtL) {
		score += 0.15
	}
	if len(txt) > 400 {
		score += 0.1
	}
	if cjkRatio(txt) > 0.1 || asciiWordiness(txt) > 0.3 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func cjkRatio(s string) float64 {
	total, cjk := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.Is(unicode.Han, r) {
			cjk++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(cjk) / float64(total)
}

func asciiWordiness(s string) float64 {
	total, letters := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r < 128 && unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}
