package judge

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/liang-qiu/clausecheck/constants"
)

// ParsedVerdict is the tagged result of scanning a judgment response.
// Either the verdict was recognized (Parsed=true, Verdict/Score set) or the
// raw text is preserved untouched for the rationale.
type ParsedVerdict struct {
	Parsed  bool
	Verdict constants.Verdict
	Score   *float64 // 0-100 when present
	Raw     string
}

var reScore = regexp.MustCompile(`(?:得分|分数|score)\s*[:：]?\s*(\d{1,3}(?:\.\d+)?)`)

// negative forms must be checked before their positive substrings
// ("不合规" contains "合规", "non-compliant" contains "compliant").
var verdictTokens = []struct {
	token   string
	verdict constants.Verdict
}{
	{"不合规", constants.VerdictNonCompliant},
	{"不符合", constants.VerdictNonCompliant},
	{"non-compliant", constants.VerdictNonCompliant},
	{"noncompliant", constants.VerdictNonCompliant},
	{"not compliant", constants.VerdictNonCompliant},
	{"合规", constants.VerdictCompliant},
	{"符合", constants.VerdictCompliant},
	{"compliant", constants.VerdictCompliant},
}

// ParseVerdict scans free-form judgment text for a leading verdict keyword and
// an optional numeric score. The keyword must appear within the first few
// characters of the response, as instructed by the prompt; a keyword buried
// deep in a rationale is not trusted.
func ParseVerdict(text string) ParsedVerdict {
	out := ParsedVerdict{Raw: text}
	head := strings.ToLower(strings.TrimSpace(text))
	if head == "" {
		return out
	}

	const window = 24 // bytes of leading text the keyword may start within
	for _, vt := range verdictTokens {
		idx := strings.Index(head, vt.token)
		if idx >= 0 && idx < window {
			out.Parsed = true
			out.Verdict = vt.verdict
			break
		}
	}
	if !out.Parsed {
		return out
	}

	if m := reScore.FindStringSubmatch(head); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= 0 && v <= 100 {
			out.Score = &v
		}
	}
	return out
}

// structuredResponse is the JSON shape requested in structured mode.
type structuredResponse struct {
	Verdict   string   `json:"verdict"`
	Score     *float64 `json:"score,omitempty"`
	Rationale string   `json:"rationale,omitempty"`
}

// ParseStructured decodes a schema-validated JSON judgment. Callers validate
// against ResponseSchema first; decode failures fall back to the text scan.
func ParseStructured(raw []byte) (ParsedVerdict, bool) {
	var sr structuredResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return ParsedVerdict{Raw: string(raw)}, false
	}
	pv := ParseVerdict(sr.Verdict)
	if !pv.Parsed {
		return ParsedVerdict{Raw: string(raw)}, false
	}
	if sr.Score != nil && *sr.Score >= 0 && *sr.Score <= 100 {
		pv.Score = sr.Score
	}
	pv.Raw = sr.Rationale
	return pv, true
}
