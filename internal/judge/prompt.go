package judge

import (
	"strings"

	"github.com/liang-qiu/clausecheck/internal/entity"
)

// DefaultMaxClauseChars bounds how much of each clause body goes into the
// prompt, respecting collaborator input limits.
const DefaultMaxClauseChars = 400

// BuildPrompt embeds both clause bodies into a judgment request. Bodies are
// truncated to maxChars runes each; 0 means DefaultMaxClauseChars.
func BuildPrompt(pair entity.MatchCandidate, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxClauseChars
	}

	var b strings.Builder
	b.WriteString("You are a contract compliance reviewer. Compare the comparison clause against the benchmark clause. ")
	b.WriteString("Answer whether the comparison clause complies with the benchmark requirement. ")
	b.WriteString("Start your answer with exactly one of: 合规 / 不合规 / compliant / non-compliant. ")
	b.WriteString("Optionally add a compliance score from 0 to 100, then a one-paragraph rationale. ")
	b.WriteString("Judge in the language of the clauses.\n\n")

	b.WriteString("Benchmark clause ")
	b.WriteString(pair.Benchmark.DisplayLabel())
	b.WriteString(":\n")
	b.WriteString(truncateRunes(pair.Benchmark.Body, maxChars))
	b.WriteString("\n\nComparison clause ")
	b.WriteString(pair.Candidate.DisplayLabel())
	b.WriteString(":\n")
	b.WriteString(truncateRunes(pair.Candidate.Body, maxChars))
	return b.String()
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
