// Package match pairs benchmark clauses with their best counterparts in a
// comparison document.
package match

import (
	"log/slog"

	"github.com/liang-qiu/clausecheck/internal/entity"
)

// DefaultMinSimilarity is the floor below which a similarity pairing is
// rejected and the benchmark clause is reported unmatched.
const DefaultMinSimilarity = 0.35

// Result partitions both clause lists after matching.
type Result struct {
	Pairs []entity.MatchCandidate `json:"pairs"`
	// UnmatchedBenchmark are requirements with no counterpart found.
	UnmatchedBenchmark []entity.Clause `json:"unmatched_benchmark,omitempty"`
	// UnmatchedCandidates are surplus comparison clauses nothing claimed.
	UnmatchedCandidates []entity.Clause `json:"unmatched_candidates,omitempty"`
}

type Matcher struct {
	logger *slog.Logger
}

func NewMatcher(logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{logger: logger}
}

// Match pairs clauses in two phases. Phase A pairs clauses whose canonical
// labels coincide (labels are authoritative when both documents share a
// numbering convention; score 1.0). Phase B scores every remaining candidate
// for each remaining benchmark clause and takes the best one at or above
// minSimilarity, greedily in benchmark order: a candidate consumed by an
// earlier benchmark clause is unavailable to later ones. Ties break toward
// the earliest candidate ordinal, so the whole pass is deterministic.
func (m *Matcher) Match(benchmark, candidates []entity.Clause, minSimilarity float64) Result {
	if minSimilarity <= 0 {
		minSimilarity = DefaultMinSimilarity
	}

	consumed := make([]bool, len(candidates))
	var res Result

	// Phase A: label equality. First unconsumed candidate with the same
	// canonical label wins; duplicate labels keep document order.
	matched := make([]bool, len(benchmark))
	for bi, b := range benchmark {
		if b.Label == "" {
			continue
		}
		for ci, c := range candidates {
			if consumed[ci] || c.Label != b.Label {
				continue
			}
			res.Pairs = append(res.Pairs, entity.MatchCandidate{
				Benchmark:  b,
				Candidate:  c,
				Similarity: 1.0,
				Method:     entity.MatchByLabel,
			})
			consumed[ci] = true
			matched[bi] = true
			break
		}
	}

	// Phase B: similarity fallback, greedy in benchmark order.
	for bi, b := range benchmark {
		if matched[bi] {
			continue
		}
		bestScore := -1.0
		bestIdx := -1
		for ci, c := range candidates {
			if consumed[ci] {
				continue
			}
			score := Similarity(b.Body, c.Body)
			if score > bestScore {
				bestScore = score
				bestIdx = ci
			}
		}
		if bestIdx >= 0 && bestScore >= minSimilarity {
			res.Pairs = append(res.Pairs, entity.MatchCandidate{
				Benchmark:  b,
				Candidate:  candidates[bestIdx],
				Similarity: bestScore,
				Method:     entity.MatchBySimilarity,
			})
			consumed[bestIdx] = true
			matched[bi] = true
			continue
		}
		m.logger.Debug("match.no_counterpart",
			"label", b.DisplayLabel(), "best_score", bestScore, "floor", minSimilarity)
		res.UnmatchedBenchmark = append(res.UnmatchedBenchmark, b)
	}

	for ci, c := range candidates {
		if !consumed[ci] {
			res.UnmatchedCandidates = append(res.UnmatchedCandidates, c)
		}
	}
	return res
}
