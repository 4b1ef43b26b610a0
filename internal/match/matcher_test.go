package match

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liang-qiu/clausecheck/internal/entity"
)

func clause(label, body string, ordinal int) entity.Clause {
	return entity.Clause{Label: label, Body: body, Ordinal: ordinal}
}

func TestTokenizeMixedScript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"english words lowercased", "The Supplier SHALL", []string{"the", "supplier", "shall"}},
		{"cjk bigrams", "甲方付款", []string{"甲方", "方付", "付款"}},
		{"single cjk char", "款", []string{"款"}},
		{"punctuation dropped", "pay, now.", []string{"pay", "now"}},
		{"digits kept", "within 30 days", []string{"within", "30", "days"}},
		{"mixed", "甲方 pays 乙方", []string{"甲方", "pays", "乙方"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestSimilarityProperties(t *testing.T) {
	a := "甲方应当在收到货物后三十日内付款"
	b := "甲方应当在收到货物后六十日内付款"
	c := "本合同适用中华人民共和国法律"

	assert.Equal(t, 1.0, Similarity(a, a))
	assert.InDelta(t, Similarity(a, b), Similarity(b, a), 1e-9)
	assert.Greater(t, Similarity(a, b), Similarity(a, c))
	assert.Equal(t, 0.0, Similarity(a, ""))
	assert.Equal(t, 0.0, Similarity("", ""))
}

func TestMatchByLabelEquality(t *testing.T) {
	m := NewMatcher(nil)
	benchmark := []entity.Clause{
		clause("一", "甲方应当按时付款", 0),
		clause("二", "乙方应当按期交货", 1),
	}
	candidates := []entity.Clause{
		clause("二", "乙方应当分批交货", 0),
		clause("一", "甲方应当分期付款", 1),
	}

	res := m.Match(benchmark, candidates, 0.35)

	require.Len(t, res.Pairs, 2)
	assert.Empty(t, res.UnmatchedBenchmark)
	assert.Empty(t, res.UnmatchedCandidates)
	for _, p := range res.Pairs {
		assert.Equal(t, entity.MatchByLabel, p.Method)
		assert.Equal(t, 1.0, p.Similarity)
		assert.Equal(t, p.Benchmark.Label, p.Candidate.Label)
	}
}

func TestMatchSimilarityFallback(t *testing.T) {
	m := NewMatcher(nil)
	benchmark := []entity.Clause{
		clause("1", "The supplier shall deliver the goods within thirty days of the order.", 0),
	}
	candidates := []entity.Clause{
		// different numbering scheme, same substance
		clause("一", "The supplier shall deliver the goods within sixty days of the order.", 0),
	}

	res := m.Match(benchmark, candidates, 0.35)

	require.Len(t, res.Pairs, 1)
	assert.Equal(t, entity.MatchBySimilarity, res.Pairs[0].Method)
	assert.GreaterOrEqual(t, res.Pairs[0].Similarity, 0.35)
	assert.Less(t, res.Pairs[0].Similarity, 1.0)
}

func TestMatchAllBelowThreshold(t *testing.T) {
	m := NewMatcher(nil)
	benchmark := []entity.Clause{
		clause("", "甲方应当按时支付全部货款", 0),
		clause("", "乙方应当按期交付全部货物", 1),
		clause("", "任何一方违约应当承担赔偿责任", 2),
		clause("", "本合同争议提交仲裁解决", 3),
		clause("", "合同自双方签字之日起生效", 4),
	}
	candidates := []entity.Clause{
		clause("", "The weather in spring is mild and pleasant.", 0),
		clause("", "Migratory birds return to the northern lakes.", 1),
	}

	res := m.Match(benchmark, candidates, 0.35)

	assert.Empty(t, res.Pairs)
	assert.Len(t, res.UnmatchedBenchmark, 5)
	assert.Len(t, res.UnmatchedCandidates, 2)
}

func TestMatchCandidateConsumedOnce(t *testing.T) {
	m := NewMatcher(nil)
	shared := "甲方应当在收到发票后三十日内支付全部货款"
	benchmark := []entity.Clause{
		clause("", shared, 0),
		clause("", shared, 1),
	}
	candidates := []entity.Clause{
		clause("", shared, 0),
	}

	res := m.Match(benchmark, candidates, 0.35)

	require.Len(t, res.Pairs, 1)
	assert.Equal(t, 0, res.Pairs[0].Benchmark.Ordinal)
	require.Len(t, res.UnmatchedBenchmark, 1)
	assert.Equal(t, 1, res.UnmatchedBenchmark[0].Ordinal)
}

func TestMatchTieBreaksToEarliestCandidate(t *testing.T) {
	m := NewMatcher(nil)
	body := "乙方应当按期向甲方交付全部货物"
	benchmark := []entity.Clause{clause("", body, 0)}
	candidates := []entity.Clause{
		clause("", body, 0),
		clause("", body, 1),
	}

	res := m.Match(benchmark, candidates, 0.35)

	require.Len(t, res.Pairs, 1)
	assert.Equal(t, 0, res.Pairs[0].Candidate.Ordinal)
	require.Len(t, res.UnmatchedCandidates, 1)
	assert.Equal(t, 1, res.UnmatchedCandidates[0].Ordinal)
}

func TestMatchDuplicateLabelsKeepDocumentOrder(t *testing.T) {
	m := NewMatcher(nil)
	benchmark := []entity.Clause{
		clause("一", "甲方应当按时付款", 0),
		clause("一", "乙方应当按期交货", 1),
	}
	candidates := []entity.Clause{
		clause("一", "付款条款正文", 0),
		clause("一", "交货条款正文", 1),
	}

	res := m.Match(benchmark, candidates, 0.35)

	require.Len(t, res.Pairs, 2)
	assert.Equal(t, 0, res.Pairs[0].Candidate.Ordinal)
	assert.Equal(t, 1, res.Pairs[1].Candidate.Ordinal)
}

func TestMatchDeterministic(t *testing.T) {
	m := NewMatcher(nil)
	benchmark := []entity.Clause{
		clause("一", "甲方应当按时支付全部货款", 0),
		clause("", "任何一方违约应当承担赔偿责任", 1),
		clause("三", "本合同争议提交仲裁解决", 2),
	}
	candidates := []entity.Clause{
		clause("三", "合同争议应当提交仲裁机构解决", 0),
		clause("一", "甲方应当分期支付全部货款", 1),
		clause("", "违约方应当承担相应赔偿责任", 2),
	}

	first := m.Match(benchmark, candidates, 0.35)
	second := m.Match(benchmark, candidates, 0.35)
	require.Equal(t, first, second)
}

func TestMatchUuidPreserved(t *testing.T) {
	m := NewMatcher(nil)
	docA, docB := uuid.New(), uuid.New()
	benchmark := []entity.Clause{{Label: "一", Body: "甲方应当按时付款", SourceDocumentID: docA}}
	candidates := []entity.Clause{{Label: "一", Body: "甲方应当分期付款", SourceDocumentID: docB}}

	res := m.Match(benchmark, candidates, 0.35)

	require.Len(t, res.Pairs, 1)
	assert.Equal(t, docA, res.Pairs[0].Benchmark.SourceDocumentID)
	assert.Equal(t, docB, res.Pairs[0].Candidate.SourceDocumentID)
}
