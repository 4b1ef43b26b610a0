package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/liang-qiu/clausecheck/constants"
)

func TestClauseDisplayLabel(t *testing.T) {
	assert.Equal(t, "一", Clause{Label: "一", Ordinal: 4}.DisplayLabel())
	assert.Equal(t, "1.2", Clause{Label: "1.2"}.DisplayLabel())
	assert.Equal(t, "#1", Clause{Ordinal: 0}.DisplayLabel())
	assert.Equal(t, "#8", Clause{Ordinal: 7}.DisplayLabel())
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession("benchmark.pdf", []string{"a.pdf"}, AnalysisOptions{})

	assert.NotEqual(t, s.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, 0.35, s.Options.MinSimilarity)
	assert.Equal(t, constants.PrecisionMedium, s.Options.Precision)
	assert.Equal(t, 50, s.Options.MaxJudgedPairs)
	assert.Equal(t, 1, s.Options.JudgeWorkers)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestNewSessionKeepsExplicitOptions(t *testing.T) {
	s := NewSession("benchmark.pdf", nil, AnalysisOptions{
		MinSimilarity:  0.6,
		Precision:      constants.PrecisionStrict,
		MaxJudgedPairs: 10,
		JudgeWorkers:   4,
	})

	assert.Equal(t, 0.6, s.Options.MinSimilarity)
	assert.Equal(t, constants.PrecisionStrict, s.Options.Precision)
	assert.Equal(t, 10, s.Options.MaxJudgedPairs)
	assert.Equal(t, 4, s.Options.JudgeWorkers)
}
