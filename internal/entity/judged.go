package entity

import "github.com/liang-qiu/clausecheck/constants"

// JudgedPair is a MatchCandidate plus the compliance judgment for it.
// Immutable once created.
type JudgedPair struct {
	Pair      MatchCandidate    `json:"pair"`
	Verdict   constants.Verdict `json:"verdict"`
	Rationale string            `json:"rationale,omitempty"`
	// Score is the collaborator's numeric confidence on a 0-100 scale, when
	// one was parsed; nil otherwise.
	Score *float64 `json:"score,omitempty"`
}
