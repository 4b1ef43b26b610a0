package entity

// MatchMethod tags how a clause pairing was found.
type MatchMethod string

const (
	MatchByLabel      MatchMethod = "label-equality"
	MatchBySimilarity MatchMethod = "similarity"
)

// MatchCandidate pairs one benchmark clause with one comparison clause.
// Within a matching run no comparison clause is consumed twice, and a
// benchmark clause has at most one candidate.
type MatchCandidate struct {
	Benchmark  Clause      `json:"benchmark"`
	Candidate  Clause      `json:"candidate"`
	Similarity float64     `json:"similarity"` // in [0,1]; 1.0 for label equality
	Method     MatchMethod `json:"method"`
}
