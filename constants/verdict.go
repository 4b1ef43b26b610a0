package constants

// Verdict is the canonical compliance outcome for a judged clause pair.
type Verdict string

// Stable values (store these exact strings in DB and reports).
const (
	VerdictCompliant    Verdict = "COMPLIANT"
	VerdictNonCompliant Verdict = "NON_COMPLIANT"
	VerdictUnknown      Verdict = "UNKNOWN"
)
