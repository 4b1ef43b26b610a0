package constants

// RunStatus is the canonical status for analysis runs.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusQueued  RunStatus = "QUEUED"  // queued for processing
	RunStatusRunning RunStatus = "RUNNING" // in progress
	RunStatusDone    RunStatus = "DONE"    // all comparison documents judged and assembled
	RunStatusFailed  RunStatus = "FAILED"  // terminal failure
)
