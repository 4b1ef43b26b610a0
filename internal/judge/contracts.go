package judge

import "context"

// Request is the provider-neutral shape of one judgment call.
type Request struct {
	Prompt string
	// ResponseJSON asks the collaborator for a structured JSON response
	// (validated against the judgment schema) instead of free text.
	ResponseJSON bool
}

// Completer is the external judgment collaborator: text in, judgment text out.
// Implementations surface timeouts and HTTP errors as plain errors; the
// adapter turns every failure into an UNKNOWN verdict rather than aborting.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
