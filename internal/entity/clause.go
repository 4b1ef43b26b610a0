package entity

import (
	"strconv"

	"github.com/google/uuid"
)

// Clause is the atomic unit of analysis: one numbered clause of a document.
// Produced once by the segmenter and immutable thereafter.
type Clause struct {
	// Label is the canonical numbering token ("1", "1.1", "一", "a").
	// Not guaranteed unique across numbering schemes; empty for fallback splits.
	Label string `json:"label"`
	// Marker is the numbering token as it appeared in the source ("第一条",
	// "(2)"). Kept for display and for content-coverage accounting.
	Marker string `json:"marker,omitempty"`
	// Body is the clause text with the numbering marker stripped.
	Body string `json:"body"`
	// SourceDocumentID links back to the document the clause came from.
	SourceDocumentID uuid.UUID `json:"source_document_id"`
	// Ordinal is the index of appearance within the document. Used as a
	// tie-break and as the fallback label when no explicit numbering exists.
	Ordinal int `json:"ordinal"`
}

// DisplayLabel returns the label, or the 1-based ordinal when unlabeled.
func (c Clause) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return "#" + strconv.Itoa(c.Ordinal+1)
}
