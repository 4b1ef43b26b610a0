package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is an extracted source document: ordered raw page texts plus a
// source identifier. Immutable after extraction; discarded once its clauses
// are derived.
type Document struct {
	ID          uuid.UUID `json:"id"`
	SourcePath  string    `json:"source_path"`
	Format      string    `json:"format"` // constants.PDF | constants.DOCX | constants.TXT
	Text        string    `json:"text"`   // full extracted text, "\f" between pages
	Pages       int       `json:"pages"`
	Method      string    `json:"method"` // "pdf-text" | "pdf-ocr" | "docx" | "txt"
	Confidence  float32   `json:"confidence,omitempty"`
	Warnings    []string  `json:"warnings,omitempty"`
	ExtractedAt time.Time `json:"extracted_at"`
}
