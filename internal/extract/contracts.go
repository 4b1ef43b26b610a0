package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string // "\f" between pages where the source has pages
	Pages      int
	SourceType string // constants.PDF | constants.DOCX | constants.TXT
	Method     string // "pdf-text" | "pdf-ocr" | "pdf-mixed" | "docx" | "txt"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}
