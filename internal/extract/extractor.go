// Package extract turns source files (PDF, DOCX, TXT) into raw text for the
// analysis pipeline.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/liang-qiu/clausecheck/constants"
	"github.com/liang-qiu/clausecheck/internal/ocr"
)

// Extractor picks a strategy per file extension. PDFs go through the OCR
// extractor (text layer first, per-page OCR fallback); DOCX and TXT are read
// directly.
type Extractor struct {
	pdf    *ocr.Extractor
	logger *slog.Logger
}

func NewExtractor(pdf *ocr.Extractor, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{pdf: pdf, logger: logger}
}

func (e *Extractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))

	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		r, err := e.pdf.ExtractPDF(ctx, path)
		return TextExtractionResult{
			Text:       r.Text,
			Pages:      r.Pages,
			SourceType: constants.PDF,
			Method:     r.Method,
			Language:   r.Language,
			Duration:   r.Duration,
			Warnings:   r.Warnings,
			Confidence: r.Confidence,
		}, err
	case constants.DOCX:
		text, paragraphs, err := ReadDOCX(path)
		res := TextExtractionResult{
			Text:       text,
			Pages:      1,
			SourceType: constants.DOCX,
			Method:     "docx",
			Duration:   time.Since(start),
			Confidence: 1.0,
		}
		if err != nil {
			e.logger.Error("extract.docx_failed", "path", path, "error", err)
			return TextExtractionResult{SourceType: constants.DOCX}, err
		}
		e.logger.Debug("extract.docx_ok", "path", path, "paragraphs", paragraphs, "bytes", len(text))
		return res, nil
	case constants.TXT:
		data, err := os.ReadFile(path)
		if err != nil {
			return TextExtractionResult{SourceType: constants.TXT}, err
		}
		return TextExtractionResult{
			Text:       strings.ToValidUTF8(string(data), ""),
			Pages:      1,
			SourceType: constants.TXT,
			Method:     "txt",
			Duration:   time.Since(start),
			Confidence: 1.0,
		}, nil
	default:
		e.logger.Error("extract.unsupported_extension", "extension", ext, "path", path)
		return TextExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}
