// Package ocr extracts text from PDF documents, falling back to per-page OCR
// for scanned pages.
package ocr

import (
	"log/slog"
	"time"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	// TesseractLang covers the mixed-script corpus; default "chi_sim+eng".
	TesseractLang string
	DPI           int // rasterization DPI for scanned pages, default 300
	MaxPages      int // 0 = no limit

	// MinPageChars: a page whose directly extractable text is shorter than
	// this is treated as scanned and re-rendered through OCR. Default 50.
	MinPageChars int

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

type ExtractionResult struct {
	Text       string        // "\f" kept as the page separator
	Pages      int
	OCRPages   int           // pages that went through the OCR fallback
	Method     string        // "pdf-text" | "pdf-ocr" | "pdf-mixed"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "chi_sim+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MinPageChars <= 0 {
		cfg.MinPageChars = 50
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// WithRunner swaps the command runner; tests use this to stub the binaries.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}
