package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ExtractPDF pulls text from every page, OCR-ing only the pages whose direct
// text layer is below MinPageChars. Page boundaries stay marked with "\f" so
// the segmenter can stitch clauses split across pages.
func (e *Extractor) ExtractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	res := ExtractionResult{Language: e.cfg.TesseractLang}

	text, pages, warns, err := e.pdfToText(ctx, path)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		// No text layer at all; OCR the whole document.
		e.logger.Warn("ocr.pdf_text_failed", "path", path, "error", err)
		text, pages, warns, err = e.pdfToOCR(ctx, path, nil)
		res.Warnings = append(res.Warnings, warns...)
		if err != nil {
			res.Duration = time.Since(start)
			return res, err
		}
		res.Text, res.Pages, res.OCRPages = text, pages, pages
		res.Method = "pdf-ocr"
		res.Confidence = heuristicConfidence(text)
		res.Duration = time.Since(start)
		return res, nil
	}

	pageTexts := strings.Split(text, "\f")
	if pages < len(pageTexts) {
		pages = len(pageTexts)
	}

	// Pages under the threshold are likely scans.
	var thin []int
	for i, pt := range pageTexts {
		if len(strings.TrimSpace(pt)) < e.cfg.MinPageChars {
			thin = append(thin, i)
		}
	}

	if len(thin) > 0 {
		e.logger.Info("ocr.page_fallback", "path", path, "pages", pages, "thin_pages", len(thin))
		ocrTexts, warns, ocrErr := e.ocrPages(ctx, path, thin)
		res.Warnings = append(res.Warnings, warns...)
		if ocrErr != nil {
			res.Warnings = append(res.Warnings, "page OCR failed: "+ocrErr.Error())
		} else {
			for i, pageIdx := range thin {
				if pageIdx < len(pageTexts) && lenTrim(ocrTexts[i]) > lenTrim(pageTexts[pageIdx]) {
					pageTexts[pageIdx] = ocrTexts[i]
					res.OCRPages++
				}
			}
		}
	}

	res.Text = strings.Join(pageTexts, "\f")
	res.Pages = pages
	switch {
	case res.OCRPages == 0:
		res.Method = "pdf-text"
	case res.OCRPages >= pages:
		res.Method = "pdf-ocr"
	default:
		res.Method = "pdf-mixed"
	}
	res.Confidence = heuristicConfidence(res.Text)
	res.Duration = time.Since(start)
	return res, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

// pdfToOCR rasterizes pages and runs tesseract on each. A nil pageFilter OCRs
// everything.
func (e *Extractor) pdfToOCR(ctx context.Context, path string, pageFilter []int) (text string, pages int, warnings []string, err error) {
	imgs, cleanup, warns, err := e.renderPages(ctx, path)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		return "", 0, warns, err
	}

	var b strings.Builder
	for i, img := range imgs {
		if pageFilter != nil && !containsInt(pageFilter, i) {
			continue
		}
		txt, w, err := e.tesseract(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\f")
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	return b.String(), len(imgs), warns, nil
}

// ocrPages OCRs just the listed page indexes and returns their texts in the
// same order.
func (e *Extractor) ocrPages(ctx context.Context, path string, pageIdx []int) ([]string, []string, error) {
	imgs, cleanup, warns, err := e.renderPages(ctx, path)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		return nil, warns, err
	}

	out := make([]string, len(pageIdx))
	for i, idx := range pageIdx {
		if idx >= len(imgs) {
			continue
		}
		txt, w, err := e.tesseract(ctx, imgs[idx])
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		out[i] = txt
		warns = append(warns, w...)
	}
	return out, warns, nil
}

func (e *Extractor) renderPages(ctx context.Context, path string) (imgs []string, cleanup func(), warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "cc-pp-*")
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup = func() { _ = os.RemoveAll(tmpDir) }

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, cleanup, []string{string(errb)}, err
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, cleanup, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}
	return matches, cleanup, nil, nil
}

func (e *Extractor) tesseract(ctx context.Context, img string) (string, []string, error) {
	args := []string{img, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract %s: %w", filepath.Base(img), err)
	}
	var warns []string
	if len(errb) > 0 {
		warns = append(warns, truncate(string(errb), 512))
	}
	return string(out), warns, nil
}

func lenTrim(s string) int { return len(strings.TrimSpace(s)) }

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
