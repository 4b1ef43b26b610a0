package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner stands in for pdftotext/pdftoppm/tesseract. For pdftoppm it
// materializes the page images the extractor globs for.
type fakeRunner struct {
	textOut  string
	textErr  error
	pages    int
	ocrTexts []string // indexed by page, returned by the tesseract stub
	ocrErr   error
	calls    []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	switch name {
	case "pdftotext":
		if f.textErr != nil {
			return nil, []byte("Syntax Error: file damaged"), f.textErr
		}
		return []byte(f.textOut), nil, nil
	case "pdftoppm":
		prefix := args[len(args)-1]
		for i := 0; i < f.pages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i+1), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		if f.ocrErr != nil {
			return nil, []byte("read_params_file error"), f.ocrErr
		}
		img := args[0]
		for i := 0; i < f.pages; i++ {
			if strings.HasSuffix(img, fmt.Sprintf("-%d.png", i+1)) {
				return []byte(f.ocrTexts[i]), nil, nil
			}
		}
		return nil, nil, fmt.Errorf("unexpected image %s", img)
	}
	return nil, nil, fmt.Errorf("unexpected command %s", name)
}

func newTestExtractor(r Runner) *Extractor {
	return NewExtractor(Config{MinPageChars: 20}, nil).WithRunner(r)
}

func TestExtractPDFTextLayer(t *testing.T) {
	runner := &fakeRunner{
		textOut: "第一条 甲方应当按时付款到位。\f第二条 乙方应当按期交货完毕。",
	}
	e := newTestExtractor(runner)

	res, err := e.ExtractPDF(context.Background(), "contract.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Zero(t, res.OCRPages)
	assert.Contains(t, res.Text, "\f", "page separator survives extraction")
	assert.Equal(t, []string{"pdftotext"}, runner.calls, "no OCR when every page has text")
}

func TestExtractPDFMixed(t *testing.T) {
	runner := &fakeRunner{
		// page 2 is below the threshold: a scan with no text layer
		textOut:  "第一条 甲方应当按时付款到位。\f 。",
		pages:    2,
		ocrTexts: []string{"", "第二条 乙方应当按期交货完毕。"},
	}
	e := newTestExtractor(runner)

	res, err := e.ExtractPDF(context.Background(), "contract.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-mixed", res.Method)
	assert.Equal(t, 1, res.OCRPages)
	assert.Contains(t, res.Text, "付款到位")
	assert.Contains(t, res.Text, "交货完毕")
}

func TestExtractPDFFullOCR(t *testing.T) {
	runner := &fakeRunner{
		textErr:  errors.New("exit status 1"),
		pages:    2,
		ocrTexts: []string{"第一条 甲方应当按时付款到位。", "第二条 乙方应当按期交货完毕。"},
	}
	e := newTestExtractor(runner)

	res, err := e.ExtractPDF(context.Background(), "scan.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, 2, res.OCRPages)
	assert.Equal(t, 2, strings.Count(res.Text, "条"))
}

func TestExtractPDFOCRFailureKeepsTextLayer(t *testing.T) {
	runner := &fakeRunner{
		textOut: "第一条 甲方应当按时付款到位。\f短",
		pages:   2,
		ocrErr:  errors.New("exit status 1"),
	}
	e := newTestExtractor(runner)

	res, err := e.ExtractPDF(context.Background(), "contract.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-text", res.Method)
	assert.Zero(t, res.OCRPages)
	assert.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Text, "付款到位")
}

func TestHeuristicConfidence(t *testing.T) {
	contract := strings.Repeat("第一条 甲方应当向乙方按时支付全部货款。", 12)
	garbage := "@@ ## %% ~~ ^^"

	assert.Greater(t, heuristicConfidence(contract), heuristicConfidence(garbage))
	assert.LessOrEqual(t, heuristicConfidence(contract), float32(1.0))
	assert.GreaterOrEqual(t, heuristicConfidence(garbage), float32(0.0))
}

func TestExecRunnerLogsThroughInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := execRunner{logger: logger}
	_, _, err := r.Run(context.Background(), "no-such-binary-for-sure")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "ocr.exec.failed")
	assert.Contains(t, buf.String(), "no-such-binary-for-sure")
}
