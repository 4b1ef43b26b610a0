package extract

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liang-qiu/clausecheck/constants"
)

const docxXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>第一条 甲方应当按时付款到位。</w:t></w:r></w:p>
    <w:p><w:r><w:t>第二条 </w:t></w:r><w:r><w:t>乙方应当按期交货完毕。</w:t></w:r></w:p>
    <w:p></w:p>
    <w:p><w:r><w:t>附则内容。</w:t></w:r></w:p>
  </w:body>
</w:document>`

func writeDOCX(t *testing.T, dir string, documentXML string) string {
	t.Helper()
	path := filepath.Join(dir, "contract.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestReadDOCX(t *testing.T) {
	path := writeDOCX(t, t.TempDir(), docxXML)

	text, paragraphs, err := ReadDOCX(path)
	require.NoError(t, err)

	assert.Equal(t, 3, paragraphs, "empty paragraphs are skipped")
	assert.Equal(t,
		"第一条 甲方应当按时付款到位。\n第二条 乙方应当按期交货完毕。\n附则内容。",
		text, "runs concatenate within a paragraph, paragraphs become lines")
}

func TestReadDOCXMissingDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, _ = w.Write([]byte("<x/>"))
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, _, err = ReadDOCX(path)
	assert.Error(t, err)
}

func TestExtractorDispatchesTXT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contract.txt")
	require.NoError(t, os.WriteFile(path, []byte("第一条 甲方应当按时付款。"), 0o644))

	e := NewExtractor(nil, nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, constants.TXT, res.SourceType)
	assert.Equal(t, "txt", res.Method)
	assert.Contains(t, res.Text, "付款")
}

func TestExtractorDispatchesDOCX(t *testing.T) {
	path := writeDOCX(t, t.TempDir(), docxXML)

	e := NewExtractor(nil, nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, constants.DOCX, res.SourceType)
	assert.Contains(t, res.Text, "交货完毕")
}

func TestExtractorRejectsUnknownExtension(t *testing.T) {
	e := NewExtractor(nil, nil)
	_, err := e.Extract(context.Background(), "image.png")
	assert.Error(t, err)
}
