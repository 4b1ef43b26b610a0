package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// docx files are zip archives; the paragraph text lives in word/document.xml.
// We only need the paragraph runs, so a minimal XML walk beats pulling in a
// full docx dependency.

type docxDocument struct {
	Body struct {
		Paragraphs []docxParagraph `xml:"p"`
	} `xml:"body"`
}

type docxParagraph struct {
	Runs []struct {
		Texts []struct {
			Value string `xml:",chardata"`
		} `xml:"t"`
		Breaks []struct{} `xml:"br"`
	} `xml:"r"`
}

// ReadDOCX extracts paragraph text from a .docx file, one paragraph per line.
func ReadDOCX(path string) (string, int, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", 0, fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", 0, fmt.Errorf("docx missing word/document.xml")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", 0, fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", 0, fmt.Errorf("read document.xml: %w", err)
	}

	var doc docxDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", 0, fmt.Errorf("parse document.xml: %w", err)
	}

	var b strings.Builder
	count := 0
	for _, p := range doc.Body.Paragraphs {
		var pb strings.Builder
		for _, r := range p.Runs {
			for _, t := range r.Texts {
				pb.WriteString(t.Value)
			}
		}
		line := strings.TrimSpace(pb.String())
		if line == "" {
			continue
		}
		if count > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		count++
	}
	return b.String(), count, nil
}
