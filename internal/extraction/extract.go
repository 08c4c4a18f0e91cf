// Package extraction converts uploaded resume documents to plain text.
package extraction

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .pdf, .docx, and .txt.
var ErrUnsupportedFormat = errors.New("unsupported file format")

var (
	xmlTagPattern   = regexp.MustCompile(`<[^>]+>`)
	inlineSpaceRuns = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns     = regexp.MustCompile(`\s*\n\s*`)
)

// ExtractText returns the plain text of an uploaded resume. The format is
// chosen by the filename extension; .txt content passes through untouched
// apart from whitespace normalization.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".txt":
		return normalizeWhitespace(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	content, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, content); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("open docx body: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("read docx body: %w", err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("docx has no word/document.xml")
	}

	text := string(docXML)
	// Paragraph and tab markers become whitespace before tags are stripped,
	// otherwise adjacent runs of text fuse into one word.
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTagPattern.ReplaceAllString(text, " ")
	return normalizeWhitespace(text), nil
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = inlineSpaceRuns.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
