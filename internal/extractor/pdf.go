// Package extractor reads text out of uploaded receipt documents.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupported is returned for files whose text cannot be read directly.
var ErrUnsupported = errors.New("unsupported document type")

// PDFExtractor extracts embedded text from PDF files.
type PDFExtractor struct{}

// NewPDFExtractor returns a PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// IsPDF reports whether path or contentType denotes a PDF.
func IsPDF(path, contentType string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf") || strings.EqualFold(contentType, "application/pdf")
}

// ExtractText returns the text of every page joined by blank lines.
// Rows are rebuilt from glyph positions; documents without row structure fall back to plain text.
func (e *PDFExtractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	if !IsPDF(path, "") {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library crashed on %s: %v", filepath.Base(path), r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			if line := strings.TrimSpace(strings.Join(words, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}
	if len(pages) > 0 {
		return strings.Join(pages, "\n\n"), nil
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	data, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
