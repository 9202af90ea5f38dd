// Package document extracts plain text from uploaded resume files. Parsing
// itself is delegated to the PDF library; anything the library cannot read
// surfaces as a read failure, never a crash.
package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor turns an uploaded file into resume context text.
type Extractor interface {
	// Extract returns the text content of the file. The filename's
	// extension decides the format: .pdf or .txt.
	Extract(ctx context.Context, filename string, data []byte) (string, error)
}

type FileExtractor struct{}

var _ Extractor = &FileExtractor{}

func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

func (e *FileExtractor) Extract(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty file %q", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".txt", ".text", ".md":
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("unsupported file type %q: upload a PDF or plain text file", filepath.Ext(filename))
	}
}

func extractPDF(data []byte) (text string, err error) {
	// The PDF library reports malformed xref tables and streams by
	// panicking partway through parsing.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("reading PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading PDF: %w", err)
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting PDF text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, textReader); err != nil {
		return "", fmt.Errorf("reading PDF text: %w", err)
	}

	text = strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("PDF contained no extractable text")
	}
	return text, nil
}
