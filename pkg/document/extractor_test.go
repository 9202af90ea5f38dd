package document_test

import (
	"context"
	"testing"

	"interview-assistant-be/pkg/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainText(t *testing.T) {
	extractor := document.NewFileExtractor()

	text, err := extractor.Extract(context.Background(), "resume.txt",
		[]byte("  Senior engineer, 5 years Go  \n"))
	require.NoError(t, err)
	assert.Equal(t, "Senior engineer, 5 years Go", text)
}

func TestExtractMarkdown(t *testing.T) {
	extractor := document.NewFileExtractor()

	text, err := extractor.Extract(context.Background(), "Resume.MD",
		[]byte("# Experience\n- Go backend services"))
	require.NoError(t, err)
	assert.Contains(t, text, "Go backend services")
}

func TestExtractUnsupportedExtension(t *testing.T) {
	extractor := document.NewFileExtractor()

	_, err := extractor.Extract(context.Background(), "resume.docx", []byte("content"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractEmptyFile(t *testing.T) {
	extractor := document.NewFileExtractor()

	_, err := extractor.Extract(context.Background(), "resume.txt", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")
}

func TestExtractCorruptPDF(t *testing.T) {
	extractor := document.NewFileExtractor()

	_, err := extractor.Extract(context.Background(), "resume.pdf", []byte("not a pdf at all"))
	require.Error(t, err)
}

// A valid %PDF header followed by garbage makes the parser fail deep inside
// the xref/stream machinery; that must come back as an error, not take the
// process down.
func TestExtractMalformedPDFBody(t *testing.T) {
	extractor := document.NewFileExtractor()

	payloads := map[string][]byte{
		"truncated xref offset": []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\nstartxref\n319\n%%EOF"),
		"corrupt xref table":    []byte("%PDF-1.4\nxref\n0 1\ngarbage here\ntrailer\n<< >>\nstartxref\n9\n%%EOF"),
		"corrupt stream body": []byte("%PDF-1.7\n1 0 obj\n<< /Length 20 /Filter /FlateDecode >>\nstream\n" +
			"not actually deflate\nendstream\nendobj\nstartxref\n9\n%%EOF"),
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			_, err := extractor.Extract(context.Background(), "resume.pdf", payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "PDF")
		})
	}
}

func TestExtractCancelledContext(t *testing.T) {
	extractor := document.NewFileExtractor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := extractor.Extract(ctx, "resume.txt", []byte("text"))
	assert.ErrorIs(t, err, context.Canceled)
}
