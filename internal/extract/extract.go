package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const mimePDF = "application/pdf"

// ErrUnsupported is returned when the payload is not a readable PDF.
type ErrUnsupported struct {
	MimeType string
}

func (e ErrUnsupported) Error() string {
	return fmt.Sprintf("unsupported mime type: %s", e.MimeType)
}

// TextFromBytes extracts plain text from an in-memory PDF payload.
// Library used: github.com/ledongthuc/pdf.
func TextFromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	normalized := normalizeMimeType(mimeType, fileName)
	if normalized != mimePDF {
		return "", ErrUnsupported{MimeType: normalized}
	}
	return extractPDF(data)
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// normalizeMimeType trusts the declared type first and falls back to the
// file extension when the client sent a generic octet-stream.
func normalizeMimeType(mimeType string, fileName string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean == mimePDF {
		return clean
	}
	if clean == "" || clean == "application/octet-stream" {
		if strings.ToLower(filepath.Ext(fileName)) == ".pdf" {
			return mimePDF
		}
	}
	return clean
}
