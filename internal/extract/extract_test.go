package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestTextFromBytesRejectsNonPDF(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte("hello"), "text/plain", "notes.txt")
	if err == nil {
		t.Fatal("expected unsupported mime error")
	}
	var unsupported ErrUnsupported
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if !strings.Contains(err.Error(), "text/plain") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTextFromBytesOctetStreamWithPDFExtension(t *testing.T) {
	// Garbage bytes with a .pdf name should be routed to the PDF reader and
	// fail there, not be rejected as an unsupported type.
	_, err := TextFromBytes(context.Background(), []byte("not a pdf"), "application/octet-stream", "certificado.pdf")
	if err == nil {
		t.Fatal("expected pdf parse error")
	}
	var unsupported ErrUnsupported
	if errors.As(err, &unsupported) {
		t.Fatalf("expected parse error, got unsupported mime: %v", err)
	}
}

func TestNormalizeMimeType(t *testing.T) {
	cases := []struct {
		name     string
		mime     string
		fileName string
		want     string
	}{
		{name: "pdf_with_charset", mime: "application/pdf; charset=binary", fileName: "a.pdf", want: "application/pdf"},
		{name: "octet_stream_pdf_ext", mime: "application/octet-stream", fileName: "a.PDF", want: "application/pdf"},
		{name: "empty_pdf_ext", mime: "", fileName: "a.pdf", want: "application/pdf"},
		{name: "other_kept", mime: "image/png", fileName: "a.pdf", want: "image/png"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeMimeType(tc.mime, tc.fileName); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
