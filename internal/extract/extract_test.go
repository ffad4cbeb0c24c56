package extract

import (
	"context"
	"errors"
	"testing"
)

func TestTextFromResumeRejectsUnsupported(t *testing.T) {
	_, err := TextFromResume(context.Background(), []byte("hello"), "text/plain", "notes.txt")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestTextFromResumeRejectsEmptyData(t *testing.T) {
	if _, err := TextFromResume(context.Background(), nil, "application/pdf", "resume.pdf"); err == nil {
		t.Fatalf("expected error for empty data")
	}
}

func TestTextFromResumeCorruptPDF(t *testing.T) {
	// Declared as PDF but the body is garbage.
	_, err := TextFromResume(context.Background(), []byte("%PDF-not really"), "application/pdf", "resume.pdf")
	if err == nil {
		t.Fatalf("expected parse error for corrupt pdf")
	}
}

func TestNormalizeMimeType(t *testing.T) {
	cases := []struct {
		name     string
		mime     string
		fileName string
		data     []byte
		expected string
	}{
		{name: "declared_pdf", mime: "application/pdf", fileName: "x.bin", expected: "application/pdf"},
		{name: "pdf_extension", mime: "application/octet-stream", fileName: "resume.PDF", expected: "application/pdf"},
		{name: "pdf_magic", mime: "application/octet-stream", fileName: "blob", data: []byte("%PDF-1.7"), expected: "application/pdf"},
		{name: "plain_text", mime: "text/plain", fileName: "notes.txt", data: []byte("hi"), expected: "text/plain"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeMimeType(tc.mime, tc.fileName, tc.data); got != tc.expected {
				t.Fatalf("normalizeMimeType = %q, expected %q", got, tc.expected)
			}
		})
	}
}
