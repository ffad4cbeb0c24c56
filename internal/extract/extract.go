package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const mimePDF = "application/pdf"

var ErrUnsupported = errors.New("unsupported resume format")

// TextFromResume extracts plain text from an uploaded resume. Only PDF is
// accepted; the mime type is sniffed from content when the declared type and
// file extension disagree.
func TextFromResume(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("empty resume data")
	}
	if normalizeMimeType(mimeType, fileName, data) != mimePDF {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, mimeType)
	}
	text, err := textFromPDF(data)
	if err != nil {
		return "", fmt.Errorf("extract resume text: %w", err)
	}
	return text, nil
}

func textFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	normalized := strings.ToLower(strings.TrimSpace(mimeType))
	if normalized == mimePDF {
		return mimePDF
	}
	if strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return mimePDF
	}
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return mimePDF
	}
	return normalized
}
