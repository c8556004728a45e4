// Package extract pulls plain text out of uploaded documents.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	TypeText = "text/plain"
	TypePDF  = "application/pdf"
)

// ErrUnsupportedType is returned for anything other than PDF or plain text.
var ErrUnsupportedType = errors.New("unsupported file type (only PDF and TXT allowed)")

// ContentType resolves the upload's media type from its Content-Type header,
// falling back to the filename extension when the header is missing.
func ContentType(filename, header string) (string, error) {
	if header == "" {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".txt":
			return TypeText, nil
		case ".pdf":
			return TypePDF, nil
		default:
			return "", ErrUnsupportedType
		}
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return "", ErrUnsupportedType
	}
	switch mediaType {
	case TypeText, TypePDF:
		return mediaType, nil
	default:
		return "", ErrUnsupportedType
	}
}

// Text returns the document text for the given media type.
func Text(contentType string, content []byte) (string, error) {
	switch contentType {
	case TypeText:
		if !utf8.Valid(content) {
			return "", fmt.Errorf("text file is not valid UTF-8")
		}
		return string(content), nil
	case TypePDF:
		return pdfText(content)
	default:
		return "", ErrUnsupportedType
	}
}

func pdfText(content []byte) (string, error) {
	reader := bytes.NewReader(content)
	pdfReader, err := pdf.NewReader(reader, int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to extract
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}
