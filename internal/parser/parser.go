package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"

	"ocean-rag/internal/models"
)

// Extractor turns an uploaded document into plain text. The ingestion
// pipeline consumes this interface so tests can stub it out.
type Extractor interface {
	ExtractText(data []byte, mimeType string) (string, error)
}

// PDFExtractor extracts plain text from PDF documents. The surrounding
// application only accepts application/pdf uploads.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) ExtractText(data []byte, mimeType string) (string, error) {
	if mimeType != models.MimeTypePDF {
		return "", models.WrapError(models.ErrExtraction,
			fmt.Errorf("unsupported mime type: %s", mimeType))
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", models.WrapError(models.ErrExtraction, err)
	}

	var text strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", models.WrapError(models.ErrExtraction, err)
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}

	log.Debug().Int("pages", numPages).Int("chars", text.Len()).Msg("Extracted document text")
	return strings.TrimSpace(text.String()), nil
}
