package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	MimePDF  = "application/pdf"
	MimeText = "text/plain"
)

// ErrorKind classifies an extraction failure.
type ErrorKind string

const (
	KindUnreadablePDF   ErrorKind = "unreadable_pdf"
	KindUndecodableText ErrorKind = "undecodable_text"
)

// ExtractionError represents a file-level extraction failure. Page-level
// failures inside a readable PDF are skipped, never reported.
type ExtractionError struct {
	Kind  ErrorKind
	cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed (%s): %v", e.Kind, e.cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.cause
}

// Extractor converts uploaded documents into plain text.
type Extractor struct{}

// NewExtractor creates a document extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract converts the file bytes into a single text blob. Callers must only
// pass the supported mime types; anything else yields an empty result.
func (e *Extractor) Extract(mimeType string, data []byte) (string, error) {
	switch mimeType {
	case MimePDF:
		return e.extractPDF(data)
	case MimeText:
		// Lossy decode: invalid UTF-8 sequences are dropped, not reported.
		return strings.ToValidUTF8(string(data), ""), nil
	default:
		return "", fmt.Errorf("unsupported mime type: %s", mimeType)
	}
}

// pdfDocument abstracts a parsed PDF for page iteration.
type pdfDocument interface {
	NumPage() int
	PageText(n int) (string, error)
}

func (e *Extractor) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Kind: KindUnreadablePDF, cause: err}
	}
	return collectPages(&pdfReader{r: reader}), nil
}

// collectPages walks the document in page order, prefixing each page's text
// with a visible delimiter. Pages that fail extraction are skipped.
func collectPages(doc pdfDocument) string {
	var sb strings.Builder
	for n := 1; n <= doc.NumPage(); n++ {
		text, err := doc.PageText(n)
		if err != nil || text == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n\n--- Page %d ---\n%s", n, text)
	}
	return sb.String()
}

type pdfReader struct {
	r *pdf.Reader
}

func (p *pdfReader) NumPage() int {
	return p.r.NumPage()
}

// PageText extracts one page's plain text. The underlying library panics on
// some malformed content streams, so recover converts those into page-level
// failures.
func (p *pdfReader) PageText(n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", n, r)
		}
	}()

	page := p.r.Page(n)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing", n)
	}
	return page.GetPlainText(nil)
}
