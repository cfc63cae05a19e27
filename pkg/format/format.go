// Package format provides the output formatting strategies. Each
// formatter wraps a content body in a format-specific envelope and is
// side-effect-free beyond optional logging; the source Content is
// never mutated.
package format

import (
	"fmt"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/logger"
)

// Formatter converts generated content into the final artifact.
type Formatter interface {
	// Name returns the format tag.
	Name() string
	// Apply derives an artifact from the content.
	Apply(c *content.Content) (*content.Artifact, error)
}

// Formatter tags pre-registered by the hub.
const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
	FormatHTML  = "html"
	FormatText  = "text"
)

// PDFFormatter wraps the body in PDF envelope markers.
type PDFFormatter struct {
	logger logger.Logger
}

// NewPDFFormatter creates a PDF formatter.
func NewPDFFormatter(log logger.Logger) *PDFFormatter {
	if log == nil {
		log = logger.Discard
	}
	return &PDFFormatter{logger: log}
}

// Name returns "pdf".
func (f *PDFFormatter) Name() string { return FormatPDF }

// Apply wraps the content body in the PDF envelope.
func (f *PDFFormatter) Apply(c *content.Content) (*content.Artifact, error) {
	f.logger.Debug("Rendering PDF artifact", "kind", c.Kind)
	rendered := fmt.Sprintf("[PDF FORMAT]\n%s\n[END PDF]", c.Body)
	return content.NewArtifact(c, FormatPDF, rendered), nil
}

// ExcelFormatter wraps the body in Excel envelope markers.
type ExcelFormatter struct {
	logger logger.Logger
}

// NewExcelFormatter creates an Excel formatter.
func NewExcelFormatter(log logger.Logger) *ExcelFormatter {
	if log == nil {
		log = logger.Discard
	}
	return &ExcelFormatter{logger: log}
}

// Name returns "excel".
func (f *ExcelFormatter) Name() string { return FormatExcel }

// Apply wraps the content body in the Excel envelope.
func (f *ExcelFormatter) Apply(c *content.Content) (*content.Artifact, error) {
	f.logger.Debug("Rendering Excel artifact", "kind", c.Kind)
	rendered := fmt.Sprintf("[EXCEL FORMAT]\n%s\n[END EXCEL]", c.Body)
	return content.NewArtifact(c, FormatExcel, rendered), nil
}

// HTMLFormatter wraps the body in a minimal HTML document.
type HTMLFormatter struct {
	logger logger.Logger
}

// NewHTMLFormatter creates an HTML formatter.
func NewHTMLFormatter(log logger.Logger) *HTMLFormatter {
	if log == nil {
		log = logger.Discard
	}
	return &HTMLFormatter{logger: log}
}

// Name returns "html".
func (f *HTMLFormatter) Name() string { return FormatHTML }

// Apply wraps the content body in the HTML envelope.
func (f *HTMLFormatter) Apply(c *content.Content) (*content.Artifact, error) {
	f.logger.Debug("Rendering HTML artifact", "kind", c.Kind)
	rendered := fmt.Sprintf("<html><body><pre>%s</pre></body></html>", c.Body)
	return content.NewArtifact(c, FormatHTML, rendered), nil
}

// TextFormatter passes the body through unchanged. Notification
// messages are fully built by their generator, so no envelope applies.
type TextFormatter struct{}

// NewTextFormatter creates a passthrough formatter.
func NewTextFormatter() *TextFormatter { return &TextFormatter{} }

// Name returns "text".
func (f *TextFormatter) Name() string { return FormatText }

// Apply returns the body unchanged as the artifact.
func (f *TextFormatter) Apply(c *content.Content) (*content.Artifact, error) {
	return content.NewArtifact(c, FormatText, c.Body), nil
}
