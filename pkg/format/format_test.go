package format

import (
	"testing"
	"time"

	"github.com/kart-io/dispatchhub/pkg/content"
	"github.com/kart-io/dispatchhub/pkg/logger"
)

func testContent() *content.Content {
	return content.New("sales", "report body", map[string]any{"total": 10.0}, time.Now())
}

func TestPDFFormatter(t *testing.T) {
	f := NewPDFFormatter(logger.Discard)

	a, err := f.Apply(testContent())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := "[PDF FORMAT]\nreport body\n[END PDF]"
	if a.Rendered != want {
		t.Errorf("Apply() rendered = %q, want %q", a.Rendered, want)
	}
	if a.Format != FormatPDF || a.Kind != "sales" {
		t.Errorf("Apply() artifact = %s/%s, want sales/pdf", a.Kind, a.Format)
	}
}

func TestExcelFormatter(t *testing.T) {
	f := NewExcelFormatter(logger.Discard)

	a, err := f.Apply(testContent())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := "[EXCEL FORMAT]\nreport body\n[END EXCEL]"
	if a.Rendered != want {
		t.Errorf("Apply() rendered = %q, want %q", a.Rendered, want)
	}
}

func TestHTMLFormatter(t *testing.T) {
	f := NewHTMLFormatter(logger.Discard)

	a, err := f.Apply(testContent())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := "<html><body><pre>report body</pre></body></html>"
	if a.Rendered != want {
		t.Errorf("Apply() rendered = %q, want %q", a.Rendered, want)
	}
}

func TestTextFormatter_Passthrough(t *testing.T) {
	f := NewTextFormatter()

	c := testContent()
	a, err := f.Apply(c)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if a.Rendered != c.Body {
		t.Errorf("Apply() rendered = %q, want body unchanged %q", a.Rendered, c.Body)
	}
}

func TestFormatters_DoNotMutateContent(t *testing.T) {
	c := testContent()
	body := c.Body

	for _, f := range []Formatter{
		NewPDFFormatter(nil), NewExcelFormatter(nil), NewHTMLFormatter(nil), NewTextFormatter(),
	} {
		if _, err := f.Apply(c); err != nil {
			t.Fatalf("%s Apply() error = %v", f.Name(), err)
		}
		if c.Body != body {
			t.Fatalf("%s Apply() mutated content body", f.Name())
		}
	}
}
