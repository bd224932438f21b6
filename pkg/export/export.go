// Package export renders result tables as downloadable documents.
package export

import (
	"fmt"
	"strings"
)

// Format names a supported document type.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat normalises user input, defaulting to CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

// Dataset defines tabular export content. Rows are keyed by header.
type Dataset struct {
	Title   string
	Headers []string
	Rows    []map[string]string
}

// Document is a rendered export ready to stream.
type Document struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// Renderer turns a dataset into bytes.
type Renderer interface {
	Render(data Dataset) ([]byte, error)
}

// Exporter dispatches to the renderer registered for each format.
type Exporter struct {
	renderers map[Format]Renderer
}

// NewExporter wires the CSV and PDF renderers.
func NewExporter() *Exporter {
	return &Exporter{renderers: map[Format]Renderer{
		FormatCSV: NewCSVRenderer(),
		FormatPDF: NewPDFRenderer(),
	}}
}

// Export renders data in the requested format under basename.
func (e *Exporter) Export(format Format, basename string, data Dataset) (*Document, error) {
	renderer, ok := e.renderers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	payload, err := renderer.Render(data)
	if err != nil {
		return nil, err
	}
	contentType := "text/csv; charset=utf-8"
	if format == FormatPDF {
		contentType = "application/pdf"
	}
	return &Document{
		Filename:    fmt.Sprintf("%s.%s", basename, format),
		ContentType: contentType,
		Payload:     payload,
	}, nil
}
