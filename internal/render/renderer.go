package render

import (
	"context"
	"fmt"
)

// Renderer encodes a Table into a document.
//
//go:generate mockery --name Renderer
type Renderer interface {
	Format() Format
	Render(ctx context.Context, t Table) ([]byte, error)
}

// New returns the encoder for f.
func New(f Format) (Renderer, error) {
	switch f {
	case FormatPDF:
		return pdfRenderer{}, nil
	case FormatSpreadsheet:
		return xlsxRenderer{}, nil
	case FormatDelimitedText:
		return csvRenderer{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}
