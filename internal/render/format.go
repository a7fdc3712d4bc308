package render

import (
	"fmt"
	"strings"
)

// Format is the closed set of output encodings.
type Format int

const (
	FormatPDF Format = iota + 1
	FormatSpreadsheet
	FormatDelimitedText
)

// Formats lists every supported format.
var Formats = []Format{FormatPDF, FormatSpreadsheet, FormatDelimitedText}

// ParseFormat accepts canonical names and the aliases used by API clients.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "xlsx", "excel", "spreadsheet":
		return FormatSpreadsheet, nil
	case "csv", "delimited-text":
		return FormatDelimitedText, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// String returns the canonical name, which is also the file extension.
func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatSpreadsheet:
		return "xlsx"
	case FormatDelimitedText:
		return "csv"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

func (f Format) Extension() string {
	return f.String()
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatSpreadsheet:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatDelimitedText:
		return "text/csv; charset=utf-8"
	}
	return "application/octet-stream"
}

func (f Format) IsValid() bool {
	return f >= FormatPDF && f <= FormatDelimitedText
}
