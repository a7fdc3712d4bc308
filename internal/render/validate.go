package render

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// maxCellChars is the spreadsheet cell text limit.
const maxCellChars = 32767

func checkUTF8(t Table) error {
	for _, s := range t.texts() {
		if !utf8.ValidString(s) {
			return fmt.Errorf("%w: invalid UTF-8 text %q", ErrRenderFailure, s)
		}
	}
	return nil
}

// toLatin encodes s for the PDF core fonts.
func toLatin(s string) (string, error) {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q cannot be written with the document font", ErrRenderFailure, s)
	}
	return out, nil
}
