package render

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

type csvRenderer struct{}

func (csvRenderer) Format() Format { return FormatDelimitedText }

// Render writes the table as comma separated records. Title lines and the summary
// block are separated from the matrix by blank records.
func (csvRenderer) Render(ctx context.Context, t Table) ([]byte, error) {
	if err := checkUTF8(t); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := writeCSV(ctx, &buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCSV(ctx context.Context, out io.Writer, t Table) error {
	w := csv.NewWriter(out)
	var werr error
	// Records vary in length.
	write := func(rec []string) {
		if werr == nil {
			werr = w.Write(rec)
		}
	}

	write([]string{t.Title})
	for _, line := range t.Subtitle {
		write([]string{line})
	}
	write([]string{""})

	write(t.Header)
	for _, r := range t.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		write(cellTexts(r))
	}
	write([]string{""})

	write(t.SummaryHeader)
	for _, r := range t.Summary {
		write(cellTexts(r))
	}
	if len(t.TopProducts) > 0 {
		write([]string{""})
		write(t.TopHeader)
		for _, r := range t.TopProducts {
			write(cellTexts(r))
		}
	}
	if t.Footer != "" {
		write([]string{""})
		write([]string{t.Footer})
	}
	if werr != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, werr)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	return nil
}
