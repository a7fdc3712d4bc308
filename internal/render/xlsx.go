package render

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"vendor-report-srv/internal/metric"
)

const sheetName = "Report"

type xlsxRenderer struct{}

func (xlsxRenderer) Format() Format { return FormatSpreadsheet }

// Render writes a single "Report" sheet. Numeric cells are stored as numbers with a
// number format matching their unit.
func (xlsxRenderer) Render(ctx context.Context, t Table) ([]byte, error) {
	if err := checkUTF8(t); err != nil {
		return nil, err
	}
	for _, s := range t.texts() {
		if len([]rune(s)) > maxCellChars {
			return nil, fmt.Errorf("%w: cell text exceeds %d characters", ErrRenderFailure, maxCellChars)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}

	w, err := newSheetWriter(f)
	if err != nil {
		return nil, err
	}

	w.text(t.Title, w.bold)
	for _, line := range t.Subtitle {
		w.text(line, 0)
	}
	w.row++

	w.strings(t.Header, w.bold)
	for _, r := range t.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w.cells(r)
	}
	w.row++

	w.text("Summary", w.bold)
	w.strings(t.SummaryHeader, w.bold)
	for _, r := range t.Summary {
		w.cells(r)
	}
	if len(t.TopProducts) > 0 {
		w.row++
		w.text("Top Products", w.bold)
		w.strings(t.TopHeader, w.bold)
		for _, r := range t.TopProducts {
			w.cells(r)
		}
	}
	if t.Footer != "" {
		w.row++
		w.text(t.Footer, 0)
	}
	if w.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, w.err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 24); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

type sheetWriter struct {
	f      *excelize.File
	row    int
	err    error
	bold   int
	styles map[metric.Unit]int
}

func newSheetWriter(f *excelize.File) (*sheetWriter, error) {
	w := &sheetWriter{f: f, row: 1, styles: map[metric.Unit]int{}}

	var err error
	if w.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	formats := map[metric.Unit]string{
		metric.UnitCurrency: "#,##0.00",
		metric.UnitInteger:  "0",
		metric.UnitPercent:  "0.0\"%\"",
	}
	for unit, numFmt := range formats {
		numFmt := numFmt
		id, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
		}
		w.styles[unit] = id
	}
	return w, nil
}

func (w *sheetWriter) set(col int, value interface{}, style int) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		w.err = err
		return
	}
	if w.err = w.f.SetCellValue(sheetName, cell, value); w.err != nil {
		return
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(sheetName, cell, cell, style)
	}
}

func (w *sheetWriter) text(s string, style int) {
	w.set(1, s, style)
	w.row++
}

func (w *sheetWriter) strings(ss []string, style int) {
	for i, s := range ss {
		w.set(i+1, s, style)
	}
	w.row++
}

func (w *sheetWriter) cells(cells []Cell) {
	for i, c := range cells {
		if c.Numeric {
			v, _ := c.Value.Round(4).Float64()
			w.set(i+1, v, w.styles[c.Unit])
			continue
		}
		w.set(i+1, c.Text, 0)
	}
	w.row++
}
