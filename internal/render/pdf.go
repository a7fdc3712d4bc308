package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin      = 10.0
	pdfLabelWidth  = 55.0
	pdfColumnWidth = 28.0
	pdfRowHeight   = 7.0
	pdfFont        = "Helvetica"
)

type pdfRenderer struct{}

func (pdfRenderer) Format() Format { return FormatPDF }

// Render writes a landscape A4 document. Bucket columns that do not fit the page
// width are printed as further column groups below the first one.
func (pdfRenderer) Render(ctx context.Context, t Table) ([]byte, error) {
	if err := checkUTF8(t); err != nil {
		return nil, err
	}
	lt, err := latinTable(t)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(lt.Title, false)
	pdf.SetCreator("vendor-report-srv", false)
	pageWidth, _ := pdf.GetPageSize()
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.CellFormat((pageWidth-2*pdfMargin)/2, 5, lt.Footer, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 10, lt.Title, "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 10)
	for _, line := range lt.Subtitle {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	perGroup := int((pageWidth - 2*pdfMargin - pdfLabelWidth) / pdfColumnWidth)
	if perGroup < 1 {
		perGroup = 1
	}

	buckets := len(lt.Header) - 1
	for start := 0; start < buckets || start == 0; start += perGroup {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + perGroup
		if end > buckets {
			end = buckets
		}
		writePDFRow(pdf, true, lt.Header[0], lt.Header[1+start:1+end])
		for _, row := range lt.Rows {
			writePDFRow(pdf, false, row[0].Text, cellTexts(row[1+start:1+end]))
		}
		pdf.Ln(4)
		if buckets == 0 {
			break
		}
	}

	pdf.SetFont(pdfFont, "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	writePDFRow(pdf, true, lt.SummaryHeader[0], lt.SummaryHeader[1:])
	for _, row := range lt.Summary {
		writePDFRow(pdf, false, row[0].Text, cellTexts(row[1:]))
	}

	if len(lt.TopProducts) > 0 {
		pdf.Ln(4)
		pdf.SetFont(pdfFont, "B", 12)
		pdf.CellFormat(0, 8, "Top Products", "", 1, "L", false, 0, "")
		writePDFProducts(pdf, true, lt.TopHeader)
		for _, row := range lt.TopProducts {
			writePDFProducts(pdf, false, cellTexts(row))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

func writePDFRow(pdf *fpdf.Fpdf, header bool, label string, cells []string) {
	style, fill := "", false
	if header {
		style, fill = "B", true
		pdf.SetFillColor(230, 230, 230)
	}
	pdf.SetFont(pdfFont, style, 9)
	pdf.CellFormat(pdfLabelWidth, pdfRowHeight, label, "1", 0, "L", fill, 0, "")
	for _, c := range cells {
		pdf.CellFormat(pdfColumnWidth, pdfRowHeight, c, "1", 0, "R", fill, 0, "")
	}
	pdf.Ln(-1)
}

// pdfProductWidths are the rank, product, units and revenue column widths.
var pdfProductWidths = []float64{15, 110, 30, 35}

func writePDFProducts(pdf *fpdf.Fpdf, header bool, cells []string) {
	style, fill := "", false
	if header {
		style, fill = "B", true
		pdf.SetFillColor(230, 230, 230)
	}
	pdf.SetFont(pdfFont, style, 9)
	for i, c := range cells {
		align := "R"
		if i == 1 {
			align = "L"
		}
		pdf.CellFormat(pdfProductWidths[i], pdfRowHeight, c, "1", 0, align, fill, 0, "")
	}
	pdf.Ln(-1)
}

func cellTexts(cells []Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Text
	}
	return out
}

// latinTable converts every text of t to Windows-1252 or fails.
func latinTable(t Table) (Table, error) {
	var err error
	conv := func(s string) string {
		if err != nil {
			return s
		}
		var out string
		out, err = toLatin(s)
		return out
	}
	convCells := func(rows [][]Cell) [][]Cell {
		out := make([][]Cell, len(rows))
		for i, r := range rows {
			out[i] = make([]Cell, len(r))
			for j, c := range r {
				c.Text = conv(c.Text)
				out[i][j] = c
			}
		}
		return out
	}
	convAll := func(ss []string) []string {
		out := make([]string, len(ss))
		for i, s := range ss {
			out[i] = conv(s)
		}
		return out
	}

	lt := Table{
		Title:         conv(t.Title),
		Subtitle:      convAll(t.Subtitle),
		Header:        convAll(t.Header),
		Rows:          convCells(t.Rows),
		SummaryHeader: convAll(t.SummaryHeader),
		Summary:       convCells(t.Summary),
		TopHeader:     convAll(t.TopHeader),
		TopProducts:   convCells(t.TopProducts),
		Footer:        conv(t.Footer),
	}
	return lt, err
}
