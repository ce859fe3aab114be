package native

import (
	"bytes"
	"os"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidthMM  = 210.0
	marginMM     = 10.0
	bodyFontSize = 12.0
)

// renderPdf draws the blocks onto A4 pages. When a DejaVuSans font file is
// available it is registered as a UTF-8 font so non-Latin text renders;
// otherwise the built-in core font is used and non-ASCII glyphs degrade.
func renderPdf(blocks []block, fontPath string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)

	family := "Helvetica"
	if fontPath != "" {
		if _, err := os.Stat(fontPath); err == nil {
			pdf.AddUTF8Font("DejaVu", "", fontPath)
			family = "DejaVu"
		}
	}

	pdf.AddPage()
	usable := pageWidthMM - 2*marginMM

	for _, b := range blocks {
		switch b.kind {
		case blockHeading:
			size := headingFontSize(b.level)
			pdf.SetFont(family, "", size)
			pdf.MultiCell(usable, size*0.5, b.text, "", "L", false)
			pdf.Ln(2)
		case blockParagraph:
			pdf.SetFont(family, "", bodyFontSize)
			pdf.MultiCell(usable, 6, b.text, "", "L", false)
			pdf.Ln(2)
		case blockList:
			pdf.SetFont(family, "", bodyFontSize)
			for _, item := range b.items {
				pdf.MultiCell(usable, 6, "• "+item, "", "L", false)
			}
			pdf.Ln(2)
		case blockTable:
			renderTable(pdf, family, usable, b.rows)
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderTable(pdf *fpdf.Fpdf, family string, usable float64, rows [][]string) {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}
	colW := usable / float64(cols)

	pdf.SetFont(family, "", bodyFontSize)
	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colW, 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func headingFontSize(level int) float64 {
	switch {
	case level <= 1:
		return 20
	case level == 2:
		return 16
	default:
		return 14
	}
}
