package shoppinglist

import (
	_ "embed"
	"io"
	"time"

	"github.com/foodgram/backend/internal/model"
	"github.com/go-pdf/fpdf"
)

const (
	pdfTitle      = "Shopping list"
	pdfFontFamily = "DejaVu"
)

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	dejaVuRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	dejaVuBold []byte
)

func renderPDF(w io.Writer, items []model.ShoppingItem) error {
	return writePDF(w, items, true)
}

// writePDF lays out the list with an embedded UTF-8 font so non-Latin
// ingredient names survive.
func writePDF(w io.Writer, items []model.ShoppingItem, compress bool) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetTitle(pdfTitle, true)
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "", dejaVuRegular)
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "B", dejaVuBold)

	pdf.AddPage()
	pdf.SetFont(pdfFontFamily, "B", 16)
	pdf.CellFormat(0, 10, pdfTitle, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(pdfFontFamily, "", 12)
	for _, item := range items {
		pdf.CellFormat(0, 8, Line(item), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
