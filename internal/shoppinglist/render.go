// Package shoppinglist renders an aggregated shopping list as a downloadable
// document. Every format emits exactly one entry per item, in input order.
package shoppinglist

import (
	"fmt"
	"io"
	"strings"

	"github.com/foodgram/backend/internal/model"
)

type Format string

const (
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a query value to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported shopping list format %q (want txt, pdf or xlsx)", s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Filename is the attachment name offered to the client
func (f Format) Filename() string {
	return "shopping_list." + string(f)
}

// Line formats one item as it appears in the text rendering
func Line(item model.ShoppingItem) string {
	return fmt.Sprintf("%s (%s) — %d", item.Name, item.MeasurementUnit, item.Amount)
}

// Render writes items to w in format f
func Render(w io.Writer, f Format, items []model.ShoppingItem) error {
	switch f {
	case FormatText:
		return renderText(w, items)
	case FormatPDF:
		return renderPDF(w, items)
	case FormatXLSX:
		return renderXLSX(w, items)
	default:
		return fmt.Errorf("unsupported shopping list format %q", f)
	}
}
