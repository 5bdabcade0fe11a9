package shoppinglist

import (
	"bufio"
	"io"

	"github.com/foodgram/backend/internal/model"
)

func renderText(w io.Writer, items []model.ShoppingItem) error {
	bw := bufio.NewWriter(w)
	for _, item := range items {
		if _, err := bw.WriteString(Line(item) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
