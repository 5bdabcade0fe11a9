package shoppinglist

import (
	"io"

	"github.com/foodgram/backend/internal/model"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Shopping list"

var xlsxHeaders = []interface{}{"Ingredient", "Unit", "Amount"}

func renderXLSX(w io.Writer, items []model.ShoppingItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &xlsxHeaders); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", "C1", style); err != nil {
		return err
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{item.Name, item.MeasurementUnit, item.Amount}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
