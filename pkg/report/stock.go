// Package report renders spreadsheet exports of the mirrored data.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"agro/entities"
)

const stockSheet = "Stock"

// StockXLSX builds the product stock workbook: one row per product with
// quantity, minimum level, a low-stock marker and total valuation.
func StockXLSX(products []entities.Product) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", stockSheet); err != nil {
		return nil, err
	}
	headers := []string{"Name", "Category", "Unit", "In stock", "Min level", "Low stock", "Price per unit", "Stock value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(stockSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, p := range products {
		low := ""
		if p.LowStock() {
			low = "LOW"
		}
		values := []any{
			p.Name, p.Category, p.Unit,
			p.QuantityInStock, p.MinStockLevel, low,
			p.PricePerUnit, p.QuantityInStock * p.PricePerUnit,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(stockSheet, cell, v); err != nil {
				return nil, fmt.Errorf("stock report row %d: %w", i+1, err)
			}
		}
	}
	return f, nil
}
