package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lagerkoll/backend-go/internal/reorder"
)

// WriteXLSX writes the report to path with the fixed column contract, plus a
// trailing blank "Quantity ordered" column for manual entry. Product numbers
// are written as text so spreadsheet tools do not reformat them.
func WriteXLSX(path string, rows []reorder.Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := make([]interface{}, 0, len(reorder.Columns)+1)
	for _, col := range reorder.Columns {
		header = append(header, col)
	}
	header = append(header, "Quantity ordered")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	textStyle, err := f.NewStyle(&excelize.Style{NumFmt: 49}) // 49 = @ (text)
	if err != nil {
		return fmt.Errorf("create text style: %w", err)
	}

	for i, row := range rows {
		rowIndex := i + 2

		daysToZero := interface{}("")
		if row.DaysToZero != nil {
			daysToZero = *row.DaysToZero
		}

		record := []interface{}{
			row.ProductID,
			row.ProductNumber,
			row.Size,
			row.ProductName,
			row.Status,
			row.IsBundle,
			row.Supplier,
			row.QuantitySold,
			row.StockBalance,
			row.AvgDailySales,
			daysToZero,
			row.ReorderLevel,
			row.QuantityToOrder,
			row.NeedToOrder,
			"", // Quantity ordered, filled in by hand
		}

		cell, err := excelize.CoordinatesToCellName(1, rowIndex)
		if err != nil {
			return fmt.Errorf("row %d: %w", rowIndex, err)
		}
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return fmt.Errorf("write row %d: %w", rowIndex, err)
		}

		numberCell, err := excelize.CoordinatesToCellName(2, rowIndex)
		if err != nil {
			return fmt.Errorf("row %d: %w", rowIndex, err)
		}
		if err := f.SetCellStyle(sheet, numberCell, numberCell, textStyle); err != nil {
			return fmt.Errorf("style row %d: %w", rowIndex, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
