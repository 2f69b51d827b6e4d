// Package excelize provides spreadsheet export of parsed catalog rows.
package excelize

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	buddy "github.com/LukasGLars/construction-buddy"
)

// SheetName is the name of the single worksheet in the export.
const SheetName = "EMV-EL Katalog"

// header uses the localized spelling for the name column; the CSV export
// keeps the ASCII form for downstream tooling.
var header = []any{"artikelnummer", "benämning", "kolumnrubriker", "specifikationer"}

// columnWidths are the fixed widths of columns A through D, in character units.
var columnWidths = []float64{16, 60, 40, 50}

// Ensure Writer implements buddy.RowWriter at compile time.
var _ buddy.RowWriter = (*Writer)(nil)

// Writer writes catalog rows as an XLSX workbook with a bold header row and
// fixed column widths.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteRows writes rows in order. The file is created or replaced.
func (w *Writer) WriteRows(ctx context.Context, rows []buddy.ProductRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", "D1", boldStyle); err != nil {
		return err
	}

	for i, row := range rows {
		if err := row.Validate(); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{row.ArticleNumber, row.Name, row.ColumnHeaders, row.SpecText}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return err
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save %s: %w", w.path, err)
	}

	return nil
}
