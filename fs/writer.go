// Package fs provides file-based export of parsed catalog rows.
package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	buddy "github.com/LukasGLars/construction-buddy"
)

// Columns is the export column order, shared with the spreadsheet writer.
var Columns = []string{"artikelnummer", "benamning", "kolumnrubriker", "specifikationer"}

// Ensure Writer implements buddy.RowWriter at compile time.
var _ buddy.RowWriter = (*Writer)(nil)

// Writer writes catalog rows as a CSV file with a header row.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteRows writes rows in order. The file is created or truncated.
func (w *Writer) WriteRows(ctx context.Context, rows []buddy.ProductRow) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", w.path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(Columns); err != nil {
		f.Close()
		return err
	}

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			f.Close()
			return err
		}
		if err := cw.Write([]string{row.ArticleNumber, row.Name, row.ColumnHeaders, row.SpecText}); err != nil {
			f.Close()
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
