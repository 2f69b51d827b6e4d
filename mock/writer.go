package mock

import (
	"context"

	buddy "github.com/LukasGLars/construction-buddy"
)

var _ buddy.RowWriter = (*RowWriter)(nil)

// RowWriter is a mock implementation of buddy.RowWriter.
type RowWriter struct {
	WriteRowsFn func(ctx context.Context, rows []buddy.ProductRow) error
}

func (w *RowWriter) WriteRows(ctx context.Context, rows []buddy.ProductRow) error {
	return w.WriteRowsFn(ctx, rows)
}
