package mock

import (
	"context"

	buddy "github.com/LukasGLars/construction-buddy"
)

var _ buddy.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of buddy.CatalogService.
type CatalogService struct {
	SaveRowsFn func(ctx context.Context, rows []buddy.ProductRow) error
	FindRowsFn func(ctx context.Context, filter buddy.CatalogRowFilter) ([]*buddy.CatalogRow, error)
}

func (s *CatalogService) SaveRows(ctx context.Context, rows []buddy.ProductRow) error {
	return s.SaveRowsFn(ctx, rows)
}

func (s *CatalogService) FindRows(ctx context.Context, filter buddy.CatalogRowFilter) ([]*buddy.CatalogRow, error) {
	return s.FindRowsFn(ctx, filter)
}
