package mock

import (
	"context"

	buddy "github.com/LukasGLars/construction-buddy"
)

var _ buddy.ItemService = (*ItemService)(nil)

// ItemService is a mock implementation of buddy.ItemService.
type ItemService struct {
	SearchItemsFn  func(ctx context.Context, query string) ([]*buddy.Item, error)
	FindItemByIDFn func(ctx context.Context, id string) (*buddy.Item, error)
	CreateItemFn   func(ctx context.Context, item *buddy.Item) error
	DeleteItemFn   func(ctx context.Context, id string) error
}

func (s *ItemService) SearchItems(ctx context.Context, query string) ([]*buddy.Item, error) {
	return s.SearchItemsFn(ctx, query)
}

func (s *ItemService) FindItemByID(ctx context.Context, id string) (*buddy.Item, error) {
	return s.FindItemByIDFn(ctx, id)
}

func (s *ItemService) CreateItem(ctx context.Context, item *buddy.Item) error {
	return s.CreateItemFn(ctx, item)
}

func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	return s.DeleteItemFn(ctx, id)
}
