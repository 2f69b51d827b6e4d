package slog

import (
	"context"
	"log/slog"
	"time"

	buddy "github.com/LukasGLars/construction-buddy"
)

// Ensure LoggingItemService implements buddy.ItemService.
var _ buddy.ItemService = (*LoggingItemService)(nil)

// LoggingItemService wraps an ItemService with operation logging.
type LoggingItemService struct {
	next   buddy.ItemService
	logger *slog.Logger
}

// NewLoggingItemService creates a new LoggingItemService.
func NewLoggingItemService(next buddy.ItemService, logger *slog.Logger) *LoggingItemService {
	return &LoggingItemService{next: next, logger: logger}
}

// SearchItems delegates to the wrapped service and logs the operation.
func (s *LoggingItemService) SearchItems(ctx context.Context, query string) (items []*buddy.Item, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search items",
			"query", query,
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchItems(ctx, query)
}

// FindItemByID delegates to the wrapped service and logs the operation.
func (s *LoggingItemService) FindItemByID(ctx context.Context, id string) (item *buddy.Item, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find item",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindItemByID(ctx, id)
}

// CreateItem delegates to the wrapped service and logs the operation.
func (s *LoggingItemService) CreateItem(ctx context.Context, item *buddy.Item) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create item",
			"item", item.Name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateItem(ctx, item)
}

// DeleteItem delegates to the wrapped service and logs the operation.
func (s *LoggingItemService) DeleteItem(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete item",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteItem(ctx, id)
}
