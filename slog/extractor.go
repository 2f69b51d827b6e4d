package slog

import (
	"log/slog"
	"time"

	buddy "github.com/LukasGLars/construction-buddy"
)

// Ensure LoggingPageTextExtractor implements buddy.PageTextExtractor.
var _ buddy.PageTextExtractor = (*LoggingPageTextExtractor)(nil)

// LoggingPageTextExtractor wraps a PageTextExtractor with operation logging.
type LoggingPageTextExtractor struct {
	next   buddy.PageTextExtractor
	logger *slog.Logger
}

// NewLoggingPageTextExtractor creates a new LoggingPageTextExtractor.
func NewLoggingPageTextExtractor(next buddy.PageTextExtractor, logger *slog.Logger) *LoggingPageTextExtractor {
	return &LoggingPageTextExtractor{next: next, logger: logger}
}

// ExtractPageTexts delegates to the wrapped extractor and logs the operation.
func (e *LoggingPageTextExtractor) ExtractPageTexts(html string) (pages []string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract page texts",
			"pages", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractPageTexts(html)
}
