package mock

import (
	buddy "github.com/LukasGLars/construction-buddy"
)

var _ buddy.PageTextExtractor = (*PageTextExtractor)(nil)

// PageTextExtractor is a mock implementation of buddy.PageTextExtractor.
type PageTextExtractor struct {
	ExtractPageTextsFn func(html string) ([]string, error)
}

func (e *PageTextExtractor) ExtractPageTexts(html string) ([]string, error) {
	return e.ExtractPageTextsFn(html)
}
