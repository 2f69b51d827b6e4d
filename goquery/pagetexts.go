// Package goquery extracts the embedded page-text array from flipbook
// catalog HTML.
package goquery

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	buddy "github.com/LukasGLars/construction-buddy"
)

// Ensure PageTextExtractor implements buddy.PageTextExtractor at compile time.
var _ buddy.PageTextExtractor = (*PageTextExtractor)(nil)

// pageTextsRe lifts the JSON array literal assigned to the pageTexts key of
// the viewer's settings object.
var pageTextsRe = regexp.MustCompile(`(?s)"pageTexts"\s*:\s*(\[.*?\])\s*[,}]`)

// PageTextExtractor finds the pageTexts array that iPaper-style flipbook
// viewers embed in a script block and decodes it into per-page strings.
type PageTextExtractor struct{}

// NewPageTextExtractor creates a new PageTextExtractor.
func NewPageTextExtractor() *PageTextExtractor {
	return &PageTextExtractor{}
}

// ExtractPageTexts returns one string per catalog page, in page order.
// A document without the embedded array is an EINVALID error.
func (e *PageTextExtractor) ExtractPageTexts(html string) ([]string, error) {
	raw := e.findArrayLiteral(html)
	if raw == "" {
		return nil, buddy.Errorf(buddy.EINVALID, "no embedded pageTexts found in document")
	}

	var pages []string
	if err := json.Unmarshal([]byte(raw), &pages); err != nil {
		return nil, buddy.Errorf(buddy.EINVALID, "malformed pageTexts array: %v", err)
	}

	return pages, nil
}

// findArrayLiteral scans script elements for the pageTexts assignment,
// falling back to the raw document when the HTML is too broken to parse.
func (e *PageTextExtractor) findArrayLiteral(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		if m := pageTextsRe.FindStringSubmatch(html); m != nil {
			return m[1]
		}
		return ""
	}

	var raw string
	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if m := pageTextsRe.FindStringSubmatch(sel.Text()); m != nil {
			raw = m[1]
			return false
		}
		return true
	})
	return raw
}
