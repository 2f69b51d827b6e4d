package buddy

import (
	"context"
	"regexp"
	"time"
)

// articleNumberRe matches a 7-digit article number, optionally followed by a
// single marker letter. The marker letter is consumed so it never leaks into
// surrounding spec text, but only the digits are captured.
var articleNumberRe = regexp.MustCompile(`\b(\d{7})[A-Z]?\b`)

// ArticleNumberRe returns the pattern used to recognize article numbers in
// catalog text. The first capture group holds the 7-digit number.
func ArticleNumberRe() *regexp.Regexp {
	return articleNumberRe
}

// ProductRow is one parsed catalog entry: a single article number together
// with the product name, the column headers of its table, and the free-form
// spec values for its row. Rows are never merged or updated after creation.
type ProductRow struct {
	ArticleNumber string `json:"artikelnummer"`
	Name          string `json:"benamning"`
	ColumnHeaders string `json:"kolumnrubriker"`
	SpecText      string `json:"specifikationer"`
}

// Validate returns an error if the row contains invalid fields.
func (r *ProductRow) Validate() error {
	if !articleNumberRe.MatchString(r.ArticleNumber) || len(r.ArticleNumber) != 7 {
		return Errorf(EINVALID, "article number must be exactly 7 digits, got %q", r.ArticleNumber)
	}
	return nil
}

// DedupeRows removes rows with repeated article numbers, keeping the first
// occurrence of each. Order is preserved.
func DedupeRows(rows []ProductRow) []ProductRow {
	seen := make(map[string]bool, len(rows))
	unique := make([]ProductRow, 0, len(rows))
	for _, row := range rows {
		if seen[row.ArticleNumber] {
			continue
		}
		seen[row.ArticleNumber] = true
		unique = append(unique, row)
	}
	return unique
}

// RowWriter serializes parsed catalog rows to an output format.
type RowWriter interface {
	// WriteRows writes rows in order. Callers are expected to dedupe first.
	WriteRows(ctx context.Context, rows []ProductRow) error
}

// CatalogRow is a ProductRow as persisted in the local catalog store.
type CatalogRow struct {
	ProductRow
	ScrapedAt time.Time `json:"scrapedAt"`
}

// CatalogRowFilter represents a filter for FindRows.
type CatalogRowFilter struct {
	ArticleNumber *string `json:"articleNumber"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CatalogService persists scraped catalog rows so the invoice tooling can
// read them without re-scraping.
type CatalogService interface {
	// SaveRows stores rows, ignoring article numbers already present
	// (first occurrence wins, matching export dedup semantics).
	SaveRows(ctx context.Context, rows []ProductRow) error

	// FindRows retrieves stored rows matching the filter.
	FindRows(ctx context.Context, filter CatalogRowFilter) ([]*CatalogRow, error)
}
