package sqlite

import (
	"context"
	"strings"
	"time"

	buddy "github.com/LukasGLars/construction-buddy"
)

// Compile-time interface verification.
var _ buddy.CatalogService = (*CatalogService)(nil)

// CatalogService implements buddy.CatalogService using SQLite.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// SaveRows stores parsed catalog rows. Article numbers already present are
// left untouched, so the first scrape of a number wins.
func (s *CatalogService) SaveRows(ctx context.Context, rows []buddy.ProductRow) error {
	now := time.Now().UTC().Format(time.RFC3339)

	for i := range rows {
		row := &rows[i]
		if err := row.Validate(); err != nil {
			return err
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO catalog_rows (article_number, name, column_headers, spec_text, scraped_at)
			VALUES (?, ?, ?, ?, ?)
		`, row.ArticleNumber, row.Name, row.ColumnHeaders, row.SpecText, now)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindRows retrieves stored catalog rows matching the filter.
func (s *CatalogService) FindRows(ctx context.Context, filter buddy.CatalogRowFilter) ([]*buddy.CatalogRow, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT article_number, name, column_headers, spec_text, scraped_at FROM catalog_rows WHERE 1=1")

	if filter.ArticleNumber != nil {
		query.WriteString(" AND article_number = ?")
		args = append(args, *filter.ArticleNumber)
	}

	query.WriteString(" ORDER BY article_number")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	sqlRows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	var rows []*buddy.CatalogRow
	for sqlRows.Next() {
		var row buddy.CatalogRow
		var scrapedAt string

		if err := sqlRows.Scan(&row.ArticleNumber, &row.Name, &row.ColumnHeaders, &row.SpecText, &scrapedAt); err != nil {
			return nil, err
		}

		row.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
		if err != nil {
			return nil, err
		}

		rows = append(rows, &row)
	}

	return rows, sqlRows.Err()
}
