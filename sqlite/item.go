package sqlite

import (
	"context"
	"database/sql"

	buddy "github.com/LukasGLars/construction-buddy"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ buddy.ItemService = (*ItemService)(nil)

// searchLimit caps the number of items returned by a single search.
const searchLimit = 50

// ItemService implements buddy.ItemService using SQLite.
type ItemService struct {
	db *DB
}

// NewItemService creates a new ItemService.
func NewItemService(db *DB) *ItemService {
	return &ItemService{db: db}
}

// CreateItem creates a new catalog item.
func (s *ItemService) CreateItem(ctx context.Context, item *buddy.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	item.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, item_no, item, category, unit, price)
		VALUES (?, ?, ?, ?, ?, ?)
	`, item.ID, item.ItemNo, item.Name, item.Category, item.Unit, item.Price)

	return err
}

// FindItemByID retrieves an item by ID.
func (s *ItemService) FindItemByID(ctx context.Context, id string) (*buddy.Item, error) {
	var item buddy.Item

	err := s.db.QueryRowContext(ctx, `
		SELECT id, item_no, item, category, unit, price
		FROM items
		WHERE id = ?
	`, id).Scan(&item.ID, &item.ItemNo, &item.Name, &item.Category, &item.Unit, &item.Price)

	if err == sql.ErrNoRows {
		return nil, buddy.Errorf(buddy.ENOTFOUND, "item not found")
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// SearchItems retrieves items whose item number, description, or category
// contains the query, case-insensitively. An empty query lists items up to
// the search cap.
func (s *ItemService) SearchItems(ctx context.Context, query string) ([]*buddy.Item, error) {
	var rows *sql.Rows
	var err error

	if query == "" {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, item_no, item, category, unit, price
			FROM items
			ORDER BY item COLLATE NOCASE
			LIMIT ?
		`, searchLimit)
	} else {
		pattern := "%" + query + "%"
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, item_no, item, category, unit, price
			FROM items
			WHERE item_no LIKE ? COLLATE NOCASE
			   OR item LIKE ? COLLATE NOCASE
			   OR category LIKE ? COLLATE NOCASE
			ORDER BY item COLLATE NOCASE
			LIMIT ?
		`, pattern, pattern, pattern, searchLimit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*buddy.Item
	for rows.Next() {
		var item buddy.Item
		if err := rows.Scan(&item.ID, &item.ItemNo, &item.Name, &item.Category, &item.Unit, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

// DeleteItem permanently removes an item.
func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return buddy.Errorf(buddy.ENOTFOUND, "item not found")
	}

	return nil
}
