package buddy

import "context"

// Item is one priced entry in the contractor's invoice catalog.
// ItemNo may be empty: labor and service entries have no article number.
type Item struct {
	ID       string  `json:"id"`
	ItemNo   string  `json:"item_no"`
	Name     string  `json:"item"`
	Category string  `json:"category"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}

// Validate returns an error if the item contains invalid fields.
func (i *Item) Validate() error {
	if i.Name == "" {
		return Errorf(EINVALID, "item description required")
	}
	return nil
}

// ItemService manages the invoice item catalog.
type ItemService interface {
	// SearchItems retrieves items matching the query, case-insensitive,
	// across item number, description, and category. An empty query lists
	// items up to a service-defined cap.
	SearchItems(ctx context.Context, query string) ([]*Item, error)

	// FindItemByID retrieves an item by ID.
	// Returns ENOTFOUND if the item does not exist.
	FindItemByID(ctx context.Context, id string) (*Item, error)

	// CreateItem creates a new catalog item.
	CreateItem(ctx context.Context, item *Item) error

	// DeleteItem permanently removes an item.
	// Returns ENOTFOUND if the item does not exist.
	DeleteItem(ctx context.Context, id string) error
}
