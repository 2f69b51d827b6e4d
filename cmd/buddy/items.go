package main

import (
	"fmt"

	buddy "github.com/LukasGLars/construction-buddy"
)

// Run executes the items command.
func (c *ItemsCmd) Run(deps *Dependencies) error {
	items, err := deps.Items.SearchItems(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", buddy.ErrorMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No items found. Use 'buddy import' to load a price list.")
		return nil
	}

	for _, item := range items {
		fmt.Fprintf(deps.Stdout, "%-10s %-40s %-10s %-6s %10.2f\n",
			item.ItemNo, clip(item.Name, 40), item.Category, item.Unit, item.Price)
	}

	return nil
}
