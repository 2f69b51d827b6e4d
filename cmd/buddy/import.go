package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	buddy "github.com/LukasGLars/construction-buddy"
)

// importColumns is the expected CSV header for item imports.
var importColumns = []string{"item_no", "item", "category", "unit", "price"}

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if len(records) == 0 {
		err := buddy.Errorf(buddy.EINVALID, "%s is empty", c.Path)
		fmt.Fprintf(deps.Stderr, "error: %s\n", buddy.ErrorMessage(err))
		return err
	}

	header := records[0]
	if len(header) != len(importColumns) {
		err := buddy.Errorf(buddy.EINVALID, "expected columns %v, got %v", importColumns, header)
		fmt.Fprintf(deps.Stderr, "error: %s\n", buddy.ErrorMessage(err))
		return err
	}
	for i, col := range importColumns {
		if header[i] != col {
			err := buddy.Errorf(buddy.EINVALID, "expected columns %v, got %v", importColumns, header)
			fmt.Fprintf(deps.Stderr, "error: %s\n", buddy.ErrorMessage(err))
			return err
		}
	}

	imported := 0
	for _, record := range records[1:] {
		price, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %q: invalid price %q\n", record[1], record[4])
			continue
		}

		item := &buddy.Item{
			ItemNo:   record[0],
			Name:     record[1],
			Category: record[2],
			Unit:     record[3],
			Price:    price,
		}

		if err := deps.Items.CreateItem(deps.Ctx, item); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %q: %s\n", record[1], buddy.ErrorMessage(err))
			continue
		}
		imported++
	}

	fmt.Fprintf(deps.Stdout, "Imported %d items from %s\n", imported, c.Path)
	return nil
}
