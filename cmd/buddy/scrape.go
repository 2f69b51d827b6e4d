package main

import (
	"fmt"

	buddy "github.com/LukasGLars/construction-buddy"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Fetching catalog from %s ...\n", c.URL)

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", buddy.ErrorMessage(err))
		return err
	}

	pages, err := deps.Extractor.ExtractPageTexts(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", buddy.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "  Found %d pages\n", len(pages))

	rows := buddy.ParseCatalog(pages)
	fmt.Fprintf(deps.Stdout, "  Extracted %d article entries\n", len(rows))

	unique := buddy.DedupeRows(rows)
	fmt.Fprintf(deps.Stdout, "  Unique articles: %d\n", len(unique))

	if err := deps.CSVWriter.WriteRows(deps.Ctx, unique); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", buddy.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "  Saved CSV:   %s\n", c.Out)

	if deps.XLSXWriter != nil {
		if err := deps.XLSXWriter.WriteRows(deps.Ctx, unique); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: skipping XLSX export: %v\n", err)
		} else {
			fmt.Fprintf(deps.Stdout, "  Saved Excel: %s\n", c.XLSX)
		}
	}

	if c.Save {
		if err := deps.Catalog.SaveRows(deps.Ctx, unique); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", buddy.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "  Saved %d rows to the catalog database\n", len(unique))
	}

	printSample(deps, unique)
	return nil
}

// printSample shows the first five and last three rows for a quick sanity check.
func printSample(deps *Dependencies, rows []buddy.ProductRow) {
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(deps.Stdout, "\nSample rows:\n")
	head := rows
	if len(head) > 5 {
		head = head[:5]
	}
	for _, row := range head {
		printSampleRow(deps, row)
	}
	if len(rows) > 5 {
		fmt.Fprintln(deps.Stdout, "  ...")
		tail := rows[len(rows)-3:]
		if len(rows) < 8 {
			tail = rows[5:]
		}
		for _, row := range tail {
			printSampleRow(deps, row)
		}
	}
}

func printSampleRow(deps *Dependencies, row buddy.ProductRow) {
	fmt.Fprintf(deps.Stdout, "  %s  |  %s  |  %s  |  %s\n",
		row.ArticleNumber, clip(row.Name, 40), clip(row.ColumnHeaders, 30), clip(row.SpecText, 30))
}

// clip shortens s to at most n runes.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
