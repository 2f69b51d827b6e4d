package main

import (
	"context"
	"io"

	buddy "github.com/LukasGLars/construction-buddy"
	"github.com/LukasGLars/construction-buddy/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Items     buddy.ItemService
	Catalog   buddy.CatalogService
	Fetcher   buddy.Fetcher
	Extractor buddy.PageTextExtractor

	// CSVWriter receives the deduplicated rows; a write error aborts the run.
	CSVWriter buddy.RowWriter
	// XLSXWriter is optional; a write error is reported and skipped.
	XLSXWriter buddy.RowWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape a flipbook catalog into CSV/XLSX"`
	Import ImportCmd `cmd:"" help:"Import priced items from CSV into the item catalog"`
	Items  ItemsCmd  `cmd:"" help:"List or search catalog items"`
	Serve  ServeCmd  `cmd:"" help:"Start the invoice web form"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL     string `arg:"" optional:"" default:"https://se.ahlsell.se/katalog/emv-el/?page=1" help:"Catalog page URL"`
	Out     string `short:"o" default:"ahlsell_emv_el.csv" help:"CSV output path"`
	XLSX    string `name:"xlsx" help:"Also write an XLSX file to this path"`
	Browser bool   `short:"b" help:"Fetch with a headless browser instead of plain HTTP"`
	Save    bool   `name:"db" help:"Also persist rows into the local catalog database"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Path string `arg:"" help:"CSV file with columns item_no,item,category,unit,price"`
}

// ItemsCmd is the "items" subcommand.
type ItemsCmd struct {
	Query string `arg:"" optional:"" help:"Search term (empty lists all items)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}
