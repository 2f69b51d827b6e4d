// Package buddy provides a CLI toolkit for small electrical/plumbing
// contractors: it scrapes flipbook-style product catalogs into structured
// rows and turns a local item catalog into plain-text customer invoices.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, excelize/).
package buddy
