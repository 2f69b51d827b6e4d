package buddy

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// sectionMarker precedes every product table in the page text stream.
const sectionMarker = "Artikel Nr"

// minUsableNameLen is the shortest cleaned name accepted as a real product
// name; anything shorter falls back to the running last-good name.
const minUsableNameLen = 3

// maxTrailingSpecLen is the spec-text length above which the tail of the last
// row in a section is checked for an accidentally appended next-product name.
const maxTrailingSpecLen = 30

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// specFillerRe matches the boilerplate phrase (with optional leading page
	// number) and everything after it inside a spec value.
	specFillerRe = regexp.MustCompile(`\d*\s*Läs mer om produkterna på ahlsell\.se.*`)

	// trailingNameWordRe matches a capitalized word of at least 5 letters,
	// the shape the next product's name starts with. Boundary checks are done
	// manually because RE2's \b is ASCII-only and misfires on å/ä/ö.
	trailingNameWordRe = regexp.MustCompile(`[A-ZÅÄÖ][a-zåäö]{4,}`)
)

// ParseCatalog parses the ordered page texts of a flipbook catalog into
// product rows. When the catalog has more than two pages the first and last
// are dropped: cover and back pages are structurally different from content
// pages and never hold product tables.
//
// The returned rows are in first-encountered document order and may contain
// duplicate article numbers; callers dedupe with DedupeRows before export.
func ParseCatalog(pages []string) []ProductRow {
	content := pages
	if len(pages) > 2 {
		content = pages[1 : len(pages)-1]
	}
	fullText := strings.Join(content, " ")

	sections := strings.Split(fullText, sectionMarker)

	var rows []ProductRow

	// lastGoodName carries the most recent usable product name across
	// sections, so rows in a table whose own heading was unreadable still
	// get attributed to the right product.
	lastGoodName := ""

	for i := 0; i < len(sections)-1; i++ {
		dataSection := sections[i+1]

		matches := articleNumberRe.FindAllStringSubmatchIndex(dataSection, -1)
		if len(matches) == 0 {
			continue
		}

		name := sectionProductName(sections[i])
		if utf8.RuneCountInString(name) < minUsableNameLen {
			name = lastGoodName
		} else {
			lastGoodName = name
		}

		columnHeaders := collapseWhitespace(dataSection[:matches[0][0]])

		for j, m := range matches {
			specEnd := len(dataSection)
			if j+1 < len(matches) {
				specEnd = matches[j+1][0]
			}

			specText := collapseWhitespace(dataSection[m[1]:specEnd])
			specText = strings.TrimSpace(specFillerRe.ReplaceAllString(specText, ""))

			// The last row in a section often has the next product's
			// name and description appended. Trim from the first word
			// that looks like the start of a new product name, as long
			// as real spec data remains before it.
			if j+1 == len(matches) && utf8.RuneCountInString(specText) > maxTrailingSpecLen {
				if idx := trailingNameStart(specText); idx >= 0 {
					candidate := strings.TrimSpace(specText[:idx])
					if len(candidate) >= 2 {
						specText = candidate
					}
				}
			}

			rows = append(rows, ProductRow{
				ArticleNumber: dataSection[m[2]:m[3]],
				Name:          name,
				ColumnHeaders: columnHeaders,
				SpecText:      specText,
			})
		}
	}

	return rows
}

// sectionProductName extracts and cleans the product name from the text
// following the last article number in the section (the whole section when
// it holds no article numbers).
func sectionProductName(section string) string {
	lastNumEnd := 0
	for _, loc := range articleNumberRe.FindAllStringIndex(section, -1) {
		lastNumEnd = loc[1]
	}
	return CleanProductName(section[lastNumEnd:])
}

// trailingNameStart returns the byte offset of the first standalone
// capitalized word of at least 5 letters, or -1.
func trailingNameStart(s string) int {
	for _, loc := range trailingNameWordRe.FindAllStringIndex(s, -1) {
		start, end := loc[0], loc[1]
		if start > 0 {
			r, _ := utf8.DecodeLastRuneInString(s[:start])
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				continue
			}
		}
		if end < len(s) {
			r, _ := utf8.DecodeRuneInString(s[end:])
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				continue
			}
		}
		return start
	}
	return -1
}

// collapseWhitespace trims s and collapses every whitespace run to one space.
func collapseWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}
