package buddy

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// flipbook viewers whose static HTML lacks the embedded page text.
type Fetcher interface {
	// Fetch retrieves the HTML for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// PageTextExtractor pulls the per-page text array out of catalog HTML.
//
// Flipbook viewers embed the full text of every page as a JSON array in a
// script block; implementations locate and decode it. A document that does
// not carry the embedded array is an EINVALID error, which aborts the run.
type PageTextExtractor interface {
	// ExtractPageTexts returns one string per catalog page, in page order.
	ExtractPageTexts(html string) ([]string, error)
}
