package goquery_test

import (
	"testing"

	buddy "github.com/LukasGLars/construction-buddy"
	buddygoquery "github.com/LukasGLars/construction-buddy/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageTextExtractor_ExtractPageTexts(t *testing.T) {
	t.Parallel()

	t.Run("extracts pages from the settings script", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script>var analytics = {};</script>
<script>window.staticSettings = {"title":"EMV-EL","pageTexts":["omslag","Produkt Artikel Nr 1234567 5 m","baksida"],"pageCount":3};</script>
</head><body></body></html>`

		extractor := buddygoquery.NewPageTextExtractor()

		pages, err := extractor.ExtractPageTexts(html)
		require.NoError(t, err)
		require.Len(t, pages, 3)
		assert.Equal(t, "omslag", pages[0])
		assert.Equal(t, "Produkt Artikel Nr 1234567 5 m", pages[1])
		assert.Equal(t, "baksida", pages[2])
	})

	t.Run("handles pageTexts as the last object key", func(t *testing.T) {
		t.Parallel()

		html := `<script>var s = {"pageTexts": ["a", "b"]};</script>`

		extractor := buddygoquery.NewPageTextExtractor()

		pages, err := extractor.ExtractPageTexts(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, pages)
	})

	t.Run("preserves escaped characters in page text", func(t *testing.T) {
		t.Parallel()

		html := `<script>var s = {"pageTexts": ["röd tråd \"citat\""], "x": 1};</script>`

		extractor := buddygoquery.NewPageTextExtractor()

		pages, err := extractor.ExtractPageTexts(html)
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, `röd tråd "citat"`, pages[0])
	})

	t.Run("missing pageTexts is an invalid-document error", func(t *testing.T) {
		t.Parallel()

		extractor := buddygoquery.NewPageTextExtractor()

		_, err := extractor.ExtractPageTexts("<html><body>ingen katalog</body></html>")
		require.Error(t, err)
		assert.Equal(t, buddy.EINVALID, buddy.ErrorCode(err))
	})

	t.Run("malformed array is an invalid-document error", func(t *testing.T) {
		t.Parallel()

		html := `<script>var s = {"pageTexts": [1, 2, 3], "x": 1};</script>`

		extractor := buddygoquery.NewPageTextExtractor()

		_, err := extractor.ExtractPageTexts(html)
		require.Error(t, err)
		assert.Equal(t, buddy.EINVALID, buddy.ErrorCode(err))
	})
}
