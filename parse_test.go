package buddy_test

import (
	"testing"

	buddy "github.com/LukasGLars/construction-buddy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	t.Run("emits a row per article number with headers and specs", func(t *testing.T) {
		t.Parallel()

		pages := []string{
			"Intro 1234567 FooWidget beskrivning Artikel Nr Size Color 1234567A 10 mm red Artikel Nr slut",
		}

		rows := buddy.ParseCatalog(pages)

		require.Len(t, rows, 1)
		assert.Equal(t, "1234567", rows[0].ArticleNumber, "suffix letter must be discarded")
		assert.Equal(t, "Size Color", rows[0].ColumnHeaders)
		assert.Equal(t, "10 mm red", rows[0].SpecText)
	})

	t.Run("drops cover and back pages when more than two pages exist", func(t *testing.T) {
		t.Parallel()

		pages := []string{
			"OMSLAG Artikel Nr 9999999 fel",
			"Produktfamilj Kabelvinda Artikel Nr Längd Färg 1111111 5 m svart 2222222 10 m vit 3333333 15 m grå",
			"BAKSIDA",
		}

		rows := buddy.ParseCatalog(pages)

		require.Len(t, rows, 3)
		for _, row := range rows {
			assert.Equal(t, "Kabelvinda", row.Name)
			assert.Equal(t, "Längd Färg", row.ColumnHeaders)
			assert.NotEqual(t, "9999999", row.ArticleNumber)
		}
		assert.Equal(t, "5 m svart", rows[0].SpecText)
		assert.Equal(t, "10 m vit", rows[1].SpecText)
		assert.Equal(t, "15 m grå", rows[2].SpecText)
	})

	t.Run("skips pairs without article numbers and keeps the running name", func(t *testing.T) {
		t.Parallel()

		pages := []string{
			"Snygg Produktserie Artikel Nr Färg 1234567 svart Artikel Nr inga rader här Artikel Nr 99 Artikel Nr Längd 7654321 2 m",
		}

		rows := buddy.ParseCatalog(pages)

		require.Len(t, rows, 2)
		assert.Equal(t, "1234567", rows[0].ArticleNumber)
		// The sections between the two real tables yield no usable name,
		// so the first product's name carries over.
		assert.Equal(t, rows[0].Name, rows[1].Name)
		assert.Equal(t, "7654321", rows[1].ArticleNumber)
		assert.Equal(t, "Längd", rows[1].ColumnHeaders)
		assert.Equal(t, "2 m", rows[1].SpecText)
	})

	t.Run("back-to-back article numbers yield empty spec text", func(t *testing.T) {
		t.Parallel()

		pages := []string{"Produkt Artikel Nr Nr 1234567 7654321 slut"}

		rows := buddy.ParseCatalog(pages)

		require.Len(t, rows, 2)
		assert.Empty(t, rows[0].SpecText)
		assert.Equal(t, "slut", rows[1].SpecText)
	})

	t.Run("strips boilerplate from spec text", func(t *testing.T) {
		t.Parallel()

		pages := []string{
			"Produkt Artikel Nr Längd 1234567 5 m 12 Läs mer om produkterna på ahlsell.se nästa produkt",
		}

		rows := buddy.ParseCatalog(pages)

		require.Len(t, rows, 1)
		assert.Equal(t, "5 m", rows[0].SpecText)
	})

	t.Run("trims appended next-product text from the last row in a section", func(t *testing.T) {
		t.Parallel()

		pages := []string{
			"Produkt Artikel Nr Längd Färg 1234567 2 m vit och grå med jordade uttag Skarvsladden i detalj",
		}

		rows := buddy.ParseCatalog(pages)

		require.Len(t, rows, 1)
		assert.Equal(t, "2 m vit och grå med jordade uttag", rows[0].SpecText)
	})

	t.Run("all emitted article numbers are exactly seven digits", func(t *testing.T) {
		t.Parallel()

		pages := []string{
			"Produkt 123456 Artikel Nr Nr 1234567B 12345678 7654321 slut Artikel Nr",
		}

		rows := buddy.ParseCatalog(pages)

		for _, row := range rows {
			assert.Regexp(t, `^\d{7}$`, row.ArticleNumber)
			assert.NoError(t, row.Validate())
		}
	})

	t.Run("empty document yields no rows", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, buddy.ParseCatalog(nil))
		assert.Empty(t, buddy.ParseCatalog([]string{"ingen markör här"}))
	})
}
