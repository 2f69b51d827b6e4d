package excelize_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	buddy "github.com/LukasGLars/construction-buddy"
	buddyexcelize "github.com/LukasGLars/construction-buddy/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteRows(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows with fixed column widths", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "katalog.xlsx")
		writer := buddyexcelize.NewWriter(path)

		rows := []buddy.ProductRow{
			{ArticleNumber: "1234567", Name: "Grenuttag", ColumnHeaders: "Färg", SpecText: "vit"},
			{ArticleNumber: "7654321", Name: "Skarvsladd", ColumnHeaders: "Färg", SpecText: "svart"},
		}

		require.NoError(t, writer.WriteRows(context.Background(), rows))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		got, err := f.GetRows(buddyexcelize.SheetName)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"artikelnummer", "benämning", "kolumnrubriker", "specifikationer"}, got[0])
		assert.Equal(t, []string{"1234567", "Grenuttag", "Färg", "vit"}, got[1])
		assert.Equal(t, []string{"7654321", "Skarvsladd", "Färg", "svart"}, got[2])

		width, err := f.GetColWidth(buddyexcelize.SheetName, "B")
		require.NoError(t, err)
		assert.InDelta(t, 60.0, width, 0.01)
	})

	t.Run("rejects rows with malformed article numbers", func(t *testing.T) {
		t.Parallel()

		writer := buddyexcelize.NewWriter(filepath.Join(t.TempDir(), "katalog.xlsx"))

		err := writer.WriteRows(context.Background(), []buddy.ProductRow{{ArticleNumber: "x"}})
		require.Error(t, err)
		assert.Equal(t, buddy.EINVALID, buddy.ErrorCode(err))
	})
}
