package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	buddy "github.com/LukasGLars/construction-buddy"
	main "github.com/LukasGLars/construction-buddy/cmd/buddy"
	"github.com/LukasGLars/construction-buddy/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists items with number, name, and price", func(t *testing.T) {
		t.Parallel()

		items := &mock.ItemService{
			SearchItemsFn: func(_ context.Context, query string) ([]*buddy.Item, error) {
				assert.Equal(t, "", query)
				return []*buddy.Item{
					{ItemNo: "1234567", Name: "Kabel EKK 3x1,5", Category: "EL", Unit: "m", Price: 12.50},
					{Name: "Elektriker timpris", Category: "ARBETE", Unit: "tim", Price: 650},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Items:  items,
		}

		cmd := &main.ItemsCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "1234567")
		assert.Contains(t, output, "Kabel EKK 3x1,5")
		assert.Contains(t, output, "12.50")
		assert.Contains(t, output, "Elektriker timpris")
		assert.Contains(t, output, "650.00")
	})

	t.Run("passes query through to the service", func(t *testing.T) {
		t.Parallel()

		items := &mock.ItemService{
			SearchItemsFn: func(_ context.Context, query string) ([]*buddy.Item, error) {
				assert.Equal(t, "kabel", query)
				return []*buddy.Item{{ItemNo: "1234567", Name: "Kabel"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Items:  items,
		}

		cmd := &main.ItemsCmd{Query: "kabel"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Kabel")
	})

	t.Run("shows helpful message when no items exist", func(t *testing.T) {
		t.Parallel()

		items := &mock.ItemService{
			SearchItemsFn: func(_ context.Context, _ string) ([]*buddy.Item, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Items:  items,
		}

		cmd := &main.ItemsCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No items")
	})

	t.Run("returns error when search fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		items := &mock.ItemService{
			SearchItemsFn: func(_ context.Context, _ string) ([]*buddy.Item, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Items:  items,
		}

		cmd := &main.ItemsCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
