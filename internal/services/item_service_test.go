package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahaavila/e-colect/internal/repositories"
)

func TestListItemsService(t *testing.T) {
	ctx := context.Background()

	t.Run("returns seeded items with image urls", func(t *testing.T) {
		svc := NewItemService(repositories.NewItemRepository(newTestDB(t)), testAssetBaseURL)

		items, err := svc.ListItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 6)

		assert.Equal(t, "Lâmpadas", items[0].Title)
		assert.Equal(t, "http://localhost:3333/uploads/lampadas.svg", items[0].ImageURL)
		for _, item := range items {
			assert.NotContains(t, strings.TrimPrefix(item.ImageURL, "http://"), "//")
		}
	})

	t.Run("base url without trailing slash still joins cleanly", func(t *testing.T) {
		svc := NewItemService(repositories.NewItemRepository(newTestDB(t)), "http://assets.ecolect.com")

		items, err := svc.ListItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, "http://assets.ecolect.com/lampadas.svg", items[0].ImageURL)
	})
}

func TestCreateItemService(t *testing.T) {
	svc := NewItemService(repositories.NewItemRepository(newTestDB(t)), testAssetBaseURL)

	item, err := svc.CreateItem(context.Background(), "Vidro", "vidro.svg")
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "Vidro", item.Title)
	assert.Equal(t, "http://localhost:3333/uploads/vidro.svg", item.ImageURL)
}
