package stores_test

import (
	"context"
	"testing"
	"time"

	"marketplace-analytics/internal/models"
	"marketplace-analytics/internal/shared/filestorages"
	"marketplace-analytics/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStorage(t *testing.T) filestorages.FileStorage {
	t.Helper()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return fileStorage
}

func TestFileUserAnalyticsStore_GetMissingReturnsEmptyDefault(t *testing.T) {
	t.Parallel()

	store := stores.NewFileUserAnalyticsStore(newFileStorage(t))

	user, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	assert.True(t, user.IsNew())
	assert.Empty(t, user.Actions)
}

func TestFileUserAnalyticsStore_UpsertThenGet(t *testing.T) {
	t.Parallel()

	store := stores.NewFileUserAnalyticsStore(newFileStorage(t))
	ctx := context.Background()

	visited := time.Date(2026, 8, 30, 14, 2, 11, 0, time.UTC)
	user := &models.UserAnalytics{
		UserID:      "u1",
		LastVisited: visited,
		Actions: []models.TrackedAction{
			{ProductID: "p1", ShopID: "s1", Action: models.ActionProductView, Timestamp: visited},
		},
		Country: "DE",
		Device:  "mobile",
	}

	require.NoError(t, store.Upsert(ctx, user))

	loaded, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user, loaded)
	assert.False(t, loaded.IsNew())
}

func TestFileUserAnalyticsStore_UpsertReplacesDocument(t *testing.T) {
	t.Parallel()

	store := stores.NewFileUserAnalyticsStore(newFileStorage(t))
	ctx := context.Background()

	first := models.NewEmptyUserAnalytics("u1")
	first.LastVisited = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	first.Country = "DE"
	require.NoError(t, store.Upsert(ctx, first))

	second := models.NewEmptyUserAnalytics("u1")
	second.LastVisited = time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC)
	require.NoError(t, store.Upsert(ctx, second))

	loaded, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second.LastVisited, loaded.LastVisited)
	assert.Empty(t, loaded.Country, "replace semantics, not merge")
}

func TestFileProductAnalyticsStore_GetMissingReturnsEmptyDefault(t *testing.T) {
	t.Parallel()

	store := stores.NewFileProductAnalyticsStore(newFileStorage(t))

	product, err := store.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ProductID)
	assert.True(t, product.IsNew())
	assert.Zero(t, product.Views)
}

func TestFileProductAnalyticsStore_UpsertThenGet(t *testing.T) {
	t.Parallel()

	store := stores.NewFileProductAnalyticsStore(newFileStorage(t))
	ctx := context.Background()

	product := &models.ProductAnalytics{
		ProductID:    "p1",
		ShopID:       "s1",
		Views:        12,
		CartAdds:     3,
		WishlistAdds: 2,
		Purchases:    1,
		LastViewedAt: time.Date(2026, 8, 30, 14, 2, 11, 0, time.UTC),
	}

	require.NoError(t, store.Upsert(ctx, product))

	loaded, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, product, loaded)
}

func TestFileProductAnalyticsStore_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	store := stores.NewFileProductAnalyticsStore(newFileStorage(t))
	ctx := context.Background()

	p1 := models.NewEmptyProductAnalytics("p1")
	p1.Views = 1
	p1.LastViewedAt = time.Now().UTC()
	require.NoError(t, store.Upsert(ctx, p1))

	p2, err := store.Get(ctx, "p2")
	require.NoError(t, err)
	assert.True(t, p2.IsNew())
}
