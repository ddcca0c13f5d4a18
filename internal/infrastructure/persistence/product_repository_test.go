package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/catalog"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/persistence/models"
)

func newTestProduct(t *testing.T, sku, slug, name string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(sku, slug, name)
	require.NoError(t, err)
	return p
}

func TestGormProductRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new product", func(t *testing.T) {
		repo := NewGormProductRepository(newTestDB(t))

		p := newTestProduct(t, "SKU-1", "widget", "Widget")
		p.Price = decimal.RequireFromString("9.99")
		p.ImageURLs = []string{"a.jpg", "b.jpg"}
		p.Tags = []string{"new"}
		require.NoError(t, repo.Upsert(ctx, p))

		skus, err := repo.ListSKUs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"SKU-1"}, skus)
	})

	t.Run("same sku updates in place and keeps the slug", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)

		first := newTestProduct(t, "SKU-1", "widget", "Widget")
		require.NoError(t, repo.Upsert(ctx, first))

		second := newTestProduct(t, "SKU-1", "widget-renamed", "Widget Renamed")
		second.Price = decimal.RequireFromString("12.00")
		require.NoError(t, repo.Upsert(ctx, second))

		var count int64
		require.NoError(t, db.Model(&models.ProductModel{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)

		var model models.ProductModel
		require.NoError(t, db.Where("sku = ?", "SKU-1").First(&model).Error)
		assert.Equal(t, "Widget Renamed", model.Name)
		assert.Equal(t, "widget", model.Slug)
		assert.True(t, model.Price.Equal(decimal.RequireFromString("12.00")))
	})

	t.Run("slice fields survive a roundtrip", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)

		p := newTestProduct(t, "SKU-2", "gadget", "Gadget")
		p.ImageURLs = []string{"main.jpg", "alt.jpg"}
		p.Tags = []string{"sale", "featured"}
		require.NoError(t, repo.Upsert(ctx, p))

		var model models.ProductModel
		require.NoError(t, db.Where("sku = ?", "SKU-2").First(&model).Error)
		got := model.ToDomain()
		assert.Equal(t, []string{"main.jpg", "alt.jpg"}, got.ImageURLs)
		assert.Equal(t, []string{"sale", "featured"}, got.Tags)
	})
}

func TestGormProductRepository_SKUIndex(t *testing.T) {
	ctx := context.Background()
	repo := NewGormProductRepository(newTestDB(t))

	a := newTestProduct(t, "A", "a", "A")
	b := newTestProduct(t, "B", "b", "B")
	require.NoError(t, repo.Upsert(ctx, a))
	require.NoError(t, repo.Upsert(ctx, b))

	index, err := repo.SKUIndex(ctx)
	require.NoError(t, err)
	require.Len(t, index, 2)
	assert.Equal(t, a.ID, index["A"])
	assert.Equal(t, b.ID, index["B"])
}

func TestGormProductRepository_ListSlugs(t *testing.T) {
	ctx := context.Background()
	repo := NewGormProductRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(ctx, newTestProduct(t, "A", "thing", "Thing")))
	require.NoError(t, repo.Upsert(ctx, newTestProduct(t, "B", "thing-1", "Thing")))

	slugs, err := repo.ListSlugs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"thing", "thing-1"}, slugs)
}
