package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/catalog"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/persistence/models"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)

// ListSKUs returns every product SKU in the catalog
func (r *GormProductRepository) ListSKUs(ctx context.Context) ([]string, error) {
	var skus []string
	if err := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Pluck("sku", &skus).Error; err != nil {
		return nil, err
	}
	return skus, nil
}

// ListSlugs returns every product slug in the catalog
func (r *GormProductRepository) ListSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	if err := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}

// SKUIndex returns a sku -> product ID map for order item resolution
func (r *GormProductRepository) SKUIndex(ctx context.Context) (map[string]uuid.UUID, error) {
	var rows []struct {
		SKU string
		ID  uuid.UUID
	}
	if err := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Select("sku", "id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	index := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		index[row.SKU] = row.ID
	}
	return index, nil
}

// Upsert inserts the product or, when its SKU already exists, updates the
// existing row in place. The slug is not part of the update set; published
// URLs stay stable across re-syncs.
func (r *GormProductRepository) Upsert(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "price", "sale_price",
				"stock_quantity", "low_stock_threshold", "stock_status",
				"image_urls", "weight", "taxable", "fulfillment",
				"legacy_product_id", "legacy_product_guid", "gtin",
				"brand", "category", "product_type", "seo_filename",
				"more_info_html", "search_keywords", "min_order_quantity",
				"out_of_stock_limit", "tags", "legacy_fragment",
				"updated_at", "version",
			}),
		}).
		Create(model).Error
}
