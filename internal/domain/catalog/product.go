package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/shared"
)

// StockStatus represents the sellable state of a product
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
	StockStatusPreOrder   StockStatus = "pre_order"
)

// IsValid checks if the stock status is valid
func (s StockStatus) IsValid() bool {
	switch s {
	case StockStatusInStock, StockStatusOutOfStock, StockStatusPreOrder:
		return true
	}
	return false
}

// Product is a catalog product migrated from the legacy storefront.
// SKU and Slug are both unique across the catalog.
type Product struct {
	shared.BaseAggregateRoot
	SKU               string
	Slug              string
	Name              string
	Description       string
	Price             decimal.Decimal
	SalePrice         *decimal.Decimal
	StockQuantity     int
	LowStockThreshold *int
	StockStatus       StockStatus
	ImageURLs         []string
	Weight            decimal.Decimal
	Taxable           bool
	Fulfillment       string
	LegacyProductID   string
	LegacyProductGUID string
	GTIN              string
	Brand             string
	Category          string
	ProductType       string
	SEOFilename       string
	MoreInfoHTML      string
	SearchKeywords    string
	MinOrderQuantity  int
	OutOfStockLimit   int
	Tags              []string
	LegacyFragment    string
}

// NewProduct creates a new product with the required identity fields
func NewProduct(sku, slug, name string) (*Product, error) {
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               sku,
		Slug:              slug,
		Name:              name,
		StockStatus:       StockStatusOutOfStock,
	}, nil
}

// ProductRepository is the persistence port for catalog products.
// Upsert keys on SKU, so re-running a sync updates in place.
type ProductRepository interface {
	ListSKUs(ctx context.Context) ([]string, error)
	ListSlugs(ctx context.Context) ([]string, error)
	// SKUIndex returns a sku -> product ID map for order item resolution.
	SKUIndex(ctx context.Context) (map[string]uuid.UUID, error)
	Upsert(ctx context.Context, product *Product) error
}
