package models

import (
	"github.com/shopspring/decimal"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/catalog"
)

// ProductModel is the persistence model for the catalog Product aggregate
type ProductModel struct {
	AggregateModel
	SKU               string              `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug              string              `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name              string              `gorm:"type:varchar(255);not null"`
	Description       string              `gorm:"type:text"`
	Price             decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	SalePrice         *decimal.Decimal    `gorm:"type:decimal(12,2)"`
	StockQuantity     int                 `gorm:"not null;default:0"`
	LowStockThreshold *int
	StockStatus       catalog.StockStatus `gorm:"type:varchar(20);not null;default:'out_of_stock'"`
	ImageURLs         string              `gorm:"type:jsonb;default:'[]'"`
	Weight            decimal.Decimal     `gorm:"type:decimal(10,3);not null;default:0"`
	Taxable           bool                `gorm:"not null;default:false"`
	Fulfillment       string              `gorm:"type:varchar(100)"`
	LegacyProductID   string              `gorm:"type:varchar(100);index"`
	LegacyProductGUID string              `gorm:"type:varchar(100)"`
	GTIN              string              `gorm:"type:varchar(50)"`
	Brand             string              `gorm:"type:varchar(255)"`
	Category          string              `gorm:"type:varchar(255)"`
	ProductType       string              `gorm:"type:varchar(100)"`
	SEOFilename       string              `gorm:"type:varchar(255)"`
	MoreInfoHTML      string              `gorm:"type:text"`
	SearchKeywords    string              `gorm:"type:text"`
	MinOrderQuantity  int                 `gorm:"not null;default:0"`
	OutOfStockLimit   int                 `gorm:"not null;default:0"`
	Tags              string              `gorm:"type:jsonb;default:'[]'"`
	LegacyFragment    string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product aggregate
func (m *ProductModel) ToDomain() *catalog.Product {
	p := &catalog.Product{
		SKU:               m.SKU,
		Slug:              m.Slug,
		Name:              m.Name,
		Description:       m.Description,
		Price:             m.Price,
		SalePrice:         m.SalePrice,
		StockQuantity:     m.StockQuantity,
		LowStockThreshold: m.LowStockThreshold,
		StockStatus:       m.StockStatus,
		ImageURLs:         unmarshalStrings(m.ImageURLs),
		Weight:            m.Weight,
		Taxable:           m.Taxable,
		Fulfillment:       m.Fulfillment,
		LegacyProductID:   m.LegacyProductID,
		LegacyProductGUID: m.LegacyProductGUID,
		GTIN:              m.GTIN,
		Brand:             m.Brand,
		Category:          m.Category,
		ProductType:       m.ProductType,
		SEOFilename:       m.SEOFilename,
		MoreInfoHTML:      m.MoreInfoHTML,
		SearchKeywords:    m.SearchKeywords,
		MinOrderQuantity:  m.MinOrderQuantity,
		OutOfStockLimit:   m.OutOfStockLimit,
		Tags:              unmarshalStrings(m.Tags),
		LegacyFragment:    m.LegacyFragment,
	}
	m.PopulateAggregateRoot(&p.BaseAggregateRoot)
	return p
}

// FromDomain populates the persistence model from a domain Product aggregate
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.SKU = p.SKU
	m.Slug = p.Slug
	m.Name = p.Name
	m.Description = p.Description
	m.Price = p.Price
	m.SalePrice = p.SalePrice
	m.StockQuantity = p.StockQuantity
	m.LowStockThreshold = p.LowStockThreshold
	m.StockStatus = p.StockStatus
	m.ImageURLs = marshalStrings(p.ImageURLs)
	m.Weight = p.Weight
	m.Taxable = p.Taxable
	m.Fulfillment = p.Fulfillment
	m.LegacyProductID = p.LegacyProductID
	m.LegacyProductGUID = p.LegacyProductGUID
	m.GTIN = p.GTIN
	m.Brand = p.Brand
	m.Category = p.Category
	m.ProductType = p.ProductType
	m.SEOFilename = p.SEOFilename
	m.MoreInfoHTML = p.MoreInfoHTML
	m.SearchKeywords = p.SearchKeywords
	m.MinOrderQuantity = p.MinOrderQuantity
	m.OutOfStockLimit = p.OutOfStockLimit
	m.Tags = marshalStrings(p.Tags)
	m.LegacyFragment = p.LegacyFragment
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
