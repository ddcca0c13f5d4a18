package syncapp

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/catalog"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/profile"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/trade"
)

// legacyCustomerPlaceholder names profiles whose source record carries
// neither a first nor a last name
const legacyCustomerPlaceholder = "Legacy Customer"

// transformProduct converts a legacy product record into a catalog product.
// The slug is the deterministic base form; collision suffixes are the
// orchestrator's job.
func transformProduct(rec legacy.Product) (*catalog.Product, error) {
	p, err := catalog.NewProduct(rec.SKU, catalog.GenerateSlug(rec.Name), rec.Name)
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, 1+len(rec.MoreImageURLs))
	if rec.ImageURL != "" {
		images = append(images, rec.ImageURL)
	}
	images = append(images, rec.MoreImageURLs...)

	p.Description = rec.Description
	p.Price = rec.Price
	p.SalePrice = rec.SaleAmount
	p.StockQuantity = rec.QuantityOnHand
	p.LowStockThreshold = rec.LowStockThreshold
	p.StockStatus = deriveStockStatus(rec)
	p.ImageURLs = images
	p.Weight = rec.Weight
	p.Taxable = rec.Taxable
	p.Fulfillment = rec.Fulfillment
	p.LegacyProductID = rec.ProductID
	p.LegacyProductGUID = rec.ProductGUID
	p.GTIN = rec.GTIN
	p.Brand = rec.Brand
	p.Category = rec.Category
	p.ProductType = rec.ProductType
	p.SEOFilename = rec.SEOFilename
	p.MoreInfoHTML = rec.MoreInfo
	p.SearchKeywords = rec.Keywords
	p.MinOrderQuantity = rec.MinimumQuantity
	p.OutOfStockLimit = rec.OutOfStockLimit
	p.Tags = rec.Tags
	p.LegacyFragment = rec.RawFragment
	return p, nil
}

// deriveStockStatus resolves the sellable state by priority: disabled wins,
// then on-hand quantity, then the availability text.
func deriveStockStatus(rec legacy.Product) catalog.StockStatus {
	if rec.Disabled {
		return catalog.StockStatusOutOfStock
	}
	if rec.QuantityOnHand > 0 {
		return catalog.StockStatusInStock
	}
	availability := strings.ToLower(strings.TrimSpace(rec.Availability))
	if availability == "in stock" {
		return catalog.StockStatusInStock
	}
	if strings.Contains(availability, "pre") {
		return catalog.StockStatusPreOrder
	}
	return catalog.StockStatusOutOfStock
}

// transformCustomer converts a legacy customer record into a profile. The
// email doubles as the legacy identifier since the source system has no
// separate stable customer id.
func transformCustomer(rec legacy.Customer) (*profile.Profile, error) {
	fullName := strings.TrimSpace(strings.TrimSpace(rec.FirstName) + " " + strings.TrimSpace(rec.LastName))
	if fullName == "" {
		fullName = legacyCustomerPlaceholder
	}

	p, err := profile.NewProfile(rec.Email, fullName)
	if err != nil {
		return nil, err
	}
	p.FirstName = rec.FirstName
	p.LastName = rec.LastName
	p.Company = rec.Billing.Company
	p.Phone = rec.Billing.Phone
	p.Street1 = rec.Billing.Street1
	p.Street2 = rec.Billing.Street2
	p.City = rec.Billing.City
	p.State = rec.Billing.State
	p.Zip = rec.Billing.Zip
	p.Country = rec.Billing.Country
	p.LegacyID = p.Email
	p.IsLegacyImport = true
	return p, nil
}

// transformOrder converts a legacy order record into a trade order,
// resolving the owning profile and each line's product through the
// precomputed indexes. An unresolvable reference stays nil; it never blocks
// the order itself.
func transformOrder(
	rec legacy.Order,
	profileIndex map[string]uuid.UUID,
	skuIndex map[string]uuid.UUID,
) (*trade.Order, error) {
	o, err := trade.NewOrder(rec.OrderNumber)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(rec.CustomerEmail))
	if id, ok := profileIndex[email]; ok {
		o.ProfileID = &id
	}

	subtotal := rec.GrandTotal.Sub(rec.Tax).Sub(rec.ShippingTotal)
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}

	o.CustomerEmail = email
	o.TransactionID = rec.TransactionID
	o.OrderDate = rec.OrderDate
	o.Subtotal = subtotal
	o.Tax = rec.Tax
	o.ShippingTotal = rec.ShippingTotal
	o.GrandTotal = rec.GrandTotal
	o.PaymentMethod = string(rec.PaymentMethod)
	o.BillingAddress = transformAddress(rec.Billing)
	o.ShippingAddress = transformAddress(rec.Shipping)
	o.LegacyFragment = rec.RawFragment

	for _, item := range rec.Items {
		var productID *uuid.UUID
		if id, ok := skuIndex[item.SKU]; ok {
			productID = &id
		}
		o.AddItem(productID, item.SKU, item.Quantity, item.UnitPrice)
	}
	return o, nil
}

func transformAddress(a legacy.Address) trade.Address {
	return trade.Address{
		FullName: a.FullName,
		Company:  a.Company,
		Phone:    a.Phone,
		Street1:  a.Street1,
		Street2:  a.Street2,
		City:     a.City,
		State:    a.State,
		Zip:      a.Zip,
		Country:  a.Country,
	}
}

// chunk partitions records into fixed-size batches to bound in-memory work
// per iteration. Batches have no transactional meaning; every record is
// still processed and reported on individually.
func chunk[T any](records []T, size int) [][]T {
	if size <= 0 || len(records) == 0 {
		if len(records) == 0 {
			return nil
		}
		return [][]T{records}
	}
	batches := make([][]T, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		batches = append(batches, records[start:end])
	}
	return batches
}
