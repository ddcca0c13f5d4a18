package legacyxml

import (
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
)

// ProductRecordTag bounds one product record. Different legacy software
// versions emit it lowercase or PascalCase, so splitting folds case.
const ProductRecordTag = "product"

// ProductRootTag is the product feed's root element, used when re-closing
// a truncated stream.
const ProductRootTag = "products"

// ParseProducts sanitizes a raw product feed and extracts every record that
// carries the required fields. Records missing SKU or name, and records
// flagged disabled, are dropped silently.
func ParseProducts(raw string) []legacy.Product {
	doc := Sanitize(raw)
	frags := SplitBlocksFold(doc, ProductRecordTag)
	out := make([]legacy.Product, 0, len(frags))
	for _, frag := range frags {
		if p, ok := ParseProduct(frag); ok {
			out = append(out, p)
		}
	}
	return out
}

// ParseProduct extracts a single product record from its fragment. Every
// scalar is looked up under both dialect spellings, lowercase first.
func ParseProduct(frag string) (legacy.Product, bool) {
	sku := ExtractEither(frag, "sku", "SKU")
	name := ExtractEither(frag, "name", "Name")
	if sku == "" || name == "" {
		return legacy.Product{}, false
	}
	// Disabled products are not worth target storage.
	if parseFlag(ExtractEither(frag, "disabled", "Disabled")) {
		return legacy.Product{}, false
	}

	p := legacy.Product{
		SKU:               sku,
		Name:              name,
		Price:             parseDecimal(ExtractEither(frag, "price", "Price")),
		SaleAmount:        parseDecimalPtr(ExtractEither(frag, "saleamount", "SaleAmount")),
		Description:       ExtractEither(frag, "description", "Description"),
		QuantityOnHand:    parseInt(ExtractEither(frag, "quantityonhand", "QuantityOnHand")),
		LowStockThreshold: parseIntPtr(ExtractEither(frag, "lowstockthreshold", "LowStockThreshold")),
		ImageURL:          ExtractEither(frag, "image", "Image"),
		MoreImageURLs:     ExtractNumbered(frag, "moreinfoimage", legacy.MaxImageSlots),
		Weight:            parseDecimal(ExtractEither(frag, "weight", "Weight")),
		Taxable:           parseFlag(ExtractEither(frag, "taxable", "Taxable")),
		Fulfillment:       ExtractEither(frag, "fulfillment", "Fulfillment"),
		ProductID:         ExtractEither(frag, "productid", "ProductID"),
		ProductGUID:       ExtractEither(frag, "productguid", "ProductGuid"),
		GTIN:              ExtractEither(frag, "gtin", "GTIN"),
		Brand:             ExtractEither(frag, "brand", "Brand"),
		Category:          ExtractEither(frag, "category", "Category"),
		ProductType:       ExtractEither(frag, "producttype", "ProductType"),
		Availability:      ExtractEither(frag, "availability", "Availability"),
		SEOFilename:       ExtractEither(frag, "seofilename", "SeoFilename"),
		MoreInfo:          ExtractEither(frag, "moreinfo", "MoreInfo"),
		Keywords:          ExtractEither(frag, "keywords", "Keywords"),
		MinimumQuantity:   parseInt(ExtractEither(frag, "minimumquantity", "MinimumQuantity")),
		OutOfStockLimit:   parseInt(ExtractEither(frag, "outofstocklimit", "OutOfStockLimit")),
		Tags:              splitList(ExtractEither(frag, "tags", "Tags")),
		RawFragment:       frag,
	}
	return p, true
}
