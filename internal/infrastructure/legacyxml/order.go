package legacyxml

import (
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
)

// OrderRecordTag bounds one order record. The legacy platform is consistent
// about orders: always PascalCase, so splitting uses exact-case substring
// search, which also bounds CPU on multi-megabyte order feeds.
const OrderRecordTag = "Order"

// OrderRootTag is the order feed's root element
const OrderRootTag = "Orders"

// ParseOrders sanitizes a raw order feed and extracts every record that
// carries an order number.
func ParseOrders(raw string) []legacy.Order {
	doc := Sanitize(raw)
	frags := SplitBlocks(doc, OrderRecordTag)
	out := make([]legacy.Order, 0, len(frags))
	for _, frag := range frags {
		if o, ok := ParseOrder(frag); ok {
			out = append(out, o)
		}
	}
	return out
}

// ParseOrder extracts a single order record from its fragment. Totals live
// in nested blocks: tax under Totals/Tax/TaxAmount, shipping under
// Totals/ShippingTotal/Total; line items under Shipping/Products/Product.
func ParseOrder(frag string) (legacy.Order, bool) {
	number := ExtractValue(frag, "OrderNumber")
	if number == "" {
		return legacy.Order{}, false
	}

	o := legacy.Order{
		OrderNumber:   number,
		TransactionID: ExtractValue(frag, "TransactionId"),
		OrderDate:     ExtractValue(frag, "OrderDate"),
		CustomerEmail: ExtractValue(frag, "Email"),
		PaymentMethod: parsePaymentMethod(ExtractBlock(frag, "Payment")),
		RawFragment:   frag,
	}

	if totals := ExtractBlock(frag, "Totals"); totals != "" {
		o.GrandTotal = parseDecimal(ExtractValue(totals, "GrandTotal"))
		if tax := ExtractBlock(totals, "Tax"); tax != "" {
			o.Tax = parseDecimal(ExtractValue(tax, "TaxAmount"))
		}
		if shipping := ExtractBlock(totals, "ShippingTotal"); shipping != "" {
			o.ShippingTotal = parseDecimal(ExtractValue(shipping, "Total"))
		}
	}

	if billing := ExtractBlock(frag, "Billing"); billing != "" {
		o.Billing = parseAddress(ExtractBlock(billing, "Address"))
	}
	if shipping := ExtractBlock(frag, "Shipping"); shipping != "" {
		o.Shipping = parseAddress(ExtractBlock(shipping, "Address"))
		if products := ExtractBlock(shipping, "Products"); products != "" {
			for _, pf := range SplitBlocks(products, "Product") {
				item := legacy.OrderItem{
					SKU:       ExtractValue(pf, "SKU"),
					Quantity:  parseInt(ExtractValue(pf, "Quantity")),
					UnitPrice: parseDecimal(ExtractValue(pf, "UnitPrice")),
				}
				if item.SKU != "" {
					o.Items = append(o.Items, item)
				}
			}
		}
	}

	return o, true
}

// parseAddress extracts the shared address shape from an Address block
func parseAddress(block string) legacy.Address {
	if block == "" {
		return legacy.Address{}
	}
	return legacy.Address{
		FullName: ExtractValue(block, "FullName"),
		Company:  ExtractValue(block, "Company"),
		Phone:    ExtractValue(block, "Phone"),
		Street1:  ExtractValue(block, "Street1"),
		Street2:  ExtractValue(block, "Street2"),
		City:     ExtractValue(block, "City"),
		State:    ExtractValue(block, "State"),
		Zip:      ExtractValue(block, "Zip"),
		Country:  ExtractValue(block, "Country"),
	}
}

// parsePaymentMethod infers the method from which child tag is present
// under the Payment block
func parsePaymentMethod(paymentBlock string) legacy.PaymentMethod {
	switch {
	case paymentBlock == "":
		return legacy.PaymentMethodOther
	case ContainsTag(paymentBlock, "CreditCard"):
		return legacy.PaymentMethodCreditCard
	case ContainsTag(paymentBlock, "PayPalExpress"):
		return legacy.PaymentMethodPayPalExpress
	case ContainsTag(paymentBlock, "Check"):
		return legacy.PaymentMethodCheck
	case ContainsTag(paymentBlock, "PurchaseOrder"):
		return legacy.PaymentMethodPurchaseOrder
	default:
		return legacy.PaymentMethodOther
	}
}
