package legacy

import "github.com/shopspring/decimal"

// PaymentMethod identifies how a legacy order was paid. It is inferred from
// which child tag is present under the order's Payment block.
type PaymentMethod string

const (
	PaymentMethodCreditCard    PaymentMethod = "credit_card"
	PaymentMethodPayPalExpress PaymentMethod = "paypal_express"
	PaymentMethodCheck         PaymentMethod = "check"
	PaymentMethodPurchaseOrder PaymentMethod = "purchase_order"
	PaymentMethodOther         PaymentMethod = "other"
)

// MaxImageSlots is the number of numbered additional-image fields a legacy
// product record can carry (moreinfoimage1..moreinfoimage20).
const MaxImageSlots = 20

// Product is a product record extracted from the legacy XML feed.
// Records missing SKU or name, or flagged disabled, are discarded by the
// parser and never reach the transformer.
type Product struct {
	SKU               string
	Name              string
	Price             decimal.Decimal
	SaleAmount        *decimal.Decimal
	Description       string
	QuantityOnHand    int
	LowStockThreshold *int
	ImageURL          string
	MoreImageURLs     []string
	Weight            decimal.Decimal
	Taxable           bool
	Fulfillment       string
	ProductID         string
	ProductGUID       string
	GTIN              string
	Brand             string
	Category          string
	ProductType       string
	Disabled          bool
	Availability      string
	SEOFilename       string
	MoreInfo          string
	Keywords          string
	MinimumQuantity   int
	OutOfStockLimit   int
	Tags              []string
	RawFragment       string
}

// Customer is a customer record extracted from the legacy XML feed.
// Email doubles as the idempotency key; the legacy platform has no separate
// stable customer identifier.
type Customer struct {
	Email       string
	FirstName   string
	LastName    string
	Billing     Address
	RawFragment string
}

// Address holds the address fields shared by billing and shipping blocks.
type Address struct {
	FullName string
	Company  string
	Phone    string
	Street1  string
	Street2  string
	City     string
	State    string
	Zip      string
	Country  string
}

// Order is an order record extracted from the legacy XML feed.
// OrderDate is free text in the legacy display format, passed through
// unparsed.
type Order struct {
	OrderNumber   string
	TransactionID string
	OrderDate     string
	GrandTotal    decimal.Decimal
	Tax           decimal.Decimal
	ShippingTotal decimal.Decimal
	CustomerEmail string
	Billing       Address
	Shipping      Address
	PaymentMethod PaymentMethod
	Items         []OrderItem
	RawFragment   string
}

// OrderItem is a single line item on a legacy order.
type OrderItem struct {
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
}
