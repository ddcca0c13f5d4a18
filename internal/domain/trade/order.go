package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/shared"
)

// OrderStatus represents the lifecycle state of an order. The legacy feed
// only exposes completed historical orders, so every migrated order lands
// in the terminal state.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
)

// Address holds the address fields attached to an order
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

// Order is a historical order migrated from the legacy storefront, keyed by
// the legacy order number. Orders are insert-only: once synced they are
// never updated. OrderDate is opaque legacy display text, not a parsed date.
type Order struct {
	shared.BaseAggregateRoot
	LegacyOrderNumber string
	ProfileID         *uuid.UUID
	CustomerEmail     string
	TransactionID     string
	OrderDate         string
	Subtotal          decimal.Decimal
	Tax               decimal.Decimal
	ShippingTotal     decimal.Decimal
	GrandTotal        decimal.Decimal
	PaymentMethod     string
	Status            OrderStatus
	BillingAddress    Address
	ShippingAddress   Address
	Items             []OrderItem
	LegacyFragment    string
}

// OrderItem is a single line on a migrated order. ProductID is nil when the
// referenced SKU no longer exists in the target catalog.
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID
	ProductID *uuid.UUID
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
	Position  int
}

// NewOrder creates a new order keyed by its legacy order number
func NewOrder(legacyOrderNumber string) (*Order, error) {
	if legacyOrderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Legacy order number cannot be empty")
	}
	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		LegacyOrderNumber: legacyOrderNumber,
		Status:            OrderStatusCompleted,
	}, nil
}

// AddItem appends a line item, preserving feed order via Position
func (o *Order) AddItem(productID *uuid.UUID, sku string, quantity int, unitPrice decimal.Decimal) {
	item := OrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    o.ID,
		ProductID:  productID,
		SKU:        sku,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Position:   len(o.Items),
	}
	o.Items = append(o.Items, item)
}

// OrderRepository is the persistence port for migrated orders.
// Create inserts the order together with its items.
type OrderRepository interface {
	ListOrderNumbers(ctx context.Context) ([]string, error)
	Create(ctx context.Context, order *Order) error
}
