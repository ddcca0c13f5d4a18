package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/trade"
)

// OrderModel is the persistence model for the migrated Order aggregate
type OrderModel struct {
	AggregateModel
	LegacyOrderNumber string            `gorm:"type:varchar(100);not null;uniqueIndex"`
	ProfileID         *uuid.UUID        `gorm:"type:uuid;index"`
	CustomerEmail     string            `gorm:"type:varchar(255);index"`
	TransactionID     string            `gorm:"type:varchar(100)"`
	OrderDate         string            `gorm:"type:varchar(50)"`
	Subtotal          decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0"`
	Tax               decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0"`
	ShippingTotal     decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0"`
	GrandTotal        decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0"`
	PaymentMethod     string            `gorm:"type:varchar(50)"`
	Status            trade.OrderStatus `gorm:"type:varchar(20);not null;default:'completed'"`

	BillingFullName string `gorm:"type:varchar(255)"`
	BillingCompany  string `gorm:"type:varchar(255)"`
	BillingPhone    string `gorm:"type:varchar(50)"`
	BillingStreet1  string `gorm:"type:varchar(255)"`
	BillingStreet2  string `gorm:"type:varchar(255)"`
	BillingCity     string `gorm:"type:varchar(100)"`
	BillingState    string `gorm:"type:varchar(100)"`
	BillingZip      string `gorm:"type:varchar(20)"`
	BillingCountry  string `gorm:"type:varchar(100)"`

	ShippingFullName string `gorm:"type:varchar(255)"`
	ShippingCompany  string `gorm:"type:varchar(255)"`
	ShippingPhone    string `gorm:"type:varchar(50)"`
	ShippingStreet1  string `gorm:"type:varchar(255)"`
	ShippingStreet2  string `gorm:"type:varchar(255)"`
	ShippingCity     string `gorm:"type:varchar(100)"`
	ShippingState    string `gorm:"type:varchar(100)"`
	ShippingZip      string `gorm:"type:varchar(20)"`
	ShippingCountry  string `gorm:"type:varchar(100)"`

	LegacyFragment string           `gorm:"type:text"`
	Items          []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for one order line
type OrderItemModel struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID      `gorm:"type:uuid;index"`
	SKU       string          `gorm:"type:varchar(100);not null"`
	Quantity  int             `gorm:"not null;default:0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Position  int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order aggregate
func (m *OrderModel) ToDomain() *trade.Order {
	o := &trade.Order{
		LegacyOrderNumber: m.LegacyOrderNumber,
		ProfileID:         m.ProfileID,
		CustomerEmail:     m.CustomerEmail,
		TransactionID:     m.TransactionID,
		OrderDate:         m.OrderDate,
		Subtotal:          m.Subtotal,
		Tax:               m.Tax,
		ShippingTotal:     m.ShippingTotal,
		GrandTotal:        m.GrandTotal,
		PaymentMethod:     m.PaymentMethod,
		Status:            m.Status,
		BillingAddress: trade.Address{
			FullName: m.BillingFullName,
			Company:  m.BillingCompany,
			Phone:    m.BillingPhone,
			Street1:  m.BillingStreet1,
			Street2:  m.BillingStreet2,
			City:     m.BillingCity,
			State:    m.BillingState,
			Zip:      m.BillingZip,
			Country:  m.BillingCountry,
		},
		ShippingAddress: trade.Address{
			FullName: m.ShippingFullName,
			Company:  m.ShippingCompany,
			Phone:    m.ShippingPhone,
			Street1:  m.ShippingStreet1,
			Street2:  m.ShippingStreet2,
			City:     m.ShippingCity,
			State:    m.ShippingState,
			Zip:      m.ShippingZip,
			Country:  m.ShippingCountry,
		},
		LegacyFragment: m.LegacyFragment,
	}
	m.PopulateAggregateRoot(&o.BaseAggregateRoot)

	o.Items = make([]trade.OrderItem, len(m.Items))
	for i, im := range m.Items {
		o.Items[i] = trade.OrderItem{
			BaseEntity: im.BaseModel.ToDomain(),
			OrderID:    im.OrderID,
			ProductID:  im.ProductID,
			SKU:        im.SKU,
			Quantity:   im.Quantity,
			UnitPrice:  im.UnitPrice,
			Position:   im.Position,
		}
	}
	return o
}

// FromDomain populates the persistence model from a domain Order aggregate
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.LegacyOrderNumber = o.LegacyOrderNumber
	m.ProfileID = o.ProfileID
	m.CustomerEmail = o.CustomerEmail
	m.TransactionID = o.TransactionID
	m.OrderDate = o.OrderDate
	m.Subtotal = o.Subtotal
	m.Tax = o.Tax
	m.ShippingTotal = o.ShippingTotal
	m.GrandTotal = o.GrandTotal
	m.PaymentMethod = o.PaymentMethod
	m.Status = o.Status

	m.BillingFullName = o.BillingAddress.FullName
	m.BillingCompany = o.BillingAddress.Company
	m.BillingPhone = o.BillingAddress.Phone
	m.BillingStreet1 = o.BillingAddress.Street1
	m.BillingStreet2 = o.BillingAddress.Street2
	m.BillingCity = o.BillingAddress.City
	m.BillingState = o.BillingAddress.State
	m.BillingZip = o.BillingAddress.Zip
	m.BillingCountry = o.BillingAddress.Country

	m.ShippingFullName = o.ShippingAddress.FullName
	m.ShippingCompany = o.ShippingAddress.Company
	m.ShippingPhone = o.ShippingAddress.Phone
	m.ShippingStreet1 = o.ShippingAddress.Street1
	m.ShippingStreet2 = o.ShippingAddress.Street2
	m.ShippingCity = o.ShippingAddress.City
	m.ShippingState = o.ShippingAddress.State
	m.ShippingZip = o.ShippingAddress.Zip
	m.ShippingCountry = o.ShippingAddress.Country

	m.LegacyFragment = o.LegacyFragment

	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		im := OrderItemModel{
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Position:  item.Position,
		}
		im.FromDomainBaseEntity(item.BaseEntity)
		m.Items[i] = im
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
