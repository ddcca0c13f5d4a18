package syncapp

import (
	"context"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/shared"
)

// RunRequest carries the caller's parameters for one run of any sync type.
// Limit applies to products and customers; Query applies to orders.
type RunRequest struct {
	Limit       int
	Query       legacy.OrderQuery
	TriggeredBy string
}

// Dispatcher routes a sync request to the service for its entity type
type Dispatcher struct {
	products  *ProductSyncService
	customers *CustomerSyncService
	orders    *OrderSyncService
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(
	products *ProductSyncService,
	customers *CustomerSyncService,
	orders *OrderSyncService,
) *Dispatcher {
	return &Dispatcher{products: products, customers: customers, orders: orders}
}

// Run triggers a fetch-and-sync run for the given type
func (d *Dispatcher) Run(ctx context.Context, syncType migration.SyncType, req RunRequest) (*Summary, error) {
	switch syncType {
	case migration.SyncTypeProducts:
		return d.products.Run(ctx, ProductSyncOptions{Limit: req.Limit, TriggeredBy: req.TriggeredBy})
	case migration.SyncTypeCustomers:
		return d.customers.Run(ctx, CustomerSyncOptions{Limit: req.Limit, TriggeredBy: req.TriggeredBy})
	case migration.SyncTypeOrders:
		return d.orders.Run(ctx, OrderSyncOptions{Query: req.Query, TriggeredBy: req.TriggeredBy})
	default:
		return nil, shared.NewDomainError("INVALID_SYNC_TYPE", "Unknown sync type: "+string(syncType))
	}
}

// RunDocument runs the identical pipeline over an already-downloaded
// document, skipping the transport
func (d *Dispatcher) RunDocument(ctx context.Context, syncType migration.SyncType, rawXML, triggeredBy string) (*Summary, error) {
	switch syncType {
	case migration.SyncTypeProducts:
		return d.products.RunDocument(ctx, rawXML, triggeredBy)
	case migration.SyncTypeCustomers:
		return d.customers.RunDocument(ctx, rawXML, triggeredBy)
	case migration.SyncTypeOrders:
		return d.orders.RunDocument(ctx, rawXML, triggeredBy)
	default:
		return nil, shared.NewDomainError("INVALID_SYNC_TYPE", "Unknown sync type: "+string(syncType))
	}
}
