package legacy

import "context"

// OrderQuery narrows an order download. Zero values mean "no filter".
// Dates use the legacy platform's fixed display format (MM/DD/YYYY).
type OrderQuery struct {
	StartOrder string
	EndOrder   string
	StartDate  string
	EndDate    string
	Limit      int
}

// Fetcher retrieves records from the legacy storefront. A fetch failure is
// reported through the error return together with an empty slice; callers
// treat it as a degenerate, non-fatal outcome for the run.
type Fetcher interface {
	// FetchProducts downloads the product feed. A positive limit bounds the
	// read to roughly that many records via streaming early termination.
	FetchProducts(ctx context.Context, limit int) ([]Product, error)

	// FetchCustomers downloads the customer feed, capped post-parse when
	// limit is positive.
	FetchCustomers(ctx context.Context, limit int) ([]Customer, error)

	// FetchOrders downloads orders matching the query, always requesting
	// payment details inline.
	FetchOrders(ctx context.Context, query OrderQuery) ([]Order, error)
}
