package syncapp

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/catalog"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/profile"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/trade"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/legacyxml"
)

// OrderSyncService migrates legacy orders into the trade store. Orders are
// insert-only: an order number already in the target store is skipped, not
// updated.
type OrderSyncService struct {
	fetcher  legacy.Fetcher
	orders   trade.OrderRepository
	products catalog.ProductRepository
	profiles profile.ProfileRepository
	logs     migration.MigrationLogRepository
	logger   *zap.Logger
	cfg      Config
}

// NewOrderSyncService creates a new OrderSyncService
func NewOrderSyncService(
	fetcher legacy.Fetcher,
	orders trade.OrderRepository,
	products catalog.ProductRepository,
	profiles profile.ProfileRepository,
	logs migration.MigrationLogRepository,
	logger *zap.Logger,
	cfg Config,
) *OrderSyncService {
	return &OrderSyncService{
		fetcher:  fetcher,
		orders:   orders,
		products: products,
		profiles: profiles,
		logs:     logs,
		logger:   logger,
		cfg:      cfg.withDefaults(),
	}
}

// Run fetches orders matching the query and syncs them. Fetch failures
// degrade to an empty record set with a synthetic error; the run still
// completes.
func (s *OrderSyncService) Run(ctx context.Context, opts OrderSyncOptions) (*Summary, error) {
	tracker, err := newRunTracker(ctx, migration.SyncTypeOrders, opts.TriggeredBy, s.logs, s.logger, s.cfg)
	if err != nil {
		return nil, err
	}

	records, fetchErr := s.fetcher.FetchOrders(ctx, opts.Query)
	if fetchErr != nil {
		tracker.addRunError("fetch", fetchErr)
	}

	return s.sync(ctx, tracker, records), nil
}

// RunDocument syncs an already-downloaded order document
func (s *OrderSyncService) RunDocument(ctx context.Context, rawXML, triggeredBy string) (*Summary, error) {
	tracker, err := newRunTracker(ctx, migration.SyncTypeOrders, triggeredBy, s.logs, s.logger, s.cfg)
	if err != nil {
		return nil, err
	}
	return s.sync(ctx, tracker, legacyxml.ParseOrders(rawXML)), nil
}

func (s *OrderSyncService) sync(ctx context.Context, tracker *runTracker, records []legacy.Order) *Summary {
	if len(records) == 0 {
		return tracker.finalize(ctx)
	}

	existing, err := s.orders.ListOrderNumbers(ctx)
	if err != nil {
		tracker.addRunError("preload", err)
		return tracker.finalize(ctx)
	}
	numbers := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		numbers[n] = struct{}{}
	}

	profileIndex, err := s.profiles.EmailIndex(ctx)
	if err != nil {
		tracker.addRunError("preload", err)
		return tracker.finalize(ctx)
	}
	skuIndex, err := s.products.SKUIndex(ctx)
	if err != nil {
		tracker.addRunError("preload", err)
		return tracker.finalize(ctx)
	}

	for _, batch := range chunk(records, s.cfg.BatchSize) {
		for _, rec := range batch {
			s.syncRecord(ctx, tracker, rec, numbers, profileIndex, skuIndex)
			tracker.maybeSnapshot(ctx)
		}
	}
	return tracker.finalize(ctx)
}

func (s *OrderSyncService) syncRecord(
	ctx context.Context,
	tracker *runTracker,
	rec legacy.Order,
	numbers map[string]struct{},
	profileIndex, skuIndex map[string]uuid.UUID,
) {
	if _, exists := numbers[rec.OrderNumber]; exists {
		tracker.recordSkipped()
		return
	}

	order, err := transformOrder(rec, profileIndex, skuIndex)
	if err != nil {
		tracker.recordFailed(rec.OrderNumber, err)
		return
	}

	if err := s.orders.Create(ctx, order); err != nil {
		tracker.recordFailed(rec.OrderNumber, err)
		return
	}
	numbers[rec.OrderNumber] = struct{}{}
	tracker.recordCreated()
}
