package syncapp

import (
	"context"

	"go.uber.org/zap"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/catalog"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/legacyxml"
)

// ProductSyncService migrates the legacy product feed into the catalog
type ProductSyncService struct {
	fetcher  legacy.Fetcher
	products catalog.ProductRepository
	logs     migration.MigrationLogRepository
	logger   *zap.Logger
	cfg      Config
}

// NewProductSyncService creates a new ProductSyncService
func NewProductSyncService(
	fetcher legacy.Fetcher,
	products catalog.ProductRepository,
	logs migration.MigrationLogRepository,
	logger *zap.Logger,
	cfg Config,
) *ProductSyncService {
	return &ProductSyncService{
		fetcher:  fetcher,
		products: products,
		logs:     logs,
		logger:   logger,
		cfg:      cfg.withDefaults(),
	}
}

// Run fetches the product feed and syncs it. A fetch failure degrades to an
// empty record set: the run still completes, carrying a single synthetic
// error. Only pre-flight problems (log creation) return an error.
func (s *ProductSyncService) Run(ctx context.Context, opts ProductSyncOptions) (*Summary, error) {
	tracker, err := newRunTracker(ctx, migration.SyncTypeProducts, opts.TriggeredBy, s.logs, s.logger, s.cfg)
	if err != nil {
		return nil, err
	}

	records, fetchErr := s.fetcher.FetchProducts(ctx, opts.Limit)
	if fetchErr != nil {
		tracker.addRunError("fetch", fetchErr)
	}

	return s.sync(ctx, tracker, records), nil
}

// RunDocument syncs an already-downloaded product document, skipping the
// transport entirely
func (s *ProductSyncService) RunDocument(ctx context.Context, rawXML, triggeredBy string) (*Summary, error) {
	tracker, err := newRunTracker(ctx, migration.SyncTypeProducts, triggeredBy, s.logs, s.logger, s.cfg)
	if err != nil {
		return nil, err
	}
	return s.sync(ctx, tracker, legacyxml.ParseProducts(rawXML)), nil
}

func (s *ProductSyncService) sync(ctx context.Context, tracker *runTracker, records []legacy.Product) *Summary {
	// Zero records short-circuits without touching the target store.
	if len(records) == 0 {
		return tracker.finalize(ctx)
	}

	existingSKUs, err := s.products.ListSKUs(ctx)
	if err != nil {
		tracker.addRunError("preload", err)
		return tracker.finalize(ctx)
	}
	existingSlugs, err := s.products.ListSlugs(ctx)
	if err != nil {
		tracker.addRunError("preload", err)
		return tracker.finalize(ctx)
	}

	skus := make(map[string]struct{}, len(existingSKUs))
	for _, sku := range existingSKUs {
		skus[sku] = struct{}{}
	}
	slugs := make(map[string]struct{}, len(existingSlugs))
	for _, slug := range existingSlugs {
		slugs[slug] = struct{}{}
	}

	for _, batch := range chunk(records, s.cfg.BatchSize) {
		for _, rec := range batch {
			s.syncRecord(ctx, tracker, rec, skus, slugs)
			tracker.maybeSnapshot(ctx)
		}
	}
	return tracker.finalize(ctx)
}

func (s *ProductSyncService) syncRecord(
	ctx context.Context,
	tracker *runTracker,
	rec legacy.Product,
	skus, slugs map[string]struct{},
) {
	product, err := transformProduct(rec)
	if err != nil {
		tracker.recordFailed(rec.SKU, err)
		return
	}

	_, exists := skus[rec.SKU]
	if !exists {
		// New products get a collision-free slug, registered immediately
		// so later records in the same run see it.
		product.Slug = catalog.NextAvailableSlug(product.Slug, slugs)
	}

	if err := s.products.Upsert(ctx, product); err != nil {
		tracker.recordFailed(rec.SKU, err)
		return
	}

	if exists {
		tracker.recordUpdated()
		return
	}
	skus[rec.SKU] = struct{}{}
	slugs[product.Slug] = struct{}{}
	tracker.recordCreated()
}
