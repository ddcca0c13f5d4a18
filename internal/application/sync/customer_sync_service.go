package syncapp

import (
	"context"

	"go.uber.org/zap"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/profile"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/legacyxml"
)

// CustomerSyncService migrates the legacy customer feed into profiles
type CustomerSyncService struct {
	fetcher  legacy.Fetcher
	profiles profile.ProfileRepository
	logs     migration.MigrationLogRepository
	logger   *zap.Logger
	cfg      Config
}

// NewCustomerSyncService creates a new CustomerSyncService
func NewCustomerSyncService(
	fetcher legacy.Fetcher,
	profiles profile.ProfileRepository,
	logs migration.MigrationLogRepository,
	logger *zap.Logger,
	cfg Config,
) *CustomerSyncService {
	return &CustomerSyncService{
		fetcher:  fetcher,
		profiles: profiles,
		logs:     logs,
		logger:   logger,
		cfg:      cfg.withDefaults(),
	}
}

// Run fetches the customer feed and syncs it. Fetch failures degrade to an
// empty record set with a synthetic error; the run still completes.
func (s *CustomerSyncService) Run(ctx context.Context, opts CustomerSyncOptions) (*Summary, error) {
	tracker, err := newRunTracker(ctx, migration.SyncTypeCustomers, opts.TriggeredBy, s.logs, s.logger, s.cfg)
	if err != nil {
		return nil, err
	}

	records, fetchErr := s.fetcher.FetchCustomers(ctx, opts.Limit)
	if fetchErr != nil {
		tracker.addRunError("fetch", fetchErr)
	}

	return s.sync(ctx, tracker, records), nil
}

// RunDocument syncs an already-downloaded customer document
func (s *CustomerSyncService) RunDocument(ctx context.Context, rawXML, triggeredBy string) (*Summary, error) {
	tracker, err := newRunTracker(ctx, migration.SyncTypeCustomers, triggeredBy, s.logs, s.logger, s.cfg)
	if err != nil {
		return nil, err
	}
	return s.sync(ctx, tracker, legacyxml.ParseCustomers(rawXML)), nil
}

func (s *CustomerSyncService) sync(ctx context.Context, tracker *runTracker, records []legacy.Customer) *Summary {
	if len(records) == 0 {
		return tracker.finalize(ctx)
	}

	existing, err := s.profiles.ListEmails(ctx)
	if err != nil {
		tracker.addRunError("preload", err)
		return tracker.finalize(ctx)
	}
	emails := make(map[string]struct{}, len(existing))
	for _, email := range existing {
		emails[email] = struct{}{}
	}

	for _, batch := range chunk(records, s.cfg.BatchSize) {
		for _, rec := range batch {
			s.syncRecord(ctx, tracker, rec, emails)
			tracker.maybeSnapshot(ctx)
		}
	}
	return tracker.finalize(ctx)
}

func (s *CustomerSyncService) syncRecord(
	ctx context.Context,
	tracker *runTracker,
	rec legacy.Customer,
	emails map[string]struct{},
) {
	p, err := transformCustomer(rec)
	if err != nil {
		tracker.recordFailed(rec.Email, err)
		return
	}

	if err := s.profiles.Upsert(ctx, p); err != nil {
		tracker.recordFailed(p.Email, err)
		return
	}

	if _, exists := emails[p.Email]; exists {
		tracker.recordUpdated()
		return
	}
	emails[p.Email] = struct{}{}
	tracker.recordCreated()
}
