package syncapp

import (
	"context"

	"go.uber.org/zap"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
)

// runTracker owns one run's MigrationLog lifecycle and counters. Each run
// gets a fresh instance; nothing here is shared across runs.
type runTracker struct {
	log      *migration.MigrationLog
	repo     migration.MigrationLogRepository
	logger   *zap.Logger
	errors   *migration.ErrorLog
	interval int

	processed int
	created   int
	updated   int
	skipped   int
	failed    int
}

// newRunTracker creates and persists the run's log in the running state.
// An error here is pre-flight: no run has started.
func newRunTracker(
	ctx context.Context,
	syncType migration.SyncType,
	triggeredBy string,
	repo migration.MigrationLogRepository,
	logger *zap.Logger,
	cfg Config,
) (*runTracker, error) {
	log, err := migration.NewMigrationLog(syncType, triggeredBy)
	if err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, log); err != nil {
		return nil, err
	}
	return &runTracker{
		log:      log,
		repo:     repo,
		logger:   logger.With(zap.String("sync_type", string(syncType)), zap.String("log_id", log.ID.String())),
		errors:   migration.NewErrorLogWithLimit(cfg.MaxErrorEntries),
		interval: cfg.ProgressInterval,
	}, nil
}

func (t *runTracker) recordCreated() {
	t.created++
	t.processed++
}

func (t *runTracker) recordUpdated() {
	t.updated++
	t.processed++
}

func (t *runTracker) recordSkipped() {
	t.skipped++
	t.processed++
}

// recordFailed counts the failure and captures a capped error entry. The
// failed counter keeps incrementing past the cap.
func (t *runTracker) recordFailed(recordID string, err error) {
	t.failed++
	t.processed++
	t.errors.Add(recordID, err.Error())
	t.logger.Warn("record failed", zap.String("record_id", recordID), zap.Error(err))
}

// addRunError captures a run-level synthetic error, such as a fetch
// failure, without counting a processed record
func (t *runTracker) addRunError(recordID string, err error) {
	t.errors.Add(recordID, err.Error())
	t.logger.Warn("run error", zap.String("record_id", recordID), zap.Error(err))
}

// maybeSnapshot pushes an intermediate progress update to the log at the
// configured interval. Snapshot persistence failures are logged and
// swallowed; they never abort the run.
func (t *runTracker) maybeSnapshot(ctx context.Context) {
	if t.interval <= 0 || t.processed == 0 || t.processed%t.interval != 0 {
		return
	}
	if err := t.log.RecordProgress(t.processed, t.created, t.updated, t.skipped, t.failed); err != nil {
		t.logger.Warn("progress snapshot rejected", zap.Error(err))
		return
	}
	if err := t.repo.Save(ctx, t.log); err != nil {
		t.logger.Warn("progress snapshot save failed", zap.Error(err))
	}
}

// finalize completes the log with the full summary and persists it. It runs
// regardless of outcome; the returned Summary is the run's uniform result.
func (t *runTracker) finalize(ctx context.Context) *Summary {
	if err := t.log.Complete(t.processed, t.created, t.updated, t.skipped, t.failed, t.errors.Entries()); err != nil {
		t.logger.Error("log finalization rejected", zap.Error(err))
	}
	if err := t.repo.Save(ctx, t.log); err != nil {
		t.logger.Error("log finalization save failed", zap.Error(err))
	}

	t.logger.Info("sync run finished",
		zap.String("status", string(t.log.Status)),
		zap.Int("processed", t.processed),
		zap.Int("created", t.created),
		zap.Int("updated", t.updated),
		zap.Int("skipped", t.skipped),
		zap.Int("failed", t.failed),
		zap.Duration("duration", t.log.Duration()),
	)

	return &Summary{
		LogID:     t.log.ID,
		SyncType:  t.log.SyncType,
		Status:    t.log.Status,
		Processed: t.processed,
		Created:   t.created,
		Updated:   t.updated,
		Skipped:   t.skipped,
		Failed:    t.failed,
		Duration:  t.log.Duration(),
		Errors:    t.errors.Entries(),
	}
}
