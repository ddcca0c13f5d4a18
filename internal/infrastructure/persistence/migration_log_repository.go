package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/shared"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/persistence/models"
)

// GormMigrationLogRepository implements migration.MigrationLogRepository
// using GORM
type GormMigrationLogRepository struct {
	db *gorm.DB
}

// NewGormMigrationLogRepository creates a new GormMigrationLogRepository
func NewGormMigrationLogRepository(db *gorm.DB) *GormMigrationLogRepository {
	return &GormMigrationLogRepository{db: db}
}

var _ migration.MigrationLogRepository = (*GormMigrationLogRepository)(nil)

// Save inserts the log on first call and updates the same row afterwards.
// The orchestrator calls it at run start, on progress snapshots, and at
// finalization.
func (r *GormMigrationLogRepository) Save(ctx context.Context, log *migration.MigrationLog) error {
	model := models.MigrationLogModelFromDomain(log)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
}

// FindByID finds a migration log by ID
func (r *GormMigrationLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*migration.MigrationLog, error) {
	var model models.MigrationLogModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns migration logs with filtering and pagination, most recent
// runs first
func (r *GormMigrationLogRepository) FindAll(
	ctx context.Context,
	filter migration.LogFilter,
	page, pageSize int,
) ([]migration.MigrationLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.MigrationLogModel{})

	if filter.SyncType != nil {
		query = query.Where("sync_type = ?", *filter.SyncType)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.StartedFrom != nil {
		query = query.Where("started_at >= ?", *filter.StartedFrom)
	}
	if filter.StartedTo != nil {
		query = query.Where("started_at <= ?", *filter.StartedTo)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	query = query.Order("started_at DESC")

	var logModels []models.MigrationLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]migration.MigrationLog, len(logModels))
	for i := range logModels {
		logs[i] = *logModels[i].ToDomain()
	}
	return logs, totalCount, nil
}
