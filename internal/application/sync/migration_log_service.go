package syncapp

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
)

// MigrationLogService exposes read access to sync run history
type MigrationLogService struct {
	repo   migration.MigrationLogRepository
	logger *zap.Logger
}

// NewMigrationLogService creates a new MigrationLogService
func NewMigrationLogService(repo migration.MigrationLogRepository, logger *zap.Logger) *MigrationLogService {
	return &MigrationLogService{repo: repo, logger: logger}
}

// LogListResult is one page of migration log history
type LogListResult struct {
	Items      []migration.MigrationLog `json:"items"`
	TotalCount int64                    `json:"total_count"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
}

// List returns migration logs matching the filter, most recent first
func (s *MigrationLogService) List(
	ctx context.Context,
	filter migration.LogFilter,
	page, pageSize int,
) (*LogListResult, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	logs, total, err := s.repo.FindAll(ctx, filter, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &LogListResult{
		Items:      logs,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Get returns one migration log by ID
func (s *MigrationLogService) Get(ctx context.Context, id uuid.UUID) (*migration.MigrationLog, error) {
	return s.repo.FindByID(ctx, id)
}
