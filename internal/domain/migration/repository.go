package migration

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LogFilter narrows a migration log listing
type LogFilter struct {
	SyncType    *SyncType
	Status      *SyncStatus
	StartedFrom *time.Time
	StartedTo   *time.Time
}

// MigrationLogRepository is the persistence port for migration logs
type MigrationLogRepository interface {
	Save(ctx context.Context, log *MigrationLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*MigrationLog, error)
	FindAll(ctx context.Context, filter LogFilter, page, pageSize int) ([]MigrationLog, int64, error)
}
