package models

import (
	"time"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
)

// MigrationLogModel is the persistence model for the MigrationLog aggregate
type MigrationLogModel struct {
	AggregateModel
	SyncType    migration.SyncType   `gorm:"type:varchar(20);not null;index"`
	Status      migration.SyncStatus `gorm:"type:varchar(30);not null;index"`
	TriggeredBy string               `gorm:"type:varchar(100)"`
	Processed   int                  `gorm:"not null;default:0"`
	Created     int                  `gorm:"not null;default:0"`
	Updated     int                  `gorm:"not null;default:0"`
	Skipped     int                  `gorm:"not null;default:0"`
	Failed      int                  `gorm:"not null;default:0"`
	Errors      string               `gorm:"type:jsonb;default:'[]'"`
	StartedAt   time.Time            `gorm:"type:timestamptz;not null;index"`
	CompletedAt *time.Time           `gorm:"type:timestamptz"`
}

// TableName returns the table name for GORM
func (MigrationLogModel) TableName() string {
	return "migration_logs"
}

// ToDomain converts the persistence model to a domain MigrationLog aggregate
func (m *MigrationLogModel) ToDomain() *migration.MigrationLog {
	l := &migration.MigrationLog{
		SyncType:    m.SyncType,
		Status:      m.Status,
		TriggeredBy: m.TriggeredBy,
		Processed:   m.Processed,
		Created:     m.Created,
		Updated:     m.Updated,
		Skipped:     m.Skipped,
		Failed:      m.Failed,
		StartedAt:   m.StartedAt,
		CompletedAt: m.CompletedAt,
	}
	m.PopulateAggregateRoot(&l.BaseAggregateRoot)
	_ = l.SetErrorsFromJSON(m.Errors)
	return l
}

// FromDomain populates the persistence model from a domain MigrationLog
func (m *MigrationLogModel) FromDomain(l *migration.MigrationLog) {
	m.FromDomainAggregateRoot(l.BaseAggregateRoot)
	m.SyncType = l.SyncType
	m.Status = l.Status
	m.TriggeredBy = l.TriggeredBy
	m.Processed = l.Processed
	m.Created = l.Created
	m.Updated = l.Updated
	m.Skipped = l.Skipped
	m.Failed = l.Failed
	m.StartedAt = l.StartedAt
	m.CompletedAt = l.CompletedAt

	if errorsJSON, err := l.ErrorsJSON(); err == nil {
		m.Errors = errorsJSON
	} else {
		m.Errors = "[]"
	}
}

// MigrationLogModelFromDomain creates a new persistence model from a domain MigrationLog
func MigrationLogModelFromDomain(l *migration.MigrationLog) *MigrationLogModel {
	m := &MigrationLogModel{}
	m.FromDomain(l)
	return m
}
