package migration

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/shared"
)

// SyncType identifies which entity feed a run migrates
type SyncType string

const (
	SyncTypeProducts  SyncType = "products"
	SyncTypeCustomers SyncType = "customers"
	SyncTypeOrders    SyncType = "orders"
)

// IsValid checks if the sync type is valid
func (t SyncType) IsValid() bool {
	switch t {
	case SyncTypeProducts, SyncTypeCustomers, SyncTypeOrders:
		return true
	}
	return false
}

// SyncStatus represents the state of a sync run. There is no distinct
// "failed" terminal state: a run with failed == processed still completes,
// flagged as completed_with_errors.
type SyncStatus string

const (
	SyncStatusRunning             SyncStatus = "running"
	SyncStatusCompleted           SyncStatus = "completed"
	SyncStatusCompletedWithErrors SyncStatus = "completed_with_errors"
)

// IsTerminal returns true if this is a terminal state
func (s SyncStatus) IsTerminal() bool {
	return s == SyncStatusCompleted || s == SyncStatusCompletedWithErrors
}

// SyncError is one per-record failure captured during a run
type SyncError struct {
	RecordID   string    `json:"record_id"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MigrationLog tracks one sync run from start to finalization. The
// orchestrator owns its lifecycle exclusively: created at run start,
// updated periodically while running, finalized at run end regardless of
// outcome.
type MigrationLog struct {
	shared.BaseAggregateRoot
	SyncType    SyncType
	Status      SyncStatus
	TriggeredBy string
	Processed   int
	Created     int
	Updated     int
	Skipped     int
	Failed      int
	Errors      []SyncError
	StartedAt   time.Time
	CompletedAt *time.Time
}

// NewMigrationLog creates a log for a run that is starting now
func NewMigrationLog(syncType SyncType, triggeredBy string) (*MigrationLog, error) {
	if !syncType.IsValid() {
		return nil, shared.NewDomainError("INVALID_SYNC_TYPE", fmt.Sprintf("Invalid sync type: %s", syncType))
	}
	return &MigrationLog{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SyncType:          syncType,
		Status:            SyncStatusRunning,
		TriggeredBy:       triggeredBy,
		Errors:            make([]SyncError, 0),
		StartedAt:         time.Now(),
	}, nil
}

// RecordProgress stores an intermediate snapshot of the run's counters
func (l *MigrationLog) RecordProgress(processed, created, updated, skipped, failed int) error {
	if l.Status != SyncStatusRunning {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot record progress in state: %s", l.Status))
	}
	l.Processed = processed
	l.Created = created
	l.Updated = updated
	l.Skipped = skipped
	l.Failed = failed
	l.Touch()
	l.IncrementVersion()
	return nil
}

// Complete finalizes the run with its full summary. A run with per-record
// failures still completes; the status records that errors occurred.
func (l *MigrationLog) Complete(processed, created, updated, skipped, failed int, errs []SyncError) error {
	if l.Status != SyncStatusRunning {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot complete from state: %s", l.Status))
	}
	l.Processed = processed
	l.Created = created
	l.Updated = updated
	l.Skipped = skipped
	l.Failed = failed
	l.Errors = errs
	l.Status = SyncStatusCompleted
	if failed > 0 || len(errs) > 0 {
		l.Status = SyncStatusCompletedWithErrors
	}
	now := time.Now()
	l.CompletedAt = &now
	l.Touch()
	l.IncrementVersion()
	return nil
}

// Duration returns how long the run has been going, or took in total
func (l *MigrationLog) Duration() time.Duration {
	end := time.Now()
	if l.CompletedAt != nil {
		end = *l.CompletedAt
	}
	return end.Sub(l.StartedAt)
}

// ErrorsJSON serializes the error entries for persistence
func (l *MigrationLog) ErrorsJSON() (string, error) {
	if len(l.Errors) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(l.Errors)
	if err != nil {
		return "", fmt.Errorf("failed to marshal sync errors: %w", err)
	}
	return string(data), nil
}

// SetErrorsFromJSON restores error entries from their persisted form
func (l *MigrationLog) SetErrorsFromJSON(raw string) error {
	if raw == "" || raw == "[]" {
		l.Errors = make([]SyncError, 0)
		return nil
	}
	var errs []SyncError
	if err := json.Unmarshal([]byte(raw), &errs); err != nil {
		return fmt.Errorf("failed to unmarshal sync errors: %w", err)
	}
	l.Errors = errs
	return nil
}
