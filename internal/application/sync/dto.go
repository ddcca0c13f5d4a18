// Package syncapp orchestrates migration runs: it pulls records from the
// legacy storefront (or an uploaded document), transforms them, loads them
// idempotently into the target store, and tracks each run in a migration
// log.
package syncapp

import (
	"time"

	"github.com/google/uuid"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
)

// Summary is the uniform result of one sync run. Every run produces one,
// whether it succeeded, partially failed, or fetched nothing.
type Summary struct {
	LogID     uuid.UUID             `json:"log_id"`
	SyncType  migration.SyncType    `json:"sync_type"`
	Status    migration.SyncStatus  `json:"status"`
	Processed int                   `json:"processed"`
	Created   int                   `json:"created"`
	Updated   int                   `json:"updated"`
	Skipped   int                   `json:"skipped"`
	Failed    int                   `json:"failed"`
	Duration  time.Duration         `json:"duration"`
	Errors    []migration.SyncError `json:"errors,omitempty"`
}

// ProductSyncOptions controls one product run
type ProductSyncOptions struct {
	// Limit bounds the fetch via streaming early termination; zero means
	// the full feed
	Limit       int
	TriggeredBy string
}

// CustomerSyncOptions controls one customer run
type CustomerSyncOptions struct {
	Limit       int
	TriggeredBy string
}

// OrderSyncOptions controls one order run
type OrderSyncOptions struct {
	Query       legacy.OrderQuery
	TriggeredBy string
}

// Config carries run tuning shared by all sync services
type Config struct {
	BatchSize        int
	ProgressInterval int
	MaxErrorEntries  int
}

// DefaultConfig returns the standard run tuning
func DefaultConfig() Config {
	return Config{
		BatchSize:        25,
		ProgressInterval: 10,
		MaxErrorEntries:  migration.MaxErrorEntries,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BatchSize <= 0 {
		c.BatchSize = d.BatchSize
	}
	if c.ProgressInterval <= 0 {
		c.ProgressInterval = d.ProgressInterval
	}
	if c.MaxErrorEntries <= 0 {
		c.MaxErrorEntries = d.MaxErrorEntries
	}
	return c
}
