package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/persistence/models"
)

// newTestDB creates an in-memory SQLite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	// A private in-memory database exists per connection; pin the pool to
	// one so every query sees the migrated schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.ProductModel{},
		&models.ProfileModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.MigrationLogModel{},
	))
	return db
}
